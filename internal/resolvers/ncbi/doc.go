// Package ncbi resolves nuccore:// and gi: addresses via NCBI E-utilities.
//
// Records are fetched as FASTA from the efetch endpoint and cached through
// the httpcache resolver. Requests are paced with a token bucket at the
// rate NCBI permits: 3 requests per second, or 10 with an API key.
package ncbi
