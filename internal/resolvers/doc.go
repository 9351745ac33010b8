// Package resolvers groups the resolver variants the default chain is built from.
//
// Each subpackage implements driven.OptionalResolver for one family of addresses:
//   - filesystem: file:// references to local FASTA files
//   - fragments: frag:// references to sequence assembled from deposited fragments
//   - httpcache: the generic caching download resolver
//   - ncbi: nuccore:// and gi: references fetched from NCBI E-utilities
package resolvers
