// Package fasta decodes FASTA documents into sequence providers.
//
// Input may be plain text or gzip-compressed; compression is detected from
// the gzip magic bytes, not from the file name. Parsing is strict: the first
// non-blank line must be a '>' header and sequence lines may only contain
// letters, '*' and '-'. A malformed document is reported as an error so that
// callers can tell a truncated or corrupted download from a valid record.
//
// A Document holds every record's residues in memory. Region slices that
// string without further I/O; callers resolving the same file repeatedly
// keep the Document rather than parsing again.
package fasta
