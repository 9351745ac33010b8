// Package filesystem resolves file:// addresses to records in local FASTA files.
//
// Relative paths are resolved against the address context: a directory
// context is used as is, a file context contributes its parent directory.
// The fragment id after '#' selects a record by header id. Parsed files are
// memoized by absolute path; with watching enabled a change to the file on
// disk evicts its memo entry so the next resolve re-reads it.
package filesystem
