// Package domain defines the core entities for seqres.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Range: half-open coordinate interval arithmetic
//   - Span: a known region of an accession plus its content
//   - MergeFragment: the fragment merge and overlap validation algorithm
//   - SequenceAddress: a symbolic sequence reference and its parser
//   - Error: discriminated resolution and storage failures
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
