// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Resolver / OptionalResolver: turn a SequenceAddress into a SequenceProvider
//   - SequenceProvider: range extraction over resolved content
//   - FragmentStore: per-accession span storage with merge-on-put
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or resolver package
package driven
