// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters) and resolvers.
//
// The resolver chain and the process-wide default resolver live here, as do
// the fragment service that serializes deposits per accession and the
// settings, sequence and cache services used by the CLI.
package services
