package mcp

import (
	"github.com/custodia-labs/seqres/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Sequences resolves addresses to content.
	Sequences driving.SequenceService

	// Fragments accepts and lists deposited fragments. Optional.
	Fragments driving.FragmentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Sequences == nil {
		return ErrMissingSequenceService
	}
	return nil
}
