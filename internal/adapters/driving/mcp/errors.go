// Package mcp serves sequence resolution over the Model Context Protocol so
// assistants can fetch regions and deposit fragments.
package mcp

import "errors"

// ErrMissingSequenceService is returned when the sequence service is not provided.
var ErrMissingSequenceService = errors.New("mcp: sequence service is required")
