package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// ResolveInput is the input schema for the resolve tool.
type ResolveInput struct {
	Address string `json:"address" jsonschema:"sequence address such as nuccore://EU877942.1 or file://ref.fa#chr1"`
	Context string `json:"context,omitempty" jsonschema:"path that relative file:// addresses are resolved against"`
	Begin   *int   `json:"begin,omitempty" jsonschema:"zero-based start of the region, inclusive"`
	End     *int   `json:"end,omitempty" jsonschema:"zero-based end of the region, exclusive"`
}

// ResolveOutput is the output schema for the resolve tool.
type ResolveOutput struct {
	Address  string `json:"address"`
	Begin    int    `json:"begin"`
	End      int    `json:"end"`
	Sequence string `json:"sequence"`
}

// PutFragmentInput is the input schema for the put_fragment tool.
type PutFragmentInput struct {
	Accession string `json:"accession" jsonschema:"accession the fragment belongs to"`
	Offset    int    `json:"offset" jsonschema:"zero-based position of the first residue"`
	Sequence  string `json:"sequence" jsonschema:"fragment residues"`
}

// PutFragmentOutput is the output schema for the put_fragment tool.
type PutFragmentOutput struct {
	Accession string `json:"accession"`
	Spans     int    `json:"spans"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve a sequence address and return the requested region",
	}, s.handleResolve)

	if s.ports.Fragments != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "put_fragment",
			Description: "Deposit a fragment of an accession's sequence; overlapping fragments must agree",
		}, s.handlePutFragment)
	}
}

func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	var rng *domain.Range
	switch {
	case input.Begin != nil && input.End != nil:
		r, err := domain.NewRange(*input.Begin, *input.End)
		if err != nil {
			return nil, ResolveOutput{}, err
		}
		rng = &r
	case input.Begin != nil || input.End != nil:
		return nil, ResolveOutput{}, errors.New("begin and end must be given together")
	}

	addr := domain.SequenceAddress{Context: input.Context, Raw: input.Address}
	seq, served, err := s.ports.Sequences.Fetch(ctx, addr, rng)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	return nil, ResolveOutput{
		Address:  input.Address,
		Begin:    served.Begin,
		End:      served.End,
		Sequence: seq,
	}, nil
}

func (s *Server) handlePutFragment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PutFragmentInput,
) (*mcp.CallToolResult, PutFragmentOutput, error) {
	if err := s.ports.Fragments.Put(ctx, input.Accession, input.Offset, input.Sequence); err != nil {
		return nil, PutFragmentOutput{}, err
	}

	spans, err := s.ports.Fragments.Spans(ctx, input.Accession)
	if err != nil {
		return nil, PutFragmentOutput{}, err
	}
	return nil, PutFragmentOutput{Accession: input.Accession, Spans: len(spans)}, nil
}
