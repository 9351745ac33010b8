package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "seqres://"

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "fragments",
		Name:        "fragments",
		Description: "Accessions with deposited fragments",
		MIMEType:    "application/json",
	}, s.handleAccessionsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "fragments/{accession}",
		Name:        "fragment-spans",
		Description: "Known spans of one accession",
		MIMEType:    "application/json",
	}, s.handleSpansResource)
}

func (s *Server) handleAccessionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	accessions := []string{}
	if s.ports.Fragments != nil {
		list, err := s.ports.Fragments.Accessions(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing accessions: %w", err)
		}
		accessions = append(accessions, list...)
	}
	return jsonResult(req.Params.URI, accessions)
}

// spanInfo is one known span in resource output.
type spanInfo struct {
	Begin    int    `json:"begin"`
	End      int    `json:"end"`
	Sequence string `json:"sequence"`
}

func (s *Server) handleSpansResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Fragments == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	accession := extractAccession(req.Params.URI)
	if accession == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	spans, err := s.ports.Fragments.Spans(ctx, accession)
	if err != nil {
		return nil, fmt.Errorf("listing spans: %w", err)
	}
	if len(spans) == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	infos := make([]spanInfo, len(spans))
	for i, sp := range spans {
		infos[i] = spanInfo{Begin: sp.Range.Begin, End: sp.Range.End, Sequence: sp.Sequence}
	}
	return jsonResult(req.Params.URI, infos)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractAccession returns the accession from seqres://fragments/{accession}.
func extractAccession(uri string) string {
	const prefix = uriScheme + "fragments/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	acc := strings.TrimPrefix(uri, prefix)
	if strings.Contains(acc, "/") {
		return ""
	}
	return acc
}
