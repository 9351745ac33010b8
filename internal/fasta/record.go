package fasta

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
)

// Record is one FASTA entry. It serves its whole sequence as a provider.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

var _ driven.SequenceProvider = (*Record)(nil)

// Range returns [0, len(Sequence)).
func (r *Record) Range() domain.Range {
	return domain.Range{Begin: 0, End: len(r.Sequence)}
}

// Region returns the residues in rng.
func (r *Record) Region(_ context.Context, rng domain.Range) (string, error) {
	if !r.Range().Contains(rng) {
		return "", fmt.Errorf("%w: %s outside %s of %s", domain.ErrRangeUnavailable, rng, r.Range(), r.ID)
	}
	return r.Sequence[rng.Begin:rng.End], nil
}

// Available returns the record range when it contains rng.
func (r *Record) Available(_ context.Context, rng domain.Range) (domain.Range, bool) {
	if !r.Range().Contains(rng) {
		return domain.Range{}, false
	}
	return r.Range(), true
}

// Write emits one FASTA record, wrapping the sequence at width columns.
// A width <= 0 writes the sequence on a single line.
func Write(w io.Writer, header, seq string, width int) error {
	var b strings.Builder
	b.WriteByte('>')
	b.WriteString(header)
	b.WriteByte('\n')
	if width <= 0 {
		width = len(seq)
	}
	for len(seq) > 0 {
		n := min(width, len(seq))
		b.WriteString(seq[:n])
		b.WriteByte('\n')
		seq = seq[n:]
	}
	_, err := io.WriteString(w, b.String())
	return err
}
