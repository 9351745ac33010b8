package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Span is a contiguous known region of one accession together with its content.
// len(Sequence) always equals Range.Len().
type Span struct {
	Range    Range
	Sequence string
}

// NewSpan creates a span for seq starting at offset.
// offset+len(seq) must not overflow int.
func NewSpan(offset int, seq string) Span {
	return Span{Range: Range{Begin: offset, End: offset + len(seq)}, Sequence: seq}
}

// Region returns the content for r, which must lie within the span.
func (s Span) Region(r Range) string {
	return s.Sequence[r.Begin-s.Range.Begin : r.End-s.Range.Begin]
}

// FindContaining returns the span that fully contains r.
// spans must be sorted by Begin and pairwise disjoint.
func FindContaining(spans []Span, r Range) (Span, bool) {
	// First span whose End reaches r.End; only it can contain r.
	i := sort.Search(len(spans), func(i int) bool {
		return spans[i].Range.End >= r.End
	})
	if i < len(spans) && spans[i].Range.Contains(r) {
		return spans[i], true
	}
	return Span{}, false
}

// MergeFragment records seq at offset into spans and returns the new span list.
//
// spans must be sorted by Begin with no two spans intersecting or touching.
// The input slice is never modified. Every stored span that intersects the
// fragment is validated before anything is built; on the first mismatch an
// OverlapMismatch error is returned and spans remain the current state.
// Stored spans touching the fragment are merged into a single span; bytes
// already known come from the stored spans and only the gaps are taken
// from seq. changed is false when the fragment was already fully known.
func MergeFragment(spans []Span, offset int, seq string) (merged []Span, changed bool, err error) {
	if offset < 0 {
		return spans, false, fmt.Errorf("%w: negative fragment offset %d", ErrInvalidInput, offset)
	}
	if offset > math.MaxInt-len(seq) {
		return spans, false, fmt.Errorf("%w: fragment at offset %d of length %d overflows", ErrInvalidInput, offset, len(seq))
	}
	if seq == "" {
		return spans, false, nil
	}

	fragment := NewSpan(offset, seq)

	// Stored spans that intersect or touch the fragment form one contiguous run.
	first := sort.Search(len(spans), func(i int) bool {
		return spans[i].Range.End >= fragment.Range.Begin
	})
	last := first
	for last < len(spans) && spans[last].Range.Begin <= fragment.Range.End {
		last++
	}
	touched := spans[first:last]

	for _, s := range touched {
		overlap, ok := s.Range.Intersection(fragment.Range)
		if !ok {
			continue
		}
		if s.Region(overlap) != fragment.Region(overlap) {
			return spans, false, &Error{
				Kind:  KindOverlapMismatch,
				Op:    "merge fragment",
				Range: &overlap,
			}
		}
	}

	if len(touched) == 1 && touched[0].Range.Contains(fragment.Range) {
		return spans, false, nil
	}

	union := fragment.Range
	for _, s := range touched {
		union, _ = union.TryMerge(s.Range)
	}

	var b strings.Builder
	b.Grow(union.Len())
	cursor := union.Begin
	for _, s := range touched {
		if cursor < s.Range.Begin {
			b.WriteString(fragment.Region(Range{Begin: cursor, End: s.Range.Begin}))
		}
		b.WriteString(s.Sequence)
		cursor = s.Range.End
	}
	if cursor < union.End {
		b.WriteString(fragment.Region(Range{Begin: cursor, End: union.End}))
	}

	merged = make([]Span, 0, len(spans)-len(touched)+1)
	merged = append(merged, spans[:first]...)
	merged = append(merged, Span{Range: union, Sequence: b.String()})
	merged = append(merged, spans[last:]...)
	return merged, true, nil
}
