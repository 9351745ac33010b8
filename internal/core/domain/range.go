package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open interval [Begin, End) over sequence coordinates.
// Begin must never exceed End.
type Range struct {
	Begin int
	End   int
}

// NewRange creates a validated range.
func NewRange(begin, end int) (Range, error) {
	if begin < 0 {
		return Range{}, fmt.Errorf("%w: negative range start %d", ErrInvalidInput, begin)
	}
	if begin > end {
		return Range{}, fmt.Errorf("%w: range start %d exceeds end %d", ErrInvalidInput, begin, end)
	}
	return Range{Begin: begin, End: end}, nil
}

// ParseRange parses "begin:end" or "begin-end" into a Range.
func ParseRange(s string) (Range, error) {
	sep := strings.IndexAny(s, ":-")
	if sep <= 0 || sep == len(s)-1 {
		return Range{}, fmt.Errorf("%w: range must be begin:end, got %q", ErrInvalidInput, s)
	}

	begin, err := strconv.Atoi(strings.TrimSpace(s[:sep]))
	if err != nil {
		return Range{}, fmt.Errorf("%w: range start %q", ErrInvalidInput, s[:sep])
	}
	end, err := strconv.Atoi(strings.TrimSpace(s[sep+1:]))
	if err != nil {
		return Range{}, fmt.Errorf("%w: range end %q", ErrInvalidInput, s[sep+1:])
	}

	return NewRange(begin, end)
}

// Len returns the number of positions covered.
func (r Range) Len() int {
	return r.End - r.Begin
}

// IsEmpty returns true if the range covers no positions.
func (r Range) IsEmpty() bool {
	return r.End <= r.Begin
}

// Contains returns true if other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.Begin <= other.Begin && other.End <= r.End
}

// ContainsPosition returns true if pos lies within r.
func (r Range) ContainsPosition(pos int) bool {
	return r.Begin <= pos && pos < r.End
}

// Intersects returns true if the two ranges share at least one position.
func (r Range) Intersects(other Range) bool {
	return r.Begin < other.End && other.Begin < r.End
}

// Touches returns true if the ranges intersect or are adjacent.
func (r Range) Touches(other Range) bool {
	return r.Begin <= other.End && other.Begin <= r.End
}

// Intersection returns the overlap of the two ranges.
// The boolean is false when they do not intersect.
func (r Range) Intersection(other Range) (Range, bool) {
	if !r.Intersects(other) {
		return Range{}, false
	}
	return Range{Begin: max(r.Begin, other.Begin), End: min(r.End, other.End)}, true
}

// TryMerge returns the union of two ranges.
// Merging is only legal for ranges that intersect or are adjacent.
func (r Range) TryMerge(other Range) (Range, error) {
	if !r.Touches(other) {
		return Range{}, fmt.Errorf("%w: cannot merge disjoint ranges %s and %s", ErrInvalidInput, r, other)
	}
	return Range{Begin: min(r.Begin, other.Begin), End: max(r.End, other.End)}, nil
}

// Shift moves the range by delta positions.
func (r Range) Shift(delta int) Range {
	return Range{Begin: r.Begin + delta, End: r.End + delta}
}

// String returns the range as "[begin,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Begin, r.End)
}
