package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Uniqueness tests that all sentinel errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrRangeUnavailable,
		ErrAddressSyntax,
		ErrNoResolver,
		ErrOverlapMismatch,
		ErrCacheCorruption,
		ErrNetwork,
		ErrParse,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

func TestError_IsMatchesKindSentinel(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		sentinel error
	}{
		{KindAddressSyntax, ErrAddressSyntax},
		{KindNoResolver, ErrNoResolver},
		{KindOverlapMismatch, ErrOverlapMismatch},
		{KindCacheCorruption, ErrCacheCorruption},
		{KindNetwork, ErrNetwork},
		{KindParse, ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &Error{Kind: tt.kind, Address: "gi:1"}
			assert.ErrorIs(t, err, tt.sentinel)
			assert.NotErrorIs(t, err, ErrNotFound)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestError_WrappedKeepsKind(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("resolve: %w", &Error{Kind: KindNetwork, Err: cause})

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestError_Message(t *testing.T) {
	r := Range{Begin: 3, End: 7}
	err := &Error{
		Kind:      KindOverlapMismatch,
		Op:        "put",
		Accession: "A1",
		Range:     &r,
	}

	assert.Equal(t, `put: overlapping fragments differ (accession "A1") (range [3,7))`, err.Error())
}

func TestError_MessageWithCause(t *testing.T) {
	err := &Error{Kind: KindNetwork, Address: "gi:5", Err: errors.New("timeout")}
	assert.Equal(t, `network error (address "gi:5"): timeout`, err.Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "parse", KindParse.String())
}

func TestAddressError(t *testing.T) {
	err := AddressError("bad", "missing %s", "scheme")
	assert.ErrorIs(t, err, ErrAddressSyntax)
	assert.Contains(t, err.Error(), "missing scheme")
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestWithAccession(t *testing.T) {
	r := Range{Begin: 1, End: 2}
	base := &Error{Kind: KindOverlapMismatch, Op: "merge fragment", Range: &r}

	err := WithAccession(base, "put fragment", "A1")

	var annotated *Error
	assert.ErrorAs(t, err, &annotated)
	assert.Equal(t, "A1", annotated.Accession)
	assert.Equal(t, "put fragment", annotated.Op)
	assert.Empty(t, base.Accession, "original must not be modified")

	plain := errors.New("plain")
	assert.Same(t, plain, WithAccession(plain, "op", "A1"))
}
