package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent resolution and storage failures.
// Callers branch on them with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRangeUnavailable indicates no single known span covers a requested range.
	ErrRangeUnavailable = errors.New("range not available")

	// Resolution and storage error kinds.

	// ErrAddressSyntax indicates a malformed sequence address.
	// Raised before any I/O and never retried.
	ErrAddressSyntax = errors.New("address syntax error")

	// ErrNoResolver indicates no resolver in the chain can handle an address.
	ErrNoResolver = errors.New("no resolver found")

	// ErrOverlapMismatch indicates two fragments disagree on their shared region.
	// This is a data-integrity problem in the source feed, not a transient fault.
	ErrOverlapMismatch = errors.New("overlapping fragments differ")

	// ErrCacheCorruption indicates a cached file could not be parsed.
	// It is recovered internally by one re-download.
	ErrCacheCorruption = errors.New("cache file corrupted")

	// ErrNetwork indicates a connection or transfer failure.
	ErrNetwork = errors.New("network error")

	// ErrParse indicates downloaded or local content could not be decoded.
	ErrParse = errors.New("parse error")
)

// ErrorKind discriminates resolution and storage failures.
type ErrorKind int

// Error kinds.
const (
	KindUnknown ErrorKind = iota
	KindAddressSyntax
	KindNoResolver
	KindOverlapMismatch
	KindCacheCorruption
	KindNetwork
	KindParse
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindAddressSyntax:
		return "address_syntax"
	case KindNoResolver:
		return "no_resolver"
	case KindOverlapMismatch:
		return "overlap_mismatch"
	case KindCacheCorruption:
		return "cache_corruption"
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// sentinel returns the package error matched by errors.Is for this kind.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindAddressSyntax:
		return ErrAddressSyntax
	case KindNoResolver:
		return ErrNoResolver
	case KindOverlapMismatch:
		return ErrOverlapMismatch
	case KindCacheCorruption:
		return ErrCacheCorruption
	case KindNetwork:
		return ErrNetwork
	case KindParse:
		return ErrParse
	default:
		return nil
	}
}

// Error carries one error kind together with the context needed to diagnose it.
// errors.Is(err, ErrNetwork) and friends match on Kind.
type Error struct {
	Kind      ErrorKind
	Op        string
	Address   string
	Accession string
	Range     *Range
	Err       error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if s := e.Kind.sentinel(); s != nil {
		b.WriteString(s.Error())
	} else {
		b.WriteString("error")
	}
	if e.Address != "" {
		fmt.Fprintf(&b, " (address %q)", e.Address)
	}
	if e.Accession != "" {
		fmt.Fprintf(&b, " (accession %q)", e.Accession)
	}
	if e.Range != nil {
		fmt.Fprintf(&b, " (range %s)", e.Range)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// AddressError builds an AddressSyntax error for raw.
func AddressError(raw, format string, args ...any) *Error {
	return &Error{
		Kind:    KindAddressSyntax,
		Op:      "parse address",
		Address: raw,
		Err:     fmt.Errorf(format, args...),
	}
}

// WithAccession returns a copy of a *Error annotated with op and accession.
// Other errors are returned unchanged.
func WithAccession(err error, op, accession string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	annotated := *e
	annotated.Op = op
	annotated.Accession = accession
	return &annotated
}
