package domain

import (
	"strings"
)

// SequenceAddress is a symbolic reference to a sequence, optionally
// interpreted relative to a context path.
type SequenceAddress struct {
	// Context is a file-system path used to resolve relative file:// addresses.
	// Remote schemes ignore it.
	Context string

	// Raw is the address string, e.g. "nuccore://EU877942.1".
	Raw string
}

// NewAddress creates an address without context.
func NewAddress(raw string) SequenceAddress {
	return SequenceAddress{Raw: raw}
}

// String returns the raw address.
func (a SequenceAddress) String() string {
	return a.Raw
}

// Parse parses the raw address.
func (a SequenceAddress) Parse() (ParsedAddress, error) {
	return ParseAddress(a.Raw)
}

// ParsedAddress is the scheme-level decomposition of an address.
type ParsedAddress struct {
	// Scheme is lower-cased, e.g. "file", "nuccore", "gi".
	Scheme string

	// Payload is the scheme-specific part without "//" and fragment.
	Payload string

	// Fragment is the text after '#', empty if absent.
	Fragment string

	// Hierarchical records whether the address used "scheme://".
	Hierarchical bool
}

// ParseAddress splits raw into scheme, payload and fragment.
// It accepts "scheme:payload" and "scheme://payload[#fragment]".
func ParseAddress(raw string) (ParsedAddress, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ParsedAddress{}, AddressError(raw, "empty address")
	}

	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return ParsedAddress{}, AddressError(raw, "missing scheme")
	}

	scheme := s[:colon]
	if !validScheme(scheme) {
		return ParsedAddress{}, AddressError(raw, "invalid scheme %q", scheme)
	}

	p := ParsedAddress{Scheme: strings.ToLower(scheme)}
	rest := s[colon+1:]
	if strings.HasPrefix(rest, "//") {
		p.Hierarchical = true
		rest = rest[2:]
	}

	if hash := strings.IndexByte(rest, '#'); hash >= 0 {
		p.Fragment = rest[hash+1:]
		rest = rest[:hash]
		if p.Fragment == "" {
			return ParsedAddress{}, AddressError(raw, "empty fragment id")
		}
	}

	if rest == "" {
		return ParsedAddress{}, AddressError(raw, "empty payload")
	}
	p.Payload = rest

	return p, nil
}

// String returns the canonical "scheme://payload[#fragment]" form.
func (p ParsedAddress) String() string {
	var b strings.Builder
	b.WriteString(p.Scheme)
	b.WriteString("://")
	b.WriteString(p.Payload)
	if p.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
	return b.String()
}

// validScheme follows RFC 3986: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func validScheme(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
