package ncbi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/resolvers/httpcache"
)

// Address schemes.
const (
	SchemeNuccore = "nuccore"
	SchemeGI      = "gi"
)

var _ httpcache.Locator = (*Locator)(nil)

// Locator maps NCBI addresses to efetch URLs.
type Locator struct {
	BaseURL string
	APIKey  string
}

// Schemes returns the handled schemes.
func (l *Locator) Schemes() []string {
	return []string{SchemeNuccore, SchemeGI}
}

// Canonical validates and normalises an NCBI address.
// Accessions are upper-cased; gi numbers must be decimal.
func (l *Locator) Canonical(p domain.ParsedAddress) (domain.ParsedAddress, error) {
	if p.Fragment != "" {
		return domain.ParsedAddress{}, domain.AddressError(p.String(), "fragment id not supported for %s addresses", p.Scheme)
	}

	id := p.Payload
	switch p.Scheme {
	case SchemeNuccore:
		id = strings.ToUpper(id)
		if !validAccession(id) {
			return domain.ParsedAddress{}, domain.AddressError(p.String(), "invalid accession %q", p.Payload)
		}
	case SchemeGI:
		if !decimal(id) {
			return domain.ParsedAddress{}, domain.AddressError(p.String(), "gi id must be decimal, got %q", p.Payload)
		}
	default:
		return domain.ParsedAddress{}, domain.AddressError(p.String(), "unsupported scheme %q", p.Scheme)
	}

	return domain.ParsedAddress{Scheme: p.Scheme, Payload: id, Hierarchical: true}, nil
}

// URL returns the efetch URL for a canonical address.
func (l *Locator) URL(canonical domain.ParsedAddress) (string, error) {
	base, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}

	q := base.Query()
	q.Set("db", "nuccore")
	q.Set("id", canonical.Payload)
	q.Set("rettype", "fasta")
	q.Set("retmode", "text")
	if l.APIKey != "" {
		q.Set("api_key", l.APIKey)
	}
	base.RawQuery = q.Encode()
	return base.String(), nil
}

// validAccession accepts [A-Z0-9_.]+ starting with a letter or digit.
func validAccession(s string) bool {
	if s == "" || s[0] == '.' || s[0] == '_' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.') {
			return false
		}
	}
	return true
}

func decimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
