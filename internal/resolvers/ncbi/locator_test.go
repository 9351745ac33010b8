package ncbi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

func canonical(t *testing.T, l *Locator, raw string) (domain.ParsedAddress, error) {
	t.Helper()
	p, err := domain.ParseAddress(raw)
	require.NoError(t, err)
	return l.Canonical(p)
}

func TestLocator_Canonical(t *testing.T) {
	l := &Locator{BaseURL: domain.DefaultNCBIBaseURL}

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"nuccore://EU877942.1", "nuccore://EU877942.1", false},
		{"nuccore://eu877942.1", "nuccore://EU877942.1", false},
		{"NUCCORE:NC_000001.11", "nuccore://NC_000001.11", false},
		{"gi:195360724", "gi://195360724", false},
		{"gi://195360724", "gi://195360724", false},
		{"gi:19536x", "", true},
		{"nuccore://EU877942.1#tag", "", true},
		{"nuccore://EU 877942", "", true},
		{"nuccore://.hidden", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := canonical(t, l, tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrAddressSyntax)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestLocator_URL(t *testing.T) {
	l := &Locator{BaseURL: domain.DefaultNCBIBaseURL}
	c, err := canonical(t, l, "nuccore://EU877942.1")
	require.NoError(t, err)

	raw, err := l.URL(c)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "eutils.ncbi.nlm.nih.gov", u.Host)
	assert.Equal(t, "/entrez/eutils/efetch.fcgi", u.Path)
	q := u.Query()
	assert.Equal(t, "nuccore", q.Get("db"))
	assert.Equal(t, "EU877942.1", q.Get("id"))
	assert.Equal(t, "fasta", q.Get("rettype"))
	assert.Equal(t, "text", q.Get("retmode"))
	assert.False(t, q.Has("api_key"))

	l.APIKey = "k3y"
	raw, err = l.URL(c)
	require.NoError(t, err)
	u, err = url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "k3y", u.Query().Get("api_key"))
}

func TestNewLimiter(t *testing.T) {
	assert.InDelta(t, domain.DefaultNCBIRate, float64(NewLimiter(0, "").Limit()), 1e-9)
	assert.InDelta(t, domain.DefaultNCBIRateWithKey, float64(NewLimiter(0, "key").Limit()), 1e-9)
	assert.InDelta(t, 1.5, float64(NewLimiter(1.5, "key").Limit()), 1e-9)
	assert.Equal(t, 1, NewLimiter(0, "").Burst())
}
