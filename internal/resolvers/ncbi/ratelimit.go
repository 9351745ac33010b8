package ncbi

import (
	"golang.org/x/time/rate"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// NewLimiter returns a token bucket allowing rps requests per second with no burst.
// A non-positive rps selects the NCBI default for the presence of apiKey.
func NewLimiter(rps float64, apiKey string) *rate.Limiter {
	if rps <= 0 {
		rps = domain.NCBISettings{APIKey: apiKey}.EffectiveRate()
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}
