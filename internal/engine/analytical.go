package engine

import "math"

// Quote holds an analytical call/put price pair.
type Quote struct {
	Call float64 `json:"call_price"`
	Put  float64 `json:"put_price"`
}

// PriceAnalytical computes closed-form European option prices under the
// dividend-adjusted Black-Scholes model. Parameters are validated before the
// formula runs, so the sigma*sqrt(T) divisor is never zero.
func PriceAnalytical(p ModelParameters) (Quote, error) {
	if err := p.Validate(); err != nil {
		return Quote{}, err
	}

	sigmaSqrtT := p.Sigma * math.Sqrt(p.T)
	d1 := (math.Log(p.S0/p.K) + (p.R-p.Q+0.5*p.Sigma*p.Sigma)*p.T) / sigmaSqrtT
	d2 := d1 - sigmaSqrtT

	fwdSpot := p.S0 * math.Exp(-p.Q*p.T)
	pvStrike := p.K * math.Exp(-p.R*p.T)

	return Quote{
		Call: fwdSpot*NormCDF(d1) - pvStrike*NormCDF(d2),
		Put:  pvStrike*NormCDF(-d2) - fwdSpot*NormCDF(-d1),
	}, nil
}
