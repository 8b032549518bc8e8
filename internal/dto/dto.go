package dto

import "github.com/mhenders/finback/internal/engine"

// MarketDataRequest asks for current market inputs for a ticker.
type MarketDataRequest struct {
	Ticker string `json:"ticker"`
}

// MarketDataResponse carries the inputs a pricing form needs: latest price,
// realized volatility, and a default risk-free rate.
type MarketDataResponse struct {
	Ticker       string  `json:"ticker"`
	CurrentPrice float64 `json:"current_price"`
	Currency     string  `json:"currency"`
	Volatility   float64 `json:"volatility"`
	RiskFreeRate float64 `json:"risk_free_rate"`
}

// SimulateRequest carries model parameters and simulation settings. Steps,
// Sims and Method fall back to configured defaults when omitted; Seed zero
// means a time-seeded run. Callers may supply Expiration (YYYY-MM-DD) instead
// of T; the request layer converts it.
type SimulateRequest struct {
	S0         float64 `json:"S0"`
	K          float64 `json:"K"`
	T          float64 `json:"T"`
	Expiration string  `json:"expiration,omitempty"`
	R          float64 `json:"r"`
	Sigma      float64 `json:"sigma"`
	Q          float64 `json:"q"`
	Steps      int     `json:"steps"`
	Sims       int     `json:"sims"`
	Method     string  `json:"method"`
	Seed       uint64  `json:"seed,omitempty"`
}

// ModelParameters converts the request scalars into engine parameters.
func (r SimulateRequest) ModelParameters() engine.ModelParameters {
	return engine.ModelParameters{
		S0:    r.S0,
		K:     r.K,
		T:     r.T,
		R:     r.R,
		Sigma: r.Sigma,
		Q:     r.Q,
	}
}

// SimulateResponse pairs the analytical quote with the Monte Carlo estimate,
// mirroring what a comparison UI renders side by side.
type SimulateResponse struct {
	BS *engine.Quote            `json:"bs"`
	MC *engine.EstimationResult `json:"mc"`
}

// ConvergenceRequest reuses the simulate scalars; Steps and Sims are ignored
// because the ladder fixes its own.
type ConvergenceRequest = SimulateRequest

// ErrorResponse is the uniform error envelope for all API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Provider string `json:"provider"`
}
