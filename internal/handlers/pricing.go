package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mhenders/finback/internal/charts"
	"github.com/mhenders/finback/internal/config"
	"github.com/mhenders/finback/internal/dto"
	"github.com/mhenders/finback/internal/engine"
	"github.com/mhenders/finback/internal/logger"
	"github.com/mhenders/finback/internal/services"
)

// PricingHandler is a dumb HTTP layer over the pricing service: it parses,
// delegates, and writes JSON. No pricing logic lives here.
type PricingHandler struct {
	cfg      *config.Config
	requests *services.RequestService
	pricing  *services.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(cfg *config.Config, requests *services.RequestService, pricing *services.PricingService) *PricingHandler {
	return &PricingHandler{
		cfg:      cfg,
		requests: requests,
		pricing:  pricing,
	}
}

// HealthHandler reports service liveness
func (h *PricingHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Service:  "finback",
		Provider: h.cfg.MarketData.Provider,
	})
}

// MarketDataHandler returns current price, realized volatility, and the
// default risk-free rate for a ticker
func (h *PricingHandler) MarketDataHandler(w http.ResponseWriter, r *http.Request) {
	req, err := h.requests.ParseMarketDataRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data, err := h.pricing.MarketData(r.Context(), req.Ticker)
	if err != nil {
		logger.Warn.Printf("⚠️  Market data lookup failed for %s: %v", req.Ticker, err)
		writeError(w, http.StatusNotFound, err)
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// SimulateHandler prices an option analytically and by Monte Carlo
func (h *PricingHandler) SimulateHandler(w http.ResponseWriter, r *http.Request) {
	req, err := h.requests.ParseSimulateRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.pricing.Simulate(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// ConvergenceHandler runs the sample-size ladder diagnostic
func (h *PricingHandler) ConvergenceHandler(w http.ResponseWriter, r *http.Request) {
	req, err := h.requests.ParseSimulateRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.pricing.Convergence(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// PathsChartHandler renders an HTML chart of simulated paths for the
// parameters given as query string values
func (h *PricingHandler) PathsChartHandler(w http.ResponseWriter, r *http.Request) {
	req := h.requestFromQuery(r)

	res, err := h.pricing.Simulate(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderPaths(w, req.ModelParameters(), res.MC); err != nil {
		logger.Error.Printf("❌ Rendering paths chart: %v", err)
	}
}

// ConvergenceChartHandler renders an HTML chart of the convergence ladder
func (h *PricingHandler) ConvergenceChartHandler(w http.ResponseWriter, r *http.Request) {
	req := h.requestFromQuery(r)

	conv, err := h.pricing.Convergence(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderConvergence(w, req.ModelParameters(), engine.Method(req.Method), conv); err != nil {
		logger.Error.Printf("❌ Rendering convergence chart: %v", err)
	}
}

// requestFromQuery builds a simulate request from query string values,
// defaulting to the classic at-the-money scenario so the chart pages work
// with no arguments at all.
func (h *PricingHandler) requestFromQuery(r *http.Request) *dto.SimulateRequest {
	q := r.URL.Query()
	req := &dto.SimulateRequest{
		S0:     queryFloat(q.Get("S0"), 100),
		K:      queryFloat(q.Get("K"), 100),
		T:      queryFloat(q.Get("T"), 1),
		R:      queryFloat(q.Get("r"), 0.05),
		Sigma:  queryFloat(q.Get("sigma"), 0.2),
		Q:      queryFloat(q.Get("q"), 0),
		Steps:  queryInt(q.Get("steps"), h.cfg.Pricing.DefaultNumSteps),
		Sims:   queryInt(q.Get("sims"), h.cfg.Pricing.DefaultNumSims),
		Method: q.Get("method"),
		Seed:   queryUint(q.Get("seed")),
	}
	if req.Method == "" {
		req.Method = h.cfg.Pricing.DefaultMethod
	}
	return req
}

func queryFloat(s string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return defaultValue
}

// queryUint parses a seed value; anything unparseable, negatives included,
// means an unseeded run.
func queryUint(s string) uint64 {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	return 0
}

func queryInt(s string, defaultValue int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return defaultValue
}

// statusFor maps engine errors onto HTTP status codes: caller mistakes are
// 400s, everything else is a 500.
func statusFor(err error) int {
	if errors.Is(err, engine.ErrInvalidParameter) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error.Printf("❌ Encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, dto.ErrorResponse{Error: err.Error()})
}
