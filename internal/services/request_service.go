package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mhenders/finback/internal/config"
	"github.com/mhenders/finback/internal/dto"
	"github.com/mhenders/finback/internal/utils"
)

// RequestService handles HTTP request parsing and default filling. Numeric
// validation stays in the engine; this layer only shapes the request.
type RequestService struct {
	pricing config.PricingConfig
}

// NewRequestService creates a new request service
func NewRequestService(pricing config.PricingConfig) *RequestService {
	return &RequestService{pricing: pricing}
}

// ParseMarketDataRequest parses an HTTP request into a MarketDataRequest
func (s *RequestService) ParseMarketDataRequest(r *http.Request) (*dto.MarketDataRequest, error) {
	var req dto.MarketDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}

	req.Ticker = strings.TrimSpace(strings.ToUpper(req.Ticker))
	if req.Ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}
	return &req, nil
}

// ParseSimulateRequest parses an HTTP request into a SimulateRequest and
// fills configured defaults for the simulation settings left out.
func (s *RequestService) ParseSimulateRequest(r *http.Request) (*dto.SimulateRequest, error) {
	var req dto.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}

	if req.T == 0 && req.Expiration != "" {
		t, err := utils.YearsUntil(req.Expiration)
		if err != nil {
			return nil, err
		}
		req.T = t
	}
	if req.Steps == 0 {
		req.Steps = s.pricing.DefaultNumSteps
	}
	if req.Sims == 0 {
		req.Sims = s.pricing.DefaultNumSims
	}
	if req.Method == "" {
		req.Method = s.pricing.DefaultMethod
	}

	return &req, nil
}
