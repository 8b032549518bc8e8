package services

import (
	"context"
	"fmt"

	"github.com/mhenders/finback/internal/config"
	"github.com/mhenders/finback/internal/dto"
	"github.com/mhenders/finback/internal/engine"
	"github.com/mhenders/finback/internal/logger"
	"github.com/mhenders/finback/internal/providers"
	"github.com/mhenders/finback/internal/treasury"
)

// PricingService orchestrates market data retrieval and the pricing engine.
// Each pricing request gets a fresh engine; no state survives between calls.
type PricingService struct {
	cfg    *config.Config
	market *providers.ProviderManager
	rates  *treasury.Client
}

// NewPricingService creates a new pricing service
func NewPricingService(cfg *config.Config, market *providers.ProviderManager, rates *treasury.Client) *PricingService {
	return &PricingService{
		cfg:    cfg,
		market: market,
		rates:  rates,
	}
}

// MarketData fetches current price and realized volatility for a ticker,
// plus the default risk-free rate for the pricing form.
func (s *PricingService) MarketData(ctx context.Context, ticker string) (*dto.MarketDataResponse, error) {
	quote, err := s.market.GetQuote(ctx, ticker)
	if err != nil {
		return nil, err
	}

	history, err := s.market.GetDailyCloses(ctx, ticker, s.cfg.MarketData.HistoryDays)
	if err != nil {
		return nil, err
	}

	vol, err := providers.RealizedVolatility(history.Closes)
	if err != nil {
		return nil, fmt.Errorf("volatility for %s: %w", ticker, err)
	}

	logger.Info.Printf("📡 Market data for %s: price %.2f %s, realized vol %.4f",
		ticker, quote.Price, quote.Currency, vol)

	return &dto.MarketDataResponse{
		Ticker:       quote.Symbol,
		CurrentPrice: quote.Price,
		Currency:     quote.Currency,
		Volatility:   vol,
		RiskFreeRate: s.rates.RiskFreeRate(ctx),
	}, nil
}

// engineFor returns a fresh engine, seeded when the request asks for a
// reproducible run.
func engineFor(seed uint64) *engine.Engine {
	if seed != 0 {
		return engine.NewWithSeed(seed)
	}
	return engine.New()
}

// Simulate prices the option both analytically and by Monte Carlo.
func (s *PricingService) Simulate(req *dto.SimulateRequest) (*dto.SimulateResponse, error) {
	params := req.ModelParameters()

	quote, err := engine.PriceAnalytical(params)
	if err != nil {
		return nil, err
	}

	method, err := engine.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	mc, err := engineFor(req.Seed).Simulate(params, engine.SimulationConfig{
		NumSimulations: req.Sims,
		NumSteps:       req.Steps,
		Method:         method,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("🐛 Simulated %d paths x %d steps (%s): call %.4f ± %.4f",
		req.Sims, req.Steps, method, mc.CallPrice, mc.CallStdErr)

	return &dto.SimulateResponse{BS: &quote, MC: mc}, nil
}

// Convergence runs the sample-size ladder diagnostic.
func (s *PricingService) Convergence(req *dto.ConvergenceRequest) (*engine.ConvergenceResult, error) {
	method, err := engine.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}
	return engineFor(req.Seed).AnalyzeConvergence(req.ModelParameters(), method)
}
