package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/mhenders/finback/internal/logger"
)

// ProviderManager wraps a market data provider with logging and slow-request
// reporting.
type ProviderManager struct {
	provider MarketProvider
}

// NewProviderManager creates a new provider manager
func NewProviderManager(provider MarketProvider) *ProviderManager {
	return &ProviderManager{
		provider: provider,
	}
}

// GetQuote is a convenience wrapper that adds logging
func (pm *ProviderManager) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	start := time.Now()
	quote, err := pm.provider.GetQuote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("provider %s failed to get quote for %s: %w",
			pm.provider.GetProviderName(), symbol, err)
	}

	if elapsed := time.Since(start); elapsed > 5*time.Second {
		logger.Warn.Printf("⚠️  SLOW REQUEST: %s quote for %s took %v",
			pm.provider.GetProviderName(), symbol, elapsed)
	}

	return quote, nil
}

// GetDailyCloses is a convenience wrapper that adds logging
func (pm *ProviderManager) GetDailyCloses(ctx context.Context, symbol string, days int) (*DailyHistory, error) {
	start := time.Now()
	history, err := pm.provider.GetDailyCloses(ctx, symbol, days)
	if err != nil {
		return nil, fmt.Errorf("provider %s failed to get history for %s: %w",
			pm.provider.GetProviderName(), symbol, err)
	}

	if elapsed := time.Since(start); elapsed > 5*time.Second {
		logger.Warn.Printf("⚠️  SLOW REQUEST: %s history for %s took %v",
			pm.provider.GetProviderName(), symbol, elapsed)
	}

	logger.Debug.Printf("🐛 %s history for %s: %d closes", pm.provider.GetProviderName(), symbol, len(history.Closes))
	return history, nil
}

// GetProvider returns the underlying provider
func (pm *ProviderManager) GetProvider() MarketProvider {
	return pm.provider
}
