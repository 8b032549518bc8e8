package providers

import (
	"context"
	"time"
)

// Quote represents the latest price observation for a symbol.
type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyHistory is an ordered series of daily closing prices, oldest first.
type DailyHistory struct {
	Symbol string    `json:"symbol"`
	Closes []float64 `json:"closes"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// MarketProvider defines the interface for market data providers.
type MarketProvider interface {
	// GetQuote fetches the current price for a symbol
	GetQuote(ctx context.Context, symbol string) (*Quote, error)

	// GetDailyCloses fetches up to days trading days of daily closes
	GetDailyCloses(ctx context.Context, symbol string, days int) (*DailyHistory, error)

	// GetProviderName returns the name of the provider (e.g., "yahoo")
	GetProviderName() string

	// Close cleans up any resources (connections, rate limiters, etc.)
	Close() error
}
