package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mhenders/finback/internal/providers"
)

const (
	// Unauthenticated chart API tolerates light traffic; space requests out.
	minRequestDelay = 250 * time.Millisecond

	// HTTP timeout
	defaultTimeout = 30 * time.Second
)

// YahooProvider implements the MarketProvider interface against the Yahoo
// Finance chart API. No API key is required.
type YahooProvider struct {
	baseURL    string
	httpClient *http.Client

	// Rate limiting
	lastRequest time.Time
	rateMutex   sync.Mutex
}

// NewYahooProvider creates a new Yahoo Finance market data provider
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		baseURL: "https://query1.finance.yahoo.com",
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// GetProviderName returns the provider name
func (y *YahooProvider) GetProviderName() string {
	return "yahoo"
}

// chartResponse mirrors the subset of the chart API payload we consume.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// rateLimit spaces requests out by minRequestDelay
func (y *YahooProvider) rateLimit() {
	y.rateMutex.Lock()
	defer y.rateMutex.Unlock()

	if elapsed := time.Since(y.lastRequest); elapsed < minRequestDelay {
		time.Sleep(minRequestDelay - elapsed)
	}
	y.lastRequest = time.Now()
}

func (y *YahooProvider) fetchChart(ctx context.Context, symbol, dataRange string) (*chartResponse, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	y.rateLimit()

	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d", y.baseURL, symbol, dataRange)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	// The chart endpoint rejects requests without a browser-ish user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; finback/1.0)")
	req.Header.Set("Accept", "application/json")

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("unknown symbol %s", symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart API returned status %d", resp.StatusCode)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("parsing chart response: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for symbol %s", symbol)
	}

	return &chart, nil
}

// GetQuote fetches the latest market price for a symbol
func (y *YahooProvider) GetQuote(ctx context.Context, symbol string) (*providers.Quote, error) {
	chart, err := y.fetchChart(ctx, symbol, "1d")
	if err != nil {
		return nil, err
	}

	meta := chart.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("no market price for symbol %s", symbol)
	}

	currency := meta.Currency
	if currency == "" {
		currency = "USD"
	}

	return &providers.Quote{
		Symbol:    strings.ToUpper(strings.TrimSpace(symbol)),
		Price:     meta.RegularMarketPrice,
		Currency:  currency,
		Timestamp: time.Unix(meta.RegularMarketTime, 0),
	}, nil
}

// GetDailyCloses fetches up to days trading days of daily closing prices
func (y *YahooProvider) GetDailyCloses(ctx context.Context, symbol string, days int) (*providers.DailyHistory, error) {
	chart, err := y.fetchChart(ctx, symbol, rangeForDays(days))
	if err != nil {
		return nil, err
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no close series for symbol %s", symbol)
	}

	raw := result.Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, c := range raw {
		// Halted/holiday slots come back null; skip them.
		if c != nil && *c > 0 {
			closes = append(closes, *c)
		}
	}
	if len(closes) > days {
		closes = closes[len(closes)-days:]
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("empty close history for symbol %s", symbol)
	}

	history := &providers.DailyHistory{
		Symbol: strings.ToUpper(strings.TrimSpace(symbol)),
		Closes: closes,
	}
	if n := len(result.Timestamp); n > 0 {
		history.Start = time.Unix(result.Timestamp[0], 0)
		history.End = time.Unix(result.Timestamp[n-1], 0)
	}
	return history, nil
}

// rangeForDays maps a requested number of trading days onto the chart API's
// coarse range buckets.
func rangeForDays(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 21:
		return "1mo"
	case days <= 63:
		return "3mo"
	case days <= 126:
		return "6mo"
	case days <= 252:
		return "1y"
	default:
		return "2y"
	}
}

// Close cleans up provider resources
func (y *YahooProvider) Close() error {
	y.httpClient.CloseIdleConnections()
	return nil
}
