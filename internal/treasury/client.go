// Package treasury fetches the current Treasury Bill rate from the fiscal
// data API, used as the default risk-free rate when a pricing request does
// not supply one.
package treasury

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mhenders/finback/internal/logger"
)

// Cached rates older than this trigger a refetch.
const cacheTTL = 12 * time.Hour

type Client struct {
	httpClient   *http.Client
	baseURL      string
	fallbackRate float64

	mu            sync.Mutex
	lastKnownRate float64
	lastFetchTime time.Time
}

type ratesResponse struct {
	Data []struct {
		RecordDate            string `json:"record_date"`
		AvgInterestRateAmount string `json:"avg_interest_rate_amt"`
	} `json:"data"`
}

// NewClient creates a Treasury rate client. fallbackRate is returned when the
// API is unreachable and no rate has been cached yet.
func NewClient(fallbackRate float64) *Client {
	return NewClientWithBaseURL(fallbackRate, "https://api.fiscaldata.treasury.gov/services/api/fiscal_service")
}

// NewClientWithBaseURL creates a client against a non-default API endpoint.
func NewClientWithBaseURL(fallbackRate float64, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:      baseURL,
		fallbackRate: fallbackRate,
	}
}

// fetchRate does the actual API call
func (c *Client) fetchRate(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/v2/accounting/od/avg_interest_rates?fields=avg_interest_rate_amt,record_date&filter=security_desc:eq:Treasury%%20Bills&sort=-record_date&page[size]=1", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch Treasury rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("Treasury API returned status %d", resp.StatusCode)
	}

	var rates ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return 0, fmt.Errorf("failed to decode Treasury response: %w", err)
	}
	if len(rates.Data) == 0 {
		return 0, fmt.Errorf("no Treasury rate data returned")
	}

	// Percentage string to decimal, e.g. "3.983" -> 0.03983
	rate, err := strconv.ParseFloat(rates.Data[0].AvgInterestRateAmount, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate %s: %w", rates.Data[0].AvgInterestRateAmount, err)
	}
	return rate / 100.0, nil
}

// RiskFreeRate returns the most recent Treasury Bill rate. A fresh fetch is
// attempted when the cache is cold or stale; on failure the last known rate
// is returned, and the configured fallback if nothing was ever fetched.
func (c *Client) RiskFreeRate(ctx context.Context) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastFetchTime.IsZero() && time.Since(c.lastFetchTime) < cacheTTL {
		return c.lastKnownRate
	}

	rate, err := c.fetchRate(ctx)
	if err != nil {
		if c.lastFetchTime.IsZero() {
			logger.Warn.Printf("⚠️  Treasury API unavailable (%v), using fallback rate %.4f", err, c.fallbackRate)
			return c.fallbackRate
		}
		age := time.Since(c.lastFetchTime)
		logger.Warn.Printf("⚠️  Treasury API failed (%v), using last known rate %.6f from %v ago",
			err, c.lastKnownRate, age.Round(time.Minute))
		return c.lastKnownRate
	}

	c.lastKnownRate = rate
	c.lastFetchTime = time.Now()
	logger.Info.Printf("🏛️ Treasury Bill rate: %.3f%% (%.6f decimal)", rate*100, rate)
	return rate
}
