package treasury

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mhenders/finback/internal/logger"
)

func init() {
	logger.Init()
}

func TestRiskFreeRateParsesPercentage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": [{"record_date": "2026-07-31", "avg_interest_rate_amt": "3.983"}]}`)
	}))
	defer srv.Close()

	c := NewClient(0.045)
	c.baseURL = srv.URL

	rate := c.RiskFreeRate(context.Background())
	if math.Abs(rate-0.03983) > 1e-12 {
		t.Errorf("rate = %v, want 0.03983", rate)
	}
}

func TestRiskFreeRateUsesCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"data": [{"record_date": "2026-07-31", "avg_interest_rate_amt": "4.100"}]}`)
	}))
	defer srv.Close()

	c := NewClient(0.045)
	c.baseURL = srv.URL

	c.RiskFreeRate(context.Background())
	c.RiskFreeRate(context.Background())

	if calls != 1 {
		t.Errorf("expected 1 API call with warm cache, got %d", calls)
	}
}

func TestRiskFreeRateFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(0.045)
	c.baseURL = srv.URL

	if rate := c.RiskFreeRate(context.Background()); rate != 0.045 {
		t.Errorf("rate = %v, want fallback 0.045", rate)
	}
}
