package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const chartPayload = `{
  "chart": {
    "result": [{
      "meta": {"currency": "USD", "regularMarketPrice": 187.45, "regularMarketTime": 1714075200},
      "timestamp": [1713470400, 1713556800, 1713643200, 1713729600, 1714075200],
      "indicators": {"quote": [{"close": [182.1, null, 184.3, 186.0, 187.45]}]}
    }],
    "error": null
  }
}`

func newTestProvider(handler http.HandlerFunc) (*YahooProvider, *httptest.Server) {
	srv := httptest.NewServer(handler)
	p := NewYahooProvider()
	p.baseURL = srv.URL
	return p, srv
}

func TestGetQuote(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/v8/finance/chart/AAPL") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, chartPayload)
	})
	defer srv.Close()
	defer p.Close()

	quote, err := p.GetQuote(context.Background(), "aapl")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	if quote.Symbol != "AAPL" {
		t.Errorf("symbol = %s, want AAPL", quote.Symbol)
	}
	if quote.Price != 187.45 {
		t.Errorf("price = %v, want 187.45", quote.Price)
	}
	if quote.Currency != "USD" {
		t.Errorf("currency = %s, want USD", quote.Currency)
	}
}

func TestGetDailyClosesSkipsNulls(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartPayload)
	})
	defer srv.Close()
	defer p.Close()

	history, err := p.GetDailyCloses(context.Background(), "AAPL", 252)
	if err != nil {
		t.Fatalf("GetDailyCloses failed: %v", err)
	}
	if len(history.Closes) != 4 {
		t.Fatalf("expected 4 closes (null dropped), got %d", len(history.Closes))
	}
	if history.Closes[0] != 182.1 || history.Closes[3] != 187.45 {
		t.Errorf("unexpected close series %v", history.Closes)
	}
}

func TestGetQuoteUnknownSymbol(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()
	defer p.Close()

	if _, err := p.GetQuote(context.Background(), "NOPE"); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}

func TestGetQuoteAPIError(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found"}}}`)
	})
	defer srv.Close()
	defer p.Close()

	if _, err := p.GetQuote(context.Background(), "XX"); err == nil {
		t.Fatal("expected error from chart API error body")
	}
}

func TestRangeForDays(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{5, "5d"},
		{21, "1mo"},
		{60, "3mo"},
		{252, "1y"},
		{500, "2y"},
	}
	for _, tc := range cases {
		if got := rangeForDays(tc.days); got != tc.want {
			t.Errorf("rangeForDays(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}
