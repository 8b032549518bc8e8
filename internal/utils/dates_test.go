package utils

import (
	"testing"
	"time"
)

func TestYearsUntilFutureDate(t *testing.T) {
	expiry := time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02")

	years, err := YearsUntil(expiry)
	if err != nil {
		t.Fatalf("YearsUntil(%s) failed: %v", expiry, err)
	}
	// One calendar year out is 365 or 366 days on ACT/365.
	if years < 0.99 || years > 1.01 {
		t.Errorf("years = %v, want about 1.0", years)
	}
}

func TestYearsUntilRejectsPastDate(t *testing.T) {
	past := time.Now().UTC().AddDate(0, -1, 0).Format("2006-01-02")
	if _, err := YearsUntil(past); err == nil {
		t.Errorf("expected error for past date %s", past)
	}
}

func TestYearsUntilRejectsToday(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	if _, err := YearsUntil(today); err == nil {
		t.Error("expected error for same-day expiration")
	}
}

func TestYearsUntilRejectsMalformedDate(t *testing.T) {
	for _, bad := range []string{"", "2026/09/01", "not-a-date", "2026-13-40"} {
		if _, err := YearsUntil(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
