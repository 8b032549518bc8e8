package utils

import (
	"fmt"
	"time"
)

const daysPerYear = 365.0

// YearsUntil converts an expiration date in YYYY-MM-DD form into a year
// fraction from today on an ACT/365 basis, the T input the pricing model
// expects. Dates in the past or today are rejected; an expired option has no
// time value to price.
func YearsUntil(dateStr string) (float64, error) {
	expiry, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return 0, fmt.Errorf("invalid expiration date %q: %w", dateStr, err)
	}

	days := expiry.Sub(time.Now().UTC().Truncate(24*time.Hour)).Hours() / 24
	if days <= 0 {
		return 0, fmt.Errorf("expiration date %s is not in the future", dateStr)
	}
	return days / daysPerYear, nil
}
