package providers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// tradingDaysPerYear annualizes daily return volatility.
const tradingDaysPerYear = 252

// RealizedVolatility computes the annualized historical volatility from a
// series of daily closes: the sample standard deviation of daily log returns
// scaled by sqrt(252). At least three closes are required for a meaningful
// sample.
func RealizedVolatility(closes []float64) (float64, error) {
	if len(closes) < 3 {
		return 0, fmt.Errorf("need at least 3 closes to estimate volatility, got %d", len(closes))
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, fmt.Errorf("non-positive close in history at index %d", i)
		}
		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}

	return stat.StdDev(returns, nil) * math.Sqrt(tradingDaysPerYear), nil
}
