package engine

import "math"

// NormCDF returns the standard normal cumulative distribution function at x.
// The erf formulation saturates cleanly to 0 and 1 in the tails without
// overflow.
func NormCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
