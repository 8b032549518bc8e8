package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PathSubsampleSize caps the number of raw paths returned for visualization.
const PathSubsampleSize = 20

// EstimationResult carries present-value Monte Carlo prices and standard
// errors for both option types, plus a small path subsample and the step
// index grid so a caller can render the simulation without touching the
// bundle itself.
type EstimationResult struct {
	CallPrice  float64     `json:"call_price"`
	CallStdErr float64     `json:"call_stderr"`
	PutPrice   float64     `json:"put_price"`
	PutStdErr  float64     `json:"put_stderr"`
	Paths      [][]float64 `json:"paths"`
	Steps      []int       `json:"steps"`
}

// estimate converts a bundle's terminal prices into discounted payoff
// estimates using the requested variance reduction method.
//
// The antithetic method shares the standard formula: its variance reduction is
// already baked into the terminal price vector by the mirrored draws. The
// control variate method uses the terminal stock price itself as control,
// exploiting E[ST] = S0*exp((r-q)T) under the risk-neutral measure.
func estimate(bundle *PathBundle, p ModelParameters, method Method) (*EstimationResult, error) {
	st := bundle.Terminal()
	n := len(st)

	callPayoff := make([]float64, n)
	putPayoff := make([]float64, n)
	for i, terminal := range st {
		callPayoff[i] = math.Max(terminal-p.K, 0)
		putPayoff[i] = math.Max(p.K-terminal, 0)
	}

	switch method {
	case MethodStandard, MethodAntithetic:
		// payoff vectors used as-is
	case MethodControlVariate:
		applyControlVariate(callPayoff, putPayoff, st, p)
	default:
		_, err := ParseMethod(string(method))
		return nil, err
	}

	discount := math.Exp(-p.R * p.T)

	return &EstimationResult{
		CallPrice:  discount * stat.Mean(callPayoff, nil),
		CallStdErr: discount * stdError(callPayoff),
		PutPrice:   discount * stat.Mean(putPayoff, nil),
		PutStdErr:  discount * stdError(putPayoff),
		Paths:      bundle.Subsample(PathSubsampleSize),
		Steps:      stepIndex(bundle.NumSteps),
	}, nil
}

// stdError is the standard error of the sample mean. The sample standard
// deviation is undefined below two observations; a single draw carries no
// spread information, so its standard error reports as 0 rather than NaN.
func stdError(payoff []float64) float64 {
	n := len(payoff)
	if n < 2 {
		return 0
	}
	return stat.StdDev(payoff, nil) / math.Sqrt(float64(n))
}

// applyControlVariate subtracts beta*(ST - E[ST]) from each payoff vector in
// place. The adjustment has zero expectation, so the estimator stays unbiased
// while correlated variance cancels. A zero-variance control (all terminal
// prices identical) resolves beta to 0 and leaves the payoffs untouched; that
// is a legitimate data condition, not an error.
func applyControlVariate(callPayoff, putPayoff, st []float64, p ModelParameters) {
	// Variance of fewer than two samples is NaN, so gate on the positive
	// case: anything else (zero, negative rounding noise, NaN) leaves the
	// payoffs untouched.
	varST := stat.Variance(st, nil)
	if !(varST > 0) {
		return
	}

	expST := p.S0 * math.Exp((p.R-p.Q)*p.T)
	betaCall := stat.Covariance(callPayoff, st, nil) / varST
	betaPut := stat.Covariance(putPayoff, st, nil) / varST

	for i, terminal := range st {
		adj := terminal - expST
		callPayoff[i] -= betaCall * adj
		putPayoff[i] -= betaPut * adj
	}
}

func stepIndex(numSteps int) []int {
	steps := make([]int, numSteps+1)
	for i := range steps {
		steps[i] = i
	}
	return steps
}
