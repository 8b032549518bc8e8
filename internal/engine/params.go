package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is wrapped by every parameter validation failure so
// callers can classify rejections with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Method selects the variance reduction strategy for a Monte Carlo run.
type Method string

const (
	MethodStandard       Method = "standard"
	MethodAntithetic     Method = "antithetic"
	MethodControlVariate Method = "control_variate"
)

// ParseMethod validates a caller-supplied method name. Unknown names are an
// error, never a silent fallback to standard.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodStandard, MethodAntithetic, MethodControlVariate:
		return Method(s), nil
	}
	return "", fmt.Errorf("%w: unknown simulation method %q", ErrInvalidParameter, s)
}

// ModelParameters describes a European option under the dividend-adjusted
// Black-Scholes-Merton model. Values are plain annualized scalars; the caller
// is responsible for converting market conventions (days, percentages) before
// building one.
type ModelParameters struct {
	S0    float64 // current underlying price
	K     float64 // strike price
	T     float64 // time to maturity in years
	R     float64 // continuously compounded risk-free rate
	Sigma float64 // annualized volatility
	Q     float64 // continuous dividend yield
}

// Validate rejects parameter sets the pricing formulas are undefined for.
// Sigma > 0 and T > 0 together guarantee the sigma*sqrt(T) divisor in d1/d2
// is nonzero.
func (p ModelParameters) Validate() error {
	switch {
	case p.S0 <= 0:
		return fmt.Errorf("%w: spot price S0 must be positive, got %g", ErrInvalidParameter, p.S0)
	case p.K <= 0:
		return fmt.Errorf("%w: strike K must be positive, got %g", ErrInvalidParameter, p.K)
	case p.T <= 0:
		return fmt.Errorf("%w: time to maturity T must be positive, got %g", ErrInvalidParameter, p.T)
	case p.Sigma <= 0:
		return fmt.Errorf("%w: volatility sigma must be positive, got %g", ErrInvalidParameter, p.Sigma)
	}
	return nil
}

// SimulationConfig controls a single Monte Carlo run.
type SimulationConfig struct {
	NumSimulations int
	NumSteps       int
	Method         Method
}

// Validate checks the configuration before any random sampling happens.
func (c SimulationConfig) Validate() error {
	if c.NumSimulations <= 0 {
		return fmt.Errorf("%w: num_simulations must be positive, got %d", ErrInvalidParameter, c.NumSimulations)
	}
	if c.NumSteps <= 0 {
		return fmt.Errorf("%w: num_steps must be positive, got %d", ErrInvalidParameter, c.NumSteps)
	}
	if _, err := ParseMethod(string(c.Method)); err != nil {
		return err
	}
	return nil
}
