package engine

import "math"

// PathBundle is a dense matrix of simulated prices indexed by
// [time step][path index]. Row 0 is S0 for every path. A bundle belongs to the
// simulation run that created it and is never shared across runs.
type PathBundle struct {
	NumSteps int
	NumPaths int
	S        [][]float64
}

// Terminal returns the final row of prices, one per path.
func (b *PathBundle) Terminal() []float64 {
	return b.S[b.NumSteps]
}

// Subsample returns the first n paths transposed to rows of length NumSteps+1,
// the shape callers plot directly.
func (b *PathBundle) Subsample(n int) [][]float64 {
	if n > b.NumPaths {
		n = b.NumPaths
	}
	out := make([][]float64, n)
	for j := 0; j < n; j++ {
		path := make([]float64, b.NumSteps+1)
		for t := 0; t <= b.NumSteps; t++ {
			path[t] = b.S[t][j]
		}
		out[j] = path
	}
	return out
}

// simulatePaths generates discretized geometric Brownian motion paths. Under
// the risk-neutral measure the per-step log increment is normal with drift
// (r - q - 0.5*sigma^2)*dt and standard deviation sigma*sqrt(dt); increments
// accumulate on top of ln(S0) rather than restarting each step.
//
// In antithetic mode each independent draw z fills one path and its negation
// -z fills the paired path in the upper half of the bundle. Odd path counts
// generate ceil(n/2) independent draws and drop the last mirrored path, so
// exactly n paths always come back and even counts split exactly half/half.
func (e *Engine) simulatePaths(p ModelParameters, numSteps, numSimulations int, antithetic bool) *PathBundle {
	dt := p.T / float64(numSteps)
	drift := (p.R - p.Q - 0.5*p.Sigma*p.Sigma) * dt
	vol := p.Sigma * math.Sqrt(dt)

	s := make([][]float64, numSteps+1)
	s[0] = make([]float64, numSimulations)
	for j := range s[0] {
		s[0][j] = p.S0
	}

	half := (numSimulations + 1) / 2
	z := make([]float64, numSimulations)
	logS := make([]float64, numSimulations) // cumulative log increments

	for t := 1; t <= numSteps; t++ {
		if antithetic {
			for i := 0; i < half; i++ {
				u := e.normals.Rand()
				z[i] = u
				if half+i < numSimulations {
					z[half+i] = -u
				}
			}
		} else {
			for i := range z {
				z[i] = e.normals.Rand()
			}
		}

		row := make([]float64, numSimulations)
		for j := 0; j < numSimulations; j++ {
			logS[j] += drift + vol*z[j]
			row[j] = p.S0 * math.Exp(logS[j])
		}
		s[t] = row
	}

	return &PathBundle{NumSteps: numSteps, NumPaths: numSimulations, S: s}
}
