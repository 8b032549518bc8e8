package engine

import (
	"math"
	"testing"
)

var testParams = ModelParameters{S0: 100, K: 100, T: 1, R: 0.05, Sigma: 0.2}

func TestSimulatePathsShape(t *testing.T) {
	e := NewWithSeed(1)
	bundle := e.simulatePaths(testParams, 50, 200, false)

	if len(bundle.S) != 51 {
		t.Fatalf("expected 51 rows, got %d", len(bundle.S))
	}
	for i, row := range bundle.S {
		if len(row) != 200 {
			t.Fatalf("row %d has %d paths, want 200", i, len(row))
		}
	}
	for j, v := range bundle.S[0] {
		if v != testParams.S0 {
			t.Fatalf("path %d starts at %v, want S0=%v", j, v, testParams.S0)
		}
	}
	for t0, row := range bundle.S {
		for j, v := range row {
			if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("degenerate price %v at step %d path %d", v, t0, j)
			}
		}
	}
}

func TestSimulatePathsAntitheticSymmetry(t *testing.T) {
	e := NewWithSeed(7)
	numSteps, numSims := 25, 100
	bundle := e.simulatePaths(testParams, numSteps, numSims, true)

	dt := testParams.T / float64(numSteps)
	drift := (testParams.R - testParams.Q - 0.5*testParams.Sigma*testParams.Sigma) * dt
	half := numSims / 2

	// Every log increment in the upper half must be the exact mirror of its
	// paired lower-half increment around the drift term.
	for step := 1; step <= numSteps; step++ {
		for j := 0; j < half; j++ {
			inc := math.Log(bundle.S[step][j]/bundle.S[step-1][j]) - drift
			mirror := math.Log(bundle.S[step][half+j]/bundle.S[step-1][half+j]) - drift
			if !almostEqual(inc, -mirror, 1e-10) {
				t.Fatalf("step %d pair %d: increment %v not mirrored by %v", step, j, inc, mirror)
			}
		}
	}
}

func TestSimulatePathsAntitheticOddCount(t *testing.T) {
	e := NewWithSeed(7)
	bundle := e.simulatePaths(testParams, 10, 101, true)

	// Policy: ceil(n/2) independent draws, last mirrored path dropped, so an
	// odd request still returns exactly n paths.
	if bundle.NumPaths != 101 {
		t.Fatalf("expected 101 paths, got %d", bundle.NumPaths)
	}
	for i, row := range bundle.S {
		if len(row) != 101 {
			t.Fatalf("row %d has %d paths, want 101", i, len(row))
		}
	}

	// The 50 surviving mirrors still pair with the first 50 draws.
	dt := testParams.T / 10
	drift := (testParams.R - testParams.Q - 0.5*testParams.Sigma*testParams.Sigma) * dt
	half := (101 + 1) / 2
	for j := 0; half+j < 101; j++ {
		inc := math.Log(bundle.S[1][j]/bundle.S[0][j]) - drift
		mirror := math.Log(bundle.S[1][half+j]/bundle.S[0][half+j]) - drift
		if !almostEqual(inc, -mirror, 1e-10) {
			t.Fatalf("pair %d: increment %v not mirrored by %v", j, inc, mirror)
		}
	}
}

func TestSimulateSubsampleShape(t *testing.T) {
	e := NewWithSeed(3)

	res, err := e.Simulate(testParams, SimulationConfig{NumSimulations: 500, NumSteps: 30, Method: MethodStandard})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if len(res.Paths) != PathSubsampleSize {
		t.Fatalf("expected %d subsampled paths, got %d", PathSubsampleSize, len(res.Paths))
	}
	for i, path := range res.Paths {
		if len(path) != 31 {
			t.Fatalf("path %d has %d points, want 31", i, len(path))
		}
		if path[0] != testParams.S0 {
			t.Fatalf("path %d starts at %v, want %v", i, path[0], testParams.S0)
		}
	}
	if len(res.Steps) != 31 {
		t.Fatalf("expected 31 step indices, got %d", len(res.Steps))
	}
	if res.Steps[0] != 0 || res.Steps[30] != 30 {
		t.Fatalf("step grid runs %d..%d, want 0..30", res.Steps[0], res.Steps[30])
	}

	// Fewer simulations than the subsample cap returns them all.
	res, err = e.Simulate(testParams, SimulationConfig{NumSimulations: 5, NumSteps: 10, Method: MethodStandard})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if len(res.Paths) != 5 {
		t.Fatalf("expected 5 subsampled paths, got %d", len(res.Paths))
	}
}

func TestNewWithSeedReproducible(t *testing.T) {
	a, err := NewWithSeed(42).Simulate(testParams, SimulationConfig{NumSimulations: 1000, NumSteps: 20, Method: MethodStandard})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	b, err := NewWithSeed(42).Simulate(testParams, SimulationConfig{NumSimulations: 1000, NumSteps: 20, Method: MethodStandard})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if a.CallPrice != b.CallPrice || a.PutPrice != b.PutPrice {
		t.Fatalf("same seed produced different prices: %v/%v vs %v/%v", a.CallPrice, a.PutPrice, b.CallPrice, b.PutPrice)
	}
}
