// Command cli prices a European option from the command line and prints a
// comparison table of the analytical price against the three Monte Carlo
// variance reduction methods.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/mhenders/finback/internal/engine"
)

func main() {
	s0 := flag.Float64("s0", 100, "current underlying price")
	k := flag.Float64("k", 100, "strike price")
	t := flag.Float64("t", 1, "time to maturity in years")
	r := flag.Float64("r", 0.05, "risk-free rate")
	sigma := flag.Float64("sigma", 0.2, "annualized volatility")
	q := flag.Float64("q", 0, "continuous dividend yield")
	sims := flag.Int("sims", 100000, "number of simulated paths")
	steps := flag.Int("steps", 252, "time steps per path")
	seed := flag.Uint64("seed", 0, "random seed (0 = time-seeded)")
	convergence := flag.Bool("convergence", false, "also print the convergence ladder")
	flag.Parse()

	params := engine.ModelParameters{S0: *s0, K: *k, T: *t, R: *r, Sigma: *sigma, Q: *q}

	quote, err := engine.PriceAnalytical(params)
	if err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	method := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("Pricing European option: S0=%.2f K=%.2f T=%.2f r=%.3f sigma=%.3f q=%.3f\n",
		*s0, *k, *t, *r, *sigma, *q)
	fmt.Printf("Monte Carlo: %d paths x %d steps\n\n", *sims, *steps)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		header("Method"), header("Call"), header("Call StdErr"), header("Put"), header("Put StdErr"))
	fmt.Fprintf(w, "%s\t%.4f\t%s\t%.4f\t%s\n", method("black-scholes"), quote.Call, "n/a", quote.Put, "n/a")

	for _, m := range []engine.Method{engine.MethodStandard, engine.MethodAntithetic, engine.MethodControlVariate} {
		res, err := newEngine(*seed).Simulate(params, engine.SimulationConfig{
			NumSimulations: *sims,
			NumSteps:       *steps,
			Method:         m,
		})
		if err != nil {
			log.Fatalf("simulation failed (%s): %v", m, err)
		}
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			method(string(m)), res.CallPrice, res.CallStdErr, res.PutPrice, res.PutStdErr)
	}
	w.Flush()

	if *convergence {
		printConvergence(params, *seed)
	}
}

func newEngine(seed uint64) *engine.Engine {
	if seed != 0 {
		return engine.NewWithSeed(seed)
	}
	return engine.New()
}

func printConvergence(params engine.ModelParameters, seed uint64) {
	conv, err := newEngine(seed).AnalyzeConvergence(params, engine.MethodStandard)
	if err != nil {
		log.Fatalf("convergence analysis failed: %v", err)
	}

	good := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	fmt.Printf("\nConvergence (baseline %.4f):\n", conv.Baseline[0])
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, n := range conv.SampleSizes {
		diff := conv.CallPrices[i] - conv.Baseline[i]
		colored := good
		if diff < 0 {
			colored = bad
		}
		fmt.Fprintf(w, "%d\t%.4f\t%s\n", n, conv.CallPrices[i], colored(fmt.Sprintf("%+.4f", diff)))
	}
	w.Flush()
}
