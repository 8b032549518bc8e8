// Package charts renders simulation output as self-contained HTML pages. It
// is a presentation collaborator: the engine hands over raw arrays and never
// links against any rendering code.
package charts

import (
	"fmt"
	"io"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mhenders/finback/internal/engine"
)

// RenderPaths draws the simulated price path subsample against the time-step
// grid.
func RenderPaths(w io.Writer, p engine.ModelParameters, res *engine.EstimationResult) error {
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{
			Title:    "Monte Carlo price paths",
			Subtitle: fmt.Sprintf("S0=%.2f K=%.2f T=%.2f sigma=%.2f", p.S0, p.K, p.T, p.Sigma),
		}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "time step"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "price"}),
		echarts.WithLegendOpts(opts.Legend{Show: false}),
	)

	line.SetXAxis(res.Steps)
	for i, path := range res.Paths {
		line.AddSeries(fmt.Sprintf("path %d", i+1), lineData(path))
	}

	return line.Render(w)
}

// RenderConvergence draws the ladder prices against the constant analytical
// baseline.
func RenderConvergence(w io.Writer, p engine.ModelParameters, method engine.Method, conv *engine.ConvergenceResult) error {
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{
			Title:    "Monte Carlo convergence",
			Subtitle: fmt.Sprintf("method=%s K=%.2f sigma=%.2f", method, p.K, p.Sigma),
		}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "simulations"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "call price"}),
		echarts.WithLegendOpts(opts.Legend{Show: true}),
	)

	line.SetXAxis(conv.SampleSizes)
	line.AddSeries("monte carlo", lineData(conv.CallPrices))
	line.AddSeries("black-scholes", lineData(conv.Baseline))

	return line.Render(w)
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i] = opts.LineData{Value: v}
	}
	return items
}
