package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruinlab/ruin/core"
	"github.com/ruinlab/ruin/sim"
	"github.com/ruinlab/ruin/viz"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs a gambler's ruin simulation and prints the report",
	Long: `Solves the closed-form expected cost for the given walk, then runs the
requested number of Monte Carlo trials in batches and reports the empirical
statistics and cost histogram alongside the analytic value.`,
	Run: func(cmd *cobra.Command, args []string) {
		start, _ := cmd.Flags().GetInt("start")
		bound, _ := cmd.Flags().GetInt("bound")
		prob, _ := cmd.Flags().GetFloat64("prob")
		cost, _ := cmd.Flags().GetFloat64("cost")
		trials, _ := cmd.Flags().GetInt("trials")
		bins, _ := cmd.Flags().GetInt("bins")
		workers, _ := cmd.Flags().GetInt("workers")
		batch, _ := cmd.Flags().GetInt("batch")
		format, _ := cmd.Flags().GetString("format")
		svgOut, _ := cmd.Flags().GetString("svg")

		params := core.WalkParameters{
			Boundary: bound,
			Start:    start,
			WinProb:  prob,
			StepCost: cost,
			Trials:   trials,
		}

		runner := sim.NewRunner(resolveSeed())
		runner.Bins = bins
		runner.Workers = workers
		runner.BatchSize = batch

		fmt.Printf("Starting simulation: start=%d bound=%d p=%.4f cost=%.2f trials=%d workers=%d\n",
			start, bound, prob, cost, trials, workers)

		lastPct := -10
		result, err := runner.Run(params, func(fraction float64) {
			pct := int(fraction * 100)
			if pct >= lastPct+10 {
				log.Printf("  ... simulating (%d%%)", pct)
				lastPct = pct
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if format == "json" {
			payload, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(payload))
		} else {
			printReport(result)
		}

		if svgOut != "" {
			plotter := viz.NewHistogramPlotter(viz.DefaultPlotConfig())
			svg, err := plotter.Render(result.Histogram, result.Stats, result.AnalyticCost, "Cost Distribution")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
				os.Exit(1)
			}
			if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", svgOut, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote histogram chart to %s\n", svgOut)
		}
	},
}

func init() {
	runCmd.Flags().Int("start", 5, "Starting state n0 (1 <= n0 <= N-1)")
	runCmd.Flags().Int("bound", 10, "Absorbing boundary N (2 <= N <= 100)")
	runCmd.Flags().Float64("prob", 0.5, "Probability of a +1 step, exclusive (0, 1)")
	runCmd.Flags().Float64("cost", 1.0, "Cost per step in dollars (> 0)")
	runCmd.Flags().Int("trials", 10000, "Number of trials (1000 to 100000)")
	runCmd.Flags().Int("bins", sim.DefaultBins, "Histogram bucket count")
	runCmd.Flags().Int("workers", 1, "Concurrent trial workers")
	runCmd.Flags().Int("batch", sim.DefaultBatchSize, "Trials per progress batch")
	runCmd.Flags().String("format", "text", "Output format: text or json")
	runCmd.Flags().String("svg", "", "Write the histogram chart to this SVG file")
	rootCmd.AddCommand(runCmd)
}
