package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ruinlab/ruin/sim"
)

var moneyPrinter = message.NewPrinter(language.English)

// money renders a dollar amount with two decimals and thousands
// separators.
func money(v float64) string {
	return moneyPrinter.Sprintf("$%.2f", v)
}

func printReport(run *sim.Run) {
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgWhite)

	fmt.Println()
	heading.Println("=== Gambler's Ruin Cost Report ===")
	fmt.Printf("Walk: start=%d bound=%d p=%.4f cost/step=%s | trials=%d | seed=%d | %v\n",
		run.Params.Start, run.Params.Boundary, run.Params.WinProb,
		money(run.Params.StepCost), run.Params.Trials, run.Seed, run.Elapsed.Round(time.Millisecond))

	fmt.Println()
	row := func(name string, value string) {
		label.Printf("%-24s", name)
		fmt.Printf(": %s\n", value)
	}
	row("Analytic expected cost", money(run.AnalyticCost))
	row("Empirical mean", money(run.Stats.Mean))
	row("Std deviation", money(run.Stats.StdDev))
	row("Min / Max", fmt.Sprintf("%s / %s", money(run.Stats.Min), money(run.Stats.Max)))
	row("Quartiles (q1/med/q3)", fmt.Sprintf("%s / %s / %s",
		money(run.Stats.Q1), money(run.Stats.Median), money(run.Stats.Q3)))

	fmt.Println()
	heading.Println("Cost distribution")
	maxCount := 0
	for _, c := range run.Histogram.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	for i, bucket := range run.Histogram.Labels {
		count := run.Histogram.Counts[i]
		barLen := 0
		if maxCount > 0 {
			barLen = count * 50 / maxCount
		}
		fmt.Printf("%-16s %7d  %s\n", bucket, count, strings.Repeat("#", barLen))
	}
}
