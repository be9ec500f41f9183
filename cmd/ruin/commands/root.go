package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var seed int64

var rootCmd = &cobra.Command{
	Use:   "ruin",
	Short: "ruin estimates the expected cost of an absorbing random walk",
	Long: `ruin computes the closed-form expected cumulative cost of a gambler's
ruin process (a +1/-1 random walk on {0..N} that pays a fixed cost per
step) and validates it with Monte Carlo simulation, reporting descriptive
statistics and a cost histogram.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Base RNG seed (default: current time)")
}

func resolveSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
