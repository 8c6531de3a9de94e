package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MOYARU/crs/internal/app/ui"
	"github.com/MOYARU/crs/internal/bench"
	"github.com/MOYARU/crs/internal/config"
	"github.com/MOYARU/crs/internal/scorer"
)

var (
	benchCalls   int
	benchWorkers int
)

var benchCmd = &cobra.Command{
	Use:   "bench [url ...]",
	Short: "Measure scoring throughput over a URL set, serially and with a worker pool.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := config.LoadPolicy()
		if err != nil {
			return err
		}

		s := scorer.New(
			scorer.WithTimeout(policy.Timeout()),
			scorer.WithWeights(policy.Weights),
			scorer.WithUserAgent(policy.UserAgent),
		)

		ctx, cancel := ui.WaitForCancel(cmd.Context())
		defer cancel()

		urls := args // empty falls back to bench.DefaultURLs

		serial := bench.RunSerial(ctx, s, urls, benchCalls)
		printStats(serial)

		concurrent := bench.RunConcurrent(ctx, s, urls, benchCalls, benchWorkers)
		printStats(concurrent)

		if concurrent.Avg > 0 && concurrent.Total > 0 {
			speedup := float64(serial.Total) / float64(concurrent.Total)
			fmt.Printf("%sSpeedup: %.2fx%s\n", ui.ColorGray, speedup, ui.ColorReset)
		}
		return nil
	},
}

func printStats(st bench.Stats) {
	fmt.Printf("%s[%s]%s calls=%d workers=%d total=%s avg=%s\n",
		ui.ColorWhite, st.Mode, ui.ColorReset,
		st.Calls, st.Workers,
		st.Total.Round(time.Millisecond), st.Avg.Round(time.Millisecond))
}

func init() {
	benchCmd.Flags().IntVar(&benchCalls, "calls", 20, "Number of scoring calls per mode")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 8, "Worker count for the concurrent pass")
	rootCmd.AddCommand(benchCmd)
}
