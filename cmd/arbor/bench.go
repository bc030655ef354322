package main

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		name string
		n    int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure how fast a demo tree decides",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("--n must be positive, got %d", n)
			}
			s, err := findStrategy(name)
			if err != nil {
				return err
			}
			log := loggerFrom(cmd.Context())
			log.Info("benchmark starting", "strategy", s.name, "decisions", n)

			counts := map[Class]int{}
			start := time.Now()
			for i := 0; i < n; i++ {
				// spread the inputs over every class
				counts[s.decide(i%41-20)]++
			}
			elapsed := time.Since(start)

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s decisions in %s (%s/s)\n",
				s.name, humanize.Comma(int64(n)), elapsed.Round(time.Microsecond), throughput(n, elapsed))
			log.Info("benchmark finished", "strategy", s.name, "elapsed", elapsed, "answers", counts)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "strategy", "binary-nodes", "demo tree to measure")
	cmd.Flags().IntVar(&n, "n", 1_000_000, "number of decisions")
	return cmd
}

// throughput formats decisions per second. A run too short to measure has no
// rate and reports 0.
func throughput(n int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "0"
	}
	return humanize.Commaf(math.Round(float64(n) / elapsed.Seconds()))
}
