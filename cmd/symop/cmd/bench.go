package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-symop/internal/op"
)

var benchIterations int64

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark float dispatch throughput",
	Long:  `Repeatedly calls eval_and_partials over the full op catalogue and reports throughput.`,
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Int64Var(&benchIterations, "iterations", 1_000_000, "total dispatch calls to perform")
}

func runBench(_ *cobra.Command, _ []string) error {
	if benchIterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", benchIterations)
	}

	x, y := op.FloatT(1.7), op.FloatT(0.3)
	var sink op.FloatT

	start := time.Now()
	var calls int64
	for calls < benchIterations {
		for c := op.Code(0); c < op.NumBuiltInOps && calls < benchIterations; c++ {
			f, d0, d1 := op.EvalAndPartials(c, x, y)
			sink += f + d0 + d1
			calls++
		}
	}
	elapsed := time.Since(start)

	rate := float64(calls) / elapsed.Seconds()
	fmt.Printf("%s dispatch calls in %s (%s calls/s)\n",
		humanize.Comma(calls),
		elapsed.Round(time.Microsecond),
		humanize.Comma(int64(rate)),
	)
	// Force the compiler to keep the loop body live.
	if sink != sink {
		fmt.Println("unreachable")
	}
	return nil
}
