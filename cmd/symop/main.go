// Command symop is a small CLI over the scalar-operation algebra: it
// lists the built-in op catalogue, evaluates single operations with
// their partial derivatives, benchmarks dispatch throughput, and offers
// an interactive REPL.
package main

import (
	"os"

	"github.com/cwbudde/go-symop/cmd/symop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
