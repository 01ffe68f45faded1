package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-symop/internal/op"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive op evaluation loop",
	Long: `Read lines of the form "OPCODE x [y]" from stdin and print f, d0, d1 for
each, using the float operand kind. Enter "quit" or send EOF to exit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	prec := cfg.Precision
	if prec <= 0 {
		prec = 6
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, `symop repl: "OPCODE x [y]", "quit" to exit`)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		fields := strings.Fields(line)
		code, err := parseOpCode(fields[0])
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		var x, y float64
		if len(fields) > 1 {
			if x, err = strconv.ParseFloat(fields[1], 64); err != nil {
				fmt.Fprintf(out, "invalid x: %v\n", err)
				continue
			}
		}
		if len(fields) > 2 {
			if y, err = strconv.ParseFloat(fields[2], 64); err != nil {
				fmt.Fprintf(out, "invalid y: %v\n", err)
				continue
			}
		}

		f, d0, d1 := op.EvalAndPartials(code, op.FloatT(x), op.FloatT(y))
		fmt.Fprintln(out, "  "+formatFloatResult(prec, float64(f), float64(d0), float64(d1)))
	}
}
