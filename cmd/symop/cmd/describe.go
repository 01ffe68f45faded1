package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cwbudde/go-symop/internal/catalog"
)

var (
	describeJSON   bool
	describeFilter string
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "List the built-in operation catalogue",
	Long: `Print every built-in operation's static descriptor: arity,
commutativity, zero-absorption flags, and an example rendering of its
print grammar.`,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "emit JSON instead of a table")
	describeCmd.Flags().StringVar(&describeFilter, "filter", "", `JSON filter document, e.g. {"include":["ADD","SUB"]}`)
}

func runDescribe(_ *cobra.Command, _ []string) error {
	entries := catalog.Filter(catalog.All(), describeFilter)

	if describeJSON {
		doc, err := catalog.ToJSON(entries)
		if err != nil {
			return fmt.Errorf("failed to render catalogue as JSON: %w", err)
		}
		fmt.Println(doc)
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	nameWidth := 9
	for _, e := range entries {
		if len(e.Name) > nameWidth {
			nameWidth = len(e.Name)
		}
	}

	for _, e := range entries {
		line := fmt.Sprintf("%-*s  arity=%d  commutative=%-5t  zero[00,0x,x0]=%-5t %-5t %-5t  %s",
			nameWidth, e.Name, e.Arity, e.Commutative, e.F00IsZero, e.F0xIsZero, e.Fx0IsZero, e.Example)
		if len(line) > width {
			line = line[:width]
		}
		fmt.Println(line)
	}
	return nil
}
