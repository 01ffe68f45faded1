package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-symop/internal/op"
)

var (
	evalOperand string
	evalX       float64
	evalY       float64
)

var evalCmd = &cobra.Command{
	Use:   "eval <OPCODE>",
	Short: "Evaluate one operation and its partial derivatives",
	Long: `Evaluate a single built-in operation at given operand values and print
f, d0 and d1: the value and its two partial derivatives.

Examples:
  symop eval ADD --x 2 --y 3
  symop eval DIV --x 6 --y 2 --operand float
  symop eval SIN --x 0.5 --operand dual`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&evalOperand, "operand", "", "operand kind: float, interval, dual, symbol (default: config default_operand)")
	evalCmd.Flags().Float64Var(&evalX, "x", 0, "first operand")
	evalCmd.Flags().Float64Var(&evalY, "y", 0, "second operand (ignored for unary ops)")
}

func parseOpCode(name string) (op.Code, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for c := op.Code(0); c < op.NumBuiltInOps; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown op code %q", name)
}

func runEval(_ *cobra.Command, args []string) error {
	code, err := parseOpCode(args[0])
	if err != nil {
		return err
	}

	kind := evalOperand
	if kind == "" {
		kind = string(cfg.DefaultOperand)
	}

	prec := cfg.Precision
	if prec <= 0 {
		prec = 6
	}

	switch kind {
	case "float", "":
		f, d0, d1 := op.EvalAndPartials(code, op.FloatT(evalX), op.FloatT(evalY))
		fmt.Println(formatFloatResult(prec, float64(f), float64(d0), float64(d1)))
	case "interval":
		x := op.NewInterval(evalX, evalX)
		y := op.NewInterval(evalY, evalY)
		f, d0, d1 := op.EvalAndPartials(code, x, y)
		fmt.Printf("f=[%s,%s]  d0=[%s,%s]  d1=[%s,%s]\n",
			fmtFloat(prec, f.Lo), fmtFloat(prec, f.Hi),
			fmtFloat(prec, d0.Lo), fmtFloat(prec, d0.Hi),
			fmtFloat(prec, d1.Lo), fmtFloat(prec, d1.Hi))
	case "dual":
		f, d0, d1 := op.EvalAndPartials(code, op.NewDual(evalX), op.NewDual(evalY))
		fmt.Printf("f=%s  d0=%s  d1=%s\n", fmtFloat(prec, f.V), fmtFloat(prec, d0.V), fmtFloat(prec, d1.V))
	case "symbol":
		x := op.NewVariable("x")
		y := op.NewVariable("y")
		f, d0, d1 := op.EvalAndPartials(code, x, y)
		fmt.Printf("f=%s  d0=%s  d1=%s\n", f.String(), d0.String(), d1.String())
	default:
		return fmt.Errorf("unknown operand kind %q (want float, interval, dual or symbol)", kind)
	}
	return nil
}

func fmtFloat(prec int, v float64) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatFloatResult(prec int, f, d0, d1 float64) string {
	return fmt.Sprintf("f=%s  d0=%s  d1=%s", fmtFloat(prec, f), fmtFloat(prec, d0), fmtFloat(prec, d1))
}
