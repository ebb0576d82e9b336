package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/classwork"
	"github.com/etnz/classwork/rational"
	"github.com/google/subcommands"
)

type rationalCmd struct {
	float bool
}

func (*rationalCmd) Name() string     { return "rational" }
func (*rationalCmd) Synopsis() string { return "evaluate an operation on two fractions" }
func (*rationalCmd) Usage() string {
	return `cw rational [-f] <a> <op> <b>

  Evaluates an exact operation on two fractions written "n" or "n/d".
  Operators: + - * / // == != < <= > >=

  // divides and rounds to the nearest integer, ties to even.
  Comparisons also accept a decimal number on the right hand side.

  Example:
    cw rational 1/5 + 2/4
`
}

func (c *rationalCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.float, "f", false, "Also print the floating point approximation, or the integer value")
}

func (c *rationalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expecting <a> <op> <b>")
		return subcommands.ExitUsageError
	}
	res, err := evaluate(f.Arg(0), f.Arg(1), f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %s %s %s: %v\n", f.Arg(0), f.Arg(1), f.Arg(2), err)
		return subcommands.ExitFailure
	}
	fmt.Println(res)
	if r, ok := res.(*rational.Rational); ok && c.float {
		// integers print exactly, whatever their size
		if r.IsInt() {
			fmt.Println(r.Num())
		} else {
			fmt.Println(r.Float64())
		}
	}
	return subcommands.ExitSuccess
}

// evaluate returns a *rational.Rational for arithmetic operators and a bool
// for comparisons.
func evaluate(left, op, right string) (any, error) {
	a, err := rational.Parse(left)
	if err != nil {
		return nil, err
	}
	var b rational.Operand
	r, err := rational.Parse(right)
	switch {
	case err == nil:
		b = r
	case isComparison(op):
		x, ferr := strconv.ParseFloat(right, 64)
		if ferr != nil {
			return nil, err
		}
		b = rational.Float(x)
	default:
		return nil, err
	}

	switch op {
	case "+":
		return a.Add(b)
	case "-":
		return a.Sub(b)
	case "*":
		return a.Mul(b)
	case "/":
		return a.Div(b)
	case "//":
		return a.IntDiv(b)
	case "==":
		return a.Equal(b)
	case "!=":
		return a.NotEqual(b)
	case "<":
		return a.LessThan(b)
	case "<=":
		return a.LessThanOrEqual(b)
	case ">":
		return a.GreaterThan(b)
	case ">=":
		return a.GreaterThanOrEqual(b)
	}
	return nil, fmt.Errorf("unknown operator %q: %w", op, classwork.ErrValue)
}

func isComparison(op string) bool {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return true
	}
	return false
}
