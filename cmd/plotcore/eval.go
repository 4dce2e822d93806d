package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/plotcore"
	"github.com/zephyrtronium/plotcore/mathml"
)

var (
	evalXs   []float64
	evalPrec uint
	evalEcho bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] ATTR...",
	Short: "Print exact labels and approximations of attributes",
	Long: `Print each attribute's exact label, if it has one, and its approximate value.

Expressions using x are sampled at each value given with --x. With --prec,
expressions are evaluated with that many bits of precision instead of float64.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Float64SliceVar(&evalXs, "x", nil, "value of x for expressions using it (any number of times)")
	evalCmd.Flags().UintVarP(&evalPrec, "prec", "p", 0, "precision of expression evaluation in bits (default float64)")
	evalCmd.Flags().BoolVar(&evalEcho, "echo", false, "print parse trees")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	for _, x := range evalXs {
		if math.IsNaN(x) {
			return errors.New("--x cannot be NaN")
		}
	}
	var ctx *mathml.Context
	if evalPrec != 0 {
		ctx = mathml.NewContext(mathml.Prec(evalPrec))
	}
	w := cmd.OutOrStdout()
	for _, arg := range args {
		a, err := plotcore.ParseAttr(arg)
		if err != nil {
			return err
		}
		if evalEcho {
			fmt.Fprintf(w, "%s : ", echoColor.Sprint(a))
		}
		if err := printAttr(w, ctx, a); err != nil {
			return fmt.Errorf("evaluating %q: %w", arg, err)
		}
	}
	return nil
}

// printAttr prints the exact label and approximation of an attribute, or its
// samples at each x if it uses the variable.
func printAttr(w io.Writer, ctx *mathml.Context, a plotcore.Attr) error {
	if e := a.Expr(); e != nil && e.HasVariable() {
		if len(evalXs) == 0 {
			return errors.New("expression uses x; give values with --x")
		}
		fmt.Fprintln(w)
		for _, x := range evalXs {
			v, err := approx(ctx, a, x)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\tx = %s: %s\n", formatFloat(x), v)
		}
		return nil
	}
	if l := exactLabel(a); l != "" {
		fmt.Fprintf(w, "%s ≈ ", exactColor.Sprint(l))
	}
	v, err := approx(ctx, a, 0)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v)
	return nil
}

// exactLabel formats the exact value of a, or returns the empty string if a
// has none.
func exactLabel(a plotcore.Attr) string {
	if a.Kind() == plotcore.KindTuple || a.Expr() != nil && a.Expr().IsList() {
		t, err := a.Tuple()
		if err != nil {
			return ""
		}
		return t.String()
	}
	r, err := a.Number()
	if err != nil {
		return ""
	}
	return r.String()
}

// approx formats the approximate value of a at x, using ctx for expressions
// if it is not nil.
func approx(ctx *mathml.Context, a plotcore.Attr, x float64) (string, error) {
	e := a.Expr()
	if ctx == nil || e == nil {
		vs, err := a.Approx(x)
		if err != nil {
			return "", err
		}
		s := make([]string, len(vs))
		for i, v := range vs {
			s[i] = formatFloat(v)
		}
		return group(s), nil
	}
	bx := new(big.Float).SetPrec(ctx.Prec()).SetFloat64(x)
	if e.IsList() {
		rs, err := ctx.EvalList(e, bx)
		if err != nil {
			return "", err
		}
		s := make([]string, len(rs))
		for i, r := range rs {
			s[i] = r.Text('g', -1)
		}
		return group(s), nil
	}
	r, err := ctx.Eval(e, bx)
	if err != nil {
		return "", err
	}
	return r.Text('g', -1), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// group parenthesizes multiple values.
func group(s []string) string {
	if len(s) == 1 {
		return s[0]
	}
	return "(" + strings.Join(s, ", ") + ")"
}
