package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/amounts"
	"github.com/zephyrtronium/amounts/config"
)

type calcOptions struct {
	units    []string
	ethUnits bool
	given    string
	echo     bool
}

func (o *calcOptions) addFlags(fs *pflag.FlagSet, withUnits bool) {
	if withUnits {
		fs.StringArrayVar(&o.units, "unit", nil, "`name=decimals` unit suffix (any number of times)")
		fs.BoolVar(&o.ethUnits, "eth-units", false, "use the Ethereum denominations wei, gwei, ether and eth")
		fs.StringVar(&o.given, "var", "", "`name=value` variable definition")
	}
	fs.BoolVar(&o.echo, "echo", false, "print parse trees")
}

// options builds evaluation options from the flags.
func (o *calcOptions) options() ([]amounts.Option, error) {
	var opts []amounts.Option
	if o.ethUnits {
		opts = append(opts, amounts.SuffixDecimals(config.DefaultUnits()))
	}
	if len(o.units) > 0 {
		units := make(map[string]int, len(o.units))
		for _, u := range o.units {
			name, dec, err := splitDef(u)
			if err != nil {
				return nil, fmt.Errorf("--unit: %w", err)
			}
			if !amounts.IsIdent(name) {
				return nil, fmt.Errorf("--unit: invalid unit name %q", name)
			}
			d, err := strconv.Atoi(dec)
			if err != nil || d < 0 {
				return nil, fmt.Errorf("--unit: decimals of %s must be a non-negative integer, not %q", name, dec)
			}
			units[name] = d
		}
		opts = append(opts, amounts.SuffixDecimals(units))
	}
	if o.given != "" {
		name, val, err := splitDef(o.given)
		if err != nil {
			return nil, fmt.Errorf("--var: %w", err)
		}
		if !amounts.IsIdent(name) {
			return nil, fmt.Errorf("--var: invalid variable name %q", name)
		}
		v, ok := new(big.Int).SetString(val, 10)
		if !ok {
			return nil, fmt.Errorf("--var: value of %s must be an integer, not %q", name, val)
		}
		opts = append(opts, amounts.Var(name, v))
	}
	return opts, nil
}

func splitDef(s string) (name, value string, err error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return "", "", fmt.Errorf(`definitions must be "name=value", not %q`, s)
	}
	return strings.TrimSpace(d[0]), strings.TrimSpace(d[1]), nil
}

func newIntCmd() *cobra.Command {
	var opts calcOptions
	cmd := &cobra.Command{
		Use:   "int [EXPR...]",
		Short: "Evaluate expressions to integers in base units",
		Long: "Evaluate expressions to integers in base units. " +
			"With no arguments, each line of standard input is an expression.",
		RunE: func(cmd *cobra.Command, args []string) error {
			evalOpts, err := opts.options()
			if err != nil {
				return err
			}
			return calc(cmd, args, opts.echo, func(e *amounts.Expr) (fmt.Stringer, error) {
				return e.Int(evalOpts...)
			})
		},
	}
	opts.addFlags(cmd.Flags(), true)
	return cmd
}

func newDecimalCmd() *cobra.Command {
	var opts calcOptions
	cmd := &cobra.Command{
		Use:   "decimal [EXPR...]",
		Short: "Evaluate expressions of plain numbers to exact decimals",
		Long: "Evaluate expressions of plain numbers to exact decimals. " +
			"With no arguments, each line of standard input is an expression.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc(cmd, args, opts.echo, func(e *amounts.Expr) (fmt.Stringer, error) {
				return e.Decimal()
			})
		},
	}
	opts.addFlags(cmd.Flags(), false)
	return cmd
}

// calc parses and evaluates each expression in args, or each nonblank line of
// the command's input if there are no args. Results are written one per line.
// It stops at the first error.
func calc(cmd *cobra.Command, args []string, echo bool, eval func(*amounts.Expr) (fmt.Stringer, error)) error {
	srcs := args
	if len(srcs) == 0 {
		var err error
		srcs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}
	out := cmd.OutOrStdout()
	for _, src := range srcs {
		e, err := amounts.Parse(src)
		if err != nil {
			return describe(src, err)
		}
		logrus.Debugf("parsed %q as %v", src, e)
		r, err := eval(e)
		if err != nil {
			return describe(src, err)
		}
		if echo {
			fmt.Fprintf(out, "%v : ", e)
		}
		fmt.Fprintln(out, r)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading expressions: %w", err)
	}
	return lines, nil
}

// describe annotates an evaluation error with its expression and kind.
func describe(src string, err error) error {
	k := amounts.Kind(err)
	logrus.WithFields(logrus.Fields{"expr": src, "kind": k}).Debug("evaluation failed")
	if k == amounts.KindNone {
		return fmt.Errorf("%q: %w", src, err)
	}
	return fmt.Errorf("%q: %s: %w", src, k, err)
}
