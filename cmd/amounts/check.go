package main

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/amounts/config"
)

func newCheckCmd() *cobra.Command {
	var varValue string
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a TOML or YAML file of expressions",
		Long: "Validate a TOML or YAML file of expressions. " +
			"With --var-value, also evaluate every expression and print the results.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"file":     args[0],
				"ints":     len(cfg.Ints),
				"decimals": len(cfg.Decimals),
			}).Info("loaded config")
			if err := cfg.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("var-value") {
				fmt.Fprintf(out, "%s: ok\n", args[0])
				return nil
			}
			v, ok := new(big.Int).SetString(varValue, 10)
			if !ok {
				return fmt.Errorf("--var-value must be an integer, not %q", varValue)
			}
			r, err := cfg.Resolve(v)
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(r.Ints)+len(r.Decimals))
			for name, v := range r.Ints {
				lines = append(lines, fmt.Sprintf("ints.%s = %v", name, v))
			}
			for name, v := range r.Decimals {
				lines = append(lines, fmt.Sprintf("decimals.%s = %v", name, v))
			}
			sort.Strings(lines)
			for _, l := range lines {
				fmt.Fprintln(out, l)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&varValue, "var-value", "", "evaluate with the variable bound to `value`")
	return cmd
}
