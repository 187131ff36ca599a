// Package config loads named amount expressions from TOML or YAML files and
// validates them before they are evaluated.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/params"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/amounts"
)

// Config is a set of named expressions sharing one unit table and variable.
type Config struct {
	// Var is the name of the variable integer expressions may use.
	Var string `toml:"var" yaml:"var"`
	// Units maps unit suffixes to their decimals. If empty, DefaultUnits is
	// used.
	Units map[string]int `toml:"units" yaml:"units"`
	// Ints holds integer expressions by name.
	Ints map[string]string `toml:"ints" yaml:"ints"`
	// Decimals holds decimal expressions by name.
	Decimals map[string]string `toml:"decimals" yaml:"decimals"`
}

// Format is a config file format.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf chooses a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("unknown config format for %s", path)
	}
}

// Load reads and parses a config file. It does not validate the expressions.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses config data. Unknown keys are errors.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, err
		}
		if und := md.Undecoded(); len(und) > 0 {
			keys := make([]string, len(und))
			for i, k := range und {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown config format %v", format)
	}
	return &cfg, nil
}

// DefaultUnits returns the Ethereum denominations wei, gwei, ether and eth.
func DefaultUnits() map[string]int {
	return map[string]int{
		"wei":   exponent(params.Wei),
		"gwei":  exponent(params.GWei),
		"ether": exponent(params.Ether),
		"eth":   exponent(params.Ether),
	}
}

// exponent returns the power of ten of a denomination.
func exponent(unit int64) int {
	n := 0
	for unit >= 10 && unit%10 == 0 {
		unit /= 10
		n++
	}
	return n
}

// UnitTable returns the units of the config, or DefaultUnits if it has none.
func (c *Config) UnitTable() map[string]int {
	if len(c.Units) == 0 {
		return DefaultUnits()
	}
	return c.Units
}

// Validate checks the units, the variable, and every expression. It reports
// all problems at once.
func (c *Config) Validate() error {
	var errs *multierror.Error
	units := c.UnitTable()
	for _, name := range sortedKeys(units) {
		if !amounts.IsIdent(name) {
			errs = multierror.Append(errs, fmt.Errorf("units: invalid unit name %q", name))
		}
		if units[name] < 0 {
			errs = multierror.Append(errs, fmt.Errorf("units.%s: negative decimals %d", name, units[name]))
		}
	}
	if c.Var != "" {
		if !amounts.IsIdent(c.Var) {
			errs = multierror.Append(errs, fmt.Errorf("var: invalid variable name %q", c.Var))
		}
		if _, ok := units[c.Var]; ok {
			errs = multierror.Append(errs, fmt.Errorf("var: %w", &amounts.AmbiguousSuffixError{Suffix: c.Var}))
		}
	}
	if errs.ErrorOrNil() != nil {
		// Every expression would fail the same way.
		return errs.ErrorOrNil()
	}
	for _, name := range sortedKeys(c.Ints) {
		if err := amounts.ValidateInt(c.Ints[name], c.Var, units); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("ints.%s: %w", name, err))
		}
	}
	for _, name := range sortedKeys(c.Decimals) {
		if err := amounts.ValidateDecimal(c.Decimals[name]); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("decimals.%s: %w", name, err))
		}
	}
	return errs.ErrorOrNil()
}

// Resolved holds the evaluated values of a config.
type Resolved struct {
	Ints     map[string]*big.Int
	Decimals map[string]decimal.Decimal
}

// Resolve evaluates every expression once. varValue binds the config's
// variable; if it is nil, expressions that use the variable fail. Additional
// options, e.g. amounts.Rand, apply to every evaluation.
func (c *Config) Resolve(varValue *big.Int, opts ...amounts.Option) (*Resolved, error) {
	opts = append([]amounts.Option{amounts.SuffixDecimals(c.UnitTable())}, opts...)
	if c.Var != "" {
		opts = append(opts, amounts.Var(c.Var, varValue))
	}
	r := Resolved{
		Ints:     make(map[string]*big.Int, len(c.Ints)),
		Decimals: make(map[string]decimal.Decimal, len(c.Decimals)),
	}
	var errs *multierror.Error
	for _, name := range sortedKeys(c.Ints) {
		v, err := amounts.CalcInt(c.Ints[name], opts...)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("ints.%s: %w", name, err))
			continue
		}
		r.Ints[name] = v
	}
	for _, name := range sortedKeys(c.Decimals) {
		v, err := amounts.CalcDecimal(c.Decimals[name], opts...)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("decimals.%s: %w", name, err))
			continue
		}
		r.Decimals[name] = v
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &r, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
