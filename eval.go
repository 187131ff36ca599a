package amounts

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Int evaluates the expression to an exact integer, scaling literals by their
// unit suffixes and multiplying coefficients of the variable by its value.
func (e *Expr) Int(opts ...Option) (*big.Int, error) {
	ev, err := newEvaluator(opts)
	if err != nil {
		return nil, err
	}
	// A variable named like a unit makes the grammar ambiguous, so reject it
	// before evaluating anything.
	if ev.ambiguous(ev.name) {
		return nil, &AmbiguousSuffixError{Col: e.uses(ev.name), Suffix: ev.name}
	}
	sum := new(big.Int)
	for _, t := range e.terms {
		v, err := ev.intTerm(t.n)
		if err != nil {
			return nil, err
		}
		if t.neg {
			sum.Sub(sum, v)
		} else {
			sum.Add(sum, v)
		}
	}
	return sum, nil
}

// Decimal evaluates the expression to an exact decimal. Only literals without
// suffixes and random calls are allowed; Var and SuffixDecimals options do not
// apply.
func (e *Expr) Decimal(opts ...Option) (decimal.Decimal, error) {
	ev, err := newEvaluator(opts)
	if err != nil {
		return decimal.Decimal{}, err
	}
	sum := decimal.Zero
	for _, t := range e.terms {
		v, err := ev.decimalTerm(t.n)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if t.neg {
			sum = sum.Sub(v)
		} else {
			sum = sum.Add(v)
		}
	}
	return sum, nil
}

func (ev *evaluator) intTerm(n *node) (*big.Int, error) {
	switch n.kind {
	case nodeNum:
		return ev.scale(n.num, n.name, n.pos, n.namepos)
	case nodeName:
		if ev.isVar(n.name) {
			return new(big.Int).Set(ev.val), nil
		}
		if _, ok := ev.decimals[n.name]; ok {
			return nil, &SyntaxError{Col: n.pos, Text: n.name, Msg: "unit needs an amount"}
		}
		return nil, &UnknownSuffixError{Col: n.namepos, Suffix: n.name}
	case nodeRandom:
		lo, err := ev.intTerm(n.left)
		if err != nil {
			return nil, err
		}
		hi, err := ev.intTerm(n.right)
		if err != nil {
			return nil, err
		}
		if lo.Cmp(hi) > 0 {
			return nil, &RangeError{Col: n.pos, Low: lo.String(), High: hi.String()}
		}
		return randInt(ev.rand, lo, hi)
	default:
		panic("amounts: invalid node " + n.kind.String())
	}
}

func (ev *evaluator) decimalTerm(n *node) (decimal.Decimal, error) {
	switch n.kind {
	case nodeNum:
		if n.name != "" {
			return decimal.Decimal{}, &UnknownSuffixError{Col: n.namepos, Suffix: n.name}
		}
		d, err := decimal.NewFromString(n.num)
		if err != nil {
			// The lexer only produces literals that decimal accepts.
			panic("amounts: invalid number: " + n.num + " (" + err.Error() + ")")
		}
		return d, nil
	case nodeName:
		return decimal.Decimal{}, &UnknownSuffixError{Col: n.namepos, Suffix: n.name}
	case nodeRandom:
		lo, err := ev.decimalTerm(n.left)
		if err != nil {
			return decimal.Decimal{}, err
		}
		hi, err := ev.decimalTerm(n.right)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if lo.GreaterThan(hi) {
			return decimal.Decimal{}, &RangeError{Col: n.pos, Low: lo.String(), High: hi.String()}
		}
		return randDecimal(ev.rand, lo, hi)
	default:
		panic("amounts: invalid node " + n.kind.String())
	}
}

// scale resolves a literal with an optional suffix to an integer. The checks
// happen in a fixed order: missing suffix, ambiguity, variable, unit table.
func (ev *evaluator) scale(lit, suffix string, pos, namepos int) (*big.Int, error) {
	coef, frac := exact(lit)
	switch {
	case suffix == "":
		if frac != 0 {
			return nil, &FractionError{Col: pos, Literal: lit}
		}
		return coef, nil
	case ev.ambiguous(suffix):
		return nil, &AmbiguousSuffixError{Col: namepos, Suffix: suffix}
	case ev.isVar(suffix):
		// The product truncates toward zero like an integer conversion of
		// the exact product would.
		coef.Mul(coef, ev.val)
		return coef.Quo(coef, pow10(frac)), nil
	}
	d, ok := ev.decimals[suffix]
	if !ok {
		return nil, &UnknownSuffixError{Col: namepos, Suffix: suffix}
	}
	if frac > d {
		return nil, &PrecisionError{Col: pos, Literal: lit, Suffix: suffix, Decimals: d}
	}
	return coef.Mul(coef, pow10(d-frac)), nil
}

// exact splits a literal into an integer coefficient and the number of
// significant fractional digits, so that the literal equals coef/10^frac.
// Trailing fractional zeros are not significant.
func exact(lit string) (coef *big.Int, frac int) {
	d, err := decimal.NewFromString(lit)
	if err != nil {
		panic("amounts: invalid number: " + lit + " (" + err.Error() + ")")
	}
	coef = d.Coefficient()
	frac = int(-d.Exponent())
	if frac < 0 {
		coef.Mul(coef, pow10(-frac))
		frac = 0
	}
	ten := big.NewInt(10)
	q, r := new(big.Int), new(big.Int)
	for frac > 0 {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}
		coef.Set(q)
		frac--
	}
	return coef, frac
}

// pow10 returns 10^n.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// CalcInt is a shortcut to parse an expression and evaluate it to an integer.
func CalcInt(expr string, opts ...Option) (*big.Int, error) {
	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return e.Int(opts...)
}

// CalcDecimal is a shortcut to parse an expression and evaluate it to a
// decimal.
func CalcDecimal(expr string, opts ...Option) (decimal.Decimal, error) {
	e, err := Parse(expr)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return e.Decimal(opts...)
}

// CalcIntWithSuffixDecimals scales a single literal with an optional unit
// suffix, e.g. "1.5gwei", to an integer. It applies the same rules as a term
// of CalcInt, but anything other than one literal is a SyntaxError.
func CalcIntWithSuffixDecimals(literal string, decimals map[string]int) (*big.Int, error) {
	e, err := Parse(literal)
	if err != nil {
		return nil, err
	}
	if len(e.terms) != 1 || e.terms[0].n.kind != nodeNum {
		return nil, &SyntaxError{Col: 1, Text: literal, Msg: "expected a single number with an optional suffix"}
	}
	return e.Int(SuffixDecimals(decimals))
}

// ValidateInt reports whether expr evaluates as an integer expression using
// the given variable name and units. The variable, if any, is bound to a
// placeholder value, so the check does not depend on its real value.
func ValidateInt(expr, varName string, decimals map[string]int) error {
	opts := []Option{SuffixDecimals(decimals)}
	if varName != "" {
		opts = append(opts, Var(varName, big.NewInt(placeholder)))
	}
	_, err := CalcInt(expr, opts...)
	return err
}

// ValidateDecimal reports whether expr evaluates as a decimal expression.
func ValidateDecimal(expr string) error {
	_, err := CalcDecimal(expr)
	return err
}

// placeholder is the variable value ValidateInt evaluates with.
const placeholder = 123
