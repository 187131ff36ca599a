package amounts

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Option is an option for evaluating an expression.
type Option interface {
	option()
}

type (
	varopt struct {
		name string
		val  *big.Int
	}
	decimalsopt map[string]int
	randopt     struct {
		r io.Reader
	}
)

func (varopt) option()      {}
func (decimalsopt) option() {}
func (randopt) option()     {}

// Var sets the variable of the evaluation. Only one variable is active at a
// time; the last Var option wins. A nil value declares the name without
// binding it, so the name still conflicts with a unit suffix of the same
// name but cannot be used in the expression.
func Var(name string, value *big.Int) Option {
	return varopt{name, value}
}

// SuffixDecimals sets the number of decimals each unit suffix scales a literal
// by. Suffixes are matched exactly as given. Several SuffixDecimals options
// are merged, with later ones taking precedence.
func SuffixDecimals(decimals map[string]int) Option {
	return decimalsopt(decimals)
}

// Rand sets the source of randomness for random(a, b). The reader must be
// safe for concurrent use if the same Option is used concurrently. The
// default is crypto/rand.Reader.
func Rand(r io.Reader) Option {
	return randopt{r}
}

// evaluator holds the resolved options of one evaluation.
type evaluator struct {
	decimals map[string]int
	// name and val describe the variable. val is nil if there is no variable
	// or if it is declared but unbound.
	name string
	val  *big.Int
	rand io.Reader
}

func newEvaluator(opts []Option) (*evaluator, error) {
	e := evaluator{rand: rand.Reader}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			e.name, e.val = opt.name, nil
			if opt.val != nil {
				e.val = new(big.Int).Set(opt.val)
			}
		case decimalsopt:
			if e.decimals == nil {
				e.decimals = make(map[string]int, len(opt))
			}
			for k, v := range opt {
				if v < 0 {
					return nil, fmt.Errorf("amounts: suffix %q has negative decimals %d", k, v)
				}
				e.decimals[k] = v
			}
		case randopt:
			if opt.r != nil {
				e.rand = opt.r
			}
		default:
			panic("amounts: unknown option type")
		}
	}
	return &e, nil
}

// isVar reports whether name refers to the bound variable.
func (e *evaluator) isVar(name string) bool {
	return e.name != "" && e.val != nil && name == e.name
}

// ambiguous reports whether name is both the variable and a unit suffix.
func (e *evaluator) ambiguous(name string) bool {
	if e.name == "" || name != e.name {
		return false
	}
	_, ok := e.decimals[name]
	return ok
}
