package amounts

import (
	"errors"
	"strconv"
)

// ErrorKind classifies why an expression was rejected.
type ErrorKind int

const (
	// KindNone is the kind of nil errors and of errors not caused by the
	// expression, such as a failing random source.
	KindNone ErrorKind = iota
	// Malformed means the expression does not follow the grammar.
	Malformed
	// UnknownSuffix means a suffix is neither a unit nor the variable.
	UnknownSuffix
	// AmbiguousSuffix means the variable has the name of a unit.
	AmbiguousSuffix
	// InvalidRange means a random call has low > high.
	InvalidRange
	// PrecisionLoss means a literal has more fractional digits than its unit.
	PrecisionLoss
	// FractionWithoutSuffix means an integer expression has a fractional
	// literal with no unit.
	FractionWithoutSuffix
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case Malformed:
		return "malformed expression"
	case UnknownSuffix:
		return "unknown suffix"
	case AmbiguousSuffix:
		return "ambiguous suffix"
	case InvalidRange:
		return "invalid range"
	case PrecisionLoss:
		return "precision loss"
	case FractionWithoutSuffix:
		return "fraction without suffix"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Kind classifies err, looking through wrapping.
func Kind(err error) ErrorKind {
	var (
		lex     *LexError
		op      *OperatorError
		bracket *BracketError
		sep     *SeparatorError
		call    *CallError
		empty   *EmptyExpressionError
		syntax  *SyntaxError
		unknown *UnknownSuffixError
		ambig   *AmbiguousSuffixError
		rng     *RangeError
		prec    *PrecisionError
		frac    *FractionError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &lex), errors.As(err, &op), errors.As(err, &bracket),
		errors.As(err, &sep), errors.As(err, &call), errors.As(err, &empty),
		errors.As(err, &syntax):
		return Malformed
	case errors.As(err, &unknown):
		return UnknownSuffix
	case errors.As(err, &ambig):
		return AmbiguousSuffix
	case errors.As(err, &rng):
		return InvalidRange
	case errors.As(err, &prec):
		return PrecisionLoss
	case errors.As(err, &frac):
		return FractionWithoutSuffix
	default:
		return KindNone
	}
}
