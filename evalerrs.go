package amounts

import (
	"strconv"
)

// UnknownSuffixError is an error indicating a suffix that is neither a unit
// nor the bound variable. It implements InputError.
type UnknownSuffixError struct {
	// Col is the position of the suffix.
	Col int
	// Suffix is the unrecognized suffix.
	Suffix string
}

func (err *UnknownSuffixError) Error() string {
	return errpos(err.Col, "unknown suffix "+strconv.Quote(err.Suffix))
}

func (err *UnknownSuffixError) Pos() int {
	return err.Col
}

// AmbiguousSuffixError is an error indicating that the variable has the same
// name as a unit suffix. It is reported whether or not the expression uses
// the name. It implements InputError.
type AmbiguousSuffixError struct {
	// Col is the position of the first use of the name, or 0 if the
	// expression does not use it.
	Col int
	// Suffix is the conflicting name.
	Suffix string
}

func (err *AmbiguousSuffixError) Error() string {
	msg := "variable " + strconv.Quote(err.Suffix) + " is also a unit suffix"
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *AmbiguousSuffixError) Pos() int {
	return err.Col
}

// RangeError is an error indicating a random call with its lower bound above
// its upper bound. It implements InputError.
type RangeError struct {
	// Col is the position of the call.
	Col int
	// Low and High are the resolved bounds.
	Low, High string
}

func (err *RangeError) Error() string {
	return errpos(err.Col, "random range low "+err.Low+" is greater than high "+err.High)
}

func (err *RangeError) Pos() int {
	return err.Col
}

// PrecisionError is an error indicating a literal with more fractional digits
// than its unit suffix has decimals. It implements InputError.
type PrecisionError struct {
	// Col is the position of the literal.
	Col int
	// Literal is the number as written.
	Literal string
	// Suffix is the unit.
	Suffix string
	// Decimals is the number of decimals of the unit.
	Decimals int
}

func (err *PrecisionError) Error() string {
	return errpos(err.Col, err.Literal+err.Suffix+" has more than "+strconv.Itoa(err.Decimals)+" fractional digits")
}

func (err *PrecisionError) Pos() int {
	return err.Col
}

// FractionError is an error indicating a fractional literal with no suffix in
// an integer expression. It implements InputError.
type FractionError struct {
	// Col is the position of the literal.
	Col int
	// Literal is the number as written.
	Literal string
}

func (err *FractionError) Error() string {
	return errpos(err.Col, "fractional "+err.Literal+" needs a unit suffix")
}

func (err *FractionError) Pos() int {
	return err.Col
}

var (
	_ InputError = (*UnknownSuffixError)(nil)
	_ InputError = (*AmbiguousSuffixError)(nil)
	_ InputError = (*RangeError)(nil)
	_ InputError = (*PrecisionError)(nil)
	_ InputError = (*FractionError)(nil)
)
