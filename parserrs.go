package amounts

import "strconv"

// OperatorError is an error indicating an operator where a term should
// begin, e.g. the first + in "1 + + 2". It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" with no term")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the opening bracket, or empty if there was none.
	Left string
	// Right is the closing bracket, or empty if there was none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside a random argument
// list. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the argument list.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call had.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating a missing term, either because
// the whole input is blank or because an operator dangles.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// SyntaxError is an error indicating a sequence of valid tokens that does not
// form a term, e.g. two numbers with no operator between them.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Text is the offending token.
	Text string
	// Msg describes what was expected instead.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+": "+err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
)
