package amounts

import (
	"strings"
)

// Expr = ['-'] Term { ('+' | '-') Term }
// Term = Random | Num [ident] | ident
// Random = 'random' '(' Term ',' Term ')'
// Num = ['-'] digits ['.' digits]

// Expr is a parsed expression that can be evaluated many times, possibly with
// different options.
type Expr struct {
	// terms is the list of signed terms in source order.
	terms []term
	// idents is the list of suffixes and names used in the expression.
	idents []string
}

// parsectx holds general data for parsing.
type parsectx struct {
	// idents is the set of identifiers that have been seen this parse.
	idents map[string]bool
}

// Parse parses an expression. Parsing does not depend on any unit table or
// variable, so an expression which parses may still fail to evaluate.
func Parse(src string) (*Expr, error) {
	scan := lex(strings.NewReader(src))
	p := parsectx{
		idents: make(map[string]bool),
	}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	var neg bool
	switch {
	case tok.kind == tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	case tok.kind == tokenOp && tok.text == "-":
		neg = true
	default:
		scan.push(tok)
	}
	var ex Expr
	for {
		n, err := parseterm(scan, &p)
		if err != nil {
			return nil, err
		}
		ex.terms = append(ex.terms, term{neg: neg, n: n})
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			ex.idents = make([]string, 0, len(p.idents))
			for k := range p.idents {
				ex.idents = append(ex.idents, k)
			}
			sortstrs(ex.idents)
			return &ex, nil
		case tokenOp:
			neg = tok.text == "-"
		default:
			return nil, itShouldNotHaveEndedThisWay(tok)
		}
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parseterm parses a single unsigned term. A - at the start of a term is only
// allowed as the sign of a number.
func parseterm(scan *lexer, p *parsectx) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return parsenum(scan, p, tok.text, tok.pos)
	case tokenOp:
		if tok.text != "-" {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
		num, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch num.kind {
		case tokenNum:
			return parsenum(scan, p, "-"+num.text, tok.pos)
		case tokenOp:
			return nil, &OperatorError{Col: num.pos, Operator: num.text}
		case tokenClose, tokenSep, tokenEOF:
			return nil, &EmptyExpressionError{Col: num.pos, End: num.text}
		default:
			return nil, &SyntaxError{Col: num.pos, Text: num.text, Msg: "only a number may follow a sign"}
		}
	case tokenIdent:
		if tok.text == randomName {
			next, err := scan.peek()
			if err != nil {
				return nil, err
			}
			if next.kind == tokenOpen {
				return parserandom(scan, p, tok.pos)
			}
		}
		p.idents[tok.text] = true
		return &node{kind: nodeName, name: tok.text, pos: tok.pos, namepos: tok.pos}, nil
	case tokenOpen:
		return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Msg: "brackets may only follow " + randomName}
	case tokenClose, tokenSep, tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	default:
		panic("amounts: unknown token: " + tok.String())
	}
}

// parsenum parses the optional suffix following a number.
func parsenum(scan *lexer, p *parsectx, num string, pos int) (*node, error) {
	n := &node{kind: nodeNum, num: num, pos: pos}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenIdent {
		scan.push(tok)
		return n, nil
	}
	n.name = tok.text
	n.namepos = tok.pos
	p.idents[tok.text] = true
	return n, nil
}

// parserandom parses the bracketed argument list of a random call. The open
// bracket is the next token.
func parserandom(scan *lexer, p *parsectx, pos int) (*node, error) {
	open, err := scan.next()
	if err != nil {
		return nil, err
	}
	tok, err := scan.peek()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenClose {
		return nil, &CallError{Col: open.pos, Func: randomName, Len: 0}
	}
	args := make([]*node, 0, 2)
	for {
		arg, err := parseterm(scan, p)
		if err != nil {
			// As a special case, reporting the unclosed bracket is more
			// helpful than empty expression at the end of the input.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: open.pos, Left: open.text}
			}
			return nil, err
		}
		args = append(args, arg)
		end, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch end.kind {
		case tokenSep:
			// Parse the next argument.
		case tokenClose:
			if len(args) != 2 {
				return nil, &CallError{Col: open.pos, Func: randomName, Len: len(args)}
			}
			return &node{kind: nodeRandom, pos: pos, left: args[0], right: args[1]}, nil
		case tokenEOF:
			return nil, &BracketError{Col: open.pos, Left: open.text}
		case tokenOp:
			return nil, &SyntaxError{Col: end.pos, Text: end.text, Msg: "arguments to " + randomName + " must be single terms"}
		default:
			return nil, itShouldNotHaveEndedThisWay(end)
		}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token after a complete term.
func itShouldNotHaveEndedThisWay(tok lexToken) error {
	switch tok.kind {
	case tokenClose:
		return &BracketError{Col: tok.pos, Right: tok.text}
	case tokenSep:
		// Separator outside a random call.
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenNum, tokenIdent, tokenOpen:
		return &SyntaxError{Col: tok.pos, Text: tok.text, Msg: "missing operator before it"}
	default:
		panic("amounts: it really should not have ended this way: " + tok.String())
	}
}

// Idents returns the unit suffixes and variable names used in the expression,
// sorted and without duplicates.
func (e *Expr) Idents() []string {
	return append(([]string)(nil), e.idents...)
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	for i, t := range e.terms {
		switch {
		case i == 0 && t.neg:
			b.WriteString("-")
		case i == 0:
		case t.neg:
			b.WriteString(" - ")
		default:
			b.WriteString(" + ")
		}
		t.n.fmt(&b, false)
	}
	return b.String()
}

// uses returns the column of the first use of name as a suffix or variable,
// or 0 if the expression does not use it.
func (e *Expr) uses(name string) int {
	col := 0
	for _, t := range e.terms {
		t.n.walk(func(n *node) {
			if col == 0 && n.kind != nodeRandom && n.name == name {
				col = n.namepos
			}
		})
		if col != 0 {
			break
		}
	}
	return col
}
