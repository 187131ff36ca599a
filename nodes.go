package amounts

import (
	"strconv"
	"strings"
)

// node is a single term of an expression, without the sign that joins it to
// the rest of the expression.
type node struct {
	kind nodeKind

	// num is the literal text of a nodeNum, including its own sign.
	num string
	// name is the suffix of a nodeNum or the identifier of a nodeName.
	name string

	// pos is the column of the first token of the node. namepos is the
	// column of name, if there is one.
	pos, namepos int

	// left and right are the bounds of a nodeRandom.
	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // literal with optional suffix
	nodeName   // bare identifier
	nodeRandom // uniform draw from [left, right]
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeName:
		return "Name"
	case nodeRandom:
		return "Random"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// term is a node joined to the expression by an operator. The first term of
// an expression is negative only if the expression starts with -.
type term struct {
	neg bool
	n   *node
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.num)
		b.WriteString(n.name)
	case nodeName:
		b.WriteString(n.name)
	case nodeRandom:
		b.WriteString(randomName)
		n.left.fmt(b, !square)
		b.WriteString(", ")
		n.right.fmt(b, !square)
	default:
		panic("amounts: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// walk calls f on n and each of its descendants in source order.
func (n *node) walk(f func(*node)) {
	if n == nil {
		return
	}
	f(n)
	n.left.walk(f)
	n.right.walk(f)
}
