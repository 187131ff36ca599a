package amounts

import (
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1.", []lexToken{{pos: 1}}, 1},
		{"1.x", []lexToken{{pos: 1}, {text: "x", kind: tokenIdent, pos: 3}}, 1},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}}, 1},
		{"1..2", []lexToken{{pos: 1}, {text: "2", kind: tokenNum, pos: 4}}, 1},
		{".", []lexToken{{pos: 1}}, 1},
		{".1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 1},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 1},
		// numbers with suffixes
		{"1a", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "a", kind: tokenIdent, pos: 2}}, 0},
		{"1e18", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "e18", kind: tokenIdent, pos: 2}}, 0},
		{"1.12 eth", []lexToken{{text: "1.12", kind: tokenNum, pos: 1}, {text: "eth", kind: tokenIdent, pos: 6}}, 0},
		{" \t 12gwei", []lexToken{{text: "12", kind: tokenNum, pos: 4}, {text: "gwei", kind: tokenIdent, pos: 6}}, 0},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, pos: 1}}, 0},
		{"e1", []lexToken{{text: "e1", kind: tokenIdent, pos: 1}}, 0},
		{"π", []lexToken{{text: "π", kind: tokenIdent, pos: 1}}, 0},
		{"_1234_", []lexToken{{text: "_1234_", kind: tokenIdent, pos: 1}}, 0},
		{"a.b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {pos: 2}, {text: "b", kind: tokenIdent, pos: 3}}, 1},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"++", []lexToken{{text: "+", kind: tokenOp, pos: 1}, {text: "+", kind: tokenOp, pos: 2}}, 0},
		{"a--b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {text: "b", kind: tokenIdent, pos: 4}}, 0},
		// calls
		{"random(1, 2)", []lexToken{
			{text: "random", kind: tokenIdent, pos: 1},
			{text: "(", kind: tokenOpen, pos: 7},
			{text: "1", kind: tokenNum, pos: 8},
			{text: ",", kind: tokenSep, pos: 9},
			{text: "2", kind: tokenNum, pos: 11},
			{text: ")", kind: tokenClose, pos: 12},
		}, 0},
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {pos: 2}}, 1},
		{"$a", []lexToken{{pos: 1}, {text: "a", kind: tokenIdent, pos: 2}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}}, 2},
		{"[1]", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {pos: 3}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		errs := 0
		for _, want := range c.tokens {
			got, err := scan.next()
			if err != nil {
				if _, ok := err.(*LexError); !ok {
					t.Errorf("scanning %q: error %#v is not a *LexError", c.src, err)
				}
				errs++
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		if got, err := scan.next(); err != nil || got.kind != tokenEOF {
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if errs != c.errs {
			t.Errorf("scanning %q: want %d errors, got %d", c.src, c.errs, errs)
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	cases := []struct {
		src string
		col int
	}{
		{"$", 1},
		{"12$", 3},
		{"1.5.", 4},
		{"10 ^ 2", 4},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var err error
		for err == nil {
			var tok lexToken
			tok, err = scan.next()
			if tok.kind == tokenEOF {
				break
			}
		}
		lerr, ok := err.(*LexError)
		if !ok {
			t.Errorf("scanning %q: want *LexError, got %#v", c.src, err)
			continue
		}
		if lerr.Pos() != c.col {
			t.Errorf("scanning %q: want error at column %d, got %d (%v)", c.src, c.col, lerr.Pos(), lerr)
		}
	}
}

func TestIsIdent(t *testing.T) {
	cases := []struct {
		s  string
		ok bool
	}{
		{"eth", true},
		{"gwei", true},
		{"_", true},
		{"usdt_6", true},
		{"π", true},
		{"", false},
		{"6t", false},
		{"g wei", false},
		{"a-b", false},
		{"a.b", false},
	}
	for _, c := range cases {
		if got := IsIdent(c.s); got != c.ok {
			t.Errorf("IsIdent(%q): want %t, got %t", c.s, c.ok, got)
		}
	}
}
