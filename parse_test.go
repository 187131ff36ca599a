package amounts

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"neg", "-1", "-(1)"},
		{"neg-space", "- 5", "-(5)"},
		{"neg-neg", "--5", "-(-5)"},
		{"frac", "1.25", "(1.25)"},
		{"add-sub", "10 + 2 - 5", "(10) + (2) - (5)"},
		{"signed-literal", "10 - -5", "(10) - (-5)"},
		{"signed-literal-space", "1 - - 5", "(1) - (-5)"},
		{"suffix", "1.12 eth", "(1.12eth)"},
		{"suffix-tight", "10gwei", "(10gwei)"},
		{"name", "estimate + 1", "(estimate) + (1)"},
		{"random", "random(1,2)", "(random[1], [2])"},
		{"random-space", "random (1 , 2)", "(random[1], [2])"},
		{"random-suffix", "10gwei - random(2gwei,2gwei)", "(10gwei) - (random[2gwei], [2gwei])"},
		{"random-neg", "-random(1, 2)", "-(random[1], [2])"},
		{"random-signed-bounds", "random(-2, -1)", "(random[-2], [-1])"},
		{"random-nested", "random(random(1,2), 3)", "(random[random(1), (2)], [3])"},
		{"random-name", "random", "(random)"},
		{"random-suffix-name", "5random", "(5random)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("%q parsed wrong:\n\twant %s\n\tgot  %s", c.src, c.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  interface{}
		col  int
	}{
		{"empty", "", new(*EmptyExpressionError), 1},
		{"blank", "   ", new(*EmptyExpressionError), 4},
		{"lead-plus", "+1", new(*OperatorError), 1},
		{"dangling", "1 +", new(*EmptyExpressionError), 4},
		{"dangling-sign", "-", new(*EmptyExpressionError), 2},
		{"double-op", "1 + + 2", new(*OperatorError), 5},
		{"triple-minus", "1 - - - 2", new(*OperatorError), 7},
		{"no-op", "1 2", new(*SyntaxError), 3},
		{"two-suffixes", "1gwei eth", new(*SyntaxError), 7},
		{"brackets", "(1)", new(*SyntaxError), 1},
		{"close", "1)", new(*BracketError), 2},
		{"close-term", "1 + )", new(*EmptyExpressionError), 5},
		{"sep", "1, 2", new(*SeparatorError), 2},
		{"unclosed", "random(1,2", new(*BracketError), 7},
		{"unclosed-sep", "random(1,", new(*BracketError), 7},
		{"unclosed-open", "random(", new(*BracketError), 7},
		{"no-args", "random()", new(*CallError), 7},
		{"one-arg", "random(1)", new(*CallError), 7},
		{"three-args", "random(1,2,3)", new(*CallError), 7},
		{"empty-args", "random(,)", new(*EmptyExpressionError), 8},
		{"sum-arg", "random(1+2,3)", new(*SyntaxError), 9},
		{"random-trailing", "random(1,2)gwei", new(*SyntaxError), 12},
		{"suffix-call", "5random(1,2)", new(*SyntaxError), 8},
		{"signed-random", "1 - -random(1,2)", new(*SyntaxError), 6},
		{"bad-number", "1.2.3", new(*LexError), 4},
		{"bad-rune", "1 * 2", new(*LexError), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, e)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err).Elem() {
				t.Errorf("%q gave wrong error: want %v, got %#v", c.src, reflect.TypeOf(c.err).Elem(), err)
			}
			ierr, ok := err.(InputError)
			if !ok {
				t.Fatalf("%#v does not implement InputError", err)
			}
			if ierr.Pos() != c.col {
				t.Errorf("%q gave error at wrong column: want %d, got %d (%v)", c.src, c.col, ierr.Pos(), err)
			}
			if k := Kind(err); k != Malformed {
				t.Errorf("%q gave error of kind %v", c.src, k)
			}
		})
	}
}

func TestIdents(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		idents []string
	}{
		{"none", "1+2+3", nil},
		{"random", "random(1,2)", nil},
		{"suffix-random", "5random", []string{"random"}},
		{"sort", "1gwei + estimate - random(1eth, 2gwei)", []string{"estimate", "eth", "gwei"}},
		{"reuse", "1a + 2b + 3a + b", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q didn't parse: %v", c.src, err)
			}
			idents := e.Idents()
			if !reflect.DeepEqual(idents, c.idents) {
				t.Errorf("%q gave wrong identifiers:\n\twant %q\n\tgot  %q", c.src, c.idents, idents)
			}
		})
	}
}

func TestUses(t *testing.T) {
	e, err := Parse("1 + random(2gwei, 3eth) - 4gwei")
	if err != nil {
		t.Fatal(err)
	}
	if col := e.uses("gwei"); col != 13 {
		t.Errorf("gwei: want column 13, got %d", col)
	}
	if col := e.uses("eth"); col != 20 {
		t.Errorf("eth: want column 20, got %d", col)
	}
	if col := e.uses("wei"); col != 0 {
		t.Errorf("wei: want column 0, got %d", col)
	}
}
