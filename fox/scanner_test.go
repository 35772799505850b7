package fox

import (
	"errors"
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	var (
		scan = ScanString(input)
		list []Token
	)
	for {
		tok, err := scan.Scan()
		if err != nil {
			t.Fatalf("scanning %q: unexpected error: %s", input, err)
		}
		list = append(list, tok)
		if tok.Type == EOF {
			return list
		}
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		Input  string
		Tokens []Token
	}{
		{
			Input: "LOCAL x = 1",
			Tokens: []Token{
				{Literal: "LOCAL", Type: Keyword},
				{Literal: "x", Type: Ident},
				{Literal: "=", Type: Assign},
				{Literal: "1", Type: Number},
				{Type: EOL},
				{Type: EOF},
			},
		},
		{
			Input: "a += 'it''s'",
			Tokens: []Token{
				{Literal: "a", Type: Ident},
				{Literal: "+=", Type: CompoundAssign},
				{Literal: "'it'", Type: Text},
				{Literal: "'s'", Type: Text},
				{Type: EOL},
				{Type: EOF},
			},
		},
		{
			Input: `x <= "a" .and. y != .NULL. or !.T.`,
			Tokens: []Token{
				{Literal: "x", Type: Ident},
				{Literal: "<=", Type: Le},
				{Literal: `"a"`, Type: Text},
				{Literal: ".and.", Type: And},
				{Literal: "y", Type: Ident},
				{Literal: "!=", Type: Ne},
				{Literal: ".NULL.", Type: Nil},
				{Literal: "or", Type: Or},
				{Literal: "!", Type: Not},
				{Literal: ".T.", Type: Bool},
				{Type: EOL},
				{Type: EOF},
			},
		},
		{
			Input: "obj.items[0](true, false, null)",
			Tokens: []Token{
				{Literal: "obj", Type: Ident},
				{Literal: ".", Type: Dot},
				{Literal: "items", Type: Ident},
				{Literal: "[", Type: Lsquare},
				{Literal: "0", Type: Number},
				{Literal: "]", Type: Rsquare},
				{Literal: "(", Type: Lparen},
				{Literal: "true", Type: Bool},
				{Literal: ",", Type: Comma},
				{Literal: "false", Type: Bool},
				{Literal: ",", Type: Comma},
				{Literal: "null", Type: Nil},
				{Literal: ")", Type: Rparen},
				{Type: EOL},
				{Type: EOF},
			},
		},
		{
			Input: "// comment\n\n\nfoo /* multi\nline */ bar\n\n",
			Tokens: []Token{
				{Literal: "foo", Type: Ident},
				{Literal: "bar", Type: Ident},
				{Type: EOL},
				{Type: EOF},
			},
		},
		{
			Input: "a;\n\n;b",
			Tokens: []Token{
				{Literal: "a", Type: Ident},
				{Literal: ";", Type: EOL},
				{Literal: "b", Type: Ident},
				{Type: EOL},
				{Type: EOF},
			},
		},
		{
			Input: "iffy endifé Função",
			Tokens: []Token{
				{Literal: "iffy", Type: Ident},
				{Literal: "endifé", Type: Ident},
				{Literal: "Função", Type: Ident},
				{Type: EOL},
				{Type: EOF},
			},
		},
	}
	for _, c := range tests {
		got := scanAll(t, c.Input)
		if len(got) != len(c.Tokens) {
			t.Errorf("%q: want %d tokens, got %d (%v)", c.Input, len(c.Tokens), len(got), got)
			continue
		}
		for i, tok := range got {
			want := c.Tokens[i]
			if tok.Type != want.Type || tok.Literal != want.Literal {
				t.Errorf("%q: token %d: want %s, got %s", c.Input, i, want, tok)
			}
		}
	}
}

func TestScanKeywordsIgnoreCase(t *testing.T) {
	for _, kw := range []string{"endfunc", "ENDFUNC", "EndFunc"} {
		list := scanAll(t, kw)
		if !list[0].Is("endfunc") {
			t.Errorf("%s: keyword expected, got %s", kw, list[0])
		}
	}
}

func TestScanPosition(t *testing.T) {
	list := scanAll(t, "a = 1\n  bc")
	want := []Position{
		{Line: 1, Column: 1},
		{Line: 1, Column: 3},
		{Line: 1, Column: 5},
		{Line: 1, Column: 6},
		{Line: 2, Column: 3},
	}
	for i, pos := range want {
		if list[i].Position != pos {
			t.Errorf("token %d (%s): want position %s, got %s", i, list[i], pos, list[i].Position)
		}
	}
}

func TestScanError(t *testing.T) {
	scan := ScanString("a = #b")
	for {
		_, err := scan.Scan()
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrLexical) {
			t.Fatalf("lexical error expected, got %s", err)
		}
		var perr *PositionError
		if !errors.As(err, &perr) {
			t.Fatalf("position error expected, got %T", err)
		}
		if perr.Column != 5 {
			t.Errorf("error expected at column 5, got %d", perr.Column)
		}
		return
	}
}

func TestScanReader(t *testing.T) {
	scan, err := Scan(strings.NewReader("\ufeffLOCAL"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	tok, err := scan.Scan()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !tok.Is("local") {
		t.Errorf("keyword expected after byte order mark, got %s", tok)
	}
}
