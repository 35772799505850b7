package fox

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

type effect int8

const (
	emit effect = iota
	ignore
	terminate
)

type rule struct {
	re     *regexp.Regexp
	kind   rune
	effect effect
}

func token(pattern string, kind rune) rule {
	return rule{
		re:   regexp.MustCompile(`^(?i:` + pattern + `)`),
		kind: kind,
	}
}

func skip(pattern string) rule {
	r := token(pattern, EOF)
	r.effect = ignore
	return r
}

func newline(pattern string) rule {
	r := token(pattern, EOL)
	r.effect = terminate
	return r
}

func word(kw string) rule {
	return token(`\b`+kw+`\b`, Keyword)
}

var keywords = []string{
	"as",
	"local",
	"public",
	"if",
	"then",
	"else",
	"endif",
	"return",
	"while",
	"endwhile",
	"repeat",
	"until",
	"class",
	"endclass",
	"this",
	"createobject",
	"for",
	"to",
	"step",
	"endfor",
	"dodefault",
	"function",
	"lparameters",
	"endfunc",
}

// rules are tried in order; the first one matching a non empty prefix of the
// remaining input wins.
var rules = func() []rule {
	list := []rule{
		skip(`[ \t\r\f]+`),
		newline(`\n+`),
		token(`;`, EOL),
		skip(`//[^\n]*`),
		skip(`/\*[\s\S]*?\*/`),
		token(`<=`, Le),
		token(`>=`, Ge),
		token(`<`, Lt),
		token(`>`, Gt),
		token(`==`, Eq),
		token(`!=`, Ne),
		token(`\.and\.|\band\b`, And),
		token(`\.or\.|\bor\b`, Or),
		token(`!`, Not),
		token(`\.t\.|\btrue\b`, Bool),
		token(`\.f\.|\bfalse\b`, Bool),
		token(`\.null\.|\bnull\b`, Nil),
	}
	for _, kw := range keywords {
		list = append(list, word(kw))
	}
	return append(list,
		token(`=`, Assign),
		token(`[+\-*/]=`, CompoundAssign),
		token(`\+`, Add),
		token(`-`, Sub),
		token(`\*`, Mul),
		token(`/`, Div),
		token(`\d+`, Number),
		token(`"[^"]*"`, Text),
		token(`'[^']*'`, Text),
		identifier,
		token(`\(`, Lparen),
		token(`\)`, Rparen),
		token(`\[`, Lsquare),
		token(`\]`, Rsquare),
		token(`\.`, Dot),
		token(`,`, Comma),
	)
}()

type Scanner struct {
	input  string
	cursor int
	Position

	last  rune
	count int
}

func Scan(r io.Reader) (*Scanner, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	buf, _ = bytes.CutPrefix(buf, []byte{0xef, 0xbb, 0xbf})
	return ScanString(string(buf)), nil
}

func ScanString(str string) *Scanner {
	if !strings.HasSuffix(str, "\n") {
		str += "\n"
	}
	s := Scanner{
		input: str,
		last:  EOF,
	}
	s.Line = 1
	s.Column = 1
	return &s
}

// Scan returns the next token of the input. A terminator is only given when
// a real token has been given before and the previous one was not already a
// terminator.
func (s *Scanner) Scan() (Token, error) {
	for !s.done() {
		rest := s.input[s.cursor:]
		r, lit, ok := match(rest)
		if !ok {
			return Token{}, positionError(s.Position, ErrLexical, "unexpected input %q", excerpt(rest))
		}
		tok := Token{
			Literal:  lit,
			Type:     r.kind,
			Position: s.Position,
		}
		s.advance(lit)
		if r.effect == ignore {
			continue
		}
		if tok.Type == EOL {
			if s.count == 0 || s.last == EOL {
				continue
			}
			if r.effect == terminate {
				tok.Literal = ""
			}
		}
		return s.record(tok), nil
	}
	return Token{Type: EOF, Position: s.Position}, nil
}

func match(str string) (rule, string, bool) {
	for _, r := range rules {
		lit := r.re.FindString(str)
		if lit == "" {
			continue
		}
		if isWord(r.kind) {
			// \b only knows ascii letters
			if id := identifier.re.FindString(str); len(id) > len(lit) {
				return identifier, id, true
			}
		}
		return r, lit, true
	}
	return rule{}, "", false
}

var identifier = token(`[\p{L}\p{N}_]+`, Ident)

func isWord(kind rune) bool {
	switch kind {
	case Keyword, Bool, Nil, And, Or:
		return true
	default:
		return false
	}
}

func (s *Scanner) record(tok Token) Token {
	s.last = tok.Type
	s.count++
	return tok
}

func (s *Scanner) advance(lit string) {
	s.cursor += len(lit)
	for _, c := range lit {
		if c == '\n' {
			s.Line++
			s.Column = 1
			continue
		}
		s.Column++
	}
}

func (s *Scanner) done() bool {
	return s.cursor >= len(s.input)
}

func excerpt(str string) string {
	if i := strings.IndexByte(str, '\n'); i >= 0 {
		str = str[:i]
	}
	const max = 32
	if utf8.RuneCountInString(str) <= max {
		return str
	}
	return string([]rune(str)[:max]) + "..."
}

func lower(str string) string {
	return strings.ToLower(str)
}
