package fox

import "fmt"

const (
	EOF rune = -(iota + 1)
	EOL
	Keyword
	Ident
	Text
	Number
	Bool
	Nil
	Assign
	CompoundAssign
	Add
	Sub
	Mul
	Div
	Not
	And
	Or
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Dot
	Comma
	Lparen
	Rparen
	Lsquare
	Rsquare
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Literal string
	Type    rune
	Position
}

// Is reports whether tok is the keyword kw. kw must be given in lower case.
func (t Token) Is(kw string) bool {
	return t.Type == Keyword && lower(t.Literal) == kw
}

func (t Token) String() string {
	var prefix string
	switch t.Type {
	case EOF:
		return "<eof>"
	case EOL:
		return "<eol>"
	case Dot:
		return "<dot>"
	case Comma:
		return "<comma>"
	case Lparen:
		return "<lparen>"
	case Rparen:
		return "<rparen>"
	case Lsquare:
		return "<lsquare>"
	case Rsquare:
		return "<rsquare>"
	case Assign:
		return "<assign>"
	case Add:
		return "<add>"
	case Sub:
		return "<sub>"
	case Mul:
		return "<mul>"
	case Div:
		return "<div>"
	case Not:
		return "<not>"
	case Eq:
		return "<eq>"
	case Ne:
		return "<ne>"
	case Lt:
		return "<lt>"
	case Le:
		return "<le>"
	case Gt:
		return "<gt>"
	case Ge:
		return "<ge>"
	case And:
		return "<and>"
	case Or:
		return "<or>"
	case CompoundAssign:
		prefix = "assign"
	case Keyword:
		prefix = "keyword"
	case Bool:
		prefix = "boolean"
	case Nil:
		prefix = "null"
	case Ident:
		prefix = "identifier"
	case Text:
		prefix = "string"
	case Number:
		prefix = "number"
	default:
		prefix = "unknown"
	}
	return fmt.Sprintf("%s(%s)", prefix, t.Literal)
}

// kindName describes a token type in error messages.
func kindName(kind rune) string {
	switch kind {
	case EOF:
		return "end of input"
	case EOL:
		return "end of statement"
	case Keyword:
		return "keyword"
	case Ident:
		return "identifier"
	case Text:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case Nil:
		return "null"
	case Assign, CompoundAssign:
		return "assignment operator"
	case Dot:
		return "'.'"
	case Comma:
		return "','"
	case Lparen:
		return "'('"
	case Rparen:
		return "')'"
	case Lsquare:
		return "'['"
	case Rsquare:
		return "']'"
	default:
		return "operator"
	}
}

// operator gives the source form of an operator token type.
func operator(kind rune) string {
	switch kind {
	case Assign:
		return "="
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Not:
		return "!"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}
