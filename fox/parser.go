package fox

import (
	"io"
	"strconv"
	"strings"
)

const DefaultMaxNesting = 256

func ParseString(str string) (Program, error) {
	return NewParser(ScanString(str)).Parse()
}

func Parse(r io.Reader) (Program, error) {
	scan, err := Scan(r)
	if err != nil {
		return Program{}, err
	}
	return NewParser(scan).Parse()
}

type Parser struct {
	// MaxNesting bounds how deep statements and expressions can be nested.
	MaxNesting int

	scan  *Scanner
	curr  Token
	depth int
}

func NewParser(scan *Scanner) *Parser {
	return &Parser{
		MaxNesting: DefaultMaxNesting,
		scan:       scan,
	}
}

func (p *Parser) Parse() (Program, error) {
	var prog Program
	if err := p.next(); err != nil {
		return prog, err
	}
	body, err := p.parseList(func() bool { return false })
	if err != nil {
		return prog, err
	}
	if !p.done() {
		return prog, p.unexpected(kindName(EOF))
	}
	prog.Body = body
	return prog, nil
}

func (p *Parser) parseList(stop func() bool) ([]Statement, error) {
	var list []Statement
	for {
		if err := p.skip(EOL); err != nil {
			return nil, err
		}
		if p.done() || stop() {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)
	}
	return list, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.curr.Is("local"), p.curr.Is("public"):
		return p.parseVariable()
	case p.curr.Is("return"):
		return p.parseReturn()
	case p.curr.Is("if"):
		return p.parseIf()
	case p.curr.Is("function"):
		return p.parseFunction()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVariable() (Statement, error) {
	stmt := VariableStatement{
		Scope: lower(p.curr.Literal),
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	for {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		stmt.List = append(stmt.List, decl)
		if !p.is(Comma) {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return stmt, p.terminate()
}

func (p *Parser) parseDeclaration() (VariableDeclaration, error) {
	var (
		decl VariableDeclaration
		err  error
	)
	if decl.Ident, err = p.parseIdentifier(); err != nil {
		return decl, err
	}
	if p.curr.Is("as") {
		if err = p.next(); err != nil {
			return decl, err
		}
		typ, err := p.parseIdentifier()
		if err != nil {
			return decl, err
		}
		decl.Type = typ.Name
	}
	if p.is(Assign) {
		if err = p.next(); err != nil {
			return decl, err
		}
		decl.Init, err = p.parseAssignment()
	}
	return decl, err
}

func (p *Parser) parseReturn() (Statement, error) {
	var (
		stmt ReturnStatement
		err  error
	)
	if err = p.next(); err != nil {
		return nil, err
	}
	if !p.is(EOL) && !p.done() && !p.closing() {
		if stmt.Expr, err = p.parseAssignment(); err != nil {
			return nil, err
		}
	}
	return stmt, p.terminate()
}

func (p *Parser) parseIf() (Statement, error) {
	var (
		stmt IfStatement
		err  error
	)
	if err = p.next(); err != nil {
		return nil, err
	}
	if stmt.Cdt, err = p.parseAssignment(); err != nil {
		return nil, err
	}
	if p.curr.Is("then") {
		if err = p.next(); err != nil {
			return nil, err
		}
	} else if err = p.expect(EOL); err != nil {
		return nil, err
	}
	stmt.Csq.Body, err = p.parseList(func() bool {
		return p.curr.Is("else") || p.curr.Is("endif")
	})
	if err != nil {
		return nil, err
	}
	if p.curr.Is("else") {
		if err = p.next(); err != nil {
			return nil, err
		}
		var alt BlockStatement
		alt.Body, err = p.parseList(func() bool {
			return p.curr.Is("endif")
		})
		if err != nil {
			return nil, err
		}
		stmt.Alt = &alt
	}
	return stmt, p.expectKeyword("endif")
}

func (p *Parser) parseFunction() (Statement, error) {
	var (
		stmt FunctionStatement
		err  error
	)
	if err = p.next(); err != nil {
		return nil, err
	}
	if stmt.Ident, err = p.parseIdentifier(); err != nil {
		return nil, err
	}
	if p.is(Lparen) {
		if err = p.next(); err != nil {
			return nil, err
		}
		if !p.is(Rparen) {
			if stmt.Params, err = p.parseParameters(); err != nil {
				return nil, err
			}
		}
		if err = p.expect(Rparen); err != nil {
			return nil, err
		}
	}
	if err = p.terminate(); err != nil {
		return nil, err
	}
	if err = p.skip(EOL); err != nil {
		return nil, err
	}
	if p.curr.Is("lparameters") {
		if len(stmt.Params) > 0 {
			return nil, positionError(p.curr.Position, ErrSyntax, "parameters declared twice for function %s", stmt.Ident.Name)
		}
		if err = p.next(); err != nil {
			return nil, err
		}
		if stmt.Params, err = p.parseParameters(); err != nil {
			return nil, err
		}
		if err = p.terminate(); err != nil {
			return nil, err
		}
	}
	stmt.Body.Body, err = p.parseList(func() bool {
		return p.curr.Is("endfunc")
	})
	if err != nil {
		return nil, err
	}
	return stmt, p.expectKeyword("endfunc")
}

func (p *Parser) parseParameters() ([]Identifier, error) {
	var list []Identifier
	for {
		ident, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		list = append(list, ident)
		if !p.is(Comma) {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (p *Parser) parseExpressionStatement() (Statement, error) {
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return ExpressionStatement{Expr: expr}, p.terminate()
}

func (p *Parser) parseAssignment() (Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.is(Assign) && !p.is(CompoundAssign) {
		return left, nil
	}
	switch left.(type) {
	case Identifier, MemberExpression:
	default:
		return nil, positionError(p.curr.Position, ErrSyntax, "invalid left-hand side in assignment")
	}
	expr := AssignmentExpression{
		Op:     Assign,
		Target: left,
	}
	if p.is(CompoundAssign) {
		expr.Op = compounds[p.curr.Literal[0]]
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	if expr.Value, err = p.parseAssignment(); err != nil {
		return nil, err
	}
	return expr, nil
}

var compounds = map[byte]rune{
	'+': Add,
	'-': Sub,
	'*': Mul,
	'/': Div,
}

func (p *Parser) parseOr() (Expression, error) {
	return p.parseLogical(p.parseAnd, Or)
}

func (p *Parser) parseAnd() (Expression, error) {
	return p.parseLogical(p.parseEquality, And)
}

func (p *Parser) parseLogical(operand func() (Expression, error), op rune) (Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.is(op) {
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = LogicalExpression{
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseEquality() (Expression, error) {
	return p.parseBinary(p.parseRelational, Eq, Ne)
}

func (p *Parser) parseRelational() (Expression, error) {
	return p.parseBinary(p.parseTerm, Lt, Gt, Le, Ge)
}

func (p *Parser) parseTerm() (Expression, error) {
	return p.parseBinary(p.parseFactor, Add, Sub)
}

func (p *Parser) parseFactor() (Expression, error) {
	return p.parseBinary(p.parseUnary, Mul, Div)
}

func (p *Parser) parseBinary(operand func() (Expression, error), ops ...rune) (Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.is(ops...) {
		op := p.curr.Type
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = BinaryExpression{
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Expression, error) {
	if !p.is(Add, Sub, Not) {
		return p.parseCall()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	expr := UnaryExpression{
		Op: p.curr.Type,
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

func (p *Parser) parseCall() (Expression, error) {
	expr, err := p.parseMember()
	if err != nil {
		return nil, err
	}
	for p.is(Lparen) {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		expr = CallExpression{
			Callee: expr,
			Args:   args,
		}
	}
	return expr, nil
}

func (p *Parser) parseMember() (Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.is(Dot, Lsquare) {
		member := MemberExpression{
			Computed: p.is(Lsquare),
			Object:   expr,
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		if member.Computed {
			if member.Property, err = p.parseAssignment(); err != nil {
				return nil, err
			}
			if err := p.expect(Rsquare); err != nil {
				return nil, err
			}
		} else {
			if member.Property, err = p.parseIdentifier(); err != nil {
				return nil, err
			}
		}
		expr = member
	}
	return expr, nil
}

func (p *Parser) parseArguments() ([]Expression, error) {
	if err := p.expect(Lparen); err != nil {
		return nil, err
	}
	var args []Expression
	for !p.is(Rparen) {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.is(Comma) {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return args, p.expect(Rparen)
}

func (p *Parser) parsePrimary() (Expression, error) {
	switch {
	case p.is(Number):
		return p.parseNumber()
	case p.is(Text):
		return p.parseString()
	case p.is(Bool):
		return p.parseBoolean()
	case p.is(Nil):
		return NullLiteral{}, p.next()
	case p.is(Ident):
		return p.parseIdentifier()
	case p.is(Lparen):
		return p.parseGroup()
	case p.curr.Is("this"):
		return ThisExpression{}, p.next()
	case p.curr.Is("dodefault"):
		return DoDefaultExpression{}, p.next()
	case p.curr.Is("createobject"):
		return p.parseCreateObject()
	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) parseNumber() (Expression, error) {
	n, err := strconv.ParseInt(p.curr.Literal, 10, 64)
	if err != nil {
		return nil, positionError(p.curr.Position, ErrSyntax, "invalid number %s", p.curr.Literal)
	}
	return NumericLiteral{Value: n}, p.next()
}

func (p *Parser) parseString() (Expression, error) {
	str := p.curr.Literal
	return StringLiteral{Value: str[1 : len(str)-1]}, p.next()
}

func (p *Parser) parseBoolean() (Expression, error) {
	lit := lower(p.curr.Literal)
	return BooleanLiteral{Value: lit == "true" || lit == ".t."}, p.next()
}

func (p *Parser) parseIdentifier() (Identifier, error) {
	if !p.is(Ident) {
		return Identifier{}, p.unexpected(kindName(Ident))
	}
	ident := Identifier{
		Name: p.curr.Literal,
	}
	return ident, p.next()
}

func (p *Parser) parseGroup() (Expression, error) {
	if err := p.expect(Lparen); err != nil {
		return nil, err
	}
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return expr, p.expect(Rparen)
}

func (p *Parser) parseCreateObject() (Expression, error) {
	var (
		expr CreateObjectExpression
		err  error
	)
	if err = p.next(); err != nil {
		return nil, err
	}
	if expr.Class, err = p.parseMember(); err != nil {
		return nil, err
	}
	if expr.Args, err = p.parseArguments(); err != nil {
		return nil, err
	}
	return expr, nil
}

// terminate consumes the end of a statement. It can be omitted before a
// keyword closing a block and at the end of input.
func (p *Parser) terminate() error {
	if p.is(EOL) {
		return p.next()
	}
	if p.done() || p.closing() {
		return nil
	}
	return p.unexpected(kindName(EOL))
}

func (p *Parser) closing() bool {
	return p.curr.Is("else") || p.curr.Is("endif") || p.curr.Is("endfunc")
}

func (p *Parser) enter() error {
	p.depth++
	if p.MaxNesting > 0 && p.depth > p.MaxNesting {
		return positionError(p.curr.Position, ErrExhausted, "nesting deeper than %d levels", p.MaxNesting)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) skip(kind rune) error {
	for p.is(kind) {
		if err := p.next(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) expect(kind rune) error {
	if !p.is(kind) {
		return p.unexpected(kindName(kind))
	}
	return p.next()
}

func (p *Parser) expectKeyword(kw string) error {
	if !p.curr.Is(kw) {
		return p.unexpected(strings.ToUpper(kw))
	}
	return p.next()
}

func (p *Parser) unexpected(want string) error {
	if p.done() {
		err := positionError(p.curr.Position, ErrSyntax, "unexpected end of input, expected %s", want)
		err.eof = true
		return err
	}
	var got string
	switch {
	case p.is(EOL) && p.curr.Literal == "":
		got = "end of line"
	default:
		got = strconv.Quote(p.curr.Literal)
	}
	return positionError(p.curr.Position, ErrSyntax, "unexpected token %s, expected %s", got, want)
}

func (p *Parser) is(kinds ...rune) bool {
	for _, k := range kinds {
		if p.curr.Type == k {
			return true
		}
	}
	return false
}

func (p *Parser) done() bool {
	return p.is(EOF)
}

func (p *Parser) next() error {
	tok, err := p.scan.Scan()
	if err != nil {
		return err
	}
	p.curr = tok
	return nil
}
