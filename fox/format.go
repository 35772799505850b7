package fox

import (
	"strconv"
	"strings"
)

const indent = "  "

// Format renders node as source text. Parsing the result of a parsed tree
// gives back the same tree.
func Format(node Node) string {
	var p printer
	p.print(node)
	return strings.TrimRight(p.String(), "\n")
}

type printer struct {
	strings.Builder
	level int
}

func (p *printer) print(node Node) {
	switch n := node.(type) {
	case Program:
		p.printList(n.Body)
	case BlockStatement:
		p.printList(n.Body)
	case Statement:
		p.printStatement(n)
	case Expression:
		p.printExpr(n)
	case VariableDeclaration:
		p.printDeclaration(n)
	}
}

func (p *printer) printList(list []Statement) {
	for _, s := range list {
		p.printStatement(s)
	}
}

func (p *printer) line(parts ...string) {
	p.WriteString(strings.Repeat(indent, p.level))
	for _, s := range parts {
		p.WriteString(s)
	}
	p.WriteByte('\n')
}

func (p *printer) block(body BlockStatement) {
	p.level++
	p.printList(body.Body)
	p.level--
}

func (p *printer) printStatement(stmt Statement) {
	switch s := stmt.(type) {
	case ExpressionStatement:
		p.line(expression(s.Expr))
	case BlockStatement:
		p.printList(s.Body)
	case VariableStatement:
		var list []string
		for _, d := range s.List {
			list = append(list, declaration(d))
		}
		p.line(strings.ToUpper(s.Scope), " ", strings.Join(list, ", "))
	case ReturnStatement:
		if s.Expr == nil {
			p.line("RETURN")
			break
		}
		p.line("RETURN ", expression(s.Expr))
	case IfStatement:
		p.line("IF ", expression(s.Cdt), " THEN")
		p.block(s.Csq)
		if s.Alt != nil {
			p.line("ELSE")
			p.block(*s.Alt)
		}
		p.line("ENDIF")
	case FunctionStatement:
		var params []string
		for _, i := range s.Params {
			params = append(params, i.Name)
		}
		p.line("FUNCTION ", s.Ident.Name, "(", strings.Join(params, ", "), ")")
		p.block(s.Body)
		p.line("ENDFUNC")
	}
}

func (p *printer) printDeclaration(decl VariableDeclaration) {
	p.WriteString(declaration(decl))
}

func (p *printer) printExpr(expr Expression) {
	p.WriteString(expression(expr))
}

func declaration(decl VariableDeclaration) string {
	str := decl.Ident.Name
	if decl.Type != "" {
		str += " AS " + decl.Type
	}
	if decl.Init != nil {
		str += " = " + expression(decl.Init)
	}
	return str
}

func expression(expr Expression) string {
	switch e := expr.(type) {
	case Identifier:
		return e.Name
	case NumericLiteral:
		return strconv.FormatInt(e.Value, 10)
	case StringLiteral:
		if strings.Contains(e.Value, `"`) {
			return "'" + e.Value + "'"
		}
		return `"` + e.Value + `"`
	case BooleanLiteral:
		return Boolean(e.Value).String()
	case NullLiteral:
		return Null{}.String()
	case UnaryExpression:
		return operator(e.Op) + operand(e.Right)
	case BinaryExpression:
		return operand(e.Left) + " " + operator(e.Op) + " " + operand(e.Right)
	case LogicalExpression:
		return operand(e.Left) + " " + operator(e.Op) + " " + operand(e.Right)
	case AssignmentExpression:
		op := "="
		if e.Op != Assign {
			op = operator(e.Op) + "="
		}
		return expression(e.Target) + " " + op + " " + expression(e.Value)
	case CallExpression:
		return operand(e.Callee) + "(" + arguments(e.Args) + ")"
	case MemberExpression:
		obj := operand(e.Object)
		if e.Computed {
			return obj + "[" + expression(e.Property) + "]"
		}
		prop := expression(e.Property)
		if ambiguous(prop) {
			return obj + ". " + prop
		}
		return obj + "." + prop
	case CreateObjectExpression:
		return "CREATEOBJECT " + operand(e.Class) + "(" + arguments(e.Args) + ")"
	case ThisExpression:
		return "THIS"
	case DoDefaultExpression:
		return "DODEFAULT"
	default:
		return ""
	}
}

// operand wraps in parentheses the operators used as operand.
func operand(expr Expression) string {
	switch expr.(type) {
	case BinaryExpression, LogicalExpression, AssignmentExpression:
		return "(" + expression(expr) + ")"
	case UnaryExpression:
		return "(" + expression(expr) + ")"
	default:
		return expression(expr)
	}
}

func arguments(args []Expression) string {
	var list []string
	for _, a := range args {
		list = append(list, expression(a))
	}
	return strings.Join(list, ", ")
}

// ambiguous reports whether a property glued to its dot would be read back
// as a dotted literal or operator.
func ambiguous(prop string) bool {
	switch lower(prop) {
	case "t", "f", "null", "and", "or":
		return true
	default:
		return false
	}
}
