package fox

// Tree gives a generic representation of node made of maps, slices and
// scalars, suitable for encoders.
func Tree(node Node) any {
	switch n := node.(type) {
	case Program:
		return map[string]any{"program": statements(n.Body)}
	case BlockStatement:
		return map[string]any{"block": statements(n.Body)}
	case ExpressionStatement:
		return map[string]any{"expression": Tree(n.Expr)}
	case VariableStatement:
		var list []any
		for _, d := range n.List {
			list = append(list, Tree(d))
		}
		return map[string]any{n.Scope: list}
	case VariableDeclaration:
		decl := map[string]any{"name": n.Ident.Name}
		if n.Type != "" {
			decl["type"] = n.Type
		}
		if n.Init != nil {
			decl["init"] = Tree(n.Init)
		}
		return decl
	case ReturnStatement:
		if n.Expr == nil {
			return map[string]any{"return": nil}
		}
		return map[string]any{"return": Tree(n.Expr)}
	case IfStatement:
		stmt := map[string]any{
			"if":   Tree(n.Cdt),
			"then": statements(n.Csq.Body),
		}
		if n.Alt != nil {
			stmt["else"] = statements(n.Alt.Body)
		}
		return stmt
	case FunctionStatement:
		var params []string
		for _, p := range n.Params {
			params = append(params, p.Name)
		}
		return map[string]any{
			"function": n.Ident.Name,
			"params":   params,
			"body":     statements(n.Body.Body),
		}
	case Identifier:
		return map[string]any{"ident": n.Name}
	case NumericLiteral:
		return n.Value
	case StringLiteral:
		return n.Value
	case BooleanLiteral:
		return n.Value
	case NullLiteral:
		return nil
	case UnaryExpression:
		return map[string]any{
			"unary":   operator(n.Op),
			"operand": Tree(n.Right),
		}
	case BinaryExpression:
		return map[string]any{
			"binary": operator(n.Op),
			"left":   Tree(n.Left),
			"right":  Tree(n.Right),
		}
	case LogicalExpression:
		return map[string]any{
			"logical": operator(n.Op),
			"left":    Tree(n.Left),
			"right":   Tree(n.Right),
		}
	case AssignmentExpression:
		op := "="
		if n.Op != Assign {
			op = operator(n.Op) + "="
		}
		return map[string]any{
			"assign": op,
			"target": Tree(n.Target),
			"value":  Tree(n.Value),
		}
	case CallExpression:
		return map[string]any{
			"call": Tree(n.Callee),
			"args": expressions(n.Args),
		}
	case MemberExpression:
		return map[string]any{
			"member":   Tree(n.Object),
			"property": Tree(n.Property),
			"computed": n.Computed,
		}
	case CreateObjectExpression:
		return map[string]any{
			"createobject": Tree(n.Class),
			"args":         expressions(n.Args),
		}
	case ThisExpression:
		return "THIS"
	case DoDefaultExpression:
		return "DODEFAULT"
	default:
		return nil
	}
}

func statements(list []Statement) []any {
	var res []any
	for _, s := range list {
		res = append(res, Tree(s))
	}
	return res
}

func expressions(list []Expression) []any {
	var res []any
	for _, e := range list {
		res = append(res, Tree(e))
	}
	return res
}
