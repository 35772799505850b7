package fox

type Node interface {
	node()
}

type Statement interface {
	Node
	statement()
}

type Expression interface {
	Node
	expression()
}

type Program struct {
	Body []Statement
}

type BlockStatement struct {
	Body []Statement
}

type ExpressionStatement struct {
	Expr Expression
}

const (
	ScopeLocal  = "local"
	ScopePublic = "public"
)

type VariableStatement struct {
	Scope string
	List  []VariableDeclaration
}

// VariableDeclaration has an empty Type when no AS clause is given and a nil
// Init without initializer.
type VariableDeclaration struct {
	Ident Identifier
	Type  string
	Init  Expression
}

type ReturnStatement struct {
	Expr Expression
}

type IfStatement struct {
	Cdt Expression
	Csq BlockStatement
	Alt *BlockStatement
}

type FunctionStatement struct {
	Ident  Identifier
	Params []Identifier
	Body   BlockStatement
}

type Identifier struct {
	Name string
}

type NumericLiteral struct {
	Value int64
}

type StringLiteral struct {
	Value string
}

type BooleanLiteral struct {
	Value bool
}

type NullLiteral struct{}

type UnaryExpression struct {
	Op    rune
	Right Expression
}

type BinaryExpression struct {
	Op    rune
	Left  Expression
	Right Expression
}

type LogicalExpression struct {
	Op    rune
	Left  Expression
	Right Expression
}

// AssignmentExpression has Op set to Assign for a plain assignment and to the
// arithmetic operator of a compound one.
type AssignmentExpression struct {
	Op     rune
	Target Expression
	Value  Expression
}

type CallExpression struct {
	Callee Expression
	Args   []Expression
}

type MemberExpression struct {
	Computed bool
	Object   Expression
	Property Expression
}

type CreateObjectExpression struct {
	Class Expression
	Args  []Expression
}

type ThisExpression struct{}

type DoDefaultExpression struct{}

func (Program) node()             {}
func (BlockStatement) node()      {}
func (ExpressionStatement) node() {}
func (VariableStatement) node()   {}
func (VariableDeclaration) node() {}
func (ReturnStatement) node()     {}
func (IfStatement) node()         {}
func (FunctionStatement) node()   {}

func (BlockStatement) statement()      {}
func (ExpressionStatement) statement() {}
func (VariableStatement) statement()   {}
func (ReturnStatement) statement()     {}
func (IfStatement) statement()         {}
func (FunctionStatement) statement()   {}

func (Identifier) node()             {}
func (NumericLiteral) node()         {}
func (StringLiteral) node()          {}
func (BooleanLiteral) node()         {}
func (NullLiteral) node()            {}
func (UnaryExpression) node()        {}
func (BinaryExpression) node()       {}
func (LogicalExpression) node()      {}
func (AssignmentExpression) node()   {}
func (CallExpression) node()         {}
func (MemberExpression) node()       {}
func (CreateObjectExpression) node() {}
func (ThisExpression) node()         {}
func (DoDefaultExpression) node()    {}

func (Identifier) expression()             {}
func (NumericLiteral) expression()         {}
func (StringLiteral) expression()          {}
func (BooleanLiteral) expression()         {}
func (NullLiteral) expression()            {}
func (UnaryExpression) expression()        {}
func (BinaryExpression) expression()       {}
func (LogicalExpression) expression()      {}
func (AssignmentExpression) expression()   {}
func (CallExpression) expression()         {}
func (MemberExpression) expression()       {}
func (CreateObjectExpression) expression() {}
func (ThisExpression) expression()         {}
func (DoDefaultExpression) expression()    {}
