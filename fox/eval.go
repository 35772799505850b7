package fox

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"strings"

	"github.com/midbel/foxlang/environ"
)

const (
	DefaultMaxDepth      = 10000
	DefaultMaxStringSize = 1 << 24
)

type StringOrder int8

const (
	// HashOrder compares strings by their hash code.
	HashOrder StringOrder = iota
	LexicalOrder
)

func (o StringOrder) String() string {
	if o == LexicalOrder {
		return "lexical"
	}
	return "hash"
}

// Options of an Interpreter. A zero limit gives its default, a negative one
// disables it.
type Options struct {
	MaxDepth      int
	MaxStringSize int
	StringOrder   StringOrder
	Logger        *slog.Logger
}

type Interpreter struct {
	Options

	global environ.Environment[Value]
	depth  int
}

func NewInterpreter(opts Options) *Interpreter {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxStringSize == 0 {
		opts.MaxStringSize = DefaultMaxStringSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Interpreter{Options: opts}
}

// Evaluate runs prog with the default options.
func Evaluate(prog Program, ev environ.Environment[Value]) (Value, error) {
	return NewInterpreter(Options{}).Evaluate(prog, ev)
}

func Eval(r io.Reader, ev environ.Environment[Value]) (Value, error) {
	prog, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Evaluate(prog, ev)
}

func EvalString(str string, ev environ.Environment[Value]) (Value, error) {
	return Eval(strings.NewReader(str), ev)
}

// Evaluate runs prog in ev which is also the environment receiving PUBLIC
// declarations. A RETURN at top level stops the program with its value.
func (i *Interpreter) Evaluate(prog Program, ev environ.Environment[Value]) (Value, error) {
	if ev == nil {
		ev = environ.Empty[Value]()
	}
	i.global, i.depth = ev, 0
	defer func() {
		i.global = nil
	}()
	res, err := i.execList(prog.Body, ev)
	if err != nil {
		return nil, err
	}
	return res.result(), nil
}

// outcome of a statement. A nil Value when the statement produces nothing.
type outcome struct {
	Value
	returning bool
}

func (o outcome) result() Value {
	if o.Value == nil {
		return Null{}
	}
	return o.Value
}

func completed(v Value) outcome {
	return outcome{Value: v}
}

func (i *Interpreter) execList(list []Statement, ev environ.Environment[Value]) (outcome, error) {
	var last outcome
	for _, s := range list {
		res, err := i.exec(s, ev)
		if err != nil {
			return res, err
		}
		if res.returning {
			return res, nil
		}
		if res.Value != nil {
			last = res
		}
	}
	return last, nil
}

func (i *Interpreter) exec(stmt Statement, ev environ.Environment[Value]) (outcome, error) {
	if err := i.enter(); err != nil {
		return outcome{}, err
	}
	defer i.leave()

	switch s := stmt.(type) {
	case ExpressionStatement:
		v, err := i.eval(s.Expr, ev)
		return completed(v), err
	case BlockStatement:
		return i.execList(s.Body, ev)
	case VariableStatement:
		return i.execVariable(s, ev)
	case ReturnStatement:
		return i.execReturn(s, ev)
	case IfStatement:
		return i.execIf(s, ev)
	case FunctionStatement:
		return i.execFunction(s, ev)
	default:
		return outcome{}, fmt.Errorf("%T: %w", stmt, ErrUnsupported)
	}
}

func (i *Interpreter) execVariable(stmt VariableStatement, ev environ.Environment[Value]) (outcome, error) {
	target := ev
	if stmt.Scope == ScopePublic && i.global != nil {
		target = i.global
	}
	for _, d := range stmt.List {
		v, err := i.initialize(d, target, ev)
		if err != nil {
			return outcome{}, err
		}
		target.Define(d.Ident.Name, v)
	}
	return outcome{}, nil
}

// initialize evaluates the initializer of d in target first and, when it fails,
// a second time in ev.
func (i *Interpreter) initialize(d VariableDeclaration, target, ev environ.Environment[Value]) (Value, error) {
	if d.Init == nil {
		if d.Type == "" {
			return Null{}, nil
		}
		return zeroOf(d.Type), nil
	}
	v, err := i.eval(d.Init, target)
	if err == nil || target == ev || errors.Is(err, ErrExhausted) {
		return v, err
	}
	i.Logger.Debug("initializer retried in local scope", slog.String("var", lower(d.Ident.Name)), slog.Any("err", err))
	return i.eval(d.Init, ev)
}

func (i *Interpreter) execReturn(stmt ReturnStatement, ev environ.Environment[Value]) (outcome, error) {
	res := outcome{
		Value:     Null{},
		returning: true,
	}
	if stmt.Expr == nil {
		return res, nil
	}
	v, err := i.eval(stmt.Expr, ev)
	if err != nil {
		return outcome{}, err
	}
	res.Value = v
	return res, nil
}

func (i *Interpreter) execIf(stmt IfStatement, ev environ.Environment[Value]) (outcome, error) {
	cdt, err := i.eval(stmt.Cdt, ev)
	if err != nil {
		return outcome{}, err
	}
	var res outcome
	switch {
	case isTrue(cdt):
		res, err = i.execList(stmt.Csq.Body, ev)
	case stmt.Alt != nil:
		res, err = i.execList(stmt.Alt.Body, ev)
	}
	if err == nil && res.Value == nil {
		res.Value = Null{}
	}
	return res, err
}

func (i *Interpreter) execFunction(stmt FunctionStatement, ev environ.Environment[Value]) (outcome, error) {
	fn := Closure{
		Func: stmt,
		Env:  ev,
	}
	ev.Define(stmt.Ident.Name, &fn)
	return outcome{}, nil
}

func (i *Interpreter) eval(expr Expression, ev environ.Environment[Value]) (Value, error) {
	if err := i.enter(); err != nil {
		return nil, err
	}
	defer i.leave()

	switch e := expr.(type) {
	case NumericLiteral:
		return Integer(e.Value), nil
	case StringLiteral:
		return String(e.Value), nil
	case BooleanLiteral:
		return Boolean(e.Value), nil
	case NullLiteral:
		return Null{}, nil
	case Identifier:
		return ev.Lookup(e.Name)
	case UnaryExpression:
		return i.evalUnary(e, ev)
	case BinaryExpression:
		return i.evalBinary(e, ev)
	case LogicalExpression:
		return i.evalLogical(e, ev)
	case AssignmentExpression:
		return i.evalAssignment(e, ev)
	case CallExpression:
		return i.evalCall(e, ev)
	case MemberExpression:
		return nil, fmt.Errorf("member access: %w", ErrUnsupported)
	case CreateObjectExpression:
		return nil, fmt.Errorf("CREATEOBJECT: %w", ErrUnsupported)
	case ThisExpression:
		return nil, fmt.Errorf("THIS: %w", ErrUnsupported)
	case DoDefaultExpression:
		return nil, fmt.Errorf("DODEFAULT: %w", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%T: %w", expr, ErrUnsupported)
	}
}

func (i *Interpreter) evalUnary(expr UnaryExpression, ev environ.Environment[Value]) (Value, error) {
	right, err := i.eval(expr.Right, ev)
	if err != nil {
		return nil, err
	}
	switch expr.Op {
	case Add, Sub:
		n, ok := right.(Integer)
		if !ok {
			return nil, fmt.Errorf("%s%s: operand must be a number: %w", operator(expr.Op), right.Type(), ErrType)
		}
		if expr.Op == Sub {
			n = -n
		}
		return n, nil
	case Not:
		b, ok := right.(Boolean)
		if !ok {
			return nil, fmt.Errorf("!%s: operand must be a boolean: %w", right.Type(), ErrType)
		}
		return !b, nil
	default:
		return nil, fmt.Errorf("unary %s: %w", operator(expr.Op), ErrUnsupported)
	}
}

func (i *Interpreter) evalLogical(expr LogicalExpression, ev environ.Environment[Value]) (Value, error) {
	left, err := i.eval(expr.Left, ev)
	if err != nil {
		return nil, err
	}
	b, ok := left.(Boolean)
	if !ok {
		return nil, fmt.Errorf("%s %s: operand must be a boolean: %w", left.Type(), operator(expr.Op), ErrType)
	}
	if (expr.Op == Or && bool(b)) || (expr.Op == And && !bool(b)) {
		return b, nil
	}
	return i.eval(expr.Right, ev)
}

func (i *Interpreter) evalBinary(expr BinaryExpression, ev environ.Environment[Value]) (Value, error) {
	left, err := i.eval(expr.Left, ev)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(expr.Right, ev)
	if err != nil {
		return nil, err
	}
	return i.binary(expr.Op, left, right)
}

func (i *Interpreter) binary(op rune, left, right Value) (Value, error) {
	switch x := left.(type) {
	case Integer:
		if y, ok := right.(Integer); ok {
			return integerOp(op, x, y)
		}
	case Boolean:
		if y, ok := right.(Boolean); ok {
			return booleanOp(op, x, y)
		}
	case String:
		switch y := right.(type) {
		case String:
			return i.stringOp(op, x, y)
		case Integer:
			if op == Mul {
				return i.repeat(x, y)
			}
		}
	}
	return nil, mismatch(op, left, right)
}

func mismatch(op rune, left, right Value) error {
	return fmt.Errorf("%s %s %s: %w", left.Type(), operator(op), right.Type(), ErrType)
}

func integerOp(op rune, x, y Integer) (Value, error) {
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mul:
		return x * y, nil
	case Div:
		if y == 0 {
			return nil, ErrZero
		}
		return x / y, nil
	default:
		return compare(op, int64(x), int64(y), x, y)
	}
}

func booleanOp(op rune, x, y Boolean) (Value, error) {
	if op == Mul {
		return x && y, nil
	}
	return compare(op, x.integer(), y.integer(), x, y)
}

func (i *Interpreter) stringOp(op rune, x, y String) (Value, error) {
	switch op {
	case Add, Sub:
		if i.MaxStringSize > 0 && len(x)+len(y) > i.MaxStringSize {
			return nil, fmt.Errorf("string longer than %d bytes: %w", i.MaxStringSize, ErrExhausted)
		}
		return x + y, nil
	case Eq:
		return Boolean(x == y), nil
	case Ne:
		return Boolean(x != y), nil
	}
	if i.StringOrder == LexicalOrder {
		return compare(op, int64(strings.Compare(string(x), string(y))), 0, x, y)
	}
	return compare(op, hashCode(x), hashCode(y), x, y)
}

func (i *Interpreter) repeat(str String, count Integer) (Value, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative repeat count %d: %w", count, ErrType)
	}
	if i.MaxStringSize > 0 && count > 0 && int64(len(str)) > int64(i.MaxStringSize)/int64(count) {
		return nil, fmt.Errorf("string longer than %d bytes: %w", i.MaxStringSize, ErrExhausted)
	}
	return String(strings.Repeat(string(str), int(count))), nil
}

func compare(op rune, x, y int64, left, right Value) (Value, error) {
	switch op {
	case Eq:
		return Boolean(x == y), nil
	case Ne:
		return Boolean(x != y), nil
	case Lt:
		return Boolean(x < y), nil
	case Le:
		return Boolean(x <= y), nil
	case Gt:
		return Boolean(x > y), nil
	case Ge:
		return Boolean(x >= y), nil
	default:
		return nil, mismatch(op, left, right)
	}
}

// hashCode is the 32 bits FNV-1a hash of str read as a signed integer.
func hashCode(str String) int64 {
	h := fnv.New32a()
	io.WriteString(h, string(str))
	return int64(int32(h.Sum32()))
}

func (i *Interpreter) evalAssignment(expr AssignmentExpression, ev environ.Environment[Value]) (Value, error) {
	ident, ok := expr.Target.(Identifier)
	if !ok {
		return nil, fmt.Errorf("assignment to member: %w", ErrUnsupported)
	}
	var current Value
	if expr.Op != Assign {
		v, err := ev.Lookup(ident.Name)
		if err != nil {
			return nil, err
		}
		current = v
	}
	v, err := i.eval(expr.Value, ev)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if v, err = i.binary(expr.Op, current, v); err != nil {
			return nil, err
		}
	}
	return ev.Assign(ident.Name, v), nil
}

func (i *Interpreter) evalCall(expr CallExpression, ev environ.Environment[Value]) (Value, error) {
	callee, err := i.eval(expr.Callee, ev)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*Closure)
	if !ok {
		return nil, fmt.Errorf("%s: %w", describe(expr.Callee, callee), ErrCallable)
	}
	if len(expr.Args) != fn.Arity() {
		return nil, fmt.Errorf("%s: %w: want %d argument(s), got %d", fn.Name(), ErrArity, fn.Arity(), len(expr.Args))
	}
	sub := environ.Enclosed(fn.Env)
	for j, a := range expr.Args {
		v, err := i.eval(a, ev)
		if err != nil {
			return nil, err
		}
		sub.Define(fn.Func.Params[j].Name, v)
	}
	i.Logger.Debug("function call", slog.String("func", lower(fn.Name())), slog.Int("args", len(expr.Args)), slog.Int("depth", i.depth))

	res, err := i.execList(fn.Func.Body.Body, sub)
	if err != nil {
		return nil, err
	}
	return res.result(), nil
}

func describe(expr Expression, v Value) string {
	if ident, ok := expr.(Identifier); ok {
		return fmt.Sprintf("%s (%s)", ident.Name, v.Type())
	}
	return v.Type()
}

func (i *Interpreter) enter() error {
	i.depth++
	if i.MaxDepth > 0 && i.depth > i.MaxDepth {
		return fmt.Errorf("maximum depth %d exceeded: %w", i.MaxDepth, ErrExhausted)
	}
	return nil
}

func (i *Interpreter) leave() {
	i.depth--
}
