package fox

import (
	"fmt"
	"strconv"

	"github.com/midbel/foxlang/environ"
)

type Value interface {
	Type() string
	fmt.Stringer
}

type Null struct{}

func (Null) Type() string   { return "null" }
func (Null) String() string { return ".NULL." }

type Boolean bool

func (Boolean) Type() string { return "boolean" }

func (b Boolean) String() string {
	if b {
		return ".T."
	}
	return ".F."
}

func (b Boolean) integer() int64 {
	if b {
		return 1
	}
	return 0
}

type Integer int64

func (Integer) Type() string { return "integer" }

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

type String string

func (String) Type() string { return "string" }

func (s String) String() string {
	return string(s)
}

// Closure is a function together with the environment it was defined in.
type Closure struct {
	Func FunctionStatement
	Env  environ.Environment[Value]
}

func (*Closure) Type() string { return "function" }

func (c *Closure) String() string {
	return "FUNCTION " + c.Func.Ident.Name
}

func (c *Closure) Name() string {
	return c.Func.Ident.Name
}

func (c *Closure) Arity() int {
	return len(c.Func.Params)
}

// ValueOf converts a go value to its value in the language. Floats are
// truncated toward zero.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case bool:
		return Boolean(v), nil
	case string:
		return String(v), nil
	case int:
		return Integer(v), nil
	case int8:
		return Integer(v), nil
	case int16:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case uint8:
		return Integer(v), nil
	case uint16:
		return Integer(v), nil
	case uint32:
		return Integer(v), nil
	case float64:
		return Integer(int64(v)), nil
	default:
		return nil, fmt.Errorf("%T: %w", v, ErrType)
	}
}

func isTrue(v Value) bool {
	switch v := v.(type) {
	case Null:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

func zeroOf(typ string) Value {
	switch lower(typ) {
	case "string":
		return String("")
	case "number":
		return Integer(0)
	case "boolean":
		return Boolean(false)
	default:
		return Null{}
	}
}
