package fox

import (
	"errors"
	"fmt"

	"github.com/midbel/foxlang/environ"
)

var (
	ErrLexical     = errors.New("lexical error")
	ErrSyntax      = errors.New("syntax error")
	ErrUndefined   = environ.ErrUndefined
	ErrType        = errors.New("type mismatch")
	ErrCallable    = errors.New("not callable")
	ErrArity       = errors.New("arity mismatch")
	ErrExhausted   = errors.New("resource exhausted")
	ErrZero        = errors.New("division by zero")
	ErrUnsupported = errors.New("unsupported expression")
)

// PositionError reports a lexical or syntax error at a location of the source.
type PositionError struct {
	Position
	Err     error
	Message string

	eof bool
}

func positionError(pos Position, err error, msg string, args ...any) *PositionError {
	return &PositionError{
		Position: pos,
		Err:      err,
		Message:  fmt.Sprintf(msg, args...),
	}
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Err, e.Position, e.Message)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// IsIncomplete reports whether err was caused by an input ending before the
// end of a statement.
func IsIncomplete(err error) bool {
	var perr *PositionError
	return errors.As(err, &perr) && perr.eof
}
