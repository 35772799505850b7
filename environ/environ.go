package environ

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUndefined = errors.New("undefined variable")

// Environment is one scope of a lexical chain. Names are case insensitive.
type Environment[T any] interface {
	Define(string, T) T
	Lookup(string) (T, error)
	Assign(string, T) T
	// Resolve returns the environment of the chain owning ident or nil.
	Resolve(string) Environment[T]
}

type Env[T any] struct {
	parent Environment[T]
	values map[string]T
}

func Empty[T any]() Environment[T] {
	return Enclosed[T](nil)
}

func Enclosed[T any](parent Environment[T]) Environment[T] {
	return &Env[T]{
		parent: parent,
		values: make(map[string]T),
	}
}

func (e *Env[T]) Define(ident string, value T) T {
	e.values[normalize(ident)] = value
	return value
}

func (e *Env[T]) Lookup(ident string) (T, error) {
	v, ok := e.values[normalize(ident)]
	if ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Lookup(ident)
	}
	return v, fmt.Errorf("%s: %w", normalize(ident), ErrUndefined)
}

// Assign updates the nearest binding of ident. When no environment of the
// chain owns it, ident is defined in e.
func (e *Env[T]) Assign(ident string, value T) T {
	if owner := e.Resolve(ident); owner != nil {
		return owner.Define(ident, value)
	}
	return e.Define(ident, value)
}

func (e *Env[T]) Resolve(ident string) Environment[T] {
	if _, ok := e.values[normalize(ident)]; ok {
		return e
	}
	if e.parent != nil {
		return e.parent.Resolve(ident)
	}
	return nil
}

// Names returns the identifiers bound in e itself, as stored.
func (e *Env[T]) Names() []string {
	names := make([]string, 0, len(e.values))
	for n := range e.values {
		names = append(names, n)
	}
	return names
}

func normalize(ident string) string {
	return strings.ToLower(ident)
}
