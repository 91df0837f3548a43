package resolver

import (
	"fmt"
	"reflect"

	"github.com/kbukum/regkit/errors"
	"github.com/kbukum/regkit/util"
)

// For resolves T from the provider with type safety.
//
// Example:
//
//	log, err := resolver.For[Logger](p)
func For[T any](p *Provider) (T, error) {
	var zero T
	if p == nil {
		return zero, errors.MissingReference("provider")
	}

	value, err := p.Resolve(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, errors.TypeMismatch(
			util.TypeName(reflect.TypeOf((*T)(nil)).Elem()),
			util.TypeName(reflect.TypeOf(value)),
		)
	}
	return typed, nil
}

// MustFor resolves T from the provider and panics on failure. Use it in
// wiring code where a missing registration is a programming error.
func MustFor[T any](p *Provider) T {
	value, err := For[T](p)
	if err != nil {
		panic(fmt.Sprintf("resolver: %v", err))
	}
	return value
}
