// Package output converts beta-normal forms into host-facing values: nested
// pairs over a declared set of input identifiers. Anything else in the normal
// form is a reported failure, never a panic inside the evaluator.
package output

import (
	"errors"
	"fmt"

	"github.com/mattnappo/lambdars/pkg/lambda"
)

// ErrNotExpressible reports a normal form that cannot be rendered as nested
// pairs of declared inputs, i.e. one that is or contains an abstraction.
var ErrNotExpressible = errors.New("normal form is not expressible as an output value")

// UndeclaredError reports a free variable in the normal form that was not
// declared as an input.
type UndeclaredError struct {
	Name string
}

func (e *UndeclaredError) Error() string {
	return fmt.Sprintf("normal form contains %q, which is not declared as an input", e.Name)
}

// Value is the host-facing shape of a normal form.
type Value interface {
	String() string
}

// Ident is a declared input name.
type Ident string

func (i Ident) String() string {
	return string(i)
}

// Pair is built from an application node in the normal form.
type Pair struct {
	Left  Value
	Right Value
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.Left, p.Right)
}

// Construct maps a normal form to a Value: applications become pairs and
// every variable must be a declared input.
func Construct(t lambda.Term, inputs map[string]bool) (Value, error) {
	switch tt := t.(type) {
	case lambda.Var:
		if !inputs[tt.Name] {
			return nil, &UndeclaredError{Name: tt.Name}
		}
		return Ident(tt.Name), nil
	case lambda.App:
		left, err := Construct(tt.Fun, inputs)
		if err != nil {
			return nil, err
		}
		right, err := Construct(tt.Arg, inputs)
		if err != nil {
			return nil, err
		}
		return Pair{Left: left, Right: right}, nil
	default:
		return nil, ErrNotExpressible
	}
}
