package lambda

import (
	"fmt"
	"strconv"
)

// Term represents a lambda calculus term.
type Term interface {
	String() string
}

// Var represents a variable occurrence. Tag is zero for free variables and
// for terms that have not been canonicalized; canonicalization assigns tags
// starting at 1 to every occurrence captured by a binder. Substitution
// identifies binders by tag, never by name.
type Var struct {
	Name string
	Tag  uint
}

func (v Var) String() string {
	if v.Tag == 0 {
		return v.Name
	}
	return v.Name + strconv.FormatUint(uint64(v.Tag), 10)
}

// Abs represents an abstraction (lambda). After canonicalization Param
// carries the tag shared by every occurrence it captures.
type Abs struct {
	Param Var
	Body  Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(\\%s. %s)", a.Param, a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// NewVar constructs an untagged variable term.
func NewVar(name string) Term {
	return Var{Name: name}
}

// NewAbs constructs an abstraction binding name over body.
func NewAbs(name string, body Term) Term {
	return Abs{Param: Var{Name: name}, Body: body}
}

// NewApp constructs an application of fun to arg.
func NewApp(fun, arg Term) Term {
	return App{Fun: fun, Arg: arg}
}

// Equal reports whether two terms have the same shape with matching variable
// names and tags throughout.
func Equal(a, b Term) bool {
	switch at := a.(type) {
	case Var:
		bt, ok := b.(Var)
		return ok && at == bt
	case Abs:
		bt, ok := b.(Abs)
		return ok && at.Param == bt.Param && Equal(at.Body, bt.Body)
	case App:
		bt, ok := b.(App)
		return ok && Equal(at.Fun, bt.Fun) && Equal(at.Arg, bt.Arg)
	default:
		return false
	}
}
