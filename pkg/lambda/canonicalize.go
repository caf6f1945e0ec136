package lambda

// scope maps a variable name to the tag of its nearest enclosing binder.
type scope map[string]uint

func (s scope) extend(name string, tag uint) scope {
	child := make(scope, len(s)+1)
	for k, v := range s {
		child[k] = v
	}
	child[name] = tag
	return child
}

// Canonicalize rewrites t so that every bound variable occurrence carries the
// tag of its binder, leaving free variables untagged. Binders are numbered by
// a counter threaded through the whole pass, so two distinct binders never
// share a tag, even across independent application branches.
func Canonicalize(t Term) Term {
	var next uint
	return canonicalize(t, scope{}, &next)
}

func canonicalize(t Term, sc scope, next *uint) Term {
	switch tt := t.(type) {
	case Abs:
		*next++
		tag := *next
		body := canonicalize(tt.Body, sc.extend(tt.Param.Name, tag), next)
		return Abs{Param: Var{Name: tt.Param.Name, Tag: tag}, Body: body}
	case App:
		// Neither branch mutates the scope, so both share it.
		fun := canonicalize(tt.Fun, sc, next)
		arg := canonicalize(tt.Arg, sc, next)
		return App{Fun: fun, Arg: arg}
	case Var:
		if tag, ok := sc[tt.Name]; ok {
			return Var{Name: tt.Name, Tag: tag}
		}
		return Var{Name: tt.Name}
	default:
		return t
	}
}
