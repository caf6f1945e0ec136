package lambda

import "errors"

// ErrBudgetExceeded is returned when an Evaluator runs out of beta steps
// before reaching a normal form.
var ErrBudgetExceeded = errors.New("beta-reduction budget exceeded")

// Stats holds reduction statistics.
type Stats struct {
	BetaSteps     uint64
	Substitutions uint64
}

// Evaluator reduces terms to beta-normal form, counting the work performed
// and optionally enforcing a step budget. An Evaluator is single-threaded;
// concurrent evaluations each need their own.
type Evaluator struct {
	stats  Stats
	budget uint64 // 0 = unlimited

	traceBuf []TraceEvent
	traceCap uint64
	traceIdx uint64
	traceOn  bool
}

// NewEvaluator returns an evaluator with no budget and tracing disabled.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// SetBudget bounds the number of beta steps a single Eval or Reduce may
// perform. Zero means unlimited.
func (e *Evaluator) SetBudget(steps uint64) {
	e.budget = steps
}

// Stats returns counters for the work performed so far.
func (e *Evaluator) Stats() Stats {
	return e.stats
}

// Eval canonicalizes t and reduces it to beta-normal form. It does not
// return on terms that have no normal form, unless a budget is set.
func (e *Evaluator) Eval(t Term) (Term, error) {
	return e.Reduce(Canonicalize(t))
}

// Reduce computes the beta-normal form of a canonicalized term.
func (e *Evaluator) Reduce(t Term) (Term, error) {
	return e.reduce(t)
}

// reduce normalizes applications strictly: both sides are reduced to their
// own normal forms before the redex check, and each substitution result is
// reduced again. Abstraction bodies are reduced so the result contains no
// redex anywhere.
func (e *Evaluator) reduce(t Term) (Term, error) {
	switch tt := t.(type) {
	case Var:
		return tt, nil
	case Abs:
		body, err := e.reduce(tt.Body)
		if err != nil {
			return nil, err
		}
		return Abs{Param: tt.Param, Body: body}, nil
	case App:
		fun, err := e.reduce(tt.Fun)
		if err != nil {
			return nil, err
		}
		arg, err := e.reduce(tt.Arg)
		if err != nil {
			return nil, err
		}
		abs, ok := fun.(Abs)
		if !ok {
			return App{Fun: fun, Arg: arg}, nil
		}
		if e.budget != 0 && e.stats.BetaSteps >= e.budget {
			return nil, ErrBudgetExceeded
		}
		e.stats.BetaSteps++
		next := e.substitute(abs.Body, abs.Param, arg)
		e.recordTrace(App{Fun: abs, Arg: arg}, next)
		return e.reduce(next)
	default:
		return t, nil
	}
}

// substitute replaces every occurrence bound by binder with replacement.
// The check is tag equality alone: untagged variables never match, so a free
// variable sharing the binder's name is never rewritten.
func (e *Evaluator) substitute(t Term, binder Var, replacement Term) Term {
	switch tt := t.(type) {
	case Var:
		if binder.Tag != 0 && tt.Tag == binder.Tag {
			e.stats.Substitutions++
			return replacement
		}
		return tt
	case Abs:
		return Abs{Param: tt.Param, Body: e.substitute(tt.Body, binder, replacement)}
	case App:
		return App{
			Fun: e.substitute(tt.Fun, binder, replacement),
			Arg: e.substitute(tt.Arg, binder, replacement),
		}
	default:
		return t
	}
}

// Substitute returns t with every occurrence bound by binder replaced by
// replacement. Variables with a different tag, and untagged variables, are
// left unchanged.
func Substitute(t Term, binder Var, replacement Term) Term {
	var e Evaluator
	return e.substitute(t, binder, replacement)
}

// Reduce computes the beta-normal form of a canonicalized term.
func Reduce(t Term) Term {
	res, _ := NewEvaluator().Reduce(t) // cannot fail without a budget
	return res
}

// Eval reduces t to beta-normal form: canonicalize once, then reduce
// exhaustively. This is the single entry point for callers holding a raw
// term from the front-end.
func Eval(t Term) Term {
	res, _ := NewEvaluator().Eval(t)
	return res
}
