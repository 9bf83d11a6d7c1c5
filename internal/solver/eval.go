package solver

import (
	"context"
	"fmt"

	"typefuzz/internal/term"
)

// Eval is a real backend for the ground fragment: it decides variable-free
// formulas by direct evaluation. Arithmetic is wrapping two's-complement
// int64, which external solvers with unbounded integers may disagree with
// on overflow — the overflow probes exist to surface exactly that.
//
// CheckSat answers Sat when the conjunction of asserted formulas evaluates
// to true, Unsat when it evaluates to false, Unknown when a free variable
// blocks evaluation, and an error outcome for ill-typed formulas.
type Eval struct {
	asserted []*term.Term
}

// NewEval returns an empty evaluating backend.
func NewEval() *Eval { return &Eval{} }

func (e *Eval) Assert(t *term.Term) error {
	if t == nil {
		return fmt.Errorf("assert nil formula")
	}
	e.asserted = append(e.asserted, t)
	return nil
}

func (e *Eval) CheckSat(ctx context.Context) Outcome {
	if err := ctx.Err(); err != nil {
		return Errorf("%v", err)
	}
	sat := true
	for _, f := range e.asserted {
		if got := term.SortOf(f); got != term.SortBool {
			return Errorf("asserted formula is %s, want Bool: %s", got, f)
		}
		if err := term.Check(f); err != nil {
			return Errorf("ill-typed formula: %v", err)
		}
		v, ok := evalBool(f)
		if !ok {
			return Unknown
		}
		sat = sat && v
	}
	if sat {
		return Sat
	}
	return Unsat
}

func (e *Eval) Reset() {
	e.asserted = e.asserted[:0]
}

// evalBool evaluates a well-typed boolean term; ok is false when a free
// variable makes the value undetermined.
func evalBool(t *term.Term) (v, ok bool) {
	switch t.Kind {
	case term.KindBoolLit:
		return t.Bool, true
	case term.KindGt, term.KindLt, term.KindEq:
		l, lok := evalInt(t.Args[0])
		r, rok := evalInt(t.Args[1])
		if !lok || !rok {
			return false, false
		}
		switch t.Kind {
		case term.KindGt:
			return l > r, true
		case term.KindLt:
			return l < r, true
		default:
			return l == r, true
		}
	case term.KindAnd, term.KindOr, term.KindXor:
		l, lok := evalBool(t.Args[0])
		r, rok := evalBool(t.Args[1])
		if !lok || !rok {
			return false, false
		}
		switch t.Kind {
		case term.KindAnd:
			return l && r, true
		case term.KindOr:
			return l || r, true
		default:
			return l != r, true
		}
	}
	return false, false
}

func evalInt(t *term.Term) (v int64, ok bool) {
	switch t.Kind {
	case term.KindIntLit:
		return t.Int, true
	case term.KindVar:
		return 0, false
	case term.KindAdd, term.KindSub, term.KindMul:
		l, lok := evalInt(t.Args[0])
		r, rok := evalInt(t.Args[1])
		if !lok || !rok {
			return 0, false
		}
		switch t.Kind {
		case term.KindAdd:
			return l + r, true
		case term.KindSub:
			return l - r, true
		default:
			return l * r, true
		}
	}
	return 0, false
}
