// Package term defines the immutable expression tree asserted against SMT
// solvers: literal and variable leaves plus binary arithmetic, comparison
// and boolean-connective operators, with sort inference and invariant
// checking over finished trees.
package term

import "fmt"

// Term is one node of an expression tree. Terms are immutable once built:
// constructors are the only writers, and children are never replaced.
type Term struct {
	Kind Kind

	// Leaf payloads; exactly one is meaningful, selected by Kind.
	Int  int64
	Bool bool
	Name string

	// Args holds operator children in operand order. Nil for leaves.
	Args []*Term
}

// Int builds an integer literal leaf.
func Int(v int64) *Term {
	return &Term{Kind: KindIntLit, Int: v}
}

// Bool builds a boolean literal leaf.
func Bool(v bool) *Term {
	return &Term{Kind: KindBoolLit, Bool: v}
}

// Var builds a free variable leaf. The generator never emits variables; they
// exist for hand-built constraint sets and external-solver declarations.
func Var(name string) *Term {
	return &Term{Kind: KindVar, Name: name}
}

// Op builds a binary operator application. It does not sort-check its
// children: deliberately ill-typed trees are legal to build (solver
// front-end probes rely on that) and are rejected later by Check.
func Op(kind Kind, left, right *Term) *Term {
	return &Term{Kind: kind, Args: []*Term{left, right}}
}

// SortOf infers the sort a term evaluates to. Variables are treated as
// SortInt, matching their use as integer unknowns in declarations.
func SortOf(t *Term) Sort {
	switch t.Kind {
	case KindBoolLit:
		return SortBool
	case KindIntLit, KindVar:
		return SortInt
	}
	return t.Kind.ResultSort()
}

// Depth returns the structural depth of t: 1 for a leaf, 1 plus the deepest
// child otherwise.
func Depth(t *Term) int {
	if len(t.Args) == 0 {
		return 1
	}
	max := 0
	for _, a := range t.Args {
		if d := Depth(a); d > max {
			max = d
		}
	}
	return max + 1
}

// Size returns the number of nodes in t.
func Size(t *Term) int {
	n := 1
	for _, a := range t.Args {
		n += Size(a)
	}
	return n
}

// Check verifies the structural invariants of a finished tree: every
// operator carries exactly its arity and every child evaluates to the
// operator's operand sort. Leaves always pass.
func Check(t *Term) error {
	if t == nil {
		return fmt.Errorf("nil term")
	}
	if !t.Kind.IsOperator() {
		if len(t.Args) != 0 {
			return fmt.Errorf("leaf %s carries %d children", t.Kind, len(t.Args))
		}
		return nil
	}
	if len(t.Args) != t.Kind.Arity() {
		return fmt.Errorf("operator %s has %d children, want %d", t.Kind, len(t.Args), t.Kind.Arity())
	}
	want := t.Kind.OperandSort()
	for i, a := range t.Args {
		if a == nil {
			return fmt.Errorf("operator %s has nil child %d", t.Kind, i)
		}
		if got := SortOf(a); got != want {
			return fmt.Errorf("operator %s child %d is %s, want %s", t.Kind, i, got, want)
		}
		if err := Check(a); err != nil {
			return err
		}
	}
	return nil
}

// Vars appends the names of free variables in t to dst, left to right,
// without deduplication.
func Vars(t *Term, dst []string) []string {
	if t.Kind == KindVar {
		return append(dst, t.Name)
	}
	for _, a := range t.Args {
		dst = Vars(a, dst)
	}
	return dst
}
