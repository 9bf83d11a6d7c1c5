// Package probe carries a curated catalogue of solver stress cases: edge
// constraints that historically expose backend bugs (integer overflow,
// deep nesting, constraint volume, type-check gaps). Probes are fixed
// fixtures built on the term model, deliberately outside the random
// generator, and run through the same record-don't-abort loop as
// campaigns.
package probe

import (
	"context"
	"math"
	"strconv"
	"time"

	"typefuzz/internal/solver"
	"typefuzz/internal/term"
)

// Category groups probes by the solver weakness they target.
type Category string

const (
	// CategoryOverflow targets fixed-width integer overflow handling.
	CategoryOverflow Category = "overflow"
	// CategoryNesting targets recursion limits and pathological tree shapes.
	CategoryNesting Category = "nesting"
	// CategoryVolume targets many-variable, many-constraint state handling.
	CategoryVolume Category = "volume"
	// CategoryTypes targets front-end type checking with ill-sorted terms.
	CategoryTypes Category = "types"
)

// Probe is one named constraint set.
type Probe struct {
	Name        string
	Category    Category
	Constraints []*term.Term
}

// Finding records the outcome of running one probe.
type Finding struct {
	Probe   Probe
	Outcome solver.Outcome
	Elapsed time.Duration
}

// Catalog returns the full fixed probe set.
func Catalog() []Probe {
	probes := []Probe{
		{
			Name:     "int32-max-plus-one",
			Category: CategoryOverflow,
			Constraints: []*term.Term{
				term.Op(term.KindGt,
					term.Op(term.KindAdd, term.Int(math.MaxInt32), term.Int(1)),
					term.Int(0)),
			},
		},
		{
			Name:     "int32-max-doubled",
			Category: CategoryOverflow,
			Constraints: []*term.Term{
				term.Op(term.KindGt,
					term.Op(term.KindMul, term.Int(math.MaxInt32), term.Int(2)),
					term.Int(math.MaxInt32)),
			},
		},
		{
			Name:     "int32-min-minus-one",
			Category: CategoryOverflow,
			Constraints: []*term.Term{
				term.Op(term.KindLt,
					term.Op(term.KindSub, term.Int(math.MinInt32), term.Int(1)),
					term.Int(0)),
			},
		},
		{
			Name:     "large-square-plus-one",
			Category: CategoryOverflow,
			Constraints: []*term.Term{
				term.Op(term.KindEq,
					term.Op(term.KindAdd,
						term.Op(term.KindMul, term.Int(1000000), term.Int(1000000)),
						term.Int(1)),
					term.Int(1000000000001)),
			},
		},
		{
			Name:     "int64-wraparound",
			Category: CategoryOverflow,
			// True for wrapping 64-bit arithmetic, false for unbounded
			// integers: a disagreement detector between backends.
			Constraints: []*term.Term{
				term.Op(term.KindLt,
					term.Op(term.KindAdd, term.Int(math.MaxInt64), term.Int(1)),
					term.Int(0)),
			},
		},
		{
			Name:        "deep-connective-chain",
			Category:    CategoryNesting,
			Constraints: []*term.Term{deepConnective(64)},
		},
		{
			Name:        "deep-arithmetic-chain",
			Category:    CategoryNesting,
			Constraints: []*term.Term{term.Op(term.KindEq, deepSum(64), term.Int(64))},
		},
		{
			Name:        "many-variables",
			Category:    CategoryVolume,
			Constraints: fanOut(32),
		},
		{
			Name:     "bool-compared-to-int",
			Category: CategoryTypes,
			Constraints: []*term.Term{
				term.Op(term.KindEq, term.Bool(true), term.Int(1)),
			},
		},
		{
			Name:     "bool-addition",
			Category: CategoryTypes,
			Constraints: []*term.Term{
				term.Op(term.KindGt,
					term.Op(term.KindAdd, term.Bool(true), term.Bool(false)),
					term.Int(0)),
			},
		},
		{
			Name:     "int-conjunction",
			Category: CategoryTypes,
			Constraints: []*term.Term{
				term.Op(term.KindAnd, term.Int(1), term.Int(0)),
			},
		},
	}
	return probes
}

// Run feeds every probe through s, resetting between probes. Backend
// failures are findings, not run failures.
func Run(ctx context.Context, s solver.Interface, probes []Probe) []Finding {
	findings := make([]Finding, 0, len(probes))
	for _, p := range probes {
		started := time.Now()
		outcome := assertAll(ctx, s, p.Constraints)
		s.Reset()
		findings = append(findings, Finding{Probe: p, Outcome: outcome, Elapsed: time.Since(started)})
	}
	return findings
}

func assertAll(ctx context.Context, s solver.Interface, constraints []*term.Term) solver.Outcome {
	for _, c := range constraints {
		if err := s.Assert(c); err != nil {
			return solver.Errorf("assert: %v", err)
		}
	}
	return s.CheckSat(ctx)
}

// deepConnective builds and(or(and(... true false) ...)) n levels deep.
func deepConnective(n int) *term.Term {
	t := term.Bool(true)
	for i := 0; i < n; i++ {
		kind := term.KindAnd
		if i%2 == 1 {
			kind = term.KindOr
		}
		t = term.Op(kind, t, term.Bool(i%2 == 0))
	}
	return t
}

// deepSum builds (+ (+ (+ ... 1) 1) 1) with n ones.
func deepSum(n int) *term.Term {
	t := term.Int(1)
	for i := 1; i < n; i++ {
		t = term.Op(term.KindAdd, t, term.Int(1))
	}
	return t
}

// fanOut builds n alternating sign constraints over distinct variables.
func fanOut(n int) []*term.Term {
	constraints := make([]*term.Term, 0, n)
	for i := 0; i < n; i++ {
		name := "x" + strconv.Itoa(i+1)
		if i%2 == 0 {
			constraints = append(constraints, term.Op(term.KindGt, term.Var(name), term.Int(0)))
		} else {
			constraints = append(constraints, term.Op(term.KindLt, term.Var(name), term.Int(0)))
		}
	}
	return constraints
}
