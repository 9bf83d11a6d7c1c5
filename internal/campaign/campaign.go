// Package campaign orchestrates fuzzing runs: it generates boolean
// constraint sets, round-trips them through a solver backend and records
// the classified outcome per test case. Solver misbehavior is data, never a
// driver failure — a campaign always runs to its configured length.
package campaign

import (
	"context"
	"fmt"
	"time"

	"typefuzz/internal/gen"
	"typefuzz/internal/observ"
	"typefuzz/internal/solver"
	"typefuzz/internal/term"
)

// Config parameterizes one campaign. The zero value is invalid; use
// DefaultConfig and override.
type Config struct {
	// Tests is the number of independent test cases.
	Tests int
	// ConstraintsPerTest is the number of boolean formulas asserted per case.
	ConstraintsPerTest int
	// MaxDepth caps arithmetic subtree recursion.
	MaxDepth int
	// MaxBoolDepth caps boolean subtree recursion. Kept separate from
	// MaxDepth: connectives nest more explosively than arithmetic.
	MaxBoolDepth int
	// IntMin and IntMax bound generated integer literals, inclusive.
	IntMin int64
	IntMax int64
	// Seed selects the random stream; 0 means entropy-derived.
	Seed int64
}

// DefaultConfig mirrors the historical defaults: 5 cases of 3 constraints.
func DefaultConfig() Config {
	return Config{
		Tests:              5,
		ConstraintsPerTest: 3,
		MaxDepth:           gen.DefaultMaxArithDepth,
		MaxBoolDepth:       gen.DefaultMaxBoolDepth,
		IntMin:             gen.DefaultIntMin,
		IntMax:             gen.DefaultIntMax,
	}
}

// Validate rejects invalid campaign parameters before any generation
// happens. Config errors fail the whole run; there is no partial campaign.
func (c Config) Validate() error {
	if c.Tests <= 0 {
		return fmt.Errorf("invalid campaign config: tests must be positive, got %d", c.Tests)
	}
	if c.ConstraintsPerTest <= 0 {
		return fmt.Errorf("invalid campaign config: constraints per test must be positive, got %d", c.ConstraintsPerTest)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid campaign config: max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.MaxBoolDepth < 0 {
		return fmt.Errorf("invalid campaign config: bool depth must be non-negative, got %d", c.MaxBoolDepth)
	}
	if c.IntMin > c.IntMax {
		return fmt.Errorf("invalid campaign config: int range [%d, %d] is empty", c.IntMin, c.IntMax)
	}
	return nil
}

func (c Config) options() gen.Options {
	return gen.Options{
		MaxArithDepth: c.MaxDepth,
		MaxBoolDepth:  c.MaxBoolDepth,
		IntMin:        c.IntMin,
		IntMax:        c.IntMax,
	}
}

// seed resolves the effective seed, drawing from entropy for the 0 sentinel.
func (c Config) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return gen.EntropySeed()
}

// Result is the record of one test case: the constraints asserted, the
// solver's classification and how long the round-trip took.
type Result struct {
	Index       int
	Constraints []*term.Term
	Outcome     solver.Outcome
	Elapsed     time.Duration
}

// Run executes one sequential campaign against s. It returns exactly
// cfg.Tests results, each carrying cfg.ConstraintsPerTest constraints, or a
// configuration error before any generation. Solver errors (including
// Assert failures) are recorded as error outcomes and never abort the run.
// The optional sink receives one event per test case transition.
func Run(ctx context.Context, cfg Config, s solver.Interface, sink ProgressSink) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := gen.New(gen.NewSource(cfg.seed()), cfg.options())
	return run(ctx, cfg, g, s, sink, nil)
}

// RunTimed is Run with per-phase timings recorded into timer.
func RunTimed(ctx context.Context, cfg Config, s solver.Interface, sink ProgressSink, timer *observ.Timer) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := gen.New(gen.NewSource(cfg.seed()), cfg.options())
	return run(ctx, cfg, g, s, sink, timer)
}

func run(ctx context.Context, cfg Config, g *gen.Generator, s solver.Interface, sink ProgressSink, timer *observ.Timer) ([]Result, error) {
	results := make([]Result, 0, cfg.Tests)
	for i := 0; i < cfg.Tests; i++ {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("campaign interrupted at case %d: %w", i, err)
		}
		emit(sink, Event{Index: i, Total: cfg.Tests, Status: StatusRunning})

		started := time.Now()
		genPhase := -1
		if timer != nil {
			genPhase = timer.Begin("generate")
		}
		constraints := make([]*term.Term, 0, cfg.ConstraintsPerTest)
		for j := 0; j < cfg.ConstraintsPerTest; j++ {
			constraints = append(constraints, g.Boolean(0))
		}
		if timer != nil {
			timer.End(genPhase, fmt.Sprintf("case %d", i))
		}

		res := Result{Index: i, Constraints: constraints}
		solvePhase := -1
		if timer != nil {
			solvePhase = timer.Begin("solve")
		}
		res.Outcome = roundTrip(ctx, s, constraints)
		if timer != nil {
			timer.End(solvePhase, res.Outcome.Status.String())
		}
		res.Elapsed = time.Since(started)

		// State from this case must never leak into the next one.
		s.Reset()

		results = append(results, res)
		emit(sink, Event{Index: i, Total: cfg.Tests, Status: StatusDone, Outcome: res.Outcome, Elapsed: res.Elapsed})
	}
	return results, nil
}

// roundTrip asserts one constraint set and classifies it. An Assert failure
// is an adapter error outcome for the whole case; the remaining campaign
// continues regardless.
func roundTrip(ctx context.Context, s solver.Interface, constraints []*term.Term) solver.Outcome {
	for _, c := range constraints {
		if err := s.Assert(c); err != nil {
			return solver.Errorf("assert: %v", err)
		}
	}
	return s.CheckSat(ctx)
}
