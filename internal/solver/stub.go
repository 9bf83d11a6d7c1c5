package solver

import (
	"context"

	"typefuzz/internal/term"
)

// Stub is a scripted backend for driver tests. It records every asserted
// formula and answers CheckSat from a fixed script, repeating the final
// entry once the script is exhausted. An empty script always answers Sat.
type Stub struct {
	Script []Outcome

	asserted []*term.Term
	calls    int
	resets   int
}

// NewStub returns a stub answering each CheckSat call from script in order.
func NewStub(script ...Outcome) *Stub {
	return &Stub{Script: script}
}

func (s *Stub) Assert(t *term.Term) error {
	s.asserted = append(s.asserted, t)
	return nil
}

func (s *Stub) CheckSat(ctx context.Context) Outcome {
	idx := s.calls
	s.calls++
	if len(s.Script) == 0 {
		return Sat
	}
	if idx >= len(s.Script) {
		idx = len(s.Script) - 1
	}
	return s.Script[idx]
}

func (s *Stub) Reset() {
	s.asserted = s.asserted[:0]
	s.resets++
}

// Asserted returns the formulas accumulated since the last Reset.
func (s *Stub) Asserted() []*term.Term { return s.asserted }

// Checks returns how many CheckSat calls the stub has served.
func (s *Stub) Checks() int { return s.calls }

// Resets returns how many times the stub was reset.
func (s *Stub) Resets() int { return s.resets }
