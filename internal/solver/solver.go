// Package solver defines the narrow capability the fuzzer needs from an SMT
// backend, and ships three implementations: a scripted stub for driver
// tests, an evaluating backend deciding the ground fragment, and an adapter
// driving an external SMT-LIB v2 solver process.
package solver

import (
	"context"
	"fmt"

	"typefuzz/internal/term"
)

// Status classifies one satisfiability check.
type Status uint8

const (
	// StatusSat means the asserted set has a satisfying assignment.
	StatusSat Status = iota
	// StatusUnsat means the asserted set is inconsistent.
	StatusUnsat
	// StatusUnknown means the backend could not decide.
	StatusUnknown
	// StatusError means the backend failed (crash, malformed input, timeout).
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	case StatusUnknown:
		return "unknown"
	case StatusError:
		return "error"
	}
	return "UNKNOWN"
}

// Outcome is the classified result of one CheckSat call.
type Outcome struct {
	Status Status
	// Reason carries detail for StatusError outcomes.
	Reason string
}

// Sat, Unsat and Unknown are the fixed non-error outcomes.
var (
	Sat     = Outcome{Status: StatusSat}
	Unsat   = Outcome{Status: StatusUnsat}
	Unknown = Outcome{Status: StatusUnknown}
)

// Errorf builds a StatusError outcome with a formatted reason.
func Errorf(format string, args ...any) Outcome {
	return Outcome{Status: StatusError, Reason: fmt.Sprintf(format, args...)}
}

func (o Outcome) String() string {
	if o.Status == StatusError && o.Reason != "" {
		return "error: " + o.Reason
	}
	return o.Status.String()
}

// Interface is the three-operation capability consumed by the fuzz driver.
// Assert accumulates a formula into backend state, CheckSat classifies the
// accumulated set (repeatable without reasserting), Reset clears it. The
// context on CheckSat carries harness-imposed wall-clock limits; a backend
// that observes cancellation reports it as an error outcome, never a panic.
type Interface interface {
	Assert(t *term.Term) error
	CheckSat(ctx context.Context) Outcome
	Reset()
}
