package solver

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"typefuzz/internal/term"
)

// DefaultLogic is the SMT-LIB logic declared by the external adapter;
// quantifier-free linear integer arithmetic covers the generated grammar.
const DefaultLogic = "QF_LIA"

// Extern drives an external SMT-LIB v2 solver binary (z3, cvc5) one process
// per CheckSat: it renders the accumulated assertions into a script, pipes
// it over stdin and parses the verdict line. Process and parse failures,
// including wall-clock cancellation from the context, become error
// outcomes — observing backend misbehavior is the point, so nothing panics.
type Extern struct {
	// Bin is the solver executable; Args are passed before the implicit
	// stdin script (e.g. "-in" for z3).
	Bin  string
	Args []string
	// Logic overrides DefaultLogic when non-empty.
	Logic string

	asserted []*term.Term
}

// NewExtern returns an adapter for the given solver invocation.
func NewExtern(bin string, args ...string) *Extern {
	return &Extern{Bin: bin, Args: args}
}

func (e *Extern) Assert(t *term.Term) error {
	if t == nil {
		return fmt.Errorf("assert nil formula")
	}
	e.asserted = append(e.asserted, t)
	return nil
}

func (e *Extern) Reset() {
	e.asserted = e.asserted[:0]
}

// Script renders the accumulated assertions as a complete SMT-LIB v2
// script: logic, integer declarations for every free variable, one assert
// per formula, then check-sat.
func (e *Extern) Script() string {
	logic := e.Logic
	if logic == "" {
		logic = DefaultLogic
	}
	var b strings.Builder
	fmt.Fprintf(&b, "(set-logic %s)\n", logic)
	for _, name := range e.freeVars() {
		fmt.Fprintf(&b, "(declare-const %s Int)\n", name)
	}
	for _, f := range e.asserted {
		fmt.Fprintf(&b, "(assert %s)\n", f)
	}
	b.WriteString("(check-sat)\n")
	return b.String()
}

func (e *Extern) freeVars() []string {
	seen := map[string]bool{}
	var names []string
	for _, f := range e.asserted {
		for _, name := range term.Vars(f, nil) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func (e *Extern) CheckSat(ctx context.Context) Outcome {
	if e.Bin == "" {
		return Errorf("no solver binary configured")
	}
	cmd := exec.CommandContext(ctx, e.Bin, e.Args...)
	cmd.Stdin = strings.NewReader(e.Script())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return Errorf("timeout")
	}
	out := parseVerdict(&stdout)
	if err != nil && out.Status != StatusSat && out.Status != StatusUnsat {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return Errorf("solver process: %s", msg)
	}
	return out
}

// parseVerdict scans solver output for the first verdict line. Anything
// else (diagnostics, empty output) is an error outcome.
func parseVerdict(out *bytes.Buffer) Outcome {
	sc := bufio.NewScanner(out)
	for sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "sat":
			return Sat
		case "unsat":
			return Unsat
		case "unknown":
			return Unknown
		case "":
			continue
		default:
			return Errorf("unexpected solver output: %s", strings.TrimSpace(sc.Text()))
		}
	}
	return Errorf("solver produced no verdict")
}
