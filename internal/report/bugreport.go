package report

import (
	"fmt"
	"io"

	"typefuzz/internal/probe"
	"typefuzz/internal/solver"
	"typefuzz/internal/term"
)

// WriteBugReport drafts a markdown issue body for one suspicious finding,
// embedding a self-contained SMT-LIB reproduction script.
func WriteBugReport(w io.Writer, solverName string, f probe.Finding) {
	fmt.Fprintf(w, "## Bug Report: %s\n\n", f.Probe.Name)
	fmt.Fprintf(w, "**Solver:** %s\n", solverName)
	fmt.Fprintf(w, "**Category:** %s\n", f.Probe.Category)
	fmt.Fprintf(w, "**Observed:** %s\n\n", f.Outcome)

	fmt.Fprintf(w, "## Steps to Reproduce\n\n")
	fmt.Fprintf(w, "```smt2\n")
	fmt.Fprintf(w, "(set-logic %s)\n", solver.DefaultLogic)
	seen := map[string]bool{}
	for _, c := range f.Probe.Constraints {
		for _, name := range term.Vars(c, nil) {
			if !seen[name] {
				seen[name] = true
				fmt.Fprintf(w, "(declare-const %s Int)\n", name)
			}
		}
	}
	for _, c := range f.Probe.Constraints {
		fmt.Fprintf(w, "(assert %s)\n", c)
	}
	fmt.Fprintf(w, "(check-sat)\n")
	fmt.Fprintf(w, "```\n\n")

	fmt.Fprintf(w, "## Expected Behavior\n\n")
	fmt.Fprintf(w, "A sat/unsat verdict, or a proper error message for ill-typed input.\n")
}
