// Package report is the presentation boundary: it renders campaign results
// and probe findings for terminals and drafts markdown bug reports for
// suspicious findings. Nothing here feeds back into generation or solving.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"typefuzz/internal/campaign"
	"typefuzz/internal/probe"
	"typefuzz/internal/solver"
)

var (
	satColor     = color.New(color.FgGreen)
	unsatColor   = color.New(color.FgYellow)
	unknownColor = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.Faint)
)

func outcomeColor(o solver.Outcome) *color.Color {
	switch o.Status {
	case solver.StatusSat:
		return satColor
	case solver.StatusUnsat:
		return unsatColor
	case solver.StatusUnknown:
		return unknownColor
	}
	return errorColor
}

// Options controls rendering detail.
type Options struct {
	// Quiet suppresses per-constraint listings, keeping one line per case.
	Quiet bool
}

// RenderResults writes one block per test case: the asserted constraints
// and the classified outcome.
func RenderResults(w io.Writer, results []campaign.Result, opts Options) {
	for _, r := range results {
		fmt.Fprintf(w, "case %d: %s\n", r.Index+1, outcomeColor(r.Outcome).Sprint(r.Outcome))
		if opts.Quiet {
			continue
		}
		for j, c := range r.Constraints {
			fmt.Fprintf(w, "  constraint %d: %s\n", j, c)
		}
	}
}

// Summary aggregates outcome counts over a finished campaign.
type Summary struct {
	Total   int
	Sat     int
	Unsat   int
	Unknown int
	Errors  int
}

// Summarize counts outcomes by status.
func Summarize(results []campaign.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome.Status {
		case solver.StatusSat:
			s.Sat++
		case solver.StatusUnsat:
			s.Unsat++
		case solver.StatusUnknown:
			s.Unknown++
		default:
			s.Errors++
		}
	}
	return s
}

// RenderSummary writes the aggregate line for a finished campaign.
func RenderSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "%d cases: %s %s %s %s\n",
		s.Total,
		satColor.Sprintf("%d sat", s.Sat),
		unsatColor.Sprintf("%d unsat", s.Unsat),
		unknownColor.Sprintf("%d unknown", s.Unknown),
		errorColor.Sprintf("%d errors", s.Errors))
}

// RenderFindings writes one line per probe finding, grouped as listed.
func RenderFindings(w io.Writer, findings []probe.Finding) {
	for _, f := range findings {
		fmt.Fprintf(w, "%-10s %-24s %s %s\n",
			f.Probe.Category,
			f.Probe.Name,
			outcomeColor(f.Outcome).Sprint(f.Outcome),
			dimColor.Sprintf("(%.1f ms)", float64(f.Elapsed.Microseconds())/1000))
	}
}
