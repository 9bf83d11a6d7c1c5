package probe

import (
	"context"
	"testing"

	"typefuzz/internal/solver"
	"typefuzz/internal/term"
)

func TestCatalogShape(t *testing.T) {
	probes := Catalog()
	if len(probes) == 0 {
		t.Fatal("empty catalogue")
	}
	seen := map[string]bool{}
	byCategory := map[Category]int{}
	for _, p := range probes {
		if p.Name == "" {
			t.Error("probe without a name")
		}
		if seen[p.Name] {
			t.Errorf("duplicate probe name %q", p.Name)
		}
		seen[p.Name] = true
		if len(p.Constraints) == 0 {
			t.Errorf("probe %q has no constraints", p.Name)
		}
		byCategory[p.Category]++
	}
	for _, c := range []Category{CategoryOverflow, CategoryNesting, CategoryVolume, CategoryTypes} {
		if byCategory[c] == 0 {
			t.Errorf("no probes in category %q", c)
		}
	}
}

func TestTypeProbesAreIllTyped(t *testing.T) {
	for _, p := range Catalog() {
		if p.Category != CategoryTypes {
			continue
		}
		wellTyped := true
		for _, c := range p.Constraints {
			if err := term.Check(c); err != nil {
				wellTyped = false
			}
		}
		if wellTyped {
			t.Errorf("type probe %q passes the sort checker", p.Name)
		}
	}
}

func TestNonTypeProbesAreWellTyped(t *testing.T) {
	for _, p := range Catalog() {
		if p.Category == CategoryTypes {
			continue
		}
		for _, c := range p.Constraints {
			if err := term.Check(c); err != nil {
				t.Errorf("probe %q constraint %s: %v", p.Name, c, err)
			}
		}
	}
}

func TestRunAgainstEval(t *testing.T) {
	findings := Run(context.Background(), solver.NewEval(), Catalog())
	if len(findings) != len(Catalog()) {
		t.Fatalf("got %d findings, want %d", len(findings), len(Catalog()))
	}
	byName := map[string]solver.Outcome{}
	for _, f := range findings {
		byName[f.Probe.Name] = f.Outcome
	}
	// Wrapping int64 semantics: MaxInt64+1 < 0 holds.
	if got := byName["int64-wraparound"]; got != solver.Sat {
		t.Errorf("int64-wraparound = %v, want sat", got)
	}
	// Ill-typed probes must surface as adapter errors, not crashes.
	if got := byName["int-conjunction"]; got.Status != solver.StatusError {
		t.Errorf("int-conjunction = %v, want error", got)
	}
	// Free variables are undecidable for the eval backend.
	if got := byName["many-variables"]; got != solver.Unknown {
		t.Errorf("many-variables = %v, want unknown", got)
	}
	// Ground nesting probes stay decidable.
	if got := byName["deep-arithmetic-chain"]; got != solver.Sat {
		t.Errorf("deep-arithmetic-chain = %v, want sat", got)
	}
}

func TestRunRecordsAndContinues(t *testing.T) {
	probes := Catalog()
	script := make([]solver.Outcome, len(probes))
	for i := range script {
		script[i] = solver.Sat
	}
	script[1] = solver.Errorf("crash")
	findings := Run(context.Background(), solver.NewStub(script...), probes)
	if findings[1].Outcome.Status != solver.StatusError {
		t.Errorf("finding 1 = %v, want error", findings[1].Outcome)
	}
	if len(findings) != len(probes) {
		t.Errorf("error finding aborted the run: %d findings", len(findings))
	}
}
