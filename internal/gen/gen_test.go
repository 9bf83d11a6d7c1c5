package gen

import (
	"testing"

	"typefuzz/internal/term"
)

func TestArithmeticDepthBound(t *testing.T) {
	for _, maxDepth := range []int{0, 1, 2, 3, 5} {
		opts := DefaultOptions()
		opts.MaxArithDepth = maxDepth
		g := New(NewSource(7), opts)
		// Operators may appear at recursion counters 0..maxDepth, plus the
		// literal level below them.
		limit := maxDepth + 2
		for i := 0; i < 500; i++ {
			tm := g.Arithmetic(0)
			if d := term.Depth(tm); d > limit {
				t.Fatalf("maxDepth=%d: generated depth %d > %d: %s", maxDepth, d, limit, tm)
			}
		}
	}
}

func TestBooleanDepthBound(t *testing.T) {
	opts := DefaultOptions()
	g := New(NewSource(11), opts)
	// Connective levels, one comparison level, then a full arithmetic tree.
	limit := opts.MaxBoolDepth + opts.MaxArithDepth + 4
	for i := 0; i < 500; i++ {
		tm := g.Boolean(0)
		if d := term.Depth(tm); d > limit {
			t.Fatalf("generated depth %d > %d: %s", d, limit, tm)
		}
	}
}

func TestGeneratedTermsWellTyped(t *testing.T) {
	g := New(NewSource(3), DefaultOptions())
	for i := 0; i < 1000; i++ {
		a := g.Arithmetic(0)
		if err := term.Check(a); err != nil {
			t.Fatalf("arithmetic term %s: %v", a, err)
		}
		if got := term.SortOf(a); got != term.SortInt {
			t.Fatalf("arithmetic term %s has sort %v", a, got)
		}
		b := g.Boolean(0)
		if err := term.Check(b); err != nil {
			t.Fatalf("boolean term %s: %v", b, err)
		}
		if got := term.SortOf(b); got != term.SortBool {
			t.Fatalf("boolean term %s has sort %v", b, got)
		}
	}
}

func TestDeterminism(t *testing.T) {
	const seed = 42
	first := New(NewSource(seed), DefaultOptions())
	second := New(NewSource(seed), DefaultOptions())
	for i := 0; i < 200; i++ {
		a, b := first.Boolean(0), second.Boolean(0)
		if a.String() != b.String() {
			t.Fatalf("iteration %d: %q != %q", i, a, b)
		}
	}
}

func TestDistinctSeedsDiverge(t *testing.T) {
	a := New(NewSource(1), DefaultOptions())
	b := New(NewSource(2), DefaultOptions())
	same := true
	for i := 0; i < 50; i++ {
		if a.Boolean(0).String() != b.Boolean(0).String() {
			same = false
			break
		}
	}
	if same {
		t.Error("50 draws from distinct seeds produced identical terms")
	}
}

func TestIntLiteralRange(t *testing.T) {
	opts := DefaultOptions()
	opts.IntMin, opts.IntMax = -5, 5
	g := New(NewSource(9), opts)
	seen := map[int64]bool{}
	for i := 0; i < 2000; i++ {
		v := g.IntLiteral().Int
		if v < -5 || v > 5 {
			t.Fatalf("literal %d outside [-5, 5]", v)
		}
		seen[v] = true
	}
	// Inclusive bounds must actually be reachable.
	if !seen[-5] || !seen[5] {
		t.Errorf("bounds never drawn: seen=%v", seen)
	}
}

func TestSourceIntBetweenDegenerate(t *testing.T) {
	s := NewSource(1)
	if got := s.IntBetween(3, 3); got != 3 {
		t.Errorf("IntBetween(3,3) = %d, want 3", got)
	}
}
