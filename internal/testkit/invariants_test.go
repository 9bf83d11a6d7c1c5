package testkit

import (
	"testing"

	"typefuzz/internal/term"
)

func TestCheckTermInvariants(t *testing.T) {
	good := term.Op(term.KindAnd,
		term.Op(term.KindGt, term.Int(1), term.Int(0)),
		term.Bool(true))
	if err := CheckTermInvariants(good, 3); err != nil {
		t.Errorf("well-formed term rejected: %v", err)
	}
	if err := CheckTermInvariants(good, 2); err == nil {
		t.Error("depth violation not reported")
	}
	bad := term.Op(term.KindAnd, term.Int(1), term.Bool(true))
	if err := CheckTermInvariants(bad, 10); err == nil {
		t.Error("ill-typed term accepted")
	}
	if err := CheckTermInvariants(nil, 10); err == nil {
		t.Error("nil term accepted")
	}
}

func TestDepthLimits(t *testing.T) {
	if got := GeneratedArithDepthLimit(2); got != 4 {
		t.Errorf("GeneratedArithDepthLimit(2) = %d, want 4", got)
	}
	if got := GeneratedBoolDepthLimit(1, 2); got != 7 {
		t.Errorf("GeneratedBoolDepthLimit(1, 2) = %d, want 7", got)
	}
}
