package testkit

import (
	"fmt"

	"typefuzz/internal/term"
)

// CheckTermInvariants runs the structural invariants every generated term
// must satisfy:
// 1) every operator carries exactly its arity and sort-correct children
// 2) the tree is within the given structural depth limit
// 3) the rendered form is a balanced s-expression
func CheckTermInvariants(t *term.Term, maxDepth int) error {
	if t == nil {
		return fmt.Errorf("nil term")
	}
	if err := term.Check(t); err != nil {
		return fmt.Errorf("type invariant: %w", err)
	}
	if d := term.Depth(t); d > maxDepth {
		return fmt.Errorf("depth %d exceeds limit %d: %s", d, maxDepth, t)
	}
	if err := checkBalanced(t.String()); err != nil {
		return err
	}
	return nil
}

// GeneratedBoolDepthLimit returns the structural depth bound for boolean
// terms generated under the given caps: connective levels, one comparison
// level, a full arithmetic tree and its literal leaf.
func GeneratedBoolDepthLimit(maxBoolDepth, maxArithDepth int) int {
	return maxBoolDepth + maxArithDepth + 4
}

// GeneratedArithDepthLimit returns the structural depth bound for
// arithmetic terms generated under the given cap.
func GeneratedArithDepthLimit(maxArithDepth int) int {
	return maxArithDepth + 2
}

func checkBalanced(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced rendering at byte %d: %s", i, s)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced rendering: %s", s)
	}
	return nil
}
