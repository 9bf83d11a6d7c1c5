// Package gen produces random well-typed terms for solver fuzzing. The
// construction is recursive and depth-biased: at each level a coin decides
// between terminating with a leaf and growing the tree, and a hard depth cap
// bounds recursion regardless of the coin.
package gen

import "typefuzz/internal/term"

// Defaults for generator options. Arithmetic trees are allowed one more
// nesting level than boolean trees; connectives blow up term size faster
// than arithmetic operators, so the two grammars keep independent budgets.
const (
	DefaultMaxArithDepth = 2
	DefaultMaxBoolDepth  = 1
	DefaultIntMin        = -100
	DefaultIntMax        = 100
)

// Options bound the shape of generated terms.
type Options struct {
	// MaxArithDepth is the hard recursion cap for arithmetic subtrees.
	MaxArithDepth int
	// MaxBoolDepth is the hard recursion cap for boolean subtrees.
	MaxBoolDepth int
	// IntMin and IntMax bound generated integer literals, inclusive.
	IntMin int64
	IntMax int64
}

// DefaultOptions returns the option set matching the defaults above.
func DefaultOptions() Options {
	return Options{
		MaxArithDepth: DefaultMaxArithDepth,
		MaxBoolDepth:  DefaultMaxBoolDepth,
		IntMin:        DefaultIntMin,
		IntMax:        DefaultIntMax,
	}
}

// Generator builds random terms from an owned Source. One Generator serves
// one campaign; it is not safe for concurrent use.
type Generator struct {
	src  *Source
	opts Options
}

// New returns a Generator drawing from src under opts.
func New(src *Source, opts Options) *Generator {
	return &Generator{src: src, opts: opts}
}

// IntLiteral returns a fresh integer literal uniform over [IntMin, IntMax].
func (g *Generator) IntLiteral() *term.Term {
	return term.Int(g.src.IntBetween(g.opts.IntMin, g.opts.IntMax))
}

// BoolLiteral returns a fresh boolean literal from a fair coin.
func (g *Generator) BoolLiteral() *term.Term {
	return term.Bool(g.src.Bool())
}

// Arithmetic returns a random SortInt term rooted at the given depth.
// Terminal rule: past the hard cap, or (below the root) on a one-in-three
// coin, emit a literal; otherwise recurse into both operands and wrap them
// in a uniformly chosen arithmetic operator.
func (g *Generator) Arithmetic(depth int) *term.Term {
	if depth > g.opts.MaxArithDepth || (depth > 0 && g.src.Pick(3) == 0) {
		return g.IntLiteral()
	}
	left := g.Arithmetic(depth + 1)
	right := g.Arithmetic(depth + 1)
	kind := term.ArithmeticOps[g.src.Pick(len(term.ArithmeticOps))]
	return term.Op(kind, left, right)
}

// Boolean returns a random SortBool term rooted at the given depth.
// Terminal rule: past the hard cap, or (below the root) on a fair coin, emit
// either a boolean literal or a comparison over two arithmetic subtrees;
// otherwise combine two deeper boolean terms with a uniformly chosen
// connective. Arithmetic subtrees under a comparison restart their own depth
// budget at zero.
func (g *Generator) Boolean(depth int) *term.Term {
	if depth > g.opts.MaxBoolDepth || (depth > 0 && g.src.Bool()) {
		if g.src.Bool() {
			return g.BoolLiteral()
		}
		left := g.Arithmetic(0)
		right := g.Arithmetic(0)
		kind := term.ComparisonOps[g.src.Pick(len(term.ComparisonOps))]
		return term.Op(kind, left, right)
	}
	left := g.Boolean(depth + 1)
	right := g.Boolean(depth + 1)
	kind := term.ConnectiveOps[g.src.Pick(len(term.ConnectiveOps))]
	return term.Op(kind, left, right)
}
