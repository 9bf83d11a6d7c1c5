// Package fuzztests houses Go fuzz harnesses that exercise the term
// generation pipeline (seed -> generator -> term -> printer). Its goal is
// to smoke test robustness: whatever the seed and depth options, generation
// must terminate with a well-typed, depth-bounded, printable tree.
//
// It does not fuzz solver backends; those are exercised by the campaign
// driver with curated probes.

package fuzztests
