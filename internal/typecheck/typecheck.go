// Package typecheck implements the two-pass type analysis that turns a
// lowered HIR tree — where every expression starts out Infer except the
// handful with construction-time authoritative types — into one where every
// used expression carries a concrete, resolved type.
package typecheck

import (
	"errors"

	"kdc/internal/hir"
	"kdc/internal/source"
	"kdc/internal/types"
)

// ErrAborted is returned by Analyze once it has reported at least one
// diagnostic through the supplied Reporter.
var ErrAborted = errors.New("typecheck: aborted after diagnostic")

// Analyze runs the constrainer then the unifier over every function in
// root, mutating expression types in place. Like parsing and lowering, the
// first diagnostic reported stops analysis: the unifier checks after every
// statement and expression whether one has already fired, and returns
// without draining the remaining functions. Analyze returns ErrAborted if
// anything was reported, since callers should not proceed to HIR→IR
// lowering on a tree with unresolved or mismatched types.
func Analyze(root *hir.Root, interner *types.Interner, reporter Reporter) error {
	constraints := newConstrainer(root).run()

	counting := &countingReporter{inner: reporter}
	newUnifier(root, constraints, interner, counting).run()

	if counting.count > 0 {
		return ErrAborted
	}
	return nil
}

// countingReporter wraps the caller's Reporter to track whether any
// diagnostic was reported.
type countingReporter struct {
	inner Reporter
	count int
}

func (c *countingReporter) Report(kind string, span source.Span, msg string, notes ...Note) {
	c.count++
	c.inner.Report(kind, span, msg, notes...)
}
