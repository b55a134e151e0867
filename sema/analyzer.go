// Package sema implements the three-pass semantic analyzer (spec §4.3):
// type registration, member registration with inheritance resolution, and a
// body walk that resolves names, infers types, and checks type
// compatibility against the numeric widening lattice.
package sema

import (
	"ggc/ast"
	"ggc/diag"
	"ggc/sym"
)

// Analyzer runs the three passes over one parsed compilation unit and
// leaves its findings in Table; Bag accumulates diagnostics from every
// pass without being cleared between them (spec §5's monotone invariant).
type Analyzer struct {
	Table *sym.Table
	Bag   *diag.Bag

	// deprecated/removed track annotation-driven use-site diagnostics
	// (the @Deprecated/@Removed annotations recorded by recordAnnotations):
	// name -> message, consulted by the body-walk pass whenever an
	// identifier or member access resolves to a tagged declaration.
	deprecated map[string]string
	removed    map[string]string
}

// NewAnalyzer creates an analyzer with a freshly built built-in symbol
// table.
func NewAnalyzer(bag *diag.Bag) *Analyzer {
	return &Analyzer{
		Table:      sym.NewTable(),
		Bag:        bag,
		deprecated: make(map[string]string),
		removed:    make(map[string]string),
	}
}

// Analyze runs all three passes over cu. It always runs every pass it can:
// a class with an unresolvable base still gets its own members registered
// and its body walked, so a single bad declaration does not silence
// diagnostics about the rest of the file (spec §7).
func (a *Analyzer) Analyze(cu *ast.CompilationUnit) {
	a.registerTypes(cu)
	a.registerMembers(cu)
	a.walkBodies(cu)
}
