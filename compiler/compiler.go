// Package compiler wires the lexer, parser, semantic analyzer, and C
// emitter into the core pipeline's single entry point (spec §6.1): a
// value-returning function of its input, with no hidden process-wide
// state, so independent compilations can run concurrently.
package compiler

import (
	"ggc/config"
	"ggc/diag"
	"ggc/emit"
	"ggc/lexer"
	"ggc/parser"
	"ggc/sema"
)

// Result is everything one call to Compile produces.
type Result struct {
	C   string // emitted C source; empty if compilation failed
	Bag *diag.Bag
}

// Compile runs lex -> parse -> analyze -> emit over src. Only the emit step
// is gated on whether the diagnostic bag holds an error: the emitter never
// runs over an AST the analyzer found ill-typed (spec §4.4, §7). Lexing,
// parsing and analysis always run to completion even after an earlier phase
// reports errors, so a single mistake doesn't silence diagnostics about
// the rest of the file.
func Compile(src, filename string, cfg config.Config) Result {
	bag := diag.NewBag(filename)

	toks := lexer.Lex(src, filename, bag)
	cu := parser.New(toks, filename, bag).Parse()

	az := sema.NewAnalyzer(bag)
	az.Analyze(cu)

	if bag.HasErrors() {
		return Result{Bag: bag}
	}

	c := emit.NewEmitter(az.Table, cfg).Emit(cu)
	return Result{C: c, Bag: bag}
}
