// Package emit lowers a type-checked AST to portable C text realizing
// single inheritance, virtual dispatch, constructors, and GC cooperation on
// top of plain C structs and function pointers (spec §4.4), targeting the
// external gg_* runtime ABI.
package emit

import (
	"fmt"
	"strings"

	"ggc/ast"
	"ggc/config"
	"ggc/sym"
)

// Emitter holds the state needed to lower one compilation unit: the
// resolved symbol table from the analyzer and the project configuration
// that governs the GC/no-GC preamble (SPEC_FULL.md §6).
type Emitter struct {
	table *sym.Table
	cfg   config.Config

	buf strings.Builder

	// mainClass records the first class that declares a static `main`
	// method, so the entry-point shim can forward to it (SPEC_FULL.md §6).
	mainClass string
}

// NewEmitter creates an Emitter bound to table and cfg.
func NewEmitter(table *sym.Table, cfg config.Config) *Emitter {
	return &Emitter{table: table, cfg: cfg}
}

// Emit lowers cu to a complete C translation unit and returns the source
// text.
func (e *Emitter) Emit(cu *ast.CompilationUnit) string {
	e.writePreamble()

	var classes []*ast.ClassDecl
	for _, decl := range cu.Types {
		if cd, ok := decl.(*ast.ClassDecl); ok {
			classes = append(classes, cd)
		}
	}

	e.writeForwardDecls(classes)

	for _, cd := range classes {
		ci := e.table.Classes[cd.Name]
		if ci == nil {
			continue
		}
		e.writeStruct(ci)
	}

	for _, cd := range classes {
		ci := e.table.Classes[cd.Name]
		if ci == nil {
			continue
		}
		e.writeVtable(ci)
	}

	for _, cd := range classes {
		ci := e.table.Classes[cd.Name]
		if ci == nil {
			continue
		}
		e.writeConstructAndCreate(ci)
		for _, m := range cd.Methods {
			e.writeMethod(ci, m)
			if e.isEntryPoint(m) && e.mainClass == "" {
				e.mainClass = cd.Name
			}
		}
	}

	e.writeEntryPointShim()

	return e.buf.String()
}

// isEntryPoint reports whether m is the static `main` method the runtime's
// fixed entry point forwards to (spec §4.4, SPEC_FULL.md §6).
func (e *Emitter) isEntryPoint(m *ast.MethodDecl) bool {
	return m.Name == "main" && m.Modifiers.Static
}

func (e *Emitter) emitf(format string, args ...interface{}) {
	fmt.Fprintf(&e.buf, format, args...)
}

// vtableType is the name of a class's vtable struct type.
func vtableType(className string) string { return className + "_VTable" }

// vtableInstance is the name of a class's statically allocated vtable.
func vtableInstance(className string) string { return className + "_vtable" }

// structName is the name of a class's instance struct type.
func structName(className string) string { return className + "_t" }

// methodFuncName is the C function name a method lowers to.
func methodFuncName(owner, method string) string { return owner + "_" + method }

// wrapperFuncName is the thin casting-wrapper C function name generated
// for a virtual method a subclass inherits but does not override, so the
// subclass's vtable slot has a function of the exact pointer type the
// vtable struct declares (spec §4.4).
func wrapperFuncName(subclass, owner, method string) string {
	return subclass + "_" + owner + "_" + method + "_thunk"
}
