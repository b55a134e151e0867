package sema

import (
	"ggc/ast"
	"ggc/diag"
	"ggc/sym"
)

// registerTypes is pass 1: walk the compilation unit's top-level
// declarations and register every class/interface/enum name, reporting a
// duplicate-definition diagnostic for any name collision with an
// already-registered type or a built-in name (spec §4.3).
func (a *Analyzer) registerTypes(cu *ast.CompilationUnit) {
	for _, decl := range cu.Types {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			a.registerTypeName(d.Name, d.Position)
			a.Table.Classes[d.Name] = sym.NewClassInfo(d)
			a.recordAnnotations(d.Name, d.Position, d.Annotations)
		case *ast.InterfaceDecl:
			a.registerTypeName(d.Name, d.Position)
			var methods []string
			for _, m := range d.Methods {
				methods = append(methods, m.Name)
			}
			a.Table.Interfaces[d.Name] = &sym.InterfaceInfo{Name: d.Name, Methods: methods}
			a.recordAnnotations(d.Name, d.Position, d.Annotations)
		case *ast.EnumDecl:
			a.registerTypeName(d.Name, d.Position)
			a.Table.Enums[d.Name] = &sym.EnumInfo{Name: d.Name, Cases: d.Cases}
		}
	}
}

// registerTypeName reports a duplicate-definition diagnostic if name
// collides with an already-known type or built-in name.
func (a *Analyzer) registerTypeName(name string, pos diag.Position) {
	if a.Table.IsKnownTypeName(name) {
		a.Bag.Errorf(pos, "type %q is already defined", name)
	}
}

// annotationArity gives the [min, max] argument count spec §4.3's
// annotation table allows for each recognized annotation name. Names not
// in this table are unknown annotations, accepted silently without an
// arity check (spec §4.3).
var annotationArity = map[string][2]int{
	"Library":    {2, 2},
	"Deprecated": {0, 2},
	"Removed":    {0, 2},
	"Test":       {0, 0},
}

// recordAnnotations validates annotations on a declaration (pass 1, spec
// §4.3: "Validate annotations on class headers") and records
// Deprecated/Removed messages so the body-walk pass can flag use sites.
// Argument counts outside an annotation's [min, max] are errors; a
// declaration carrying both Deprecated and Removed is an error; Deprecated
// emits an info at the declaration site and Removed an error, both at pos.
func (a *Analyzer) recordAnnotations(name string, pos diag.Position, anns []*ast.Annotation) {
	hasDeprecated, hasRemoved := false, false
	for _, ann := range anns {
		if arity, known := annotationArity[ann.Name]; known {
			min, max := arity[0], arity[1]
			if n := len(ann.Args); n < min || n > max {
				a.Bag.Errorf(ann.Position, "annotation @%s takes between %d and %d arguments, got %d", ann.Name, min, max, n)
			}
		}

		switch ann.Name {
		case "Deprecated":
			hasDeprecated = true
			msg := annotationMessage(ann, "use of deprecated "+name)
			a.deprecated[name] = msg
			a.Bag.Infof(pos, "%q is deprecated", name)
		case "Removed":
			hasRemoved = true
			msg := annotationMessage(ann, name+" has been removed")
			a.removed[name] = msg
			a.Bag.Errorf(pos, "%q has been removed", name)
		}
	}

	if hasDeprecated && hasRemoved {
		a.Bag.Errorf(pos, "%q cannot be both @Deprecated and @Removed", name)
	}
}

// annotationMessage extracts a string-literal first argument as the
// diagnostic message, falling back to fallback when the annotation has no
// arguments or a non-literal first argument (spec §9's open question on
// non-literal annotation arguments: they are accepted syntactically but
// ignored for message text, not rejected).
func annotationMessage(ann *ast.Annotation, fallback string) string {
	if len(ann.Args) == 0 {
		return fallback
	}
	if lit, ok := ann.Args[0].(*ast.StringLit); ok {
		return lit.Value
	}
	return fallback
}
