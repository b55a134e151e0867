package sema

import (
	"ggc/ast"
	"ggc/sym"
)

// registerMembers is pass 2: register each class's own fields, methods,
// and constructors, then resolve the inheritance chain (Base/Interfaces)
// topologically. A `resolved` set on each ClassInfo breaks cycles: a class
// already marked resolved is never walked twice, and a class reached while
// its own resolution is in progress reports a cyclic-inheritance error
// instead of recursing forever (spec §4.3).
func (a *Analyzer) registerMembers(cu *ast.CompilationUnit) {
	for _, decl := range cu.Types {
		cd, ok := decl.(*ast.ClassDecl)
		if !ok {
			continue
		}
		ci := a.Table.Classes[cd.Name]
		if ci == nil {
			continue
		}
		a.registerClassMembers(ci, cd)
	}

	inProgress := make(map[string]bool)
	for _, ci := range a.Table.Classes {
		a.resolveInheritance(ci, inProgress)
	}
}

func (a *Analyzer) registerClassMembers(ci *sym.ClassInfo, cd *ast.ClassDecl) {
	for _, f := range cd.Fields {
		if _, exists := ci.Fields[f.Name]; exists {
			a.Bag.Errorf(f.Position, "field %q is already defined in class %q", f.Name, cd.Name)
			continue
		}
		ci.Fields[f.Name] = f
		ci.FieldOrder = append(ci.FieldOrder, f.Name)
		a.recordAnnotations(cd.Name+"."+f.Name, f.Position, f.Annotations)
	}

	for _, m := range cd.Methods {
		m.OwnerClass = cd.Name
		if _, exists := ci.Methods[m.Name]; exists {
			a.Bag.Errorf(m.Position, "method %q is already defined in class %q", m.Name, cd.Name)
			continue
		}
		ci.Methods[m.Name] = m
		ci.MethodOrder = append(ci.MethodOrder, m.Name)
		a.recordAnnotations(cd.Name+"."+m.Name, m.Position, m.Annotations)
	}

	for _, c := range cd.Constructors {
		c.OwnerClass = cd.Name
		ci.Constructors = append(ci.Constructors, c)
	}
}

// resolveInheritance links ci.BaseInfo, recursing into the base class
// first so deep chains resolve root-first regardless of declaration order
// in the source file.
func (a *Analyzer) resolveInheritance(ci *sym.ClassInfo, inProgress map[string]bool) {
	if ci.Resolved() {
		return
	}
	if ci.Base == "" {
		ci.MarkResolved()
		return
	}

	if inProgress[ci.Name] {
		a.Bag.Errorf(ci.Decl.Position, "cyclic inheritance involving class %q", ci.Name)
		ci.MarkResolved()
		return
	}

	base, ok := a.Table.Classes[ci.Base]
	if !ok {
		a.Bag.Errorf(ci.Decl.Position, "class %q extends unknown class %q", ci.Name, ci.Base)
		ci.MarkResolved()
		return
	}

	inProgress[ci.Name] = true
	a.resolveInheritance(base, inProgress)
	inProgress[ci.Name] = false

	// the cycle check above marked ci resolved while its base chain was
	// being walked: leave it unlinked so no BaseInfo chain loops back.
	if ci.Resolved() {
		return
	}
	ci.BaseInfo = base
	ci.MarkResolved()

	for _, iface := range ci.Interfaces {
		if _, ok := a.Table.Interfaces[iface]; !ok {
			a.Bag.Errorf(ci.Decl.Position, "class %q implements unknown interface %q", ci.Name, iface)
		}
	}
}
