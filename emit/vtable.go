package emit

import (
	"ggc/ast"
	"ggc/sym"
)

// writeVtable emits a class's vtable struct type and its single statically
// allocated instance. Every virtual method visible on the class (own or
// inherited) gets a slot, laid out via OrderedVirtualMethods so a derived
// class's vtable struct is always a layout-compatible prefix extension of
// its base's (an inherited slot never moves, new slots only ever append) —
// this is what lets a base-typed vtable pointer read a derived instance's
// vtable correctly (spec §4.4). A slot for a method inherited but not
// overridden points at a thin thunk that casts self to the declaring
// ancestor's struct type, because the vtable's function-pointer field is
// typed with this class's own struct pointer, not the ancestor's.
func (e *Emitter) writeVtable(ci *sym.ClassInfo) {
	virtuals := ci.VirtualMethods()
	names := ci.OrderedVirtualMethods()

	e.emitf("struct %s {\n", vtableType(ci.Name))
	for _, name := range names {
		m := virtuals[name]
		e.emitf("\t%s (*%s)(%s);\n", e.cType(retName(m), retIsArray(m)), name, e.paramListTypes(ci, m))
	}
	e.emitf("};\n\n")

	for _, name := range names {
		m := virtuals[name]
		owner := e.owningClassOf(ci, name)
		if owner != nil && owner.Name != ci.Name && !m.Modifiers.Abstract {
			e.writeThunk(ci, owner, m)
		}
	}

	e.emitf("static %s %s = {\n", vtableType(ci.Name), vtableInstance(ci.Name))
	for _, name := range names {
		m := virtuals[name]
		owner := e.owningClassOf(ci, name)
		fn := methodFuncName(owner.Name, name)
		if owner.Name != ci.Name && !m.Modifiers.Abstract {
			fn = wrapperFuncName(ci.Name, owner.Name, name)
		}
		e.emitf("\t.%s = %s,\n", name, fn)
	}
	e.emitf("};\n\n")
}

// owningClassOf finds the ClassInfo in ci's base chain that declares
// method name (the most-derived declaration up to and including ci).
func (e *Emitter) owningClassOf(ci *sym.ClassInfo, name string) *sym.ClassInfo {
	for cur := ci; cur != nil; cur = cur.BaseInfo {
		if _, ok := cur.Methods[name]; ok {
			return cur
		}
	}
	return nil
}

// writeThunk emits the casting wrapper a subclass's vtable uses for a
// virtual method it inherits unchanged from owner: same body as calling
// the owner's implementation directly, just re-typed to accept a pointer
// to the subclass's own struct.
func (e *Emitter) writeThunk(ci, owner *sym.ClassInfo, m *ast.MethodDecl) {
	ret := e.cType(retName(m), retIsArray(m))
	params := e.paramListNamed(ci, m)
	args := e.argForwardList(ci, owner, m)

	e.emitf("static %s %s(%s) {\n", ret, wrapperFuncName(ci.Name, owner.Name, m.Name), params)
	if m.ReturnType == nil || m.ReturnType.Name == "void" {
		e.emitf("\t%s((%s*)self%s);\n", methodFuncName(owner.Name, m.Name), structName(owner.Name), args)
	} else {
		e.emitf("\treturn %s((%s*)self%s);\n", methodFuncName(owner.Name, m.Name), structName(owner.Name), args)
	}
	e.emitf("}\n\n")
}

func retName(m *ast.MethodDecl) string {
	if m.ReturnType == nil {
		return "void"
	}
	return m.ReturnType.Name
}

func retIsArray(m *ast.MethodDecl) bool {
	return m.ReturnType != nil && m.ReturnType.IsArray
}
