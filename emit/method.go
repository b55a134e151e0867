package emit

import (
	"fmt"
	"strings"

	"ggc/ast"
	"ggc/sym"
)

// paramListTypes and paramListNamed are identical for this emitter: C
// function-pointer and function declarations both name their parameters,
// which keeps generated signatures self-documenting the way the runtime
// header itself is written.
func (e *Emitter) paramListTypes(ci *sym.ClassInfo, m *ast.MethodDecl) string {
	return e.paramList(ci, m)
}

func (e *Emitter) paramListNamed(ci *sym.ClassInfo, m *ast.MethodDecl) string {
	return e.paramList(ci, m)
}

func (e *Emitter) paramList(ci *sym.ClassInfo, m *ast.MethodDecl) string {
	parts := []string{}
	if !m.Modifiers.Static {
		parts = append(parts, structName(ci.Name)+"* self")
	}
	for _, p := range m.Params {
		parts = append(parts, e.cType(p.Type.Name, p.Type.IsArray)+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// argForwardList lists the plain-name arguments (after self) a thunk
// forwards to the owner's implementation. Thunks are only ever generated
// for virtual instance methods, so self is always present.
func (e *Emitter) argForwardList(ci, owner *sym.ClassInfo, m *ast.MethodDecl) string {
	s := ""
	for _, p := range m.Params {
		s += ", " + p.Name
	}
	return s
}

// writeMethod emits one method's C function. Static methods and
// non-virtual instance methods lower to a plain function named
// Class_method; the emitter never generates an indirect call to a
// non-virtual method (spec §4.4 reserves vtable dispatch for virtual
// methods only).
func (e *Emitter) writeMethod(ci *sym.ClassInfo, m *ast.MethodDecl) {
	if m.Body == nil {
		return // abstract method: no definition to emit
	}

	ret := e.cType(retName(m), retIsArray(m))
	params := e.paramList(ci, m)

	e.emitf("static %s %s(%s) {\n", ret, methodFuncName(ci.Name, m.Name), params)
	e.emitf("\tint __gg_frame = gg_gc_push_root_frame();\n")
	fc := &funcCtx{ci: ci, e: e, retType: m.ReturnType, frameVar: "__gg_frame"}
	fc.writeBlock(m.Body, 1)
	if ret == "void" {
		e.emitf("\tgg_gc_pop_root_frame(__gg_frame);\n")
	}
	e.emitf("}\n\n")
}

// writeConstructAndCreate emits the two-function pattern spec §4.4
// requires: `ClassName_construct` initializes an already-allocated
// instance (called by subclass constructors via a base initializer), and
// `ClassName_create` allocates through the runtime GC, constructs, and
// returns the new instance.
func (e *Emitter) writeConstructAndCreate(ci *sym.ClassInfo) {
	for _, ctor := range ci.Constructors {
		e.writeConstruct(ci, ctor)
		e.writeCreate(ci, ctor)
	}

	if len(ci.Constructors) == 0 {
		e.writeDefaultConstruct(ci)
		e.writeDefaultCreate(ci)
	}
}

// ctorName returns the C function name a constructor lowers to (for both
// its construct and create halves). A class with a single constructor
// keeps the plain ClassName_construct/create name; overloaded constructors
// are disambiguated by parameter count, since gg resolves a `new` call's
// overload the same way.
func ctorName(ci *sym.ClassInfo, ctor *ast.ConstructorDecl, which string) string {
	if len(ci.Constructors) <= 1 {
		return methodFuncName(ci.Name, which)
	}
	return fmt.Sprintf("%s_%d", methodFuncName(ci.Name, which), len(ctor.Params))
}

// baseConstructName finds base's constructor matching argCount and returns
// its construct-function name, falling back to the plain Class_construct
// name if base declares none explicitly (the compiler-generated default).
func baseConstructName(base *sym.ClassInfo, argCount int) string {
	for _, c := range base.Constructors {
		if len(c.Params) == argCount {
			return ctorName(base, c, "construct")
		}
	}
	return methodFuncName(base.Name, "construct")
}

func (e *Emitter) writeConstruct(ci *sym.ClassInfo, ctor *ast.ConstructorDecl) {
	params := structName(ci.Name) + "* self"
	for _, p := range ctor.Params {
		params += ", " + e.cType(p.Type.Name, p.Type.IsArray) + " " + p.Name
	}

	e.emitf("static void %s(%s) {\n", ctorName(ci, ctor, "construct"), params)

	if ci.BaseInfo != nil {
		baseCtor := baseConstructName(ci.BaseInfo, len(ctor.BaseArgs))
		baseCall := baseCtor + "(&self->base"
		for _, arg := range ctor.BaseArgs {
			baseCall += ", " + e.exprString(ci, arg)
		}
		baseCall += ");"
		e.emitf("\t%s\n", baseCall)
	}

	e.emitf("\tself->%s = &%s;\n", vtableFieldOf(ci), vtableInstance(ci.Name))

	e.emitf("\tint __gg_frame = gg_gc_push_root_frame();\n")
	fc := &funcCtx{ci: ci, e: e, frameVar: "__gg_frame"}
	if ctor.Body != nil {
		fc.writeBlock(ctor.Body, 1)
	}
	e.emitf("\tgg_gc_pop_root_frame(__gg_frame);\n")
	e.emitf("}\n\n")
}

// vtableFieldOf returns "vtable" for a root class, or the dotted base
// path leading to the vtable field for a derived class, since only the
// root of an inheritance chain declares that field directly.
func vtableFieldOf(ci *sym.ClassInfo) string {
	path := ""
	for cur := ci; cur.BaseInfo != nil; cur = cur.BaseInfo {
		path += "base."
	}
	return path + "vtable"
}

func (e *Emitter) writeCreate(ci *sym.ClassInfo, ctor *ast.ConstructorDecl) {
	params := ""
	args := ""
	for i, p := range ctor.Params {
		if i > 0 {
			params += ", "
		}
		params += e.cType(p.Type.Name, p.Type.IsArray) + " " + p.Name
		args += ", " + p.Name
	}

	e.emitf("%s* %s(%s) {\n", structName(ci.Name), ctorName(ci, ctor, "create"), params)
	e.emitf("\t%s* self = (%s*)gg_alloc(sizeof(%s));\n", structName(ci.Name), structName(ci.Name), structName(ci.Name))
	e.emitf("\t%s(self%s);\n", ctorName(ci, ctor, "construct"), args)
	e.emitf("\treturn self;\n")
	e.emitf("}\n\n")
}

func (e *Emitter) writeDefaultConstruct(ci *sym.ClassInfo) {
	e.emitf("static void %s(%s* self) {\n", methodFuncName(ci.Name, "construct"), structName(ci.Name))
	if ci.BaseInfo != nil {
		e.emitf("\t%s(&self->base);\n", baseConstructName(ci.BaseInfo, 0))
	}
	e.emitf("\tself->%s = &%s;\n", vtableFieldOf(ci), vtableInstance(ci.Name))
	e.emitf("}\n\n")
}

func (e *Emitter) writeDefaultCreate(ci *sym.ClassInfo) {
	e.emitf("%s* %s(void) {\n", structName(ci.Name), methodFuncName(ci.Name, "create"))
	e.emitf("\t%s* self = (%s*)gg_alloc(sizeof(%s));\n", structName(ci.Name), structName(ci.Name), structName(ci.Name))
	e.emitf("\t%s(self);\n", methodFuncName(ci.Name, "construct"))
	e.emitf("\treturn self;\n")
	e.emitf("}\n\n")
}
