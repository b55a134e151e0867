package emit

import "ggc/sym"

// cType maps a resolved type name to its C spelling. Class types lower to a
// pointer to their instance struct; arrays are lowered as a runtime
// gg_array pointer regardless of element type, since the array's element
// size is carried at the value level, not the C type level (spec §3's
// array model, mirrored from gg_array in the runtime header).
func (e *Emitter) cType(name string, isArray bool) string {
	if isArray {
		return "gg_array*"
	}
	switch name {
	case "int":
		return "int32_t"
	case "long":
		return "int64_t"
	case "byte":
		return "int8_t"
	case "short":
		return "int16_t"
	case "float":
		return "float"
	case "double":
		return "double"
	case "bool":
		return "bool"
	case "char":
		return "char"
	case "string":
		return "gg_string*"
	case "void":
		return "void"
	default:
		if _, ok := e.table.Classes[name]; ok {
			return structName(name) + "*"
		}
		return "void*" // interface or unresolved type: opaque pointer
	}
}

// writeStruct emits a class's instance struct: the vtable pointer (or, for
// a derived class, the base struct embedded as the first member so a
// pointer to a derived instance is also a valid pointer to its base,
// spec §4.4's single-inheritance encoding), followed by the class's own
// fields in declaration order. The root's vtable field is declared void*
// rather than its own <Root>_VTable* — an instance's actual vtable pointer
// always points at its most-derived class's own vtable type (see
// method.go's construct chain), which is a different, larger C type than
// the root's; vtableAccess casts back to whichever vtable type a call site
// needs when it reads the field.
func (e *Emitter) writeStruct(ci *sym.ClassInfo) {
	e.emitf("struct %s {\n", structName(ci.Name))
	if ci.BaseInfo != nil {
		e.emitf("\t%s base;\n", structName(ci.BaseInfo.Name))
	} else {
		e.emitf("\tvoid* vtable;\n")
	}

	for _, name := range ci.FieldOrder {
		f := ci.Fields[name]
		e.emitf("\t%s %s;\n", e.cType(f.Type.Name, f.Type.IsArray), name)
	}

	e.emitf("};\n\n")
}

// vtableAccess returns the C expression selecting selfExpr's vtable
// pointer, cast to ci's own vtable struct type, walking one `.base` per
// level between ci and the root of its inheritance chain (spec §4.4).
// OrderedVirtualMethods (sym/class.go) keeps every class's vtable struct a
// layout-compatible prefix extension of its base's, so this cast is always
// safe: whichever subclass instance the field actually points at, the
// slots ci's own vtable type declares sit at the same offsets.
func vtableAccess(ci *sym.ClassInfo, selfExpr string) string {
	path := selfExpr + "->"
	for cur := ci; cur.BaseInfo != nil; cur = cur.BaseInfo {
		path += "base."
	}
	return "((" + vtableType(ci.Name) + "*)(" + path + "vtable))"
}

// fieldAccess returns the C expression selecting field on an instance of
// ci, walking one `.base` selector per level between ci and the class that
// declares the field (spec §4.4).
func fieldAccess(ci *sym.ClassInfo, fieldOwner *sym.ClassInfo, selfExpr, field string) string {
	path := selfExpr + "->"
	for cur := ci; cur != fieldOwner && cur != nil; cur = cur.BaseInfo {
		path += "base."
	}
	return path + field
}
