package emit

import (
	"fmt"
	"strings"

	"ggc/ast"
	"ggc/sym"
)

// resolvedTypeOf reads the type the semantic analyzer already attached to
// expr (spec §3's ResolvedType field), defaulting to a plain "object" if
// somehow absent (an expression only reaches the emitter after a
// successful analysis pass, so this is a defensive fallback, not an
// expected path).
func resolvedTypeOf(expr ast.Expr) ast.ResolvedTypeRef {
	if t, ok := expr.GetResolvedType(); ok {
		return t
	}
	return ast.ResolvedTypeRef{Name: "object"}
}

// exprString lowers expr to a C expression, in the context of instance
// methods of ci (used to resolve implicit `this` field/method access and
// base-chain field paths, spec §4.4).
func (e *Emitter) exprString(ci *sym.ClassInfo, expr ast.Expr) string {
	switch x := expr.(type) {
	case *ast.IntLit:
		return x.Value
	case *ast.FloatLit:
		return x.Value
	case *ast.StringLit:
		return fmt.Sprintf("gg_string_from_cstr(%q)", x.Value)
	case *ast.CharLit:
		return charLiteral(x.Value)
	case *ast.BoolLit:
		if x.Value {
			return "true"
		}
		return "false"
	case *ast.NullLit:
		return "NULL"
	case *ast.ThisExpr:
		return "self"
	case *ast.BaseExpr:
		return "(&self->base)"
	case *ast.Ident:
		return e.identString(ci, x)
	case *ast.UnaryExpr:
		return e.unaryString(ci, x)
	case *ast.PostfixExpr:
		return e.exprString(ci, x.X) + x.Op
	case *ast.BinaryExpr:
		return e.binaryString(ci, x)
	case *ast.AssignExpr:
		return e.assignString(ci, x)
	case *ast.MemberExpr:
		return e.memberString(ci, x)
	case *ast.CallExpr:
		return e.callString(ci, x)
	case *ast.IndexExpr:
		return e.indexString(ci, x)
	case *ast.NewObjectExpr:
		return e.newObjectString(ci, x)
	case *ast.NewArrayExpr:
		return e.newArrayString(ci, x)
	case *ast.CastExpr:
		return e.castString(ci, x)
	}
	return "/* unsupported expression */ 0"
}

// identString lowers a bare identifier: an own-or-inherited field of ci
// becomes a self-relative access, a built-in static-class or user class
// name passes through unchanged (the caller — memberString/callString —
// recognizes it as a static namespace), and anything else is assumed to be
// a local variable or parameter, which share gg's identifier syntax with
// C's.
func (e *Emitter) identString(ci *sym.ClassInfo, id *ast.Ident) string {
	if ci != nil {
		if f, owner, ok := ci.LookupField(id.Name); ok {
			return fieldAccess(ci, owner, "self", f.Name)
		}
	}
	return id.Name
}

func (e *Emitter) unaryString(ci *sym.ClassInfo, u *ast.UnaryExpr) string {
	x := e.exprString(ci, u.X)
	if u.Op == "++" || u.Op == "--" {
		return u.Op + x
	}
	return u.Op + "(" + x + ")"
}

func (e *Emitter) binaryString(ci *sym.ClassInfo, b *ast.BinaryExpr) string {
	lt := resolvedTypeOf(b.Left)
	if b.Op == "+" && lt.Name == "string" {
		return fmt.Sprintf("gg_string_concat(%s, %s)", e.exprString(ci, b.Left), e.exprString(ci, b.Right))
	}
	return fmt.Sprintf("(%s %s %s)", e.exprString(ci, b.Left), b.Op, e.exprString(ci, b.Right))
}

// assignString lowers `target = value`. Assigning through a pointer-typed
// field goes through the runtime's write barrier instead of a plain store,
// so the GC's remembered set stays correct when an older object is made to
// point at a younger one (spec §4.4's write-barrier requirement).
func (e *Emitter) assignString(ci *sym.ClassInfo, asn *ast.AssignExpr) string {
	target := e.exprString(ci, asn.Target)
	value := e.exprString(ci, asn.Value)

	if asn.Op != "=" {
		cOp := strings.TrimSuffix(asn.Op, "=")
		value = fmt.Sprintf("(%s %s %s)", target, cOp, value)
	}

	tt := resolvedTypeOf(asn.Target)
	if e.isHeapPointerField(asn.Target, tt) {
		return fmt.Sprintf("gg_gc_write_barrier((void**)&%s, (void*)%s)", target, value)
	}
	return fmt.Sprintf("%s = %s", target, value)
}

// isHeapPointerField reports whether target is a field access (as opposed
// to a local variable or parameter) whose static type is heap-allocated —
// a class instance, string, or array — the only assignment sites routed
// through the runtime's write barrier (spec §4.4).
func (e *Emitter) isHeapPointerField(target ast.Expr, t ast.ResolvedTypeRef) bool {
	isField := false
	switch x := target.(type) {
	case *ast.MemberExpr:
		isField = true
	case *ast.Ident:
		isField = e.isClassFieldIdent(x)
	}
	if !isField {
		return false
	}
	if t.IsArray || t.Name == "string" {
		return true
	}
	_, isClass := e.table.Classes[t.Name]
	return isClass
}

func (e *Emitter) isClassFieldIdent(id *ast.Ident) bool {
	for _, ci := range e.table.Classes {
		if _, _, ok := ci.LookupField(id.Name); ok {
			return true
		}
	}
	return false
}

// memberString lowers `target.name` as a value (field read or bound
// method reference); calls are handled separately by callString since a
// call needs the full argument list to pick static vs. virtual dispatch.
func (e *Emitter) memberString(ci *sym.ClassInfo, m *ast.MemberExpr) string {
	if name, ok := staticClassName(m.Target); ok {
		return builtinLowering(name, m.Name, nil)
	}

	tt := resolvedTypeOf(m.Target)
	target := e.exprString(ci, m.Target)

	if owner, ok := e.table.Classes[tt.Name]; ok {
		if f, fowner, ok := owner.LookupField(m.Name); ok {
			_ = f
			return fieldAccess(owner, fowner, "("+target+")", m.Name)
		}
	}
	return target + "->" + m.Name
}

// staticClassName reports whether e is a bare identifier naming a built-in
// static class like Console, as opposed to an instance expression. User
// classes are not reported here; callString handles a static call on a
// user class separately.
func staticClassName(e ast.Expr) (string, bool) {
	id, ok := e.(*ast.Ident)
	if !ok {
		return "", false
	}
	if sym.IsBuiltinStaticClass(id.Name) {
		return id.Name, true
	}
	return "", false
}

func (e *Emitter) indexString(ci *sym.ClassInfo, ix *ast.IndexExpr) string {
	tt := resolvedTypeOf(ix.Target)
	elemC := e.cType(tt.Name, false)
	return fmt.Sprintf("(*(%s*)gg_array_get_ptr(%s, %s))", elemC, e.exprString(ci, ix.Target), e.exprString(ci, ix.Index))
}

func (e *Emitter) newObjectString(ci *sym.ClassInfo, n *ast.NewObjectExpr) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = e.exprString(ci, a)
	}
	name := methodFuncName(n.TypeName, "create")
	if target, ok := e.table.Classes[n.TypeName]; ok {
		for _, c := range target.Constructors {
			if len(c.Params) == len(n.Args) {
				name = ctorName(target, c, "create")
				break
			}
		}
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func (e *Emitter) newArrayString(ci *sym.ClassInfo, n *ast.NewArrayExpr) string {
	elemC := e.cType(n.ElemType.Name, false)
	return fmt.Sprintf("gg_array_new(sizeof(%s), %s)", elemC, e.exprString(ci, n.Size))
}

func (e *Emitter) castString(ci *sym.ClassInfo, c *ast.CastExpr) string {
	return fmt.Sprintf("((%s)%s)", e.cType(c.Type.Name, c.Type.IsArray), e.exprString(ci, c.X))
}

// charLiteral renders a rune as a C character constant, escaping the cases
// that cannot appear literally inside single quotes.
func charLiteral(r rune) string {
	switch r {
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case '\r':
		return `'\r'`
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	case 0:
		return `'\0'`
	}
	if r < 32 || r > 126 {
		return fmt.Sprintf("((char)%d)", r)
	}
	return fmt.Sprintf("'%c'", r)
}
