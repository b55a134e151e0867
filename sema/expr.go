package sema

import (
	"ggc/ast"
	"ggc/diag"
	"ggc/sym"
	"ggc/types"
)

// checkExpr infers and records e's resolved type, walking its subtree and
// reporting type-compatibility diagnostics along the way. It never
// returns early on error: an ill-typed subexpression is assigned a best
// guess (often Object) so its parent can still be checked instead of
// cascading into a nil-type panic.
func (a *Analyzer) checkExpr(e ast.Expr, ctx *walkCtx) types.ResolvedType {
	switch x := e.(type) {
	case *ast.IntLit:
		return setType(e, types.New(types.Int))
	case *ast.FloatLit:
		return setType(e, types.New(types.Double))
	case *ast.StringLit:
		return setType(e, types.New(types.String))
	case *ast.CharLit:
		return setType(e, types.New(types.Char))
	case *ast.BoolLit:
		return setType(e, types.New(types.Bool))
	case *ast.NullLit:
		return setType(e, types.New("null"))
	case *ast.ThisExpr:
		if ctx.class == nil {
			a.Bag.Errorf(x.Position, "'this' used outside of a class")
			return setType(e, types.New(types.Object))
		}
		return setType(e, types.New(ctx.class.Name))
	case *ast.BaseExpr:
		if ctx.class == nil || ctx.class.BaseInfo == nil {
			a.Bag.Errorf(x.Position, "'base' used without a base class")
			return setType(e, types.New(types.Object))
		}
		return setType(e, types.New(ctx.class.BaseInfo.Name))
	case *ast.Ident:
		return a.checkIdent(x, ctx)
	case *ast.UnaryExpr:
		return a.checkUnary(x, ctx)
	case *ast.PostfixExpr:
		t := a.checkExpr(x.X, ctx)
		return setType(e, t)
	case *ast.BinaryExpr:
		return a.checkBinary(x, ctx)
	case *ast.AssignExpr:
		return a.checkAssign(x, ctx)
	case *ast.MemberExpr:
		return a.checkMember(x, ctx)
	case *ast.CallExpr:
		return a.checkCall(x, ctx)
	case *ast.IndexExpr:
		return a.checkIndex(x, ctx)
	case *ast.NewObjectExpr:
		return a.checkNewObject(x, ctx)
	case *ast.NewArrayExpr:
		elem := a.resolveTypeRef(x.ElemType)
		a.checkExpr(x.Size, ctx)
		return setType(e, types.Array(elem.Name))
	case *ast.CastExpr:
		a.checkExpr(x.X, ctx)
		return setType(e, a.resolveTypeRef(x.Type))
	}
	return types.New(types.Object)
}

// checkIdent resolves a bare identifier through the scope chain. An
// identifier that resolves to nothing, is not a known class name, and is
// not a built-in static-class name produces a warning, not an error
// (spec §4.3).
func (a *Analyzer) checkIdent(id *ast.Ident, ctx *walkCtx) types.ResolvedType {
	if sy, ok := ctx.scope.Lookup(id.Name); ok {
		a.checkDeprecatedRemoved(id.Name, id.Position)
		return setType(id, sy.Type)
	}
	if a.Table.IsKnownTypeName(id.Name) || sym.IsBuiltinStaticClass(id.Name) {
		a.checkDeprecatedRemoved(id.Name, id.Position)
		return setType(id, types.New(id.Name))
	}

	a.Bag.Warnf(id.Position, "undefined identifier %q", id.Name)
	return setType(id, types.New(types.Object))
}

// checkDeprecatedRemoved flags a use site of a name tagged [@Removed] as an
// error and a name tagged [@Deprecated] as a warning, using the message
// recorded during type/member registration.
func (a *Analyzer) checkDeprecatedRemoved(name string, pos diag.Position) {
	if msg, ok := a.removed[name]; ok {
		a.Bag.Errorf(pos, "%s", msg)
		return
	}
	if msg, ok := a.deprecated[name]; ok {
		a.Bag.Warnf(pos, "%s", msg)
	}
}

func (a *Analyzer) checkUnary(u *ast.UnaryExpr, ctx *walkCtx) types.ResolvedType {
	t := a.checkExpr(u.X, ctx)
	switch u.Op {
	case "!":
		if !t.Equal(types.New(types.Bool)) {
			a.Bag.Errorf(u.Position, "operator ! requires a bool operand, got %s", t)
		}
		return setType(u, types.New(types.Bool))
	case "-", "~":
		if !t.IsNumeric() {
			a.Bag.Errorf(u.Position, "operator %s requires a numeric operand, got %s", u.Op, t)
		}
		return setType(u, t)
	case "++", "--":
		if !t.IsNumeric() {
			a.Bag.Errorf(u.Position, "operator %s requires a numeric operand, got %s", u.Op, t)
		}
		return setType(u, t)
	}
	return setType(u, t)
}

var comparisonOps = map[string]bool{"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}

func (a *Analyzer) checkBinary(b *ast.BinaryExpr, ctx *walkCtx) types.ResolvedType {
	lt := a.checkExpr(b.Left, ctx)
	rt := a.checkExpr(b.Right, ctx)

	switch {
	case logicalOps[b.Op]:
		return setType(b, types.New(types.Bool))

	case comparisonOps[b.Op]:
		if lt.IsNumeric() && rt.IsNumeric() {
			// ok, implicit widening applies to comparisons too
		} else if !lt.Equal(rt) && a.Table.IsKnownTypeName(lt.Name) && a.Table.IsKnownTypeName(rt.Name) {
			// comparing unrelated known types doesn't type-check method
			// bodies beyond the declared-local/undefined-identifier
			// contract (spec §1), so this stays a warning rather than a
			// blocking error.
			a.Bag.Warnf(b.Position, "cannot compare %s with %s", lt, rt)
		}
		return setType(b, types.New(types.Bool))

	case b.Op == "+":
		if lt.Equal(types.New(types.String)) || rt.Equal(types.New(types.String)) {
			// string concatenation: the emitter lowers this to the
			// runtime's gg_string_concat, not C's `+`.
			return setType(b, types.New(types.String))
		}
		return setType(b, a.checkNumericBinary(b.Position, lt, rt))

	default:
		return setType(b, a.checkNumericBinary(b.Position, lt, rt))
	}
}

// checkNumericBinary computes the result type of a numeric binary
// operator by the widening lattice: the wider of the two operand types.
// If either operand is not numeric it returns the left operand's type
// without reporting a diagnostic.
func (a *Analyzer) checkNumericBinary(pos diag.Position, lt, rt types.ResolvedType) types.ResolvedType {
	if !lt.IsNumeric() || !rt.IsNumeric() {
		return lt
	}
	if lt.Equal(rt) {
		return lt
	}
	if types.WidensTo(lt.Name, rt.Name) {
		return rt
	}
	if types.WidensTo(rt.Name, lt.Name) {
		return lt
	}
	return lt
}

func (a *Analyzer) checkAssign(asn *ast.AssignExpr, ctx *walkCtx) types.ResolvedType {
	tt := a.checkExpr(asn.Target, ctx)
	vt := a.checkExpr(asn.Value, ctx)
	a.checkAssignable(asn.Position, tt, vt)
	return setType(asn, tt)
}

// checkMember resolves `Target.Name`: a field/method access when Target's
// static type is a known class, or a pass-through Object type for
// built-in static-class members (Console.*, Math.*, ...), whose exact
// lowering is the emitter's concern (spec §4.4).
func (a *Analyzer) checkMember(m *ast.MemberExpr, ctx *walkCtx) types.ResolvedType {
	tt := a.checkExpr(m.Target, ctx)

	if sym.IsBuiltinStaticClass(tt.Name) {
		return setType(m, builtinMemberType(tt.Name, m.Name))
	}

	ci, ok := a.Table.Classes[tt.Name]
	if !ok {
		return setType(m, types.New(types.Object))
	}

	if f, _, ok := ci.LookupField(m.Name); ok {
		return setType(m, a.resolveTypeRef(f.Type))
	}
	if md, owner, ok := ci.LookupMethod(m.Name); ok {
		a.checkDeprecatedRemoved(owner.Name+"."+m.Name, m.Position)
		return setType(m, a.resolveTypeRef(md.ReturnType))
	}

	// a missing member doesn't fall within the narrow method-body
	// type-checking contract (spec §1), so this warns rather than blocks
	// the emitter.
	a.Bag.Warnf(m.Position, "class %q has no member %q", tt.Name, m.Name)
	return setType(m, types.New(types.Object))
}

func (a *Analyzer) checkCall(c *ast.CallExpr, ctx *walkCtx) types.ResolvedType {
	for _, arg := range c.Args {
		a.checkExpr(arg, ctx)
	}
	// a bare `method(args)` not shadowed by a local is shorthand for
	// `this.method(args)`: its type is the enclosing class's method's
	// return type.
	if id, ok := c.Callee.(*ast.Ident); ok && ctx.class != nil {
		if _, local := ctx.scope.Lookup(id.Name); !local {
			if md, owner, ok := ctx.class.LookupMethod(id.Name); ok {
				a.checkDeprecatedRemoved(owner.Name+"."+id.Name, id.Position)
				return setType(c, setType(id, a.resolveTypeRef(md.ReturnType)))
			}
		}
	}
	// otherwise the callee's own type-check (an Ident or MemberExpr)
	// computes the call's result type: a method name's "type" is its
	// return type, mirroring the teacher's treatment of a symbol's Type as
	// usable directly at the call site.
	return setType(c, a.checkExpr(c.Callee, ctx))
}

func (a *Analyzer) checkIndex(ix *ast.IndexExpr, ctx *walkCtx) types.ResolvedType {
	tt := a.checkExpr(ix.Target, ctx)
	it := a.checkExpr(ix.Index, ctx)
	if !it.IsNumeric() {
		a.Bag.Errorf(ix.Position, "array index must be numeric, got %s", it)
	}
	if !tt.IsArray {
		a.Bag.Errorf(ix.Position, "cannot index non-array type %s", tt)
		return types.New(types.Object)
	}
	return setType(ix, types.New(tt.Name))
}

func (a *Analyzer) checkNewObject(n *ast.NewObjectExpr, ctx *walkCtx) types.ResolvedType {
	for _, arg := range n.Args {
		a.checkExpr(arg, ctx)
	}
	if !a.Table.IsKnownTypeName(n.TypeName) {
		a.Bag.Warnf(n.Position, "unknown type %q", n.TypeName)
	} else if ci, ok := a.Table.Classes[n.TypeName]; ok && ci.IsAbstract {
		a.Bag.Errorf(n.Position, "cannot instantiate abstract class %q", n.TypeName)
	}
	return setType(n, types.New(n.TypeName))
}

// builtinMemberType gives the result type of a built-in static-class
// member access well enough for downstream type checks to proceed; the
// emitter (not this table) owns the exact call-lowering target (spec §4.4,
// SPEC_FULL.md §7).
func builtinMemberType(class, member string) types.ResolvedType {
	switch class {
	case "Console":
		switch member {
		case "readLine":
			return types.New(types.String)
		case "readInt":
			return types.New(types.Int)
		default:
			return types.New(types.Void)
		}
	case "Math":
		return types.New(types.Double)
	case "Memory":
		return types.New(types.Object)
	default:
		return types.New(types.Object)
	}
}
