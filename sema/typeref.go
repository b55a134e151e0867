package sema

import (
	"ggc/ast"
	"ggc/diag"
	"ggc/types"
)

// resolveTypeRef converts a parsed TypeRef into a types.ResolvedType. An
// unknown class name is reported once here; it still returns a usable
// ResolvedType (named after the unresolved reference) so downstream checks
// degrade gracefully instead of cascading nil-pointer panics.
func (a *Analyzer) resolveTypeRef(t *ast.TypeRef) types.ResolvedType {
	if t == nil {
		return types.New(types.Void)
	}

	if !a.Table.IsKnownTypeName(t.Name) {
		a.Bag.Errorf(t.Position, "unknown type %q", t.Name)
	}

	rt := types.ResolvedType{Name: t.Name, IsArray: t.IsArray, IsNullable: t.IsNullable}
	return rt
}

func toASTResolved(t types.ResolvedType) ast.ResolvedTypeRef {
	return ast.ResolvedTypeRef{Name: t.Name, IsArray: t.IsArray, IsNullable: t.IsNullable}
}

func fromASTResolved(t ast.ResolvedTypeRef) types.ResolvedType {
	return types.ResolvedType{Name: t.Name, IsArray: t.IsArray, IsNullable: t.IsNullable}
}

// setType records t as expr's resolved type, both in the analyzer's
// types.ResolvedType form and in the ast.Expr interface's own bookkeeping
// field, and returns t for convenient chaining inside checkExpr.
func setType(expr ast.Expr, t types.ResolvedType) types.ResolvedType {
	expr.SetResolvedType(toASTResolved(t))
	return t
}

// checkAssignable reports a type-mismatch diagnostic unless value can be
// assigned to a location of type target: exact type identity, or numeric
// widening per spec §4.3's lattice. Assigning `null` to any nullable or
// class-typed location is always permitted, and a `void` on either side is
// accepted without a diagnostic.
func (a *Analyzer) checkAssignable(pos diag.Position, target, value types.ResolvedType) {
	if target.Equal(value) {
		return
	}
	if value.Name == "null" && (target.IsNullable || !target.IsPrimitive()) {
		return
	}
	if target.IsVoid() || value.IsVoid() {
		return
	}
	if value.IsNumeric() && target.IsNumeric() && types.WidensTo(value.Name, target.Name) {
		return
	}
	// an unresolved/unknown type on either side has already been reported
	// at the point it was named; avoid a redundant cascade here.
	if !a.Table.IsKnownTypeName(target.Name) || !a.Table.IsKnownTypeName(value.Name) {
		return
	}

	a.Bag.Errorf(pos, "cannot assign value of type %s to target of type %s", value, target)
}
