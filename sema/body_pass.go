package sema

import (
	"ggc/ast"
	"ggc/sym"
	"ggc/types"
)

// walkCtx carries the per-method context a body walk needs: the enclosing
// class (nil for none, though every method/constructor has one in this
// grammar), the current lexical scope, and the method's declared return
// type (used to check `return` statements).
type walkCtx struct {
	class      *sym.ClassInfo
	scope      *sym.Scope
	returnType types.ResolvedType
	inLoop     bool
}

// walkBodies is pass 3: walk every method and constructor body, resolving
// names through the scope chain, inferring expression types, and checking
// type compatibility (spec §4.3).
func (a *Analyzer) walkBodies(cu *ast.CompilationUnit) {
	for _, decl := range cu.Types {
		cd, ok := decl.(*ast.ClassDecl)
		if !ok {
			continue
		}
		ci := a.Table.Classes[cd.Name]
		if ci == nil {
			continue
		}
		a.walkClassBody(ci, cd)
	}
}

func (a *Analyzer) walkClassBody(ci *sym.ClassInfo, cd *ast.ClassDecl) {
	classScope := sym.NewScope(a.Table.Global)

	for cur := ci; cur != nil; cur = cur.BaseInfo {
		for name, f := range cur.Fields {
			if _, exists := classScope.LookupLocal(name); !exists {
				classScope.Define(&sym.Symbol{Name: name, Kind: sym.KindField, Type: a.resolveTypeRef(f.Type)})
			}
		}
	}

	for _, f := range cd.Fields {
		ft := a.resolveTypeRef(f.Type)
		if f.Init != nil {
			ctx := &walkCtx{class: ci, scope: sym.NewScope(classScope)}
			it := a.checkExpr(f.Init, ctx)
			a.checkAssignable(f.Position, ft, it)
		}
	}

	for _, ctor := range cd.Constructors {
		a.walkConstructor(ci, ctor, classScope)
	}
	for _, m := range cd.Methods {
		a.walkMethod(ci, m, classScope)
	}
}

func (a *Analyzer) walkConstructor(ci *sym.ClassInfo, ctor *ast.ConstructorDecl, classScope *sym.Scope) {
	paramScope := sym.NewScope(classScope)
	a.defineParams(paramScope, ctor.Params)

	ctx := &walkCtx{class: ci, scope: paramScope}
	if ctor.HasBaseCall {
		for _, arg := range ctor.BaseArgs {
			a.checkExpr(arg, ctx)
		}
		if ci.BaseInfo == nil {
			a.Bag.Errorf(ctor.Position, "class %q has no base class to call", ci.Name)
		}
	}

	if ctor.Body != nil {
		a.walkBlock(ctor.Body, ctx)
	}
}

func (a *Analyzer) walkMethod(ci *sym.ClassInfo, m *ast.MethodDecl, classScope *sym.Scope) {
	paramScope := sym.NewScope(classScope)
	a.defineParams(paramScope, m.Params)

	retType := a.resolveTypeRef(m.ReturnType)
	ctx := &walkCtx{class: ci, scope: paramScope, returnType: retType}

	if m.Body != nil {
		a.walkBlock(m.Body, ctx)
	}
}

func (a *Analyzer) defineParams(scope *sym.Scope, params []*ast.Param) {
	for _, p := range params {
		scope.Define(&sym.Symbol{Name: p.Name, Kind: sym.KindParam, Type: a.resolveTypeRef(p.Type)})
	}
}

func (a *Analyzer) walkBlock(b *ast.Block, ctx *walkCtx) {
	inner := &walkCtx{class: ctx.class, scope: sym.NewScope(ctx.scope), returnType: ctx.returnType, inLoop: ctx.inLoop}
	for _, s := range b.Stmts {
		a.walkStmt(s, inner)
	}
}

func (a *Analyzer) walkStmt(s ast.Stmt, ctx *walkCtx) {
	switch st := s.(type) {
	case *ast.Block:
		a.walkBlock(st, ctx)

	case *ast.VarDecl:
		a.walkVarDecl(st, ctx)

	case *ast.ExprStmt:
		a.checkExpr(st.X, ctx)

	case *ast.IfStmt:
		a.checkCondition(st.Cond, ctx)
		a.walkStmt(st.Then, ctx)
		if st.Else != nil {
			a.walkStmt(st.Else, ctx)
		}

	case *ast.WhileStmt:
		a.checkCondition(st.Cond, ctx)
		loopCtx := &walkCtx{class: ctx.class, scope: ctx.scope, returnType: ctx.returnType, inLoop: true}
		a.walkStmt(st.Body, loopCtx)

	case *ast.ForStmt:
		forScope := sym.NewScope(ctx.scope)
		forCtx := &walkCtx{class: ctx.class, scope: forScope, returnType: ctx.returnType, inLoop: true}
		if st.Init != nil {
			a.walkStmt(st.Init, forCtx)
		}
		if st.Cond != nil {
			a.checkCondition(st.Cond, forCtx)
		}
		if st.Step != nil {
			a.checkExpr(st.Step, forCtx)
		}
		a.walkStmt(st.Body, forCtx)

	case *ast.ForEachStmt:
		a.walkForEach(st, ctx)

	case *ast.ReturnStmt:
		if st.Value == nil {
			if !ctx.returnType.IsVoid() {
				a.Bag.Errorf(st.Position, "missing return value for non-void method")
			}
			return
		}
		vt := a.checkExpr(st.Value, ctx)
		a.checkAssignable(st.Position, ctx.returnType, vt)

	case *ast.BreakStmt:
		// a loop-structure check, not a declared-local type mismatch or
		// undefined identifier (spec §1), so this warns rather than
		// blocks the emitter.
		if !ctx.inLoop {
			a.Bag.Warnf(st.Position, "break outside of a loop")
		}

	case *ast.ContinueStmt:
		if !ctx.inLoop {
			a.Bag.Warnf(st.Position, "continue outside of a loop")
		}
	}
}

func (a *Analyzer) walkVarDecl(v *ast.VarDecl, ctx *walkCtx) {
	var declared types.ResolvedType
	var initType types.ResolvedType
	hasInit := v.Init != nil

	if hasInit {
		initType = a.checkExpr(v.Init, ctx)
	}

	if v.Type == nil {
		// `var x = expr;` is inferred from Init (spec §4.3's inference
		// table); a `var` with no initializer has nothing to infer from and
		// is reported as an error.
		if hasInit {
			declared = initType
		} else {
			a.Bag.Errorf(v.Position, "local %q has neither a type nor an initializer", v.Name)
			declared = types.New(types.Object)
		}
	} else {
		declared = a.resolveTypeRef(v.Type)
		if hasInit {
			a.checkAssignable(v.Position, declared, initType)
		}
	}

	v.ResolvedType = toASTResolved(declared)
	if !ctx.scope.Define(&sym.Symbol{Name: v.Name, Kind: sym.KindVar, Type: declared}) {
		a.Bag.Errorf(v.Position, "local %q is already defined in this scope", v.Name)
	}
}

func (a *Analyzer) walkForEach(f *ast.ForEachStmt, ctx *walkCtx) {
	iterType := a.checkExpr(f.Iterable, ctx)

	var elem types.ResolvedType
	if iterType.IsArray {
		elem = types.New(iterType.Name)
	} else {
		a.Bag.Errorf(f.Position, "cannot iterate over non-array type %s", iterType)
		elem = types.New(types.Object)
	}
	if f.VarType != nil {
		elem = a.resolveTypeRef(f.VarType)
	}
	f.ResolvedElem = toASTResolved(elem)

	bodyScope := sym.NewScope(ctx.scope)
	bodyScope.Define(&sym.Symbol{Name: f.VarName, Kind: sym.KindVar, Type: elem})
	loopCtx := &walkCtx{class: ctx.class, scope: bodyScope, returnType: ctx.returnType, inLoop: true}
	a.walkStmt(f.Body, loopCtx)
}

// checkCondition type-checks a condition expression and warns if it isn't
// bool-typed; a non-bool condition still type-checks the rest of the file
// instead of aborting. This falls outside the narrow declared-local/
// undefined-identifier checking contract (spec §1), so it's a warning, not
// a blocking error.
func (a *Analyzer) checkCondition(cond ast.Expr, ctx *walkCtx) {
	t := a.checkExpr(cond, ctx)
	if !t.Equal(types.New(types.Bool)) && a.Table.IsKnownTypeName(t.Name) {
		a.Bag.Warnf(cond.Pos(), "condition must be of type bool, got %s", t)
	}
}
