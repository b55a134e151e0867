package emit

import (
	"fmt"

	"ggc/ast"
	"ggc/sym"
)

// funcCtx carries the state needed to lower one method or constructor body:
// the enclosing class (for field/vtable access paths), the emitter being
// written to, the declared return type (nil for void), the GC root-frame
// variable in scope, and a counter used to name the index variables foreach
// loops lower to.
type funcCtx struct {
	ci       *sym.ClassInfo
	e        *Emitter
	retType  *ast.TypeRef
	frameVar string
	loopN    int
}

func indent(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "\t"
	}
	return s
}

// writeBlock lowers every statement of b at indentLevel. A return statement
// pops the function's GC root frame before returning, since the runtime
// scans only frames still on its stack (spec §4.4's root-frame
// requirement); non-returning control paths are popped by the caller once
// the whole body has been written.
func (fc *funcCtx) writeBlock(b *ast.Block, indentLevel int) {
	for _, s := range b.Stmts {
		fc.writeStmt(s, indentLevel)
	}
}

func (fc *funcCtx) writeStmt(s ast.Stmt, ind int) {
	e := fc.e
	pre := indent(ind)

	switch x := s.(type) {
	case *ast.Block:
		e.emitf("%s{\n", pre)
		fc.writeBlock(x, ind+1)
		e.emitf("%s}\n", pre)

	case *ast.VarDecl:
		tname := x.ResolvedType.Name
		cType := e.cType(tname, x.ResolvedType.IsArray)
		if x.Init != nil {
			e.emitf("%s%s %s = %s;\n", pre, cType, x.Name, e.exprString(fc.ci, x.Init))
		} else {
			e.emitf("%s%s %s;\n", pre, cType, x.Name)
		}

	case *ast.ExprStmt:
		e.emitf("%s%s;\n", pre, e.exprString(fc.ci, x.X))

	case *ast.IfStmt:
		e.emitf("%sif (%s) {\n", pre, e.exprString(fc.ci, x.Cond))
		fc.writeStmtAsBlockBody(x.Then, ind+1)
		if x.Else != nil {
			e.emitf("%s} else {\n", pre)
			fc.writeStmtAsBlockBody(x.Else, ind+1)
		}
		e.emitf("%s}\n", pre)

	case *ast.WhileStmt:
		e.emitf("%swhile (%s) {\n", pre, e.exprString(fc.ci, x.Cond))
		fc.writeStmtAsBlockBody(x.Body, ind+1)
		e.emitf("%s}\n", pre)

	case *ast.ForStmt:
		e.emitf("%sfor (%s; %s; %s) {\n", pre, fc.forInitString(x.Init), fc.forCondString(x.Cond), fc.forStepString(x.Step))
		fc.writeStmtAsBlockBody(x.Body, ind+1)
		e.emitf("%s}\n", pre)

	case *ast.ForEachStmt:
		fc.writeForEach(x, ind)

	case *ast.ReturnStmt:
		if fc.frameVar != "" {
			e.emitf("%sgg_gc_pop_root_frame(%s);\n", pre, fc.frameVar)
		}
		if x.Value != nil {
			e.emitf("%sreturn %s;\n", pre, e.exprString(fc.ci, x.Value))
		} else {
			e.emitf("%sreturn;\n", pre)
		}

	case *ast.BreakStmt:
		e.emitf("%sbreak;\n", pre)

	case *ast.ContinueStmt:
		e.emitf("%scontinue;\n", pre)
	}
}

// writeStmtAsBlockBody lowers a non-Block statement as if it were a
// single-statement block, since every gg control-flow body becomes a
// brace-delimited C body regardless of how it was written in source.
func (fc *funcCtx) writeStmtAsBlockBody(s ast.Stmt, ind int) {
	if b, ok := s.(*ast.Block); ok {
		fc.writeBlock(b, ind)
		return
	}
	fc.writeStmt(s, ind)
}

func (fc *funcCtx) forInitString(s ast.Stmt) string {
	switch x := s.(type) {
	case nil:
		return ""
	case *ast.VarDecl:
		cType := fc.e.cType(x.ResolvedType.Name, x.ResolvedType.IsArray)
		if x.Init != nil {
			return fmt.Sprintf("%s %s = %s", cType, x.Name, fc.e.exprString(fc.ci, x.Init))
		}
		return fmt.Sprintf("%s %s", cType, x.Name)
	case *ast.ExprStmt:
		return fc.e.exprString(fc.ci, x.X)
	}
	return ""
}

func (fc *funcCtx) forCondString(cond ast.Expr) string {
	if cond == nil {
		return "true"
	}
	return fc.e.exprString(fc.ci, cond)
}

func (fc *funcCtx) forStepString(step ast.Expr) string {
	if step == nil {
		return ""
	}
	return fc.e.exprString(fc.ci, step)
}

// writeForEach lowers `foreach (T x in arr) body` to an indexed C loop over
// the runtime's opaque gg_array, since the array element type is not part
// of the C type of a gg_array pointer (spec §3's array model).
func (fc *funcCtx) writeForEach(x *ast.ForEachStmt, ind int) {
	e := fc.e
	pre := indent(ind)

	fc.loopN++
	idx := fmt.Sprintf("__gg_i%d", fc.loopN)
	elemC := e.cType(x.ResolvedElem.Name, x.ResolvedElem.IsArray)
	iterable := e.exprString(fc.ci, x.Iterable)

	e.emitf("%sfor (int32_t %s = 0; %s < (int32_t)gg_array_length(%s); %s++) {\n", pre, idx, idx, iterable, idx)
	e.emitf("%s\t%s %s = *(%s*)gg_array_get_ptr(%s, %s);\n", pre, elemC, x.VarName, elemC, iterable, idx)
	fc.writeStmtAsBlockBody(x.Body, ind+1)
	e.emitf("%s}\n", pre)
}
