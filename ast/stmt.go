package ast

import "ggc/diag"

// Block is a brace-delimited statement sequence; it opens its own scope in
// the symbol table (spec §3, §4.3).
type Block struct {
	Position diag.Position
	Stmts    []Stmt
}

func (b *Block) Pos() diag.Position { return b.Position }
func (b *Block) stmtNode()          {}

// VarDecl is a typed or `var`-inferred local declaration. Type is nil when
// the declaration relies on inference from Init (spec §4.3's type-inference
// table); ResolvedType is filled in by the analyzer either way.
type VarDecl struct {
	Position     diag.Position
	Name         string
	Type         *TypeRef // nil for `var x = ...`
	Init         Expr     // nil for a bare `Type x;`
	ResolvedType ResolvedTypeRef
}

func (v *VarDecl) Pos() diag.Position { return v.Position }
func (v *VarDecl) stmtNode()          {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	Position diag.Position
	X        Expr
}

func (e *ExprStmt) Pos() diag.Position { return e.Position }
func (e *ExprStmt) stmtNode()          {}

// IfStmt is `if (Cond) Then` with an optional `else Else`.
type IfStmt struct {
	Position diag.Position
	Cond     Expr
	Then     Stmt
	Else     Stmt // nil if there is no else clause
}

func (i *IfStmt) Pos() diag.Position { return i.Position }
func (i *IfStmt) stmtNode()          {}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Position diag.Position
	Cond     Expr
	Body     Stmt
}

func (w *WhileStmt) Pos() diag.Position { return w.Position }
func (w *WhileStmt) stmtNode()          {}

// ForStmt is a C-style for loop with optional init/cond/step.
type ForStmt struct {
	Position diag.Position
	Init     Stmt // nil if elided; VarDecl or ExprStmt
	Cond     Expr // nil if elided
	Step     Expr // nil if elided
	Body     Stmt
}

func (f *ForStmt) Pos() diag.Position { return f.Position }
func (f *ForStmt) stmtNode()          {}

// ForEachStmt is `foreach (Type? Name in Iterable) Body`; Type is nil for an
// untyped iteration variable.
type ForEachStmt struct {
	Position     diag.Position
	VarName      string
	VarType      *TypeRef // nil if untyped
	Iterable     Expr
	Body         Stmt
	ResolvedElem ResolvedTypeRef
}

func (f *ForEachStmt) Pos() diag.Position { return f.Position }
func (f *ForEachStmt) stmtNode()          {}

// ReturnStmt is `return;` or `return Value;`.
type ReturnStmt struct {
	Position diag.Position
	Value    Expr // nil for a bare return
}

func (r *ReturnStmt) Pos() diag.Position { return r.Position }
func (r *ReturnStmt) stmtNode()          {}

// BreakStmt is `break;`.
type BreakStmt struct {
	Position diag.Position
}

func (b *BreakStmt) Pos() diag.Position { return b.Position }
func (b *BreakStmt) stmtNode()          {}

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Position diag.Position
}

func (c *ContinueStmt) Pos() diag.Position { return c.Position }
func (c *ContinueStmt) stmtNode()          {}
