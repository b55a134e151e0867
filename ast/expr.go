package ast

import "ggc/diag"

// IntLit is an integer literal.
type IntLit struct {
	exprBase
	Position diag.Position
	Value    string
}

func (l *IntLit) Pos() diag.Position { return l.Position }
func (l *IntLit) exprNode()          {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	exprBase
	Position diag.Position
	Value    string
}

func (l *FloatLit) Pos() diag.Position { return l.Position }
func (l *FloatLit) exprNode()          {}

// StringLit is a string literal (escapes already resolved by the lexer).
type StringLit struct {
	exprBase
	Position diag.Position
	Value    string
}

func (l *StringLit) Pos() diag.Position { return l.Position }
func (l *StringLit) exprNode()          {}

// CharLit is a character literal.
type CharLit struct {
	exprBase
	Position diag.Position
	Value    rune
}

func (l *CharLit) Pos() diag.Position { return l.Position }
func (l *CharLit) exprNode()          {}

// BoolLit is `true` or `false`.
type BoolLit struct {
	exprBase
	Position diag.Position
	Value    bool
}

func (l *BoolLit) Pos() diag.Position { return l.Position }
func (l *BoolLit) exprNode()          {}

// NullLit is the `null` literal.
type NullLit struct {
	exprBase
	Position diag.Position
}

func (l *NullLit) Pos() diag.Position { return l.Position }
func (l *NullLit) exprNode()          {}

// Ident is a bare identifier reference.
type Ident struct {
	exprBase
	Position diag.Position
	Name     string
}

func (i *Ident) Pos() diag.Position { return i.Position }
func (i *Ident) exprNode()          {}

// ThisExpr is the `this` keyword used as an expression.
type ThisExpr struct {
	exprBase
	Position diag.Position
}

func (t *ThisExpr) Pos() diag.Position { return t.Position }
func (t *ThisExpr) exprNode()          {}

// BaseExpr is the `base` keyword used as an expression (only valid as a
// method-call target: `base.method(...)`).
type BaseExpr struct {
	exprBase
	Position diag.Position
}

func (b *BaseExpr) Pos() diag.Position { return b.Position }
func (b *BaseExpr) exprNode()          {}

// UnaryExpr is a prefix unary operator applied to X: `!`, `-`, `~`, `++`,
// `--`.
type UnaryExpr struct {
	exprBase
	Position diag.Position
	Op       string
	X        Expr
}

func (u *UnaryExpr) Pos() diag.Position { return u.Position }
func (u *UnaryExpr) exprNode()          {}

// PostfixExpr is a postfix `++` or `--` applied to X.
type PostfixExpr struct {
	exprBase
	Position diag.Position
	Op       string
	X        Expr
}

func (p *PostfixExpr) Pos() diag.Position { return p.Position }
func (p *PostfixExpr) exprNode()          {}

// BinaryExpr is a binary operator expression.
type BinaryExpr struct {
	exprBase
	Position diag.Position
	Op       string
	Left     Expr
	Right    Expr
}

func (b *BinaryExpr) Pos() diag.Position { return b.Position }
func (b *BinaryExpr) exprNode()          {}

// AssignExpr is a (possibly compound) assignment: `=`, `+=`, `-=`, `*=`,
// `/=`.
type AssignExpr struct {
	exprBase
	Position diag.Position
	Op       string
	Target   Expr
	Value    Expr
}

func (a *AssignExpr) Pos() diag.Position { return a.Position }
func (a *AssignExpr) exprNode()          {}

// CallExpr is a method/function call: a callee expression plus argument
// list. The callee is typically a MemberExpr or an Ident.
type CallExpr struct {
	exprBase
	Position diag.Position
	Callee   Expr
	Args     []Expr
}

func (c *CallExpr) Pos() diag.Position { return c.Position }
func (c *CallExpr) exprNode()          {}

// MemberExpr is `Target.Name`.
type MemberExpr struct {
	exprBase
	Position diag.Position
	Target   Expr
	Name     string
}

func (m *MemberExpr) Pos() diag.Position { return m.Position }
func (m *MemberExpr) exprNode()          {}

// NewObjectExpr is `new Type(args...)`.
type NewObjectExpr struct {
	exprBase
	Position diag.Position
	TypeName string
	Args     []Expr
}

func (n *NewObjectExpr) Pos() diag.Position { return n.Position }
func (n *NewObjectExpr) exprNode()          {}

// NewArrayExpr is `new Type[size]`.
type NewArrayExpr struct {
	exprBase
	Position diag.Position
	ElemType *TypeRef
	Size     Expr
}

func (n *NewArrayExpr) Pos() diag.Position { return n.Position }
func (n *NewArrayExpr) exprNode()          {}

// IndexExpr is `Target[Index]`.
type IndexExpr struct {
	exprBase
	Position diag.Position
	Target   Expr
	Index    Expr
}

func (i *IndexExpr) Pos() diag.Position { return i.Position }
func (i *IndexExpr) exprNode()          {}

// CastExpr is `X as Type`.
type CastExpr struct {
	exprBase
	Position diag.Position
	X        Expr
	Type     *TypeRef
}

func (c *CastExpr) Pos() diag.Position { return c.Position }
func (c *CastExpr) exprNode()          {}
