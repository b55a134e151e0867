// Package ast defines the closed family of node variants produced by the
// parser: declarations, statements, expressions, and type references (spec
// §3). Nodes are immutable once produced except for the ResolvedType field
// the semantic analyzer writes once on expressions and typed declarations.
package ast

import "ggc/diag"

// Node is the base interface every AST node satisfies. Position should span
// the entire node meaningfully, mirroring the teacher's ASTNode contract.
type Node interface {
	Pos() diag.Position
}

// Decl is a top-level or member declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a method or constructor body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression; ResolvedType is populated once by the semantic
// analyzer's body-walk pass (spec §3's sole mutable AST field).
type Expr interface {
	Node
	exprNode()
	SetResolvedType(t ResolvedTypeRef)
	GetResolvedType() (ResolvedTypeRef, bool)
}

// ResolvedTypeRef is the analyzer's resolved-type payload attached to an
// expression. It is declared here (rather than importing package types
// directly) only to avoid a needless import in every leaf node; sema uses
// types.ResolvedType and adapts it through this alias-friendly shape.
type ResolvedTypeRef struct {
	Name       string
	IsArray    bool
	IsNullable bool
}

// exprBase supplies the ResolvedType bookkeeping shared by every Expr.
type exprBase struct {
	resolved   ResolvedTypeRef
	hasResolved bool
}

func (e *exprBase) SetResolvedType(t ResolvedTypeRef) {
	e.resolved = t
	e.hasResolved = true
}

func (e *exprBase) GetResolvedType() (ResolvedTypeRef, bool) {
	return e.resolved, e.hasResolved
}

// -----------------------------------------------------------------------------
// Type reference

// TypeRef names a type as written in source: a name, an optional array
// marker, an optional nullable marker, and optional generic arguments
// (parsed but not semantically enforced by this core, per spec §3).
type TypeRef struct {
	Position   diag.Position
	Name       string
	IsArray    bool
	IsNullable bool
	Generics   []*TypeRef
}

func (t *TypeRef) Pos() diag.Position { return t.Position }

// -----------------------------------------------------------------------------
// Annotation

// Annotation is `[@Name]` or `[@Name(arg, ...)]`; Args is the ordered
// literal-expression argument list (spec §4.2, §4.3).
type Annotation struct {
	Position diag.Position
	Name     string
	NamePos  diag.Position
	Args     []Expr
}

func (a *Annotation) Pos() diag.Position { return a.Position }

// -----------------------------------------------------------------------------
// Compilation unit

// CompilationUnit is the root of a parsed file: an optional module name, an
// import list, and the top-level type declarations.
type CompilationUnit struct {
	Position diag.Position
	Module   *ModuleDecl
	Imports  []*ImportDecl
	Types    []Decl
}

func (c *CompilationUnit) Pos() diag.Position { return c.Position }

// ModuleDecl is `module Name;`.
type ModuleDecl struct {
	Position diag.Position
	Name     string
}

func (m *ModuleDecl) Pos() diag.Position { return m.Position }
func (m *ModuleDecl) declNode()          {}

// ImportDecl is `import Name;` where Name may be dotted.
type ImportDecl struct {
	Position diag.Position
	Path     string
}

func (i *ImportDecl) Pos() diag.Position { return i.Position }
func (i *ImportDecl) declNode()          {}

// -----------------------------------------------------------------------------
// Modifiers shared by every declaration

// Access is the access modifier a declaration was written with.
type Access int

const (
	AccessDefault Access = iota
	AccessPublic
	AccessPrivate
	AccessProtected
)

// Modifiers is the bit field of non-access modifiers a declaration carries
// (spec §4.2's modifier set).
type Modifiers struct {
	Static   bool
	Abstract bool
	Virtual  bool
	Override bool
	Sealed   bool
	Readonly bool
}

// -----------------------------------------------------------------------------
// Type declarations

// ClassDecl is a class declaration: optional base class, interfaces,
// fields, methods, constructors.
type ClassDecl struct {
	Position     diag.Position
	Name         string
	Base         string // empty if no base class
	Interfaces   []string
	Access       Access
	Modifiers    Modifiers
	Annotations  []*Annotation
	Fields       []*FieldDecl
	Methods      []*MethodDecl
	Constructors []*ConstructorDecl
}

func (c *ClassDecl) Pos() diag.Position { return c.Position }
func (c *ClassDecl) declNode()          {}

// InterfaceDecl declares an interface: a set of method signatures (bodies
// are never present per the source grammar; stored as MethodDecl with
// Body == nil).
type InterfaceDecl struct {
	Position    diag.Position
	Name        string
	Access      Access
	Annotations []*Annotation
	Methods     []*MethodDecl
}

func (i *InterfaceDecl) Pos() diag.Position { return i.Position }
func (i *InterfaceDecl) declNode()          {}

// EnumDecl declares an enum: an ordered set of case names.
type EnumDecl struct {
	Position diag.Position
	Name     string
	Access   Access
	Cases    []string
}

func (e *EnumDecl) Pos() diag.Position { return e.Position }
func (e *EnumDecl) declNode()          {}

// -----------------------------------------------------------------------------
// Members

// FieldDecl is a class field, optionally initialized.
type FieldDecl struct {
	Position    diag.Position
	Name        string
	Type        *TypeRef
	Access      Access
	Modifiers   Modifiers
	Init        Expr // nil if uninitialized
	Annotations []*Annotation
}

func (f *FieldDecl) Pos() diag.Position { return f.Position }
func (f *FieldDecl) declNode()          {}

// Param is a method or constructor parameter.
type Param struct {
	Position diag.Position
	Name     string
	Type     *TypeRef
}

func (p *Param) Pos() diag.Position { return p.Position }

// MethodDecl is a method declaration; Body is nil for abstract methods and
// interface method signatures (spec §4.2).
type MethodDecl struct {
	Position    diag.Position
	Name        string
	Params      []*Param
	ReturnType  *TypeRef
	Access      Access
	Modifiers   Modifiers
	Body        *Block
	Annotations []*Annotation

	// OwnerClass is set by the semantic analyzer while walking a class's
	// members, used by the emitter to qualify the generated function name.
	OwnerClass string
}

func (m *MethodDecl) Pos() diag.Position { return m.Position }
func (m *MethodDecl) declNode()          {}

// ConstructorDecl is a constructor declaration, with an optional
// `: base(args)` initializer and a mandatory body (spec §4.2).
type ConstructorDecl struct {
	Position    diag.Position
	Params      []*Param
	BaseArgs    []Expr // nil if there is no base initializer
	HasBaseCall bool
	Body        *Block
	Access      Access

	OwnerClass string
}

func (c *ConstructorDecl) Pos() diag.Position { return c.Position }
func (c *ConstructorDecl) declNode()          {}
