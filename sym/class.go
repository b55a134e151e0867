package sym

import "ggc/ast"

// ClassInfo is the semantic analyzer's per-class record: the resolved base
// class and interface list, and the member tables used by both the
// body-walk pass and the emitter (spec §3, §4.3, §4.4).
type ClassInfo struct {
	Decl *ast.ClassDecl

	Name       string
	Base       string // declared base class name, "" if none
	BaseInfo   *ClassInfo
	Interfaces []string

	IsAbstract bool
	IsSealed   bool
	Access     ast.Access

	// Fields is own (non-inherited) fields keyed by name; FieldOrder
	// preserves declaration order for the struct layout the emitter writes.
	Fields     map[string]*ast.FieldDecl
	FieldOrder []string

	// Methods is own (non-inherited, non-overriding-duplicate) methods
	// keyed by name; MethodOrder preserves declaration order, the same
	// role FieldOrder plays for fields, so the emitter can lay out a
	// derived class's vtable as a prefix-compatible extension of its
	// base's. A class's full virtual method set is computed on demand by
	// VirtualMethods/OrderedVirtualMethods, walking BaseInfo.
	Methods      map[string]*ast.MethodDecl
	MethodOrder  []string
	Constructors []*ast.ConstructorDecl

	// resolved marks that this class's inheritance chain has already been
	// linked, breaking cycles during the second analyzer pass the way the
	// teacher's batch resolver tracks already-resolved definitions.
	resolved bool
}

// NewClassInfo creates an empty ClassInfo for decl.
func NewClassInfo(decl *ast.ClassDecl) *ClassInfo {
	return &ClassInfo{
		Decl:       decl,
		Name:       decl.Name,
		Base:       decl.Base,
		Interfaces: decl.Interfaces,
		IsAbstract: decl.Modifiers.Abstract,
		IsSealed:   decl.Modifiers.Sealed,
		Access:     decl.Access,
		Fields:     make(map[string]*ast.FieldDecl),
		Methods:    make(map[string]*ast.MethodDecl),
	}
}

// Resolved reports whether this class's inheritance chain has been linked.
func (c *ClassInfo) Resolved() bool { return c.resolved }

// MarkResolved records that BaseInfo (if any) has been linked.
func (c *ClassInfo) MarkResolved() { c.resolved = true }

// IsSubclassOf reports whether c is other or descends from other by walking
// the resolved BaseInfo chain (spec §3's inheritance lattice).
func (c *ClassInfo) IsSubclassOf(other *ClassInfo) bool {
	for cur := c; cur != nil; cur = cur.BaseInfo {
		if cur == other {
			return true
		}
	}
	return false
}

// ImplementsInterface reports whether c or an ancestor declares name among
// its Interfaces.
func (c *ClassInfo) ImplementsInterface(name string) bool {
	for cur := c; cur != nil; cur = cur.BaseInfo {
		for _, iface := range cur.Interfaces {
			if iface == name {
				return true
			}
		}
	}
	return false
}

// LookupField finds a field by name in c or an ancestor.
func (c *ClassInfo) LookupField(name string) (*ast.FieldDecl, *ClassInfo, bool) {
	for cur := c; cur != nil; cur = cur.BaseInfo {
		if f, ok := cur.Fields[name]; ok {
			return f, cur, true
		}
	}
	return nil, nil, false
}

// LookupMethod finds a method by name, starting at c and walking to the
// base chain's root. The returned ClassInfo is the class that declares the
// most-derived override; dispatch (static vs. vtable-indirect) is decided
// by the emitter from the method's Modifiers, not here.
func (c *ClassInfo) LookupMethod(name string) (*ast.MethodDecl, *ClassInfo, bool) {
	for cur := c; cur != nil; cur = cur.BaseInfo {
		if m, ok := cur.Methods[name]; ok {
			return m, cur, true
		}
	}
	return nil, nil, false
}

// VirtualMethods returns the set of virtual method names visible on c: any
// method declared virtual, abstract, or override anywhere in the base
// chain, keyed by name with the most-derived declaration as the value. The
// emitter walks this to build a class's vtable layout.
func (c *ClassInfo) VirtualMethods() map[string]*ast.MethodDecl {
	out := make(map[string]*ast.MethodDecl)

	// walk root-to-leaf so the most-derived override wins last.
	chain := c.chainRootFirst()
	for _, cls := range chain {
		for name, m := range cls.Methods {
			if m.Modifiers.Virtual || m.Modifiers.Abstract || m.Modifiers.Override {
				out[name] = m
			}
		}
	}
	return out
}

// OrderedVirtualMethods returns c's full visible virtual-method-name set in
// vtable layout order: the root's own virtual methods first in their
// declared order, then each descendant's newly introduced virtual methods
// appended in its own declared order. An override never moves a name — it
// stays at the slot its introducing ancestor gave it. This keeps every
// class's vtable struct a layout-compatible prefix extension of its base's,
// so a pointer to a derived vtable instance reads correctly through a
// base-typed vtable pointer (spec §4.4).
func (c *ClassInfo) OrderedVirtualMethods() []string {
	var order []string
	seen := make(map[string]bool)

	for _, cls := range c.chainRootFirst() {
		for _, name := range cls.MethodOrder {
			m := cls.Methods[name]
			if !(m.Modifiers.Virtual || m.Modifiers.Abstract || m.Modifiers.Override) {
				continue
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			order = append(order, name)
		}
	}
	return order
}

func (c *ClassInfo) chainRootFirst() []*ClassInfo {
	var chain []*ClassInfo
	for cur := c; cur != nil; cur = cur.BaseInfo {
		chain = append(chain, cur)
	}
	// reverse in place
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
