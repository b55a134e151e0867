package sym

import (
	"testing"

	"ggc/ast"
)

func TestNewTablePrePopulatesBuiltins(t *testing.T) {
	tbl := NewTable()

	for _, name := range []string{"int", "string", "bool"} {
		if !tbl.IsKnownTypeName(name) {
			t.Errorf("expected primitive %q to be known", name)
		}
	}
	for _, name := range BuiltinStaticClasses {
		if !tbl.IsKnownTypeName(name) {
			t.Errorf("expected built-in static class %q to be known", name)
		}
	}
	if tbl.IsKnownTypeName("Nonexistent") {
		t.Error("unregistered name should not be known")
	}
}

func TestClassInfoInheritanceChain(t *testing.T) {
	animal := NewClassInfo(&ast.ClassDecl{Name: "Animal"})
	dog := NewClassInfo(&ast.ClassDecl{Name: "Dog", Base: "Animal"})
	dog.BaseInfo = animal

	if !dog.IsSubclassOf(animal) {
		t.Error("Dog should be a subclass of Animal")
	}
	if !dog.IsSubclassOf(dog) {
		t.Error("a class should be considered a subclass of itself")
	}
	if animal.IsSubclassOf(dog) {
		t.Error("Animal should not be a subclass of Dog")
	}
}

func TestVirtualMethodsWalksBaseChain(t *testing.T) {
	animal := NewClassInfo(&ast.ClassDecl{Name: "Animal"})
	animal.Methods["speak"] = &ast.MethodDecl{Name: "speak", Modifiers: ast.Modifiers{Virtual: true}}

	dog := NewClassInfo(&ast.ClassDecl{Name: "Dog", Base: "Animal"})
	dog.BaseInfo = animal
	dog.Methods["speak"] = &ast.MethodDecl{Name: "speak", Modifiers: ast.Modifiers{Override: true}}

	vs := dog.VirtualMethods()
	if len(vs) != 1 {
		t.Fatalf("expected 1 virtual method, got %d", len(vs))
	}
	if !vs["speak"].Modifiers.Override {
		t.Error("Dog's override should win over Animal's declaration")
	}
}

func TestScopeShadowing(t *testing.T) {
	global := NewScope(nil)
	global.Define(&Symbol{Name: "x", Kind: KindVar})

	child := NewScope(global)
	if _, ok := child.LookupLocal("x"); ok {
		t.Error("LookupLocal should not see parent scope symbols")
	}
	if _, ok := child.Lookup("x"); !ok {
		t.Error("Lookup should walk to the parent scope")
	}

	child.Define(&Symbol{Name: "x", Kind: KindParam})
	sym, _ := child.Lookup("x")
	if sym.Kind != KindParam {
		t.Error("child definition should shadow the parent's")
	}
}
