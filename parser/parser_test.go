package parser

import (
	"testing"

	"ggc/ast"
	"ggc/diag"
	"ggc/lexer"
)

func TestParseSingleMethodClass(t *testing.T) {
	src := `
class Greeter {
	public string greet() {
		return "hi";
	}
}
`
	bag := diag.NewBag("test.gg")
	toks := lexer.Lex(src, "t.gg", bag)
	cu := New(toks, "t.gg", bag).Parse()
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
	if len(cu.Types) != 1 {
		t.Fatalf("expected 1 type decl, got %d", len(cu.Types))
	}
}

func TestParseConstructorVsMethodDisambiguation(t *testing.T) {
	src := `
class Point {
	int x;
	Point(int x) {
		this.x = x;
	}
	int getX() {
		return x;
	}
}
`
	bag := diag.NewBag("test.gg")
	toks := lexer.Lex(src, "t.gg", bag)
	New(toks, "t.gg", bag).Parse()
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
}

func TestParseNewObjectVsNewArrayDisjoint(t *testing.T) {
	cases := []string{
		`class C { void m() { var a = new Thing(1, 2); } }`,
		`class C { void m() { var a = new int[10]; } }`,
	}
	for _, src := range cases {
		bag := diag.NewBag("test.gg")
		toks := lexer.Lex(src, "t.gg", bag)
		New(toks, "t.gg", bag).Parse()
		if bag.HasErrors() {
			t.Fatalf("unexpected errors for %q: %v", src, bag.All())
		}
	}
}

func TestParseLocalDeclVsExpressionStatement(t *testing.T) {
	src := `
class C {
	void m() {
		int x = 1;
		Point p = getPoint();
		int[] xs;
		var y = 2;
		x = x + 1;
		doSomething();
	}
}
`
	bag := diag.NewBag("test.gg")
	toks := lexer.Lex(src, "t.gg", bag)
	New(toks, "t.gg", bag).Parse()
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
}

func TestParseBaseConstructorCall(t *testing.T) {
	src := `
class Animal {
	Animal() { }
}
class Dog : Animal {
	Dog() : base() { }
}
`
	bag := diag.NewBag("test.gg")
	toks := lexer.Lex(src, "t.gg", bag)
	New(toks, "t.gg", bag).Parse()
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
}

func TestParseAnnotation(t *testing.T) {
	src := `
[@Deprecated("use Bar instead")]
class Foo {
}
`
	bag := diag.NewBag("test.gg")
	toks := lexer.Lex(src, "t.gg", bag)
	cu := New(toks, "t.gg", bag).Parse()
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
	if len(cu.Types) != 1 {
		t.Fatalf("expected 1 type decl, got %d", len(cu.Types))
	}
}

func TestParseMissingSemicolonRecovers(t *testing.T) {
	src := `
class C {
	int x
	int y;
}
`
	bag := diag.NewBag("test.gg")
	toks := lexer.Lex(src, "t.gg", bag)
	cu := New(toks, "t.gg", bag).Parse()
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for the missing semicolon")
	}
	if len(cu.Types) != 1 {
		t.Fatalf("expected 1 type decl, got %d", len(cu.Types))
	}
	if cd, ok := cu.Types[0].(*ast.ClassDecl); !ok || len(cd.Fields) != 2 {
		t.Fatalf("expected parsing to recover and yield both fields, got %+v", cu.Types[0])
	}
}
