package lexer

import (
	"testing"

	"ggc/diag"
	"ggc/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag("test.gg")
	toks := Lex(src, "test.gg", bag)
	return toks, bag
}

func TestEndsWithEOF(t *testing.T) {
	toks, _ := lexAll(t, "class Foo { }")
	if last := toks[len(toks)-1]; last.Kind != token.EOF {
		t.Fatalf("expected last token to be EOF, got %v", last.Kind)
	}
}

func TestKeywordWithTrailingSpace(t *testing.T) {
	toks, bag := lexAll(t, "if ")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
	if toks[0].Kind != token.IF {
		t.Fatalf("expected IF, got %v", toks[0].Kind)
	}
	if toks[0].Pos.Line != 1 || toks[0].Pos.Col != 1 {
		t.Fatalf("expected position (1,1), got (%d,%d)", toks[0].Pos.Line, toks[0].Pos.Col)
	}
	if toks[1].Kind != token.EOF {
		t.Fatalf("expected EOF after keyword, got %v", toks[1].Kind)
	}
}

func TestMultiCharCharLiteral(t *testing.T) {
	_, bag := lexAll(t, "'teste'")
	if bag.ErrorCount() != 1 {
		t.Fatalf("expected exactly one error, got %d", bag.ErrorCount())
	}
	msg := bag.All()[0].Message
	if !contains(msg, "too many characters") {
		t.Errorf("expected message to mention 'too many characters', got %q", msg)
	}
}

func TestEmptyCharLiteral(t *testing.T) {
	_, bag := lexAll(t, "''")
	if bag.ErrorCount() != 1 {
		t.Fatalf("expected exactly one error, got %d", bag.ErrorCount())
	}
	msg := bag.All()[0].Message
	if !contains(msg, "empty character literal") {
		t.Errorf("expected message to mention 'empty character literal', got %q", msg)
	}
}

func TestNumberDotMethodCall(t *testing.T) {
	toks, bag := lexAll(t, "42.toString()")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}

	wantKinds := []token.Kind{token.INTLIT, token.DOT, token.IDENTIFIER, token.LPAREN, token.RPAREN, token.EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(wantKinds), len(toks), toks)
	}

	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, want)
		}
	}

	if toks[0].Value != "42" {
		t.Errorf("expected integer literal value '42', got %q", toks[0].Value)
	}
}

func TestFloatLiteral(t *testing.T) {
	toks, bag := lexAll(t, "3.14")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
	if toks[0].Kind != token.FLOATLIT || toks[0].Value != "3.14" {
		t.Fatalf("expected float literal 3.14, got %v %q", toks[0].Kind, toks[0].Value)
	}
}

func TestCompoundOperators(t *testing.T) {
	toks, bag := lexAll(t, "== != <= >= << >> && || ++ -- += -= *= /= =>")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}

	want := []token.Kind{
		token.EQ, token.NEQ, token.LTEQ, token.GTEQ, token.SHL, token.SHR,
		token.AND, token.OR, token.INCREM, token.DECREM,
		token.PLUSEQ, token.MINUSEQ, token.STAREQ, token.SLASHEQ, token.ARROW, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].Kind != w {
			t.Errorf("token %d: got %v want %v", i, toks[i].Kind, w)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	toks, bag := lexAll(t, `"a\nb\tc\\d\"e"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
	want := "a\nb\tc\\d\"e"
	if toks[0].Value != want {
		t.Fatalf("got %q, want %q", toks[0].Value, want)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, bag := lexAll(t, `"unterminated`)
	if bag.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", bag.ErrorCount())
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, bag := lexAll(t, "$")
	if bag.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", bag.ErrorCount())
	}
	if !contains(bag.All()[0].Message, "U+0024") {
		t.Errorf("expected hex code point in message, got %q", bag.All()[0].Message)
	}
}

func TestComments(t *testing.T) {
	toks, bag := lexAll(t, "// line comment\nint /* block\ncomment */ x;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}
	want := []token.Kind{token.INT, token.IDENTIFIER, token.SEMICOLON, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
}

func contains(s, sub string) bool {
	return len(s) >= len(sub) && (func() bool {
		for i := 0; i+len(sub) <= len(s); i++ {
			if s[i:i+len(sub)] == sub {
				return true
			}
		}
		return false
	})()
}
