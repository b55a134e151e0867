// Package token defines the closed set of lexical token kinds and the
// immutable Token value the lexer produces.
package token

import "ggc/diag"

// Kind is the tag of a Token, drawn from a closed enumeration covering
// keywords, punctuation, literals, identifier, end-of-file, and invalid.
type Kind int

const (
	// type keywords
	INT Kind = iota
	LONG
	BYTE
	SHORT
	FLOAT
	DOUBLE
	BOOL
	CHAR
	STRING
	VOID

	// control flow
	IF
	ELSE
	WHILE
	FOR
	FOREACH
	IN
	RETURN
	BREAK
	CONTINUE

	// declaration keywords
	MODULE
	IMPORT
	CLASS
	INTERFACE
	STRUCT
	ENUM
	VAR
	NEW
	THIS
	BASE
	STATIC
	PUBLIC
	PRIVATE
	PROTECTED
	ABSTRACT
	VIRTUAL
	OVERRIDE
	SEALED
	READONLY
	CONST
	AS
	IS
	MATCH
	CASE
	DEFAULT

	// literals
	TRUE
	FALSE
	NULL

	// identifiers / literals
	IDENTIFIER
	INTLIT
	FLOATLIT
	STRINGLIT
	CHARLIT

	// operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT

	ASSIGN
	PLUSEQ
	MINUSEQ
	STAREQ
	SLASHEQ

	EQ
	NEQ
	LT
	GT
	LTEQ
	GTEQ

	AND
	OR
	NOT

	AMP
	PIPE
	CARET
	SHL
	SHR
	TILDE

	INCREM
	DECREM

	// punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	COLON
	DOT
	QUESTION
	ARROW
	AT

	// terminator
	EOF
	INVALID
)

var kindNames = map[Kind]string{
	INT: "int", LONG: "long", BYTE: "byte", SHORT: "short", FLOAT: "float",
	DOUBLE: "double", BOOL: "bool", CHAR: "char", STRING: "string", VOID: "void",
	IF: "if", ELSE: "else", WHILE: "while", FOR: "for", FOREACH: "foreach",
	IN: "in", RETURN: "return", BREAK: "break", CONTINUE: "continue",
	MODULE: "module", IMPORT: "import", CLASS: "class", INTERFACE: "interface",
	STRUCT: "struct", ENUM: "enum", VAR: "var", NEW: "new", THIS: "this",
	BASE: "base", STATIC: "static", PUBLIC: "public", PRIVATE: "private",
	PROTECTED: "protected", ABSTRACT: "abstract", VIRTUAL: "virtual",
	OVERRIDE: "override", SEALED: "sealed", READONLY: "readonly", CONST: "const",
	AS: "as", IS: "is", MATCH: "match", CASE: "case", DEFAULT: "default",
	TRUE: "true", FALSE: "false", NULL: "null",
	IDENTIFIER: "identifier", INTLIT: "int-literal", FLOATLIT: "float-literal",
	STRINGLIT: "string-literal", CHARLIT: "char-literal",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	ASSIGN: "=", PLUSEQ: "+=", MINUSEQ: "-=", STAREQ: "*=", SLASHEQ: "/=",
	EQ: "==", NEQ: "!=", LT: "<", GT: ">", LTEQ: "<=", GTEQ: ">=",
	AND: "&&", OR: "||", NOT: "!",
	AMP: "&", PIPE: "|", CARET: "^", SHL: "<<", SHR: ">>", TILDE: "~",
	INCREM: "++", DECREM: "--",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]", COMMA: ",", SEMICOLON: ";", COLON: ":",
	DOT: ".", QUESTION: "?", ARROW: "=>", AT: "@",
	EOF: "EOF", INVALID: "invalid",
}

// String renders the kind's canonical spelling, used in diagnostics such as
// "expected ';'".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "?"
}

// keywords maps exact-match identifier text to its promoted keyword Kind.
var keywords = map[string]Kind{
	"int": INT, "long": LONG, "byte": BYTE, "short": SHORT, "float": FLOAT,
	"double": DOUBLE, "bool": BOOL, "char": CHAR, "string": STRING, "void": VOID,
	"if": IF, "else": ELSE, "while": WHILE, "for": FOR, "foreach": FOREACH,
	"in": IN, "return": RETURN, "break": BREAK, "continue": CONTINUE,
	"module": MODULE, "import": IMPORT, "class": CLASS, "interface": INTERFACE,
	"struct": STRUCT, "enum": ENUM, "var": VAR, "new": NEW, "this": THIS,
	"base": BASE, "static": STATIC, "public": PUBLIC, "private": PRIVATE,
	"protected": PROTECTED, "abstract": ABSTRACT, "virtual": VIRTUAL,
	"override": OVERRIDE, "sealed": SEALED, "readonly": READONLY, "const": CONST,
	"as": AS, "is": IS, "match": MATCH, "case": CASE, "default": DEFAULT,
	"true": TRUE, "false": FALSE, "null": NULL,
}

// LookupKeyword promotes an identifier's exact text to its keyword Kind, if
// any; ok is false for plain identifiers.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// PrimitiveTypeKeywords is the set of Kinds that can start a type reference
// as a bare keyword (as opposed to a class-name identifier).
var PrimitiveTypeKeywords = map[Kind]bool{
	INT: true, LONG: true, BYTE: true, SHORT: true, FLOAT: true, DOUBLE: true,
	BOOL: true, CHAR: true, STRING: true, VOID: true,
}

// Token is an immutable lexical unit: a tag, its textual value (empty for
// tokens whose spelling is implied by the tag, e.g. punctuation), and its
// 1-based source position.
type Token struct {
	Kind  Kind
	Value string
	Pos   diag.Position
	File  string
}

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
