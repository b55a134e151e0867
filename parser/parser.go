// Package parser builds the AST from a token stream by recursive descent
// with bounded lookahead (spec §4.2). It is the phase where member and
// local-declaration starts are disambiguated by peeking at most three
// tokens ahead.
package parser

import (
	"ggc/ast"
	"ggc/diag"
	"ggc/token"
)

// Parser holds the token stream and diagnostic bag for one parse.
type Parser struct {
	toks []token.Token
	pos  int
	bag  *diag.Bag
	file string
}

// New creates a parser over toks (which must end in an EOF token, as Lex
// guarantees), reporting diagnostics into bag.
func New(toks []token.Token, file string, bag *diag.Bag) *Parser {
	return &Parser{toks: toks, file: file, bag: bag}
}

// Parse runs parse-compilation-unit, the parser's single entry point.
func (p *Parser) Parse() *ast.CompilationUnit {
	return p.parseCompilationUnit()
}

// -----------------------------------------------------------------------------
// Token stream helpers

// cur returns the current (unconsumed) token.
func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// peekAt returns the token n positions ahead of cur, clamped at EOF. The
// parser never looks more than three tokens ahead (spec §4.2).
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) atEnd() bool {
	return p.cur().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) checkAt(n int, k token.Kind) bool {
	return p.peekAt(n).Kind == k
}

// match consumes and returns true if the current token has kind k.
func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect reports a missing-expected-token diagnostic and does NOT consume
// the current token when it doesn't match (spec §4.2's error-recovery
// contract: "the parser continues at the current position"). It returns the
// consumed token and true on success.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}

	p.bag.Errorf(p.cur().Pos, "expected %s but got %s", k, p.describeCur())
	return token.Token{}, false
}

func (p *Parser) describeCur() string {
	if p.cur().Value != "" && (p.cur().Kind == token.IDENTIFIER || p.cur().Kind == token.INTLIT ||
		p.cur().Kind == token.FLOATLIT || p.cur().Kind == token.STRINGLIT) {
		return p.cur().Kind.String() + " '" + p.cur().Value + "'"
	}
	return p.cur().Kind.String()
}

func (p *Parser) errorf(pos diag.Position, format string, args ...interface{}) {
	p.bag.Errorf(pos, format, args...)
}

// skipOne is the parser's deliberately minimal error-recovery strategy
// (spec §4.2 "open question"): advance a single token to seek the next
// plausible boundary.
func (p *Parser) skipOne() {
	if !p.atEnd() {
		p.advance()
	}
}
