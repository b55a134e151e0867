package parser

import (
	"ggc/ast"
	"ggc/token"
)

func (p *Parser) parseBlock() *ast.Block {
	pos := p.cur().Pos
	if _, ok := p.expect(token.LBRACE); !ok {
		return &ast.Block{Position: pos}
	}
	b := &ast.Block{Position: pos}
	for !p.check(token.RBRACE) && !p.atEnd() {
		before := p.pos
		b.Stmts = append(b.Stmts, p.parseStmt())
		if p.pos == before && !p.atEnd() {
			p.skipOne()
		}
	}
	p.expect(token.RBRACE)
	return b
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur().Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForOrForEachStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.BREAK:
		pos := p.advance().Pos
		p.expect(token.SEMICOLON)
		return &ast.BreakStmt{Position: pos}
	case token.CONTINUE:
		pos := p.advance().Pos
		p.expect(token.SEMICOLON)
		return &ast.ContinueStmt{Position: pos}
	case token.VAR:
		return p.parseVarDecl()
	}

	if p.startsLocalDecl() {
		return p.parseVarDecl()
	}

	pos := p.cur().Pos
	x := p.parseExpr()
	p.expect(token.SEMICOLON)
	return &ast.ExprStmt{Position: pos, X: x}
}

// startsLocalDecl applies the local-declaration-vs-expression-statement
// lookahead rule (spec §4.2): a primitive type keyword followed by an
// identifier or by an exact `[]` pair, an identifier followed directly by
// another identifier, or an identifier followed by an exact `[]` pair all
// start a typed local declaration. Anything else is parsed as an expression
// statement.
func (p *Parser) startsLocalDecl() bool {
	if token.PrimitiveTypeKeywords[p.cur().Kind] {
		if p.checkAt(1, token.IDENTIFIER) {
			return true
		}
		if p.checkAt(1, token.LBRACKET) && p.checkAt(2, token.RBRACKET) {
			return true
		}
	}
	if p.check(token.IDENTIFIER) {
		if p.checkAt(1, token.IDENTIFIER) {
			return true
		}
		if p.checkAt(1, token.LBRACKET) && p.checkAt(2, token.RBRACKET) {
			return true
		}
	}
	return false
}

// parseVarDecl parses a `var`-inferred or explicitly typed local
// declaration.
func (p *Parser) parseVarDecl() ast.Stmt {
	pos := p.cur().Pos

	var typ *ast.TypeRef
	if p.check(token.VAR) {
		p.advance()
	} else {
		typ = p.parseTypeRef()
	}

	name := ""
	if t, ok := p.expect(token.IDENTIFIER); ok {
		name = t.Value
	}

	v := &ast.VarDecl{Position: pos, Name: name, Type: typ}
	if p.match(token.ASSIGN) {
		v.Init = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	return v
}

func (p *Parser) parseIfStmt() ast.Stmt {
	pos := p.advance().Pos // 'if'
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseStmt()

	s := &ast.IfStmt{Position: pos, Cond: cond, Then: then}
	if p.match(token.ELSE) {
		s.Else = p.parseStmt()
	}
	return s
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	pos := p.advance().Pos // 'while'
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseStmt()
	return &ast.WhileStmt{Position: pos, Cond: cond, Body: body}
}

// parseForOrForEachStmt disambiguates `for (init; cond; step)` from
// `foreach (Type? name in iterable)` by keyword: `for` and `foreach` are
// distinct tokens, so no lookahead is needed here beyond the leading
// keyword.
func (p *Parser) parseForOrForEachStmt() ast.Stmt {
	if p.check(token.FOREACH) {
		return p.parseForEachStmt()
	}

	pos := p.advance().Pos // 'for'
	p.expect(token.LPAREN)

	var init ast.Stmt
	if !p.check(token.SEMICOLON) {
		if p.startsLocalDecl() || p.check(token.VAR) {
			init = p.parseVarDecl()
		} else {
			ipos := p.cur().Pos
			x := p.parseExpr()
			p.expect(token.SEMICOLON)
			init = &ast.ExprStmt{Position: ipos, X: x}
		}
	} else {
		p.advance() // ';'
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpr()
	}
	p.expect(token.SEMICOLON)

	var step ast.Expr
	if !p.check(token.RPAREN) {
		step = p.parseExpr()
	}
	p.expect(token.RPAREN)

	body := p.parseStmt()
	return &ast.ForStmt{Position: pos, Init: init, Cond: cond, Step: step, Body: body}
}

func (p *Parser) parseForEachStmt() ast.Stmt {
	pos := p.advance().Pos // 'foreach'
	p.expect(token.LPAREN)

	var typ *ast.TypeRef
	if p.check(token.VAR) {
		p.advance()
	} else if p.startsType() && p.checkAt(1, token.IDENTIFIER) {
		typ = p.parseTypeRef()
	} else if p.startsType() && p.checkAt(1, token.LBRACKET) {
		typ = p.parseTypeRef()
	}

	name := ""
	if t, ok := p.expect(token.IDENTIFIER); ok {
		name = t.Value
	}
	p.expect(token.IN)
	iterable := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseStmt()

	return &ast.ForEachStmt{Position: pos, VarName: name, VarType: typ, Iterable: iterable, Body: body}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	pos := p.advance().Pos // 'return'
	var v ast.Expr
	if !p.check(token.SEMICOLON) {
		v = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Position: pos, Value: v}
}
