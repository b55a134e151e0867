package parser

import (
	"ggc/ast"
	"ggc/token"
)

// assignOps maps compound-assignment token kinds to their operator
// spelling; used by parseAssignment to recognize the lowest-precedence,
// right-associative assignment level.
var assignOps = map[token.Kind]string{
	token.ASSIGN:  "=",
	token.PLUSEQ:  "+=",
	token.MINUSEQ: "-=",
	token.STAREQ:  "*=",
	token.SLASHEQ: "/=",
}

// binPrec gives each binary operator's precedence, lowest to highest,
// following the grammar in spec §4.2: ||, &&, ==/!=, comparisons, bitwise,
// shift, additive, multiplicative.
var binPrec = map[token.Kind]int{
	token.OR: 1,

	token.AND: 2,

	token.EQ:  3,
	token.NEQ: 3,

	token.LT:   4,
	token.GT:   4,
	token.LTEQ: 4,
	token.GTEQ: 4,

	token.PIPE:  5,
	token.CARET: 5,
	token.AMP:   5,

	token.SHL: 6,
	token.SHR: 6,

	token.PLUS:  7,
	token.MINUS: 7,

	token.STAR:    8,
	token.SLASH:   8,
	token.PERCENT: 8,
}

var binOpText = map[token.Kind]string{
	token.OR: "||", token.AND: "&&", token.EQ: "==", token.NEQ: "!=",
	token.LT: "<", token.GT: ">", token.LTEQ: "<=", token.GTEQ: ">=",
	token.PIPE: "|", token.CARET: "^", token.AMP: "&",
	token.SHL: "<<", token.SHR: ">>",
	token.PLUS: "+", token.MINUS: "-",
	token.STAR: "*", token.SLASH: "/", token.PERCENT: "%",
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is the lowest precedence level, right-associative.
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseBinary(1)

	if op, ok := assignOps[p.cur().Kind]; ok {
		pos := p.cur().Pos
		p.advance()
		right := p.parseAssignment()
		return &ast.AssignExpr{Position: pos, Op: op, Target: left, Value: right}
	}

	return left
}

// parseBinary is precedence-climbing over the left-associative binary
// operator table; minPrec is the lowest precedence this call may consume.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()

	for {
		prec, ok := binPrec[p.cur().Kind]
		if !ok || prec < minPrec {
			return left
		}
		opTok := p.advance()
		right := p.parseBinary(prec + 1)
		left = &ast.BinaryExpr{Position: opTok.Pos, Op: binOpText[opTok.Kind], Left: left, Right: right}
	}
}

// prefixOps is the set of token kinds that can start a unary expression,
// mapped to their operator spelling.
var prefixOps = map[token.Kind]string{
	token.NOT: "!", token.MINUS: "-", token.TILDE: "~",
	token.INCREM: "++", token.DECREM: "--",
}

func (p *Parser) parseUnary() ast.Expr {
	if op, ok := prefixOps[p.cur().Kind]; ok {
		pos := p.cur().Pos
		p.advance()
		x := p.parseUnary()
		return &ast.UnaryExpr{Position: pos, Op: op, X: x}
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by a chain of member
// access, calls, indexing, postfix increment/decrement, and `as` casts.
func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()

	for {
		switch p.cur().Kind {
		case token.DOT:
			pos := p.advance().Pos
			name := ""
			if t, ok := p.expect(token.IDENTIFIER); ok {
				name = t.Value
			}
			x = &ast.MemberExpr{Position: pos, Target: x, Name: name}

		case token.LPAREN:
			pos := p.advance().Pos
			var args []ast.Expr
			if !p.check(token.RPAREN) {
				args = append(args, p.parseExpr())
				for p.match(token.COMMA) {
					args = append(args, p.parseExpr())
				}
			}
			p.expect(token.RPAREN)
			x = &ast.CallExpr{Position: pos, Callee: x, Args: args}

		case token.LBRACKET:
			pos := p.advance().Pos
			idx := p.parseExpr()
			p.expect(token.RBRACKET)
			x = &ast.IndexExpr{Position: pos, Target: x, Index: idx}

		case token.INCREM, token.DECREM:
			op := "++"
			if p.cur().Kind == token.DECREM {
				op = "--"
			}
			pos := p.advance().Pos
			x = &ast.PostfixExpr{Position: pos, Op: op, X: x}

		case token.AS:
			pos := p.advance().Pos
			t := p.parseTypeRef()
			x = &ast.CastExpr{Position: pos, X: x, Type: t}

		default:
			return x
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()

	switch tok.Kind {
	case token.INTLIT:
		p.advance()
		return &ast.IntLit{Position: tok.Pos, Value: tok.Value}
	case token.FLOATLIT:
		p.advance()
		return &ast.FloatLit{Position: tok.Pos, Value: tok.Value}
	case token.STRINGLIT:
		p.advance()
		return &ast.StringLit{Position: tok.Pos, Value: tok.Value}
	case token.CHARLIT:
		p.advance()
		r := rune(0)
		if len(tok.Value) > 0 {
			r = []rune(tok.Value)[0]
		}
		return &ast.CharLit{Position: tok.Pos, Value: r}
	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Position: tok.Pos, Value: true}
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Position: tok.Pos, Value: false}
	case token.NULL:
		p.advance()
		return &ast.NullLit{Position: tok.Pos}
	case token.THIS:
		p.advance()
		return &ast.ThisExpr{Position: tok.Pos}
	case token.BASE:
		p.advance()
		return &ast.BaseExpr{Position: tok.Pos}
	case token.IDENTIFIER:
		p.advance()
		return &ast.Ident{Position: tok.Pos, Name: tok.Value}
	case token.LPAREN:
		p.advance()
		x := p.parseExpr()
		p.expect(token.RPAREN)
		return x
	case token.NEW:
		return p.parseNewExpr()
	default:
		p.errorf(tok.Pos, "expected an expression but got %s", p.describeCur())
		p.skipOne()
		return &ast.NullLit{Position: tok.Pos}
	}
}

// parseNewExpr disambiguates `new Type(args)` object creation from
// `new Type[size]` array creation by checking, after the type name, whether
// the next token is '(' or '['.
func (p *Parser) parseNewExpr() ast.Expr {
	pos := p.advance().Pos // 'new'

	name := ""
	if token.PrimitiveTypeKeywords[p.cur().Kind] {
		name = p.advance().Kind.String()
	} else if t, ok := p.expect(token.IDENTIFIER); ok {
		name = t.Value
	}
	for p.check(token.DOT) && p.checkAt(1, token.IDENTIFIER) {
		p.advance()
		name += "." + p.advance().Value
	}

	if p.check(token.LBRACKET) {
		p.advance()
		size := p.parseExpr()
		p.expect(token.RBRACKET)
		return &ast.NewArrayExpr{Position: pos, ElemType: &ast.TypeRef{Position: pos, Name: name}, Size: size}
	}

	p.expect(token.LPAREN)
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		args = append(args, p.parseExpr())
		for p.match(token.COMMA) {
			args = append(args, p.parseExpr())
		}
	}
	p.expect(token.RPAREN)
	return &ast.NewObjectExpr{Position: pos, TypeName: name, Args: args}
}
