package parser

import (
	"ggc/ast"
	"ggc/diag"
	"ggc/token"
)

// parseCompilationUnit is parse-compilation-unit: an optional module
// declaration, zero or more imports, then top-level type declarations until
// EOF.
func (p *Parser) parseCompilationUnit() *ast.CompilationUnit {
	cu := &ast.CompilationUnit{Position: p.cur().Pos}

	if p.check(token.MODULE) {
		cu.Module = p.parseModuleDecl()
	}

	for p.check(token.IMPORT) {
		cu.Imports = append(cu.Imports, p.parseImportDecl())
	}

	for !p.atEnd() {
		before := p.pos
		if d := p.parseTypeDecl(); d != nil {
			cu.Types = append(cu.Types, d)
		}
		// guarantee forward progress even if a sub-parser reported an
		// error without consuming anything.
		if p.pos == before && !p.atEnd() {
			p.skipOne()
		}
	}

	return cu
}

func (p *Parser) parseModuleDecl() *ast.ModuleDecl {
	pos := p.cur().Pos
	p.advance() // 'module'
	name := p.parseDottedName()
	p.expect(token.SEMICOLON)
	return &ast.ModuleDecl{Position: pos, Name: name}
}

func (p *Parser) parseImportDecl() *ast.ImportDecl {
	pos := p.cur().Pos
	p.advance() // 'import'
	path := p.parseDottedName()
	p.expect(token.SEMICOLON)
	return &ast.ImportDecl{Position: pos, Path: path}
}

// parseDottedName parses Name(.Name)* and returns the joined text.
func (p *Parser) parseDottedName() string {
	name := ""
	if t, ok := p.expect(token.IDENTIFIER); ok {
		name = t.Value
	}
	for p.check(token.DOT) && p.checkAt(1, token.IDENTIFIER) {
		p.advance() // '.'
		name += "." + p.advance().Value
	}
	return name
}

// parseAnnotations parses zero or more `[@Name]` / `[@Name(args)]`
// annotations. A single-token peek after '[' disambiguates from an array
// literal: only `[` immediately followed by `@` starts an annotation.
func (p *Parser) parseAnnotations() []*ast.Annotation {
	var anns []*ast.Annotation
	for p.check(token.LBRACKET) && p.checkAt(1, token.AT) {
		pos := p.cur().Pos
		p.advance() // '['
		p.advance() // '@'
		namePos := p.cur().Pos
		name := ""
		if t, ok := p.expect(token.IDENTIFIER); ok {
			name = t.Value
		}
		ann := &ast.Annotation{Position: pos, Name: name, NamePos: namePos}
		if p.match(token.LPAREN) {
			if !p.check(token.RPAREN) {
				ann.Args = append(ann.Args, p.parseExpr())
				for p.match(token.COMMA) {
					ann.Args = append(ann.Args, p.parseExpr())
				}
			}
			p.expect(token.RPAREN)
		}
		p.expect(token.RBRACKET)
		anns = append(anns, ann)
	}
	return anns
}

// parseAccess parses an optional leading access modifier.
func (p *Parser) parseAccess() ast.Access {
	switch p.cur().Kind {
	case token.PUBLIC:
		p.advance()
		return ast.AccessPublic
	case token.PRIVATE:
		p.advance()
		return ast.AccessPrivate
	case token.PROTECTED:
		p.advance()
		return ast.AccessProtected
	default:
		return ast.AccessDefault
	}
}

// parseModifiers consumes the unordered set of non-access modifier
// keywords (spec §4.2).
func (p *Parser) parseModifiers() ast.Modifiers {
	var m ast.Modifiers
	for {
		switch p.cur().Kind {
		case token.STATIC:
			m.Static = true
		case token.ABSTRACT:
			m.Abstract = true
		case token.VIRTUAL:
			m.Virtual = true
		case token.OVERRIDE:
			m.Override = true
		case token.SEALED:
			m.Sealed = true
		case token.READONLY:
			m.Readonly = true
		default:
			return m
		}
		p.advance()
	}
}

// parseTypeDecl parses one top-level type declaration: annotations, access
// modifier, modifier set, then a class/interface/enum keyword selects the
// production. An unrecognized leading token is reported and skipped one
// token at a time (spec §4.2's minimal recovery policy).
func (p *Parser) parseTypeDecl() ast.Decl {
	anns := p.parseAnnotations()
	pos := p.cur().Pos
	access := p.parseAccess()
	mods := p.parseModifiers()

	switch p.cur().Kind {
	case token.CLASS:
		return p.parseClassDecl(pos, access, mods, anns)
	case token.INTERFACE:
		return p.parseInterfaceDecl(pos, access, anns)
	case token.ENUM:
		return p.parseEnumDecl(pos, access)
	default:
		p.errorf(p.cur().Pos, "expected a type declaration but got %s", p.describeCur())
		p.skipOne()
		return nil
	}
}

// parseClassDecl parses `class Name [: Base [, Iface, ...]] { members }`.
// When a colon is present, the first name is the base class and any
// subsequent comma-separated names are implemented interfaces.
func (p *Parser) parseClassDecl(pos diag.Position, access ast.Access, mods ast.Modifiers, anns []*ast.Annotation) *ast.ClassDecl {
	p.advance() // 'class'
	name := ""
	if t, ok := p.expect(token.IDENTIFIER); ok {
		name = t.Value
	}

	cd := &ast.ClassDecl{
		Position: pos, Name: name, Access: access, Modifiers: mods, Annotations: anns,
	}

	if p.match(token.COLON) {
		if t, ok := p.expect(token.IDENTIFIER); ok {
			cd.Base = t.Value
		}
		for p.match(token.COMMA) {
			if t, ok := p.expect(token.IDENTIFIER); ok {
				cd.Interfaces = append(cd.Interfaces, t.Value)
			}
		}
	}

	if _, ok := p.expect(token.LBRACE); !ok {
		return cd
	}

	for !p.check(token.RBRACE) && !p.atEnd() {
		before := p.pos
		p.parseClassMember(cd)
		if p.pos == before && !p.atEnd() {
			p.skipOne()
		}
	}
	p.expect(token.RBRACE)

	return cd
}

// parseClassMember applies the constructor/method/field disambiguation
// rule (spec §4.2): an identifier spelled exactly like the enclosing class
// name, followed by '(', starts a constructor. Otherwise the member starts
// with a type reference; a following '(' makes it a method, anything else
// a field.
func (p *Parser) parseClassMember(cd *ast.ClassDecl) {
	anns := p.parseAnnotations()
	pos := p.cur().Pos
	access := p.parseAccess()
	mods := p.parseModifiers()

	if p.check(token.IDENTIFIER) && p.cur().Value == cd.Name && p.checkAt(1, token.LPAREN) {
		ctor := p.parseConstructorTail(pos, access)
		cd.Constructors = append(cd.Constructors, ctor)
		return
	}

	if !p.startsType() {
		p.errorf(p.cur().Pos, "expected a constructor, method, or field but got %s", p.describeCur())
		return
	}

	typ := p.parseTypeRef()
	nameTok, ok := p.expect(token.IDENTIFIER)
	if !ok {
		return
	}

	if p.check(token.LPAREN) {
		m := p.parseMethodTail(pos, nameTok.Value, typ, access, mods, anns)
		cd.Methods = append(cd.Methods, m)
		return
	}

	f := &ast.FieldDecl{Position: pos, Name: nameTok.Value, Type: typ, Access: access, Modifiers: mods, Annotations: anns}
	if p.match(token.ASSIGN) {
		f.Init = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	cd.Fields = append(cd.Fields, f)
}

func (p *Parser) parseConstructorTail(pos diag.Position, access ast.Access) *ast.ConstructorDecl {
	p.advance() // class-name identifier
	p.expect(token.LPAREN)
	params := p.parseParamList()
	p.expect(token.RPAREN)

	c := &ast.ConstructorDecl{Position: pos, Params: params, Access: access}

	if p.match(token.COLON) {
		if _, ok := p.expect(token.BASE); ok {
			c.HasBaseCall = true
			p.expect(token.LPAREN)
			if !p.check(token.RPAREN) {
				c.BaseArgs = append(c.BaseArgs, p.parseExpr())
				for p.match(token.COMMA) {
					c.BaseArgs = append(c.BaseArgs, p.parseExpr())
				}
			}
			p.expect(token.RPAREN)
		}
	}

	c.Body = p.parseBlock()
	return c
}

func (p *Parser) parseMethodTail(pos diag.Position, name string, ret *ast.TypeRef, access ast.Access, mods ast.Modifiers, anns []*ast.Annotation) *ast.MethodDecl {
	p.advance() // '('
	params := p.parseParamList()
	p.expect(token.RPAREN)

	m := &ast.MethodDecl{
		Position: pos, Name: name, Params: params, ReturnType: ret,
		Access: access, Modifiers: mods, Annotations: anns,
	}

	// abstract methods and interface signatures are semicolon-terminated
	// with no body; anything else requires a brace-delimited block.
	if mods.Abstract || p.check(token.SEMICOLON) {
		p.expect(token.SEMICOLON)
		return m
	}

	m.Body = p.parseBlock()
	return m
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	if p.check(token.RPAREN) {
		return params
	}
	params = append(params, p.parseParam())
	for p.match(token.COMMA) {
		params = append(params, p.parseParam())
	}
	return params
}

func (p *Parser) parseParam() *ast.Param {
	pos := p.cur().Pos
	typ := p.parseTypeRef()
	name := ""
	if t, ok := p.expect(token.IDENTIFIER); ok {
		name = t.Value
	}
	return &ast.Param{Position: pos, Name: name, Type: typ}
}

func (p *Parser) parseInterfaceDecl(pos diag.Position, access ast.Access, anns []*ast.Annotation) *ast.InterfaceDecl {
	p.advance() // 'interface'
	name := ""
	if t, ok := p.expect(token.IDENTIFIER); ok {
		name = t.Value
	}
	id := &ast.InterfaceDecl{Position: pos, Name: name, Access: access, Annotations: anns}

	if _, ok := p.expect(token.LBRACE); !ok {
		return id
	}
	for !p.check(token.RBRACE) && !p.atEnd() {
		before := p.pos
		mpos := p.cur().Pos
		if !p.startsType() {
			p.errorf(p.cur().Pos, "expected a method signature but got %s", p.describeCur())
			p.skipOne()
			continue
		}
		ret := p.parseTypeRef()
		nameTok, ok := p.expect(token.IDENTIFIER)
		if !ok {
			if p.pos == before {
				p.skipOne()
			}
			continue
		}
		p.expect(token.LPAREN)
		params := p.parseParamList()
		p.expect(token.RPAREN)
		p.expect(token.SEMICOLON)
		id.Methods = append(id.Methods, &ast.MethodDecl{
			Position: mpos, Name: nameTok.Value, Params: params, ReturnType: ret,
		})
		if p.pos == before {
			p.skipOne()
		}
	}
	p.expect(token.RBRACE)
	return id
}

func (p *Parser) parseEnumDecl(pos diag.Position, access ast.Access) *ast.EnumDecl {
	p.advance() // 'enum'
	name := ""
	if t, ok := p.expect(token.IDENTIFIER); ok {
		name = t.Value
	}
	e := &ast.EnumDecl{Position: pos, Name: name, Access: access}

	if _, ok := p.expect(token.LBRACE); !ok {
		return e
	}
	if !p.check(token.RBRACE) {
		if t, ok := p.expect(token.IDENTIFIER); ok {
			e.Cases = append(e.Cases, t.Value)
		}
		for p.match(token.COMMA) {
			if p.check(token.RBRACE) {
				break // trailing comma
			}
			if t, ok := p.expect(token.IDENTIFIER); ok {
				e.Cases = append(e.Cases, t.Value)
			}
		}
	}
	p.expect(token.RBRACE)
	return e
}

// startsType reports whether the current token can begin a type reference:
// a primitive keyword, or an identifier (a class name).
func (p *Parser) startsType() bool {
	if token.PrimitiveTypeKeywords[p.cur().Kind] {
		return true
	}
	return p.check(token.IDENTIFIER)
}

// parseTypeRef parses a primitive keyword or identifier, then optional
// `<T, ...>` generic arguments, then optional `[]` and `?` suffixes.
func (p *Parser) parseTypeRef() *ast.TypeRef {
	pos := p.cur().Pos
	name := p.cur().Kind.String()
	if p.check(token.IDENTIFIER) {
		name = p.cur().Value
	}
	p.advance()

	t := &ast.TypeRef{Position: pos, Name: name}

	if p.check(token.LT) {
		// generic argument list; only entered when it cannot be a
		// less-than comparison, which never applies in a type-ref position.
		p.advance()
		t.Generics = append(t.Generics, p.parseTypeRef())
		for p.match(token.COMMA) {
			t.Generics = append(t.Generics, p.parseTypeRef())
		}
		p.expect(token.GT)
	}

	if p.check(token.LBRACKET) && p.checkAt(1, token.RBRACKET) {
		p.advance()
		p.advance()
		t.IsArray = true
	}

	if p.match(token.QUESTION) {
		t.IsNullable = true
	}

	return t
}
