package parser

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/token"
)

// parseFnDecl parses `fn IDENT fn_proto block`, producing a "fn_decl" node
// with "proto", "name" and "body" fields, exactly the field names
// lang/sema's fn_decl lowering rule reads.
func (p *Parser) parseFnDecl() ast.NodeRef {
	start := p.cur.rng
	p.expect(token.FN)

	name, nameRng := p.expectIdent()
	nameRef := p.pool.Push(ast.Node{Kind: "ident", Range: nameRng, Text: name})

	protoRef := p.parseFnProto(nameRef, name != "")
	bodyRef := p.parseBlock()

	return p.pool.Push(ast.Node{
		Kind:  "fn_decl",
		Range: token.Range{Start: start.Start, End: p.pool.Node(bodyRef).Range.End},
		Fields: map[string]ast.NodeRef{
			"proto": protoRef,
			"name":  nameRef,
			"body":  bodyRef,
		},
	})
}

// parseFnProto parses `['[' comptime_params ']'] '(' params ')' ':' comptime_expr`.
func (p *Parser) parseFnProto(nameRef ast.NodeRef, hasName bool) ast.NodeRef {
	start := p.cur.rng
	fields := map[string]ast.NodeRef{}
	if hasName {
		fields["name"] = nameRef
	}

	if p.cur.tok == token.LBRACK {
		p.advance()
		fields["comptime_params"] = p.parseParamList(token.RBRACK)
		p.expect(token.RBRACK)
	}

	p.expect(token.LPAREN)
	fields["params"] = p.parseParamList(token.RPAREN)
	p.expect(token.RPAREN)

	p.expect(token.COLON)
	returnType := p.comptimeWrap(p.parseComptimeAtom())
	fields["return_type"] = returnType

	return p.pool.Push(ast.Node{
		Kind:   "fn_proto",
		Range:  token.Range{Start: start.Start, End: p.pool.Node(returnType).Range.End},
		Fields: fields,
	})
}

// parseParamList parses a comma-separated list of `IDENT ':' comptime_expr`
// parameters, stopping at end. It always returns a "param_list" node, even
// when empty, so the caller can tell "declared empty list" (field present,
// no children) from "field omitted entirely" (only comptime_params uses the
// latter, when no '[' ']' was written at all).
func (p *Parser) parseParamList(end token.Token) ast.NodeRef {
	start := p.cur.rng
	var params []ast.NodeRef
	for p.cur.tok != end && p.cur.tok != token.EOF {
		params = append(params, p.parseParam())
		if p.cur.tok != end {
			p.expect(token.COMMA)
		}
	}
	return p.pool.Push(ast.Node{Kind: "param_list", Range: start, Children: params})
}

func (p *Parser) parseParam() ast.NodeRef {
	name, nameRng := p.expectIdent()
	nameRef := p.pool.Push(ast.Node{Kind: "ident", Range: nameRng, Text: name})
	p.expect(token.COLON)
	tyRef := p.comptimeWrap(p.parseComptimeAtom())
	return p.pool.Push(ast.Node{
		Kind:  "param",
		Range: token.Range{Start: nameRng.Start, End: p.pool.Node(tyRef).Range.End},
		Fields: map[string]ast.NodeRef{
			"name": nameRef,
			"type": tyRef,
		},
	})
}

// parseConstDecl parses `const IDENT [':' comptime_expr] '=' comptime_expr ';'`.
func (p *Parser) parseConstDecl() ast.NodeRef {
	start := p.cur.rng
	p.expect(token.CONST)
	name, nameRng := p.expectIdent()
	nameRef := p.pool.Push(ast.Node{Kind: "ident", Range: nameRng, Text: name})

	fields := map[string]ast.NodeRef{"name": nameRef}
	if p.cur.tok == token.COLON {
		p.advance()
		fields["type"] = p.comptimeWrap(p.parseComptimeAtom())
	}
	p.expect(token.ASSIGN)
	fields["value"] = p.comptimeWrap(p.parseComptimeAtom())
	end := p.expect(token.SEMI)

	return p.pool.Push(ast.Node{
		Kind:   "const_decl",
		Range:  token.Range{Start: start.Start, End: end.End},
		Fields: fields,
	})
}

// parseVarDecl parses `var IDENT [':' comptime_expr] ['=' expr] ';'`.
func (p *Parser) parseVarDecl() ast.NodeRef {
	start := p.cur.rng
	p.expect(token.VAR)
	name, nameRng := p.expectIdent()
	nameRef := p.pool.Push(ast.Node{Kind: "ident", Range: nameRng, Text: name})

	fields := map[string]ast.NodeRef{"name": nameRef}
	if p.cur.tok == token.COLON {
		p.advance()
		fields["type"] = p.comptimeWrap(p.parseComptimeAtom())
	}
	if p.cur.tok == token.ASSIGN {
		p.advance()
		fields["value"] = p.parseExpr()
	}
	end := p.expect(token.SEMI)

	return p.pool.Push(ast.Node{
		Kind:   "var_decl",
		Range:  token.Range{Start: start.Start, End: end.End},
		Fields: fields,
	})
}
