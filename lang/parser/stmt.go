package parser

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/token"
)

// parseBlock parses `'{' stmt* '}'`, producing a "block" node whose Children
// are the statement nodes in source order.
func (p *Parser) parseBlock() ast.NodeRef {
	start := p.expect(token.LBRACE)
	var stmts []ast.NodeRef
	for p.cur.tok != token.RBRACE && p.cur.tok != token.EOF {
		stmts = append(stmts, p.parseStmt())
	}
	end := p.expect(token.RBRACE)
	return p.pool.Push(ast.Node{
		Kind:     "block",
		Range:    token.Range{Start: start.Start, End: end.End},
		Children: stmts,
	})
}

// parseStmt dispatches on the current token to one of the statement
// productions. A '=' two tokens ahead of a leading IDENT distinguishes
// assign_stmt from every other expression statement beginning with an
// identifier (a call, for instance), which is why Parser prefetches two
// tokens of lookahead.
func (p *Parser) parseStmt() ast.NodeRef {
	switch p.cur.tok {
	case token.VAR:
		return p.parseVarDecl()
	case token.CONST:
		return p.parseConstDecl()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.LOOP:
		return p.parseLoopStmt()
	case token.BREAK:
		return p.parseBreakStmt()
	case token.CONTINUE:
		return p.parseContinueStmt()
	case token.LBRACE:
		return p.parseBlock()
	case token.IDENT:
		if p.nxt.tok == token.ASSIGN {
			return p.parseAssignStmt()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseReturnStmt() ast.NodeRef {
	start := p.cur.rng
	p.expect(token.RETURN)
	fields := map[string]ast.NodeRef{}
	if p.cur.tok != token.SEMI {
		fields["expr"] = p.parseExpr()
	}
	end := p.expect(token.SEMI)
	return p.pool.Push(ast.Node{
		Kind:   "return_stmt",
		Range:  token.Range{Start: start.Start, End: end.End},
		Fields: fields,
	})
}

func (p *Parser) parseIfStmt() ast.NodeRef {
	start := p.cur.rng
	p.expect(token.IF)
	cond := p.parseExpr()
	then := p.parseBlock()
	fields := map[string]ast.NodeRef{
		"cond": cond,
		"then": then,
	}
	end := p.pool.Node(then).Range
	if p.cur.tok == token.ELSE {
		p.advance()
		var elseRef ast.NodeRef
		if p.cur.tok == token.IF {
			elseRef = p.parseIfStmt()
		} else {
			elseRef = p.parseBlock()
		}
		fields["else"] = elseRef
		end = p.pool.Node(elseRef).Range
	}
	return p.pool.Push(ast.Node{
		Kind:   "if_stmt",
		Range:  token.Range{Start: start.Start, End: end.End},
		Fields: fields,
	})
}

func (p *Parser) parseLoopStmt() ast.NodeRef {
	start := p.cur.rng
	p.expect(token.LOOP)
	body := p.parseBlock()
	return p.pool.Push(ast.Node{
		Kind:   "loop_stmt",
		Range:  token.Range{Start: start.Start, End: p.pool.Node(body).Range.End},
		Fields: map[string]ast.NodeRef{"body": body},
	})
}

func (p *Parser) parseBreakStmt() ast.NodeRef {
	start := p.cur.rng
	p.expect(token.BREAK)
	end := p.expect(token.SEMI)
	return p.pool.Push(ast.Node{Kind: "break_stmt", Range: token.Range{Start: start.Start, End: end.End}})
}

func (p *Parser) parseContinueStmt() ast.NodeRef {
	start := p.cur.rng
	p.expect(token.CONTINUE)
	end := p.expect(token.SEMI)
	return p.pool.Push(ast.Node{Kind: "continue_stmt", Range: token.Range{Start: start.Start, End: end.End}})
}

func (p *Parser) parseAssignStmt() ast.NodeRef {
	start := p.cur.rng
	name, nameRng := p.expectIdent()
	lhs := p.pool.Push(ast.Node{Kind: "variable_expr", Range: nameRng, Text: name})
	p.expect(token.ASSIGN)
	rhs := p.parseExpr()
	end := p.expect(token.SEMI)
	return p.pool.Push(ast.Node{
		Kind:  "assign_stmt",
		Range: token.Range{Start: start.Start, End: end.End},
		Fields: map[string]ast.NodeRef{
			"lhs": lhs,
			"rhs": rhs,
		},
	})
}

// parseExprStmt parses a bare expression followed by ';', used for calls
// made for their side effects (e.g. a print(...) builtin invocation).
func (p *Parser) parseExprStmt() ast.NodeRef {
	start := p.cur.rng
	expr := p.parseExpr()
	end := p.expect(token.SEMI)
	return p.pool.Push(ast.Node{
		Kind:   "expr_stmt",
		Range:  token.Range{Start: start.Start, End: end.End},
		Fields: map[string]ast.NodeRef{"expr": expr},
	})
}
