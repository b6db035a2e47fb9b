package parser

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/token"
)

// parseExpr is the entry point of the precedence-climbing expression parser:
// comparison < additive < multiplicative < primary, matching the grouping
// token.Token.IsComparison/IsAdditive/IsMultiplicative already encode.
func (p *Parser) parseExpr() ast.NodeRef {
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.NodeRef {
	left := p.parseAdditive()
	for p.cur.tok.IsComparison() {
		op := p.cur.tok
		p.advance()
		right := p.parseAdditive()
		left = p.binaryOp(op, left, right)
	}
	return left
}

func (p *Parser) parseAdditive() ast.NodeRef {
	left := p.parseMultiplicative()
	for p.cur.tok.IsAdditive() {
		op := p.cur.tok
		p.advance()
		right := p.parseMultiplicative()
		left = p.binaryOp(op, left, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.NodeRef {
	left := p.parseUnary()
	for p.cur.tok.IsMultiplicative() {
		op := p.cur.tok
		p.advance()
		right := p.parseUnary()
		left = p.binaryOp(op, left, right)
	}
	return left
}

func (p *Parser) binaryOp(op token.Token, left, right ast.NodeRef) ast.NodeRef {
	return p.pool.Push(ast.Node{
		Kind:  "binary_expr",
		Text:  op.String(),
		Range: token.Range{Start: p.pool.Node(left).Range.Start, End: p.pool.Node(right).Range.End},
		Fields: map[string]ast.NodeRef{
			"left":  left,
			"right": right,
		},
	})
}

// parseUnary handles a leading '-', lowered to a `0 - expr` binary_expr by
// the parser itself rather than adding a dedicated unary_expr kind: the
// MXIR node set has no unary-operator variant, and the comptime folding
// rules in lang/sema only know binary_expr.
func (p *Parser) parseUnary() ast.NodeRef {
	if p.cur.tok == token.MINUS {
		start := p.cur.rng
		p.advance()
		operand := p.parseCall()
		zero := p.pool.Push(ast.Node{Kind: "int_literal", Range: start, Text: "0"})
		return p.binaryOp(token.MINUS, zero, operand)
	}
	return p.parseCall()
}

// parseCall parses a primary expression optionally followed by a call
// argument list: `primary ['(' args ')']`.
func (p *Parser) parseCall() ast.NodeRef {
	callee := p.parsePrimary()
	for p.cur.tok == token.LPAREN {
		start := p.pool.Node(callee).Range
		p.advance()
		var args []ast.NodeRef
		for p.cur.tok != token.RPAREN && p.cur.tok != token.EOF {
			args = append(args, p.parseExpr())
			if p.cur.tok != token.RPAREN {
				p.expect(token.COMMA)
			}
		}
		end := p.expect(token.RPAREN)
		callee = p.pool.Push(ast.Node{
			Kind:     "call_expr",
			Range:    token.Range{Start: start.Start, End: end.End},
			Children: args,
			Fields:   map[string]ast.NodeRef{"callee": callee},
		})
	}
	return callee
}

func (p *Parser) parsePrimary() ast.NodeRef {
	switch p.cur.tok {
	case token.INT:
		rng, lit := p.cur.rng, p.cur.lit
		p.advance()
		return p.pool.Push(ast.Node{Kind: "int_literal", Range: rng, Text: lit})
	case token.FLOAT:
		rng, lit := p.cur.rng, p.cur.lit
		p.advance()
		return p.pool.Push(ast.Node{Kind: "float_literal", Range: rng, Text: lit})
	case token.STRING:
		rng, lit := p.cur.rng, p.cur.lit
		p.advance()
		return p.pool.Push(ast.Node{Kind: "string_literal", Range: rng, Text: lit})
	case token.TRUE, token.FALSE:
		rng, lit := p.cur.rng, p.cur.tok == token.TRUE
		p.advance()
		text := "false"
		if lit {
			text = "true"
		}
		return p.pool.Push(ast.Node{Kind: "bool_literal", Range: rng, Text: text})
	case token.IDENT:
		name, rng := p.expectIdent()
		return p.pool.Push(ast.Node{Kind: "variable_expr", Range: rng, Text: name})
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return inner
	default:
		rng := p.cur.rng
		p.errorf(rng, diag.SyntaxErrorExpectedToken, "expression")
		p.advance()
		return p.pool.Push(ast.Node{Kind: "nop", Range: rng})
	}
}

// parseComptimeAtom parses the restricted grammar comptime_expr allows in
// type position: an int literal, a bare identifier (a variable_expr looked
// up at compile time), or a nested fn_proto (for function-typed
// parameters). This mirrors original_source's analyze_comptime_expr match
// arms (int_literal / variable_expr / fn_proto) exactly, including its
// refusal to accept anything else.
func (p *Parser) parseComptimeAtom() ast.NodeRef {
	switch p.cur.tok {
	case token.INT:
		rng, lit := p.cur.rng, p.cur.lit
		p.advance()
		return p.pool.Push(ast.Node{Kind: "int_literal", Range: rng, Text: lit})
	case token.IDENT:
		name, rng := p.expectIdent()
		return p.pool.Push(ast.Node{Kind: "variable_expr", Range: rng, Text: name})
	case token.FN:
		p.advance()
		return p.parseFnProto(0, false)
	default:
		rng := p.cur.rng
		p.errorf(rng, diag.SyntaxErrorExpectedToken, "comptime expression")
		p.advance()
		return p.pool.Push(ast.Node{Kind: "nop", Range: rng})
	}
}
