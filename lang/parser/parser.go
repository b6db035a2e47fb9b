// Package parser implements the second half of this repo's concrete AST
// oracle: a top-down recursive-descent parser, one function per grammar
// production. Unlike a parser that builds a pointer-based tree, this one
// emits the flat, indexed ast.Pool lang/sema consumes.
package parser

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/scanner"
	"github.com/austincummings/mx/lang/token"
)

type tokInfo struct {
	tok token.Token
	rng token.Range
	lit string
}

// Parser consumes a token stream and emits an ast.Pool plus any diagnostics
// encountered along the way (syntax errors do not abort parsing; they are
// recorded and the parser resynchronizes at the next statement boundary,
// the same recoverable-error policy the analyzer uses for semantic
// errors).
type Parser struct {
	sc    scanner.Scanner
	path  string
	diags diag.List
	pool  ast.Pool
	cur   tokInfo
	nxt   tokInfo
}

// Parse scans and parses src, returning the resulting pool and any
// diagnostics (syntax errors). A non-empty diagnostic list does not
// necessarily mean the pool is unusable, but the reference driver's policy
// is to not proceed past a non-empty diagnostic list.
func Parse(path string, src []byte) (*ast.Pool, diag.List) {
	var p Parser
	p.path = path
	p.pool.Path = path
	p.sc.Init(src, func(pos token.Position, msg string) {
		p.diags.Add(diag.Diagnostic{Path: path, Range: token.Range{Start: pos, End: pos}, Kind: diag.SyntaxError, Detail: msg})
	})
	p.advance()
	p.advance()

	root := p.pool.Push(ast.Node{Kind: "source_file", Fields: map[string]ast.NodeRef{}})
	var children []ast.NodeRef
	for p.cur.tok != token.EOF {
		if ref, ok := p.parseTopLevel(); ok {
			children = append(children, ref)
		}
	}
	n := p.pool.Node(root)
	n.Children = children
	n.Range = token.Range{Start: token.Position{}, End: p.cur.rng.End}
	p.pool.Nodes[root] = n

	return &p.pool, p.diags
}

func (p *Parser) advance() {
	p.cur = p.nxt
	tok, rng, lit := p.sc.Scan()
	p.nxt = tokInfo{tok: tok, rng: rng, lit: lit}
}

func (p *Parser) errorf(rng token.Range, kind diag.Kind, detail string) {
	p.diags.Add(diag.Diagnostic{Path: p.path, Range: rng, Kind: kind, Detail: detail})
}

// expect consumes the current token if it matches want, reporting
// SyntaxErrorExpectedToken otherwise. It advances only on a match: a
// mismatched token is left in place for the next production, which is what
// lets a missing ';' be reported without swallowing the following token.
func (p *Parser) expect(want token.Token) token.Range {
	rng := p.cur.rng
	if p.cur.tok != want {
		p.errorf(p.cur.rng, diag.SyntaxErrorExpectedToken, want.String())
	} else {
		p.advance()
	}
	return rng
}

func (p *Parser) expectIdent() (string, token.Range) {
	if p.cur.tok != token.IDENT {
		p.errorf(p.cur.rng, diag.SyntaxErrorExpectedToken, "identifier")
		return "", p.cur.rng
	}
	lit, rng := p.cur.lit, p.cur.rng
	p.advance()
	return lit, rng
}

func (p *Parser) parseTopLevel() (ast.NodeRef, bool) {
	switch p.cur.tok {
	case token.FN:
		return p.parseFnDecl(), true
	case token.CONST:
		return p.parseConstDecl(), true
	default:
		p.errorf(p.cur.rng, diag.SyntaxErrorExpectedToken, "fn or const")
		p.advance() // resynchronize by skipping the offending token
		return 0, false
	}
}

// comptimeWrap wraps inner in a "comptime_expr" node carrying an "expr"
// field, exactly the shape lang/sema.ctEval asserts on (grounded on
// original_source's analyze_comptime_expr, which does
// `assert!(node.kind == "comptime_expr")` before reading its "expr" field).
func (p *Parser) comptimeWrap(inner ast.NodeRef) ast.NodeRef {
	rng := p.pool.Node(inner).Range
	return p.pool.Push(ast.Node{
		Kind:   "comptime_expr",
		Range:  rng,
		Fields: map[string]ast.NodeRef{"expr": inner},
	})
}
