// Package ast defines the indexed node pool produced by the AST oracle: a
// flat vector of nodes referenced by dense 32-bit indices, an arena-plus-
// handle design this module's own MXIR pool (lang/mxir) reuses for the
// same reasons — O(1) handle copies, no ownership cycles, trivial
// serialization.
//
// This package is deliberately thin: the real grammar lives in lang/parser,
// which is the concrete stand-in for an external grammar engine a larger
// host might otherwise supply.
package ast

import (
	"fmt"

	"github.com/austincummings/mx/lang/token"
)

// NodeRef is a dense 32-bit index into a Pool. NodeRef(0) is always the
// source file (root) node for a given parse.
type NodeRef uint32

func (r NodeRef) String() string { return fmt.Sprintf("ast#%d", uint32(r)) }

// Node is one entry of the AST pool: a kind tag, a source range, the literal
// text slice it spans, an ordered list of children, and a mapping from field
// name to child for the grammar's named slots (proto, name, return_type,
// body, expr, callee, params, comptime_params, type, value, and this
// repo's additions: cond, then, else, lhs, rhs, left, right).
type Node struct {
	Kind     string
	Range    token.Range
	Text     string
	Children []NodeRef
	Fields   map[string]NodeRef
}

// Field looks up a named child, reporting whether it was present. The
// semantic analyzer uses this instead of indexing Fields directly so a
// missing optional field (e.g. var_decl's "value") reads as a clean
// two-value lookup rather than a nil NodeRef that happens to alias node 0.
func (n Node) Field(name string) (NodeRef, bool) {
	ref, ok := n.Fields[name]
	return ref, ok
}

// Pool is the flat, indexed node vector an AST oracle returns. Node(0) is
// the root.
type Pool struct {
	Path  string
	Nodes []Node
}

// Root returns the pool's root node reference, always index 0.
func (p *Pool) Root() NodeRef { return 0 }

// Node returns the node at ref. It panics if ref is out of range: an
// out-of-range ref can only come from a bug in the oracle that produced the
// pool, the same grammar-invariant-violation tier this repo assigns to
// malformed AST shapes produced upstream of the analyzer.
func (p *Pool) Node(ref NodeRef) Node {
	return p.Nodes[ref]
}

// Push appends a node to the pool and returns its reference.
func (p *Pool) Push(n Node) NodeRef {
	ref := NodeRef(len(p.Nodes))
	p.Nodes = append(p.Nodes, n)
	return ref
}

// Len reports the number of nodes currently in the pool.
func (p *Pool) Len() int { return len(p.Nodes) }
