package sema

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/token"
	"github.com/dolthub/swiss"
)

// TableRef indexes a scope table within a ScopeStack, stable across push and
// pop: popping a table only removes it from the active chain, it stays
// addressable by its TableRef for the lifetime of the ScopeStack. Grounded
// directly on original_source/mx/src/symbol_table.rs's SymbolTableRef(u32)
// over a Vec<SymbolTable<...>>, carried into Go's idiom of a typed index
// over a flat slice the way lang/ast.NodeRef and lang/mxir.Ref already do.
type TableRef int32

// Binding is one entry of a scope table: the compile-time value bound to a
// name, plus the ast node that introduced it (for diagnostics).
type Binding struct {
	Value  CTValue
	AstRef ast.NodeRef
}

// table is one scope table: { parent?: TableRef, range, entries: name→Binding }.
// Parent is -1 for the root table. Range is the source span the table was
// pushed for (a block, a function prototype, the whole source file),
// retained after Pop so a future consumer (e.g. hover info) can still map a
// position back to the scope that was active there by TableRef.
type table struct {
	parent   TableRef
	rng      token.Range
	bindings *swiss.Map[string, Binding]
}

// noParent is the parent value for the root scope table.
const noParent TableRef = -1

// ScopeStack is a parent-linked forest of scope tables with an active-chain
// stack on top, exactly original_source's SymbolTableSet<TValue,TTableData>:
// Push creates a table and activates it, Pop deactivates the top table
// without discarding it (it is simply no longer reachable from Lookup until
// something pushes it again, which this repo never does, but keeping tables
// alive after Pop is what lets every still-referenced TableRef, e.g. one
// recorded on an mxir node for debugging, stay valid for the whole analysis).
type ScopeStack struct {
	tables []table
	active []TableRef
}

// Push opens a new scope table spanning rng, as a child of the currently
// active one (or as a root, with no parent, if the stack is empty), and
// returns its reference.
func (s *ScopeStack) Push(rng token.Range) TableRef {
	parent := noParent
	if len(s.active) > 0 {
		parent = s.active[len(s.active)-1]
	}
	ref := TableRef(len(s.tables))
	s.tables = append(s.tables, table{parent: parent, rng: rng, bindings: swiss.NewMap[string, Binding](8)})
	s.active = append(s.active, ref)
	return ref
}

// Parent returns the table's parent reference, or noParent for the root
// table.
func (s *ScopeStack) Parent(ref TableRef) TableRef {
	return s.tables[ref].parent
}

// Range returns the source range a table was pushed for.
func (s *ScopeStack) Range(ref TableRef) token.Range {
	return s.tables[ref].rng
}

// Pop deactivates the most recently pushed table. It panics if the stack is
// empty, the same "caller bug, not recoverable input error" tier as an
// out-of-range ast.Pool/mxir.Pool access.
func (s *ScopeStack) Pop() {
	if len(s.active) == 0 {
		panic("sema: Pop called on empty ScopeStack")
	}
	s.active = s.active[:len(s.active)-1]
}

// Top returns the currently active table's reference.
func (s *ScopeStack) Top() TableRef {
	return s.active[len(s.active)-1]
}

// Insert declares name in the currently active table. It reports false if
// name is already bound in that same table (shadowing a name from an
// enclosing, already-popped-out-of scope is fine; redeclaring within one
// table is not).
func (s *ScopeStack) Insert(name string, b Binding) bool {
	t := s.tables[s.Top()]
	if _, ok := t.bindings.Get(name); ok {
		return false
	}
	t.bindings.Put(name, b)
	return true
}

// Get looks up name in exactly the currently active table, without walking
// outward. Used to test for redeclaration.
func (s *ScopeStack) Get(name string) (Binding, bool) {
	return s.tables[s.Top()].bindings.Get(name)
}

// Lookup walks the active chain from innermost to outermost table and
// returns the first binding found for name.
func (s *ScopeStack) Lookup(name string) (Binding, bool) {
	for i := len(s.active) - 1; i >= 0; i-- {
		if b, ok := s.tables[s.active[i]].bindings.Get(name); ok {
			return b, true
		}
	}
	return Binding{}, false
}
