package sema

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
)

// analyzeConstDecl evaluates a const_decl's value as a compile-time
// expression and binds the name directly to that CTValue. A const never
// produces an mxir node: it is purely a compile-time fact, exactly
// original_source's analyze_const_decl, which only ever touches the
// ComptimeEnv.
func (s *Sema) analyzeConstDecl(ref ast.NodeRef) {
	n := s.node(ref)

	nameRef, ok := n.Field("name")
	if !ok {
		panic("sema: const_decl missing name field")
	}
	name := s.node(nameRef).Text

	valueRef, ok := n.Field("value")
	if !ok {
		panic("sema: const_decl missing value field")
	}
	value := s.ctEval(valueRef)

	if !s.scope.Insert(name, Binding{Value: value, AstRef: ref}) {
		s.report(ref, diag.DuplicateDefinition, "\""+name+"\" is already defined in this scope")
	}
}
