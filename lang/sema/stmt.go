package sema

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/mxir"
)

// analyzeBlock lowers a block node's statements in its own child scope,
// mirroring original_source's analyze_block (push a scope, walk children,
// pop).
func (s *Sema) analyzeBlock(ref ast.NodeRef) mxir.Ref {
	n := s.node(ref)
	if n.Kind != "block" {
		panic("sema: expected block, got " + n.Kind)
	}

	s.scope.Push(n.Range)
	defer s.scope.Pop()

	var children []mxir.Ref
	for _, stmtRef := range n.Children {
		if ref, ok := s.analyzeStmt(stmtRef); ok {
			children = append(children, ref)
		}
	}
	return s.mxir.Push(ref, mxir.Block{Children: children})
}

// analyzeStmt lowers one statement node, returning false for statements
// that don't produce an mxir node of their own (a nested const_decl).
func (s *Sema) analyzeStmt(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)
	switch n.Kind {
	case "var_decl":
		return s.analyzeVarDecl(ref)
	case "const_decl":
		s.analyzeConstDecl(ref)
		return 0, false
	case "return_stmt":
		return s.analyzeReturnStmt(ref)
	case "if_stmt":
		return s.analyzeIfStmt(ref)
	case "loop_stmt":
		return s.analyzeLoopStmt(ref)
	case "break_stmt":
		return s.mxir.Push(ref, mxir.Break{}), true
	case "continue_stmt":
		return s.mxir.Push(ref, mxir.Continue{}), true
	case "assign_stmt":
		return s.analyzeAssignStmt(ref)
	case "expr_stmt":
		return s.analyzeExprStmt(ref)
	case "block":
		return s.analyzeBlock(ref), true
	default:
		panic("sema: unexpected statement ast kind " + n.Kind)
	}
}

// analyzeVarDecl lowers `var name[: type][= value];`. Unlike const_decl,
// var always produces an mxir.VarDecl node: its value is evaluated at
// runtime, by the interpreter, not folded at compile time.
func (s *Sema) analyzeVarDecl(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)

	nameRef, ok := n.Field("name")
	if !ok {
		panic("sema: var_decl missing name field")
	}
	name := s.node(nameRef).Text

	if tyRef, ok := n.Field("type"); ok {
		s.ctEval(tyRef) // evaluated for its diagnostics only; MX has no static checking here
	}

	var valueRef mxir.Ref
	if vRef, ok := n.Field("value"); ok {
		valueRef = s.lowerExpr(vRef)
	}

	if !s.scope.Insert(name, Binding{Value: CTVarDecl{Name: name}, AstRef: ref}) {
		s.report(ref, diag.DuplicateDefinition, "\""+name+"\" is already defined in this scope")
	}

	return s.mxir.Push(ref, mxir.VarDecl{Name: name, Value: valueRef}), true
}

func (s *Sema) analyzeReturnStmt(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)
	var valueRef mxir.Ref
	if exprRef, ok := n.Field("expr"); ok {
		valueRef = s.lowerExpr(exprRef)
	}
	return s.mxir.Push(ref, mxir.Return{Value: valueRef}), true
}

func (s *Sema) analyzeIfStmt(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)

	condRef, ok := n.Field("cond")
	if !ok {
		panic("sema: if_stmt missing cond field")
	}
	cond := s.lowerExpr(condRef)

	thenRef, ok := n.Field("then")
	if !ok {
		panic("sema: if_stmt missing then field")
	}
	then := s.analyzeBlock(thenRef)

	var elseRef mxir.Ref
	if astElseRef, ok := n.Field("else"); ok {
		elseNode := s.node(astElseRef)
		if elseNode.Kind == "if_stmt" {
			elseRef, _ = s.analyzeIfStmt(astElseRef)
		} else {
			elseRef = s.analyzeBlock(astElseRef)
		}
	}

	return s.mxir.Push(ref, mxir.If{Cond: cond, Then: then, Else: elseRef}), true
}

func (s *Sema) analyzeLoopStmt(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)
	bodyRef, ok := n.Field("body")
	if !ok {
		panic("sema: loop_stmt missing body field")
	}
	body := s.analyzeBlock(bodyRef)
	return s.mxir.Push(ref, mxir.Loop{Body: body}), true
}

// analyzeAssignStmt lowers `lhs = rhs;`. lhs is constrained to a
// variable_expr; anything else is a recoverable semantic error.
func (s *Sema) analyzeAssignStmt(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)

	lhsRef, ok := n.Field("lhs")
	if !ok {
		panic("sema: assign_stmt missing lhs field")
	}
	rhsRef, ok := n.Field("rhs")
	if !ok {
		panic("sema: assign_stmt missing rhs field")
	}

	if s.node(lhsRef).Kind != "variable_expr" {
		s.report(lhsRef, diag.InvalidOperands, "left-hand side of assignment must be a variable")
		return s.mxir.Push(ref, mxir.Nop{}), true
	}

	lhs := s.lowerExpr(lhsRef)
	rhs := s.lowerExpr(rhsRef)
	return s.mxir.Push(ref, mxir.Assign{Lhs: lhs, Rhs: rhs}), true
}

func (s *Sema) analyzeExprStmt(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)
	exprRef, ok := n.Field("expr")
	if !ok {
		panic("sema: expr_stmt missing expr field")
	}
	return s.mxir.Push(ref, mxir.ExprStmt{Expr: s.lowerExpr(exprRef)}), true
}
