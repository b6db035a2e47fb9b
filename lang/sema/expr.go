package sema

import (
	"strconv"

	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/mxir"
)

// ctEval evaluates a comptime_expr node to a CTValue, mirroring
// original_source's analyze_comptime_expr: it asserts the node really is a
// comptime_expr, then matches on the kind of its wrapped "expr" field.
// Anything ctEval doesn't recognize is a grammar invariant violation
// (panic) rather than a recoverable error, since only the parser itself
// could produce a comptime_expr wrapping something unexpected.
func (s *Sema) ctEval(ref ast.NodeRef) CTValue {
	n := s.node(ref)
	if n.Kind != "comptime_expr" {
		panic("sema: ctEval called on non-comptime_expr node " + n.Kind)
	}
	exprRef, ok := n.Field("expr")
	if !ok {
		panic("sema: comptime_expr missing expr field")
	}
	return s.ctEvalInner(exprRef)
}

func (s *Sema) ctEvalInner(ref ast.NodeRef) CTValue {
	n := s.node(ref)
	switch n.Kind {
	case "int_literal":
		v, _ := strconv.ParseInt(n.Text, 10, 64)
		return CTInt{Value: v}
	case "float_literal":
		v, _ := strconv.ParseFloat(n.Text, 64)
		return CTFloat{Value: v}
	case "string_literal":
		return CTString{Value: n.Text}
	case "bool_literal":
		return CTBool{Value: n.Text == "true"}
	case "variable_expr":
		b, ok := s.scope.Lookup(n.Text)
		if !ok {
			s.report(ref, diag.SymbolNotFound, n.Text)
			return CTUndefined{}
		}
		return b.Value
	case "fn_proto":
		return s.analyzeFnProto(ref)
	case "binary_expr":
		return s.ctEvalBinaryOp(ref, n)
	default:
		panic("sema: comptime_expr wraps unsupported kind " + n.Kind)
	}
}

func (s *Sema) ctEvalBinaryOp(ref ast.NodeRef, n ast.Node) CTValue {
	leftRef, _ := n.Field("left")
	rightRef, _ := n.Field("right")
	left := s.ctEvalInner(leftRef)
	right := s.ctEvalInner(rightRef)

	li, lok := left.(CTInt)
	ri, rok := right.(CTInt)
	if !lok || !rok {
		s.report(ref, diag.InvalidOperands, "binary operator \""+n.Text+"\" requires integer operands at compile time")
		return CTUndefined{}
	}
	return foldIntOp(n.Text, li.Value, ri.Value)
}

// foldIntOp folds a binary operator over two compile-time integers using
// this package's foldArith/foldCompare, a copy of the generic helpers
// lang/interp defines for runtime evaluation; the two copies are kept in
// step by hand.
func foldIntOp(op string, l, r int64) CTValue {
	if op == "%" {
		if r == 0 {
			return CTUndefined{}
		}
		return CTInt{Value: l % r}
	}
	if v, ok := foldArith(op, l, r); ok {
		return CTInt{Value: v}
	}
	if b, ok := foldCompare(op, l, r); ok {
		return CTBool{Value: b}
	}
	panic("sema: unknown binary operator " + op)
}

// lowerExpr lowers a runtime expression node to MXIR. Unlike ctEval, this
// never evaluates anything: it produces the IR the interpreter will later
// execute. Unresolved names are a recoverable semantic error: report
// SymbolNotFound and substitute a Nop rather than aborting the whole
// lowering pass.
func (s *Sema) lowerExpr(ref ast.NodeRef) mxir.Ref {
	n := s.node(ref)
	switch n.Kind {
	case "int_literal":
		v, _ := strconv.ParseInt(n.Text, 10, 64)
		return s.mxir.Push(ref, mxir.IntLiteral{Value: v})
	case "float_literal":
		v, _ := strconv.ParseFloat(n.Text, 64)
		return s.mxir.Push(ref, mxir.FloatLiteral{Value: v})
	case "string_literal":
		return s.mxir.Push(ref, mxir.StringLiteral{Value: n.Text})
	case "bool_literal":
		return s.mxir.Push(ref, mxir.BoolLiteral{Value: n.Text == "true"})
	case "variable_expr":
		if _, ok := s.scope.Lookup(n.Text); !ok {
			s.report(ref, diag.SymbolNotFound, n.Text)
			return s.mxir.Push(ref, mxir.Nop{})
		}
		return s.mxir.Push(ref, mxir.VarExpr{Name: n.Text})
	case "binary_expr":
		return s.lowerBinaryOp(ref, n)
	case "call_expr":
		return s.lowerCallExpr(ref, n)
	default:
		panic("sema: unexpected expression ast kind " + n.Kind)
	}
}

func (s *Sema) lowerBinaryOp(ref ast.NodeRef, n ast.Node) mxir.Ref {
	leftAstRef, _ := n.Field("left")
	rightAstRef, _ := n.Field("right")
	left := s.lowerExpr(leftAstRef)
	right := s.lowerExpr(rightAstRef)
	return s.mxir.Push(ref, mxir.BinaryOp{Op: n.Text, Left: left, Right: right})
}

// lowerCallExpr resolves the callee and, the first time this callee is
// reached, triggers its body's lazy lowering (ensureFnLowered) before
// emitting the CallExpr node — the first call site determines when a
// function's body is lowered.
func (s *Sema) lowerCallExpr(ref ast.NodeRef, n ast.Node) mxir.Ref {
	calleeAstRef, ok := n.Field("callee")
	if !ok {
		panic("sema: call_expr missing callee field")
	}
	callee := s.node(calleeAstRef)
	if callee.Kind != "variable_expr" {
		s.report(calleeAstRef, diag.InvalidFunctionCall, "call target must be a function name")
		return s.mxir.Push(ref, mxir.Nop{})
	}

	binding, ok := s.scope.Lookup(callee.Text)
	if !ok {
		s.report(calleeAstRef, diag.SymbolNotFound, callee.Text)
		return s.mxir.Push(ref, mxir.Nop{})
	}
	fn, ok := binding.Value.(CTFnDecl)
	if !ok {
		s.report(calleeAstRef, diag.InvalidFunctionCall, "\""+callee.Text+"\" is not a function")
		return s.mxir.Push(ref, mxir.Nop{})
	}

	wantArgs := len(fn.Proto.Params)
	gotArgs := len(n.Children)
	if wantArgs != gotArgs {
		s.report(ref, diag.IncorrectArgumentCount,
			"\""+callee.Text+"\" expects "+strconv.Itoa(wantArgs)+" argument(s), got "+strconv.Itoa(gotArgs))
	}

	args := make([]mxir.Ref, 0, gotArgs)
	for _, argAstRef := range n.Children {
		args = append(args, s.lowerExpr(argAstRef))
	}

	s.ensureFnLowered(fn)

	return s.mxir.Push(ref, mxir.CallExpr{FnDeclRef: fn.MxirRef, Args: args})
}
