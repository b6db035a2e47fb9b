package sema

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/mxir"
)

// registerBuiltins declares this repo's one builtin function, "print", in
// the root scope before any user declaration is processed, so user code can
// shadow it with a DuplicateDefinition diagnostic the same as redeclaring
// any other name. A BuiltinFnDecl node declares no parameter list of its
// own (the interpreter's builtin table calls a Go function directly); at
// the MX source level print accepts one ordinary argument, which the call's
// CallExpr.Args carries and the interpreter passes to the builtin, so
// call-site argument-count checking has something to exercise.
func (s *Sema) registerBuiltins() []mxir.Ref {
	mxirRef := s.mxir.Push(s.ast.Root(), mxir.BuiltinFnDecl{Name: "print"})
	proto := CTFnProto{
		Params:     []ParamDecl{{Name: "value", Type: CTUndefined{}}},
		ReturnType: CTUndefined{},
	}
	decl := CTFnDecl{Name: "print", Proto: proto, AstRef: s.ast.Root(), MxirRef: mxirRef}
	s.scope.Insert("print", Binding{Value: decl, AstRef: s.ast.Root()})
	return []mxir.Ref{mxirRef}
}

// analyzeFnDecl declares a function in the current scope and reserves its
// mxir.FnDecl node, but does NOT lower its body: a body is only emitted at
// the function's first call site (ensureFnLowered), mirrored from
// original_source's emit_fn being called on demand rather than eagerly for
// every declared function. The FnDecl node must exist (with Body: 0) before
// the body is lowered so a self-recursive call inside that body has a
// MxirRef to resolve against; this is what makes FnDecl.Body the second
// sanctioned exception to MXIR ref monotonicity, alongside SourceFile(0).
func (s *Sema) analyzeFnDecl(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)

	nameRef, ok := n.Field("name")
	if !ok {
		s.report(ref, diag.MissingFunctionName, "fn_decl has no name")
		return s.mxir.Push(ref, mxir.Nop{}), true
	}
	name := s.node(nameRef).Text

	protoRef, ok := n.Field("proto")
	if !ok {
		panic("sema: fn_decl missing proto field")
	}
	proto := s.analyzeFnProto(protoRef)

	bodyRef, _ := n.Field("body")

	paramNames := make([]string, len(proto.Params))
	for i, p := range proto.Params {
		paramNames[i] = p.Name
	}
	mxirRef := s.mxir.Push(ref, mxir.FnDecl{Name: name, Params: paramNames, Body: 0, Lowered: false})
	decl := CTFnDecl{Name: name, Proto: proto, AstRef: ref, MxirRef: mxirRef}

	if name != "" {
		if !s.scope.Insert(name, Binding{Value: decl, AstRef: ref}) {
			s.report(ref, diag.DuplicateDefinition, "\""+name+"\" is already defined in this scope")
		}
	}

	// Stash the body ast ref on the side so ensureFnLowered can find it; the
	// mxir.FnDecl node only carries the lowered Body ref once lowering has
	// actually happened.
	s.pendingBodies[mxirRef] = bodyRef

	return mxirRef, true
}

// analyzeFnProto analyzes a fn_proto node into its compile-time shape
// (comptime_params, params, return_type), pushing and popping a scratch
// scope so forward references within the signature (a param type
// referencing an earlier comptime param) resolve, then discarding that
// scope: a proto carries no runtime bindings of its own.
func (s *Sema) analyzeFnProto(ref ast.NodeRef) CTFnProto {
	n := s.node(ref)

	s.scope.Push(n.Range)
	defer s.scope.Pop()

	var proto CTFnProto
	if ctpRef, ok := n.Field("comptime_params"); ok {
		proto.ComptimeParams = s.extractParams(ctpRef)
		for _, p := range proto.ComptimeParams {
			s.scope.Insert(p.Name, Binding{Value: p.Type})
		}
	}
	if pRef, ok := n.Field("params"); ok {
		proto.Params = s.extractParams(pRef)
	}
	if rtRef, ok := n.Field("return_type"); ok {
		proto.ReturnType = s.ctEval(rtRef)
	} else {
		proto.ReturnType = CTUndefined{}
	}
	return proto
}

// extractParams lowers a param_list node's children into ParamDecls,
// reporting DuplicateParamName for any repeated name within the list
// (original_source's bind_comptime_params/extract_params use a HashSet for
// the same check).
func (s *Sema) extractParams(ref ast.NodeRef) []ParamDecl {
	n := s.node(ref)
	seen := map[string]bool{}
	params := make([]ParamDecl, 0, len(n.Children))
	for _, childRef := range n.Children {
		child := s.node(childRef)
		nameRef, _ := child.Field("name")
		name := s.node(nameRef).Text
		if seen[name] {
			s.report(childRef, diag.DuplicateParamName, "duplicate parameter \""+name+"\"")
			continue
		}
		seen[name] = true

		var ty CTValue = CTUndefined{}
		if tyRef, ok := child.Field("type"); ok {
			ty = s.ctEval(tyRef)
		}
		params = append(params, ParamDecl{Name: name, Type: ty})
	}
	return params
}

// ensureFnLowered lowers decl's body the first time it is needed (either
// because it is the program's entrypoint or because a call expression
// resolved to it), then marks it lowered so later call sites reuse the
// same mxir.Ref instead of re-lowering. The body's nodes are pushed after
// decl's own FnDecl node, so the Set call below routinely leaves
// FnDecl.Body greater than FnDecl.SelfRef — see mxir.FnDecl's doc comment.
func (s *Sema) ensureFnLowered(decl CTFnDecl) {
	fnNode := s.mxir.Node(decl.MxirRef)
	fd, ok := fnNode.Data.(mxir.FnDecl)
	if !ok {
		return // BuiltinFnDecl or already something else; nothing to lower
	}
	if fd.Lowered {
		return
	}

	bodyAstRef, ok := s.pendingBodies[decl.MxirRef]
	if !ok {
		panic("sema: no pending body recorded for fn " + decl.Name)
	}

	s.scope.Push(s.node(bodyAstRef).Range) // function scope: params live here
	for _, p := range decl.Proto.ComptimeParams {
		s.scope.Insert(p.Name, Binding{Value: p.Type})
	}
	for _, p := range decl.Proto.Params {
		s.scope.Insert(p.Name, Binding{Value: CTVarDecl{Name: p.Name}})
	}

	bodyRef := s.analyzeBlock(bodyAstRef)

	s.scope.Pop()

	s.mxir.Set(decl.MxirRef, mxir.FnDecl{Name: decl.Name, Params: fd.Params, Body: bodyRef, Lowered: true})
}
