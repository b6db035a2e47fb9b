// Package sema implements MX's semantic analyzer: scope and symbol
// resolution, compile-time evaluation of type and const expressions, and
// lowering of a resolved ast.Pool into an mxir.Pool. It is grounded on
// original_source/mx/src/sema.rs, carried into Go in the style of the
// teacher's lang/resolver package (a single analyzer struct threading a
// scope stack through a recursive walk, reporting diagnostics instead of
// aborting on the first problem).
package sema

import (
	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/mxir"
)

// Sema holds the state threaded through one analysis run: the ast.Pool
// being read, the mxir.Pool being built, the ScopeStack, and the
// diagnostics collected along the way.
type Sema struct {
	path  string
	ast   *ast.Pool
	mxir  mxir.Pool
	scope ScopeStack
	diags diag.List

	// pendingBodies tracks, for every declared-but-not-yet-lowered fn_decl,
	// the ast node of its body block. ensureFnLowered consults this the first
	// time a function is actually needed and lowers it then.
	pendingBodies map[mxir.Ref]ast.NodeRef
}

// Analyze resolves and lowers pool, returning the resulting mxir.Pool and
// any diagnostics. Analyze never returns a nil *mxir.Pool: even a pool with
// fatal diagnostics (a missing entrypoint) still gets a SourceFile(0) node,
// so callers can always at least print it.
func Analyze(pool *ast.Pool) (*mxir.Pool, diag.List) {
	s := &Sema{path: pool.Path, ast: pool, pendingBodies: map[mxir.Ref]ast.NodeRef{}}
	s.analyzeSourceFile()
	return &s.mxir, s.diags
}

func (s *Sema) report(astRef ast.NodeRef, kind diag.Kind, detail string) {
	n := s.ast.Node(astRef)
	s.diags.Add(diag.Diagnostic{Path: s.path, Range: n.Range, Kind: kind, Detail: detail})
}

func (s *Sema) node(ref ast.NodeRef) ast.Node { return s.ast.Node(ref) }

// analyzeSourceFile is the entry point, grounded on sema.rs's
// analyze_source_file: push the root scope, declare every top-level
// function and const (without lowering function bodies yet — that's the
// lazy-lowering rule), look up "main", lower it, pop the root scope.
func (s *Sema) analyzeSourceFile() {
	root := s.node(s.ast.Root())
	if root.Kind != "source_file" {
		panic("sema: ast root is not a source_file node")
	}

	s.scope.Push(root.Range)
	defer s.scope.Pop()

	selfRef := s.mxir.Reserve(s.ast.Root())

	var children []mxir.Ref
	s.registerBuiltins()
	for _, childRef := range root.Children {
		if ref, ok := s.analyzeTopLevel(childRef); ok {
			children = append(children, ref)
		}
	}

	mainBinding, ok := s.scope.Get("main")
	if !ok {
		s.report(s.ast.Root(), diag.MissingEntrypointFunction, "no top-level fn named \"main\"")
		s.mxir.Set(selfRef, mxir.SourceFile{Children: children})
		return
	}

	mainFn, ok := mainBinding.Value.(CTFnDecl)
	if !ok {
		s.report(mainBinding.AstRef, diag.MissingEntrypointFunction, "\"main\" is not a function")
		s.mxir.Set(selfRef, mxir.SourceFile{Children: children})
		return
	}

	s.ensureFnLowered(mainFn)
	s.mxir.Set(selfRef, mxir.SourceFile{Children: children})
}

// analyzeTopLevel declares a single top-level fn_decl or const_decl in the
// root scope and returns the mxir.Ref recorded for it (a fn_decl always
// gets one, reserved up front and lowered lazily; a const_decl never
// produces an mxir node, matching original_source's analyze_const_decl,
// which only ever touches the compile-time environment).
func (s *Sema) analyzeTopLevel(ref ast.NodeRef) (mxir.Ref, bool) {
	n := s.node(ref)
	switch n.Kind {
	case "fn_decl":
		return s.analyzeFnDecl(ref)
	case "const_decl":
		s.analyzeConstDecl(ref)
		return 0, false
	default:
		panic("sema: unexpected top-level ast kind " + n.Kind)
	}
}
