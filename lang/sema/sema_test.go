package sema_test

import (
	"fmt"
	"testing"

	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/mxir"
	"github.com/austincummings/mx/lang/parser"
	"github.com/austincummings/mx/lang/sema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) (*mxir.Pool, diag.List) {
	t.Helper()
	pool, parseDiags := parser.Parse("test.mx", []byte(src))
	require.Empty(t, parseDiags)
	return sema.Analyze(pool)
}

func TestAnalyzeEmptyMain(t *testing.T) {
	ir, diags := analyze(t, `fn main(): 0 { }`)
	require.Empty(t, diags)

	sf, ok := ir.Node(0).Data.(mxir.SourceFile)
	require.True(t, ok)
	require.NotEmpty(t, sf.Children)

	var mainFn mxir.FnDecl
	found := false
	for _, ref := range sf.Children {
		if fd, ok := ir.Node(ref).Data.(mxir.FnDecl); ok && fd.Name == "main" {
			mainFn, found = fd, true
		}
	}
	require.True(t, found)
	assert.True(t, mainFn.Lowered)

	body, ok := ir.Node(mainFn.Body).Data.(mxir.Block)
	require.True(t, ok)
	assert.Empty(t, body.Children)
}

func TestAnalyzeMissingMain(t *testing.T) {
	_, diags := analyze(t, `fn helper(): 0 { return 0; }`)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.MissingEntrypointFunction, diags[0].Kind)
}

func TestAnalyzeReturnLiteral(t *testing.T) {
	ir, diags := analyze(t, `fn main(): 0 { return 42; }`)
	require.Empty(t, diags)

	mainFn := mainFnDecl(t, ir)
	body := ir.Node(mainFn.Body).Data.(mxir.Block)
	require.Len(t, body.Children, 1)

	ret, ok := ir.Node(body.Children[0]).Data.(mxir.Return)
	require.True(t, ok)
	lit, ok := ir.Node(ret.Value).Data.(mxir.IntLiteral)
	require.True(t, ok)
	assert.EqualValues(t, 42, lit.Value)
}

func TestAnalyzeVarAndAssign(t *testing.T) {
	ir, diags := analyze(t, `fn main(): 0 { var x: 42 = 1; x = 2; return x; }`)
	require.Empty(t, diags)

	mainFn := mainFnDecl(t, ir)
	body := ir.Node(mainFn.Body).Data.(mxir.Block)
	require.Len(t, body.Children, 3)

	vd, ok := ir.Node(body.Children[0]).Data.(mxir.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", vd.Name)

	as, ok := ir.Node(body.Children[1]).Data.(mxir.Assign)
	require.True(t, ok)
	lhs, ok := ir.Node(as.Lhs).Data.(mxir.VarExpr)
	require.True(t, ok)
	assert.Equal(t, "x", lhs.Name)
}

func TestAnalyzeLoopIfBreakWithBinaryOp(t *testing.T) {
	src := `fn main(): 0 {
		var i: 42 = 0;
		loop {
			if i == 3 {
				break;
			}
			i = i + 1;
		}
		return i;
	}`
	ir, diags := analyze(t, src)
	require.Empty(t, diags)

	mainFn := mainFnDecl(t, ir)
	body := ir.Node(mainFn.Body).Data.(mxir.Block)
	require.Len(t, body.Children, 3)

	loop, ok := ir.Node(body.Children[1]).Data.(mxir.Loop)
	require.True(t, ok)

	loopBody := ir.Node(loop.Body).Data.(mxir.Block)
	require.Len(t, loopBody.Children, 2)

	ifNode, ok := ir.Node(loopBody.Children[0]).Data.(mxir.If)
	require.True(t, ok)
	cond, ok := ir.Node(ifNode.Cond).Data.(mxir.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "==", cond.Op)

	thenBlock := ir.Node(ifNode.Then).Data.(mxir.Block)
	require.Len(t, thenBlock.Children, 1)
	_, isBreak := ir.Node(thenBlock.Children[0]).Data.(mxir.Break)
	assert.True(t, isBreak)

	assign, ok := ir.Node(loopBody.Children[1]).Data.(mxir.Assign)
	require.True(t, ok)
	rhs, ok := ir.Node(assign.Rhs).Data.(mxir.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", rhs.Op)
}

func TestAnalyzeCallExprLazyLowersCallee(t *testing.T) {
	ir, diags := analyze(t, `
		fn add(a: 0, b: 0): 0 { return a + b; }
		fn main(): 0 { return add(1, 2); }
	`)
	require.Empty(t, diags)

	sf := ir.Node(0).Data.(mxir.SourceFile)
	var addFn mxir.FnDecl
	for _, ref := range sf.Children {
		if fd, ok := ir.Node(ref).Data.(mxir.FnDecl); ok && fd.Name == "add" {
			addFn = fd
		}
	}
	assert.True(t, addFn.Lowered, "add's body should be lowered once called from main")
}

func TestAnalyzeIncorrectArgumentCount(t *testing.T) {
	_, diags := analyze(t, `
		fn add(a: 0, b: 0): 0 { return a + b; }
		fn main(): 0 { return add(1); }
	`)
	require.NotEmpty(t, diags)
	assert.Equal(t, diag.IncorrectArgumentCount, diags[0].Kind)
}

func TestAnalyzeDuplicateDefinition(t *testing.T) {
	_, diags := analyze(t, `
		const limit = 1;
		const limit = 2;
		fn main(): 0 { return 0; }
	`)
	require.NotEmpty(t, diags)
	assert.Equal(t, diag.DuplicateDefinition, diags[0].Kind)
}

func TestAnalyzeSymbolNotFound(t *testing.T) {
	_, diags := analyze(t, `fn main(): 0 { return missing; }`)
	require.NotEmpty(t, diags)
	assert.Equal(t, diag.SymbolNotFound, diags[0].Kind)
}

func TestAnalyzeBuiltinPrintCall(t *testing.T) {
	ir, diags := analyze(t, `fn main(): 0 { print(1); return 0; }`)
	require.Empty(t, diags)

	mainFn := mainFnDecl(t, ir)
	body := ir.Node(mainFn.Body).Data.(mxir.Block)
	exprStmt, ok := ir.Node(body.Children[0]).Data.(mxir.ExprStmt)
	require.True(t, ok)
	call, ok := ir.Node(exprStmt.Expr).Data.(mxir.CallExpr)
	require.True(t, ok)
	_, ok = ir.Node(call.FnDeclRef).Data.(mxir.BuiltinFnDecl)
	assert.True(t, ok)
}

// TestAnalyzeMxirRefMonotonicity pins the MXIR monotonicity invariant
// (every ref in a node's payload is less than the node's own SelfRef) along
// with its two sanctioned exceptions: SourceFile(0)'s Children, and
// FnDecl.Body (reserved before lowering so a self-recursive call has a
// MxirRef to resolve against). Every other ref field, including
// CallExpr.FnDeclRef pointing back at an earlier-declared function, must
// still be strictly backward.
func TestAnalyzeMxirRefMonotonicity(t *testing.T) {
	ir, diags := analyze(t, `
		fn add(a: 0, b: 0): 0 { return a + b; }
		fn main(): 0 { var r: 42 = add(2, 3); return r; }
	`)
	require.Empty(t, diags)

	for i := 0; i < ir.Len(); i++ {
		ref := mxir.Ref(i)
		node := ir.Node(ref)
		for _, childRef := range monotonicRefs(node.Data) {
			assert.Less(t, uint32(childRef), uint32(ref),
				"node %d (%T) holds forward ref %d", ref, node.Data, childRef)
		}
	}

	sf := ir.Node(0).Data.(mxir.SourceFile)
	sawForwardBody := false
	for _, ref := range sf.Children {
		fd, ok := ir.Node(ref).Data.(mxir.FnDecl)
		require.True(t, ok)
		if fd.Body > ref {
			sawForwardBody = true
		}
	}
	assert.True(t, sawForwardBody, "expected at least one FnDecl.Body to exceed its own SelfRef")
}

// monotonicRefs returns the ref-valued fields of data that the monotonicity
// invariant applies to, omitting the fields this repo has sanctioned as
// forward references (SourceFile.Children, FnDecl.Body).
func monotonicRefs(data mxir.NodeData) []mxir.Ref {
	switch d := data.(type) {
	case mxir.SourceFile:
		return nil
	case mxir.Block:
		return d.Children
	case mxir.Nop:
		return nil
	case mxir.FnDecl:
		return nil
	case mxir.BuiltinFnDecl:
		return nil
	case mxir.VarDecl:
		if d.Value == 0 {
			return nil
		}
		return []mxir.Ref{d.Value}
	case mxir.ExprStmt:
		return []mxir.Ref{d.Expr}
	case mxir.Return:
		if d.Value == 0 {
			return nil
		}
		return []mxir.Ref{d.Value}
	case mxir.Loop:
		return []mxir.Ref{d.Body}
	case mxir.If:
		refs := []mxir.Ref{d.Cond, d.Then}
		if d.Else != 0 {
			refs = append(refs, d.Else)
		}
		return refs
	case mxir.Break:
		return nil
	case mxir.Continue:
		return nil
	case mxir.Assign:
		return []mxir.Ref{d.Lhs, d.Rhs}
	case mxir.IntLiteral:
		return nil
	case mxir.FloatLiteral:
		return nil
	case mxir.StringLiteral:
		return nil
	case mxir.BoolLiteral:
		return nil
	case mxir.VarExpr:
		return nil
	case mxir.CallExpr:
		return append([]mxir.Ref{d.FnDeclRef}, d.Args...)
	case mxir.BinaryOp:
		return []mxir.Ref{d.Left, d.Right}
	default:
		panic(fmt.Sprintf("sema_test: unhandled mxir node data %T", data))
	}
}

func mainFnDecl(t *testing.T, ir *mxir.Pool) mxir.FnDecl {
	t.Helper()
	sf, ok := ir.Node(0).Data.(mxir.SourceFile)
	require.True(t, ok)
	for _, ref := range sf.Children {
		if fd, ok := ir.Node(ref).Data.(mxir.FnDecl); ok && fd.Name == "main" {
			return fd
		}
	}
	t.Fatal("main not found")
	return mxir.FnDecl{}
}
