package parser_test

import (
	"testing"

	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyMain(t *testing.T) {
	pool, diags := parser.Parse("empty.mx", []byte(`fn main(): 0 { }`))
	require.Empty(t, diags)
	require.Equal(t, 1, len(pool.Node(pool.Root()).Children))

	fnDecl := pool.Node(pool.Node(pool.Root()).Children[0])
	assert.Equal(t, "fn_decl", fnDecl.Kind)

	nameRef, ok := fnDecl.Field("name")
	require.True(t, ok)
	assert.Equal(t, "main", pool.Node(nameRef).Text)

	bodyRef, ok := fnDecl.Field("body")
	require.True(t, ok)
	assert.Equal(t, "block", pool.Node(bodyRef).Kind)
	assert.Empty(t, pool.Node(bodyRef).Children)
}

func TestParseReturnStmt(t *testing.T) {
	pool, diags := parser.Parse("ret.mx", []byte(`fn main(): 0 { return 42; }`))
	require.Empty(t, diags)

	body := fnBody(t, pool)
	require.Len(t, body.Children, 1)

	ret := pool.Node(body.Children[0])
	assert.Equal(t, "return_stmt", ret.Kind)

	exprRef, ok := ret.Field("expr")
	require.True(t, ok)
	lit := pool.Node(exprRef)
	assert.Equal(t, "int_literal", lit.Kind)
	assert.Equal(t, "42", lit.Text)
}

func TestParseVarAndAssign(t *testing.T) {
	pool, diags := parser.Parse("va.mx", []byte(`fn main(): 0 { var x: 42 = 1; x = 2; return x; }`))
	require.Empty(t, diags)

	body := fnBody(t, pool)
	require.Len(t, body.Children, 3)

	assert.Equal(t, "var_decl", pool.Node(body.Children[0]).Kind)
	assert.Equal(t, "assign_stmt", pool.Node(body.Children[1]).Kind)
	assert.Equal(t, "return_stmt", pool.Node(body.Children[2]).Kind)
}

func TestParseLoopIfBreak(t *testing.T) {
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
	pool, diags := parser.Parse("loop.mx", []byte(src))
	require.Empty(t, diags)

	body := fnBody(t, pool)
	require.Len(t, body.Children, 3)

	loopStmt := pool.Node(body.Children[1])
	assert.Equal(t, "loop_stmt", loopStmt.Kind)

	loopBodyRef, ok := loopStmt.Field("body")
	require.True(t, ok)
	loopBody := pool.Node(loopBodyRef)
	require.Len(t, loopBody.Children, 2)

	ifStmt := pool.Node(loopBody.Children[0])
	assert.Equal(t, "if_stmt", ifStmt.Kind)
	condRef, ok := ifStmt.Field("cond")
	require.True(t, ok)
	cond := pool.Node(condRef)
	assert.Equal(t, "binary_expr", cond.Kind)
	assert.Equal(t, "==", cond.Text)

	assign := pool.Node(loopBody.Children[1])
	assert.Equal(t, "assign_stmt", assign.Kind)
	rhsRef, ok := assign.Field("rhs")
	require.True(t, ok)
	assert.Equal(t, "binary_expr", pool.Node(rhsRef).Kind)
}

func TestParseCallExpr(t *testing.T) {
	pool, diags := parser.Parse("call.mx", []byte(`fn main(): 0 { print(1); return 0; }`))
	require.Empty(t, diags)

	body := fnBody(t, pool)
	require.Len(t, body.Children, 2)

	exprStmt := pool.Node(body.Children[0])
	assert.Equal(t, "expr_stmt", exprStmt.Kind)

	exprRef, ok := exprStmt.Field("expr")
	require.True(t, ok)
	call := pool.Node(exprRef)
	assert.Equal(t, "call_expr", call.Kind)
	require.Len(t, call.Children, 1)

	calleeRef, ok := call.Field("callee")
	require.True(t, ok)
	assert.Equal(t, "variable_expr", pool.Node(calleeRef).Kind)
	assert.Equal(t, "print", pool.Node(calleeRef).Text)
}

func TestParseConstDecl(t *testing.T) {
	pool, diags := parser.Parse("const.mx", []byte(`const limit = 10; fn main(): 0 { return 0; }`))
	require.Empty(t, diags)
	require.Len(t, pool.Node(pool.Root()).Children, 2)

	constDecl := pool.Node(pool.Node(pool.Root()).Children[0])
	assert.Equal(t, "const_decl", constDecl.Kind)
}

func TestParseSyntaxErrorRecovers(t *testing.T) {
	_, diags := parser.Parse("bad.mx", []byte(`fn main(): 0 { var x 1; return x; }`))
	require.NotEmpty(t, diags)
	assert.Equal(t, diag.SyntaxErrorExpectedToken, diags[0].Kind)
}

func TestParseUnaryMinusLowersToBinaryOp(t *testing.T) {
	pool, diags := parser.Parse("neg.mx", []byte(`fn main(): 0 { return -1; }`))
	require.Empty(t, diags)

	body := fnBody(t, pool)
	ret := pool.Node(body.Children[0])
	exprRef, _ := ret.Field("expr")
	neg := pool.Node(exprRef)
	assert.Equal(t, "binary_expr", neg.Kind)
	assert.Equal(t, "-", neg.Text)
}

func fnBody(t *testing.T, pool *ast.Pool) ast.Node {
	t.Helper()
	root := pool.Node(pool.Root())
	require.NotEmpty(t, root.Children)
	fnDecl := pool.Node(root.Children[0])
	bodyRef, ok := fnDecl.Field("body")
	require.True(t, ok)
	return pool.Node(bodyRef)
}
