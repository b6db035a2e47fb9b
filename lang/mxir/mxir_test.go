package mxir_test

import (
	"testing"

	"github.com/austincummings/mx/lang/mxir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolReserveThenSet(t *testing.T) {
	var pool mxir.Pool
	root := pool.Reserve(0)
	assert.Equal(t, mxir.Ref(0), root)

	body := pool.Push(0, mxir.Block{})
	pool.Set(root, mxir.SourceFile{Children: []mxir.Ref{body}})

	n := pool.Node(root)
	sf, ok := n.Data.(mxir.SourceFile)
	require.True(t, ok)
	assert.Equal(t, []mxir.Ref{body}, sf.Children)
}

// TestFnDeclBodyMayForwardReference pins the second sanctioned exception to
// MXIR ref monotonicity: a FnDecl is pushed (so a self-recursive call has a
// MxirRef to target) before its body is lowered, so Set can legally leave
// FnDecl.Body pointing at a ref greater than the FnDecl node's own SelfRef.
func TestFnDeclBodyMayForwardReference(t *testing.T) {
	var pool mxir.Pool
	fnRef := pool.Push(0, mxir.FnDecl{Name: "f", Body: 0, Lowered: false})

	bodyRef := pool.Push(0, mxir.Block{})
	pool.Set(fnRef, mxir.FnDecl{Name: "f", Body: bodyRef, Lowered: true})

	fd, ok := pool.Node(fnRef).Data.(mxir.FnDecl)
	require.True(t, ok)
	assert.Greater(t, uint32(fd.Body), uint32(fnRef))
}

func TestPoolPushAssignsSequentialRefs(t *testing.T) {
	var pool mxir.Pool
	a := pool.Push(0, mxir.IntLiteral{Value: 1})
	b := pool.Push(0, mxir.IntLiteral{Value: 2})
	assert.Equal(t, mxir.Ref(0), a)
	assert.Equal(t, mxir.Ref(1), b)
	assert.Equal(t, 2, pool.Len())
}
