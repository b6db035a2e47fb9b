package cemit_test

import (
	"testing"

	"github.com/austincummings/mx/lang/cemit"
	"github.com/austincummings/mx/lang/parser"
	"github.com/austincummings/mx/lang/sema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitReturnLiteral(t *testing.T) {
	pool, diags := parser.Parse("t.mx", []byte(`fn main(): 0 { return 42; }`))
	require.Empty(t, diags)
	ir, diags := sema.Analyze(pool)
	require.Empty(t, diags)

	out, err := cemit.Emit(ir)
	require.NoError(t, err)
	assert.Contains(t, out, "long long main(")
	assert.Contains(t, out, "return 42;")
}

func TestEmitLoopIfBreakBinaryOp(t *testing.T) {
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
	pool, diags := parser.Parse("t.mx", []byte(src))
	require.Empty(t, diags)
	ir, diags := sema.Analyze(pool)
	require.Empty(t, diags)

	out, err := cemit.Emit(ir)
	require.NoError(t, err)
	assert.Contains(t, out, "for (;;) {")
	assert.Contains(t, out, "break;")
	assert.Contains(t, out, "(i == 3)")
}

func TestEmitFunctionCall(t *testing.T) {
	src := `
		fn add(a: 0, b: 0): 0 { return a + b; }
		fn main(): 0 { return add(1, 2); }
	`
	pool, diags := parser.Parse("t.mx", []byte(src))
	require.Empty(t, diags)
	ir, diags := sema.Analyze(pool)
	require.Empty(t, diags)

	out, err := cemit.Emit(ir)
	require.NoError(t, err)
	assert.Contains(t, out, "long long add(long long a, long long b)")
	assert.Contains(t, out, "add(1, 2)")
}
