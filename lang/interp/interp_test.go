package interp_test

import (
	"bytes"
	"testing"

	"github.com/austincummings/mx/lang/interp"
	"github.com/austincummings/mx/lang/parser"
	"github.com/austincummings/mx/lang/sema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (interp.Value, *bytes.Buffer) {
	t.Helper()
	pool, parseDiags := parser.Parse("test.mx", []byte(src))
	require.Empty(t, parseDiags)
	ir, semaDiags := sema.Analyze(pool)
	require.Empty(t, semaDiags)

	var out bytes.Buffer
	val, err := interp.Execute(ir, &out, 100000)
	require.NoError(t, err)
	return val, &out
}

func TestExecuteEmptyMain(t *testing.T) {
	val, _ := run(t, `fn main(): 0 { }`)
	assert.Nil(t, val)
}

func TestExecuteReturnLiteral(t *testing.T) {
	val, _ := run(t, `fn main(): 0 { return 42; }`)
	require.IsType(t, interp.Integer{}, val)
	assert.EqualValues(t, 42, val.(interp.Integer).Value)
}

func TestExecuteVarAndAssign(t *testing.T) {
	val, _ := run(t, `fn main(): 0 { var x: 42 = 1; x = 2; return x; }`)
	require.IsType(t, interp.Integer{}, val)
	assert.EqualValues(t, 2, val.(interp.Integer).Value)
}

func TestExecuteLoopIfBreak(t *testing.T) {
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
	val, _ := run(t, src)
	require.IsType(t, interp.Integer{}, val)
	assert.EqualValues(t, 3, val.(interp.Integer).Value)
}

func TestExecuteContinueSkipsRestOfBody(t *testing.T) {
	src := `fn main(): 0 {
		var i: 42 = 0;
		var sum: 42 = 0;
		loop {
			if i == 5 {
				break;
			}
			i = i + 1;
			if i == 3 {
				continue;
			}
			sum = sum + i;
		}
		return sum;
	}`
	val, _ := run(t, src)
	require.IsType(t, interp.Integer{}, val)
	// i runs 1,2,3,4,5; 3 is skipped by continue before reaching sum
	assert.EqualValues(t, 1+2+4+5, val.(interp.Integer).Value)
}

func TestExecuteFunctionCallAndReturnDoesNotEscapeCallee(t *testing.T) {
	src := `
		fn add(a: 0, b: 0): 0 {
			return a + b;
		}
		fn main(): 0 {
			var result: 42 = add(2, 3);
			return result;
		}
	`
	val, _ := run(t, src)
	require.IsType(t, interp.Integer{}, val)
	assert.EqualValues(t, 5, val.(interp.Integer).Value)
}

func TestExecutePrintBuiltin(t *testing.T) {
	_, out := run(t, `fn main(): 0 { print(7); return 0; }`)
	assert.Equal(t, "7\n", out.String())
}

func TestExecuteDivisionByZeroIsSoftError(t *testing.T) {
	src := `fn main(): 0 {
		var x: 42 = 1 / 0;
		return x;
	}`
	pool, parseDiags := parser.Parse("t.mx", []byte(src))
	require.Empty(t, parseDiags)
	ir, semaDiags := sema.Analyze(pool)
	require.Empty(t, semaDiags)

	var out bytes.Buffer
	val, err := interp.Execute(ir, &out, 100000)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestExecuteStepLimitExceeded(t *testing.T) {
	pool, parseDiags := parser.Parse("loop.mx", []byte(`fn main(): 0 { loop { } return 0; }`))
	require.Empty(t, parseDiags)
	ir, semaDiags := sema.Analyze(pool)
	require.Empty(t, semaDiags)

	var out bytes.Buffer
	_, err := interp.Execute(ir, &out, 1000)
	assert.ErrorIs(t, err, interp.ErrStepLimitExceeded)
}
