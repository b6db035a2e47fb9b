package maincmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/austincummings/mx/internal/maincmd"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.mx")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCompilePrintsASTForValidProgram(t *testing.T) {
	path := writeSource(t, `fn main(): 0 { return 0; }`)

	var out, errOut bytes.Buffer
	c := &maincmd.Cmd{}
	err := c.Compile(context.Background(), mainer.Stdio{Stdout: &out, Stderr: &errOut}, []string{path})
	require.NoError(t, err)
	require.Contains(t, out.String(), "fn_decl")
	require.Empty(t, errOut.String())
}

func TestCompileReportsDiagnosticsForMissingMain(t *testing.T) {
	path := writeSource(t, `const x = 1;`)

	var out, errOut bytes.Buffer
	c := &maincmd.Cmd{}
	err := c.Compile(context.Background(), mainer.Stdio{Stdout: &out, Stderr: &errOut}, []string{path})
	require.Error(t, err)
	require.Contains(t, errOut.String(), "missing entrypoint function")
}

func TestCompileEmitCProducesCSource(t *testing.T) {
	path := writeSource(t, `fn main(): 0 { return 0; }`)

	var out, errOut bytes.Buffer
	c := &maincmd.Cmd{EmitC: true}
	err := c.Compile(context.Background(), mainer.Stdio{Stdout: &out, Stderr: &errOut}, []string{path})
	require.NoError(t, err)
	require.Contains(t, out.String(), "#include <stdio.h>")
	require.Contains(t, out.String(), "main(")
}

func TestRunExecutesProgram(t *testing.T) {
	path := writeSource(t, `
fn main(): 0 {
	print(7);
	return 0;
}
`)

	var out, errOut bytes.Buffer
	c := &maincmd.Cmd{}
	err := c.Run(context.Background(), mainer.Stdio{Stdout: &out, Stderr: &errOut}, []string{path})
	require.NoError(t, err)
	require.Equal(t, "7\n", out.String())
}

func TestRunStopsOnDiagnostics(t *testing.T) {
	path := writeSource(t, `fn main(): 0 { return undefined_name; }`)

	var out, errOut bytes.Buffer
	c := &maincmd.Cmd{}
	err := c.Run(context.Background(), mainer.Stdio{Stdout: &out, Stderr: &errOut}, []string{path})
	require.Error(t, err)
	require.Contains(t, errOut.String(), "symbol not found")
}

func TestServerIsNotImplemented(t *testing.T) {
	var out, errOut bytes.Buffer
	c := &maincmd.Cmd{}
	err := c.Server(context.Background(), mainer.Stdio{Stdout: &out, Stderr: &errOut}, nil)
	require.Error(t, err)
}
