package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/cemit"
)

// Compile runs the parser and analyzer over a single source file. By
// default it prints the resulting AST followed by any diagnostics; with
// --emit-c it instead prints the C source lang/cemit generates from the
// analyzed MXIR, which only happens when analysis produced no diagnostics
// (emitting C for a program the analyzer already rejected would just
// forward garbage).
func (c *Cmd) Compile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		return printError(stdio, fmt.Errorf("compile: exactly one source path required, got %d", len(args)))
	}

	unit, err := analyzeFile(args[0])
	if err != nil {
		return printError(stdio, err)
	}

	if c.EmitC {
		if len(unit.Diags) > 0 {
			printDiags(stdio.Stderr, unit.Diags, useColor(stdio.Stderr, c.NoColor))
			return unit.Diags.Err()
		}
		src, err := cemit.Emit(unit.Mxir)
		if err != nil {
			return printError(stdio, err)
		}
		fmt.Fprint(stdio.Stdout, src)
		return nil
	}

	printer := ast.Printer{Output: stdio.Stdout}
	if err := printer.Print(unit.Ast, unit.Ast.Root()); err != nil {
		return printError(stdio, err)
	}
	if len(unit.Diags) > 0 {
		printDiags(stdio.Stderr, unit.Diags, useColor(stdio.Stderr, c.NoColor))
		return unit.Diags.Err()
	}
	return nil
}
