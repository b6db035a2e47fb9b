package maincmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/austincummings/mx/lang/diag"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// useColor decides whether diagnostics written to w should be ANSI colored:
// only when w is a real terminal (not a pipe or a file) and the caller
// hasn't forced --no-color. Piping `mx compile` output to a file or another
// program should never embed escape codes in it.
func useColor(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printDiags renders one diagnostic per line, colored red (severity is
// uniformly "error" at this stage) when color is enabled.
func printDiags(w io.Writer, diags diag.List, color bool) {
	for _, d := range diags {
		if color {
			fmt.Fprintf(w, "%serror%s: %s\n", ansiRed, ansiReset, d)
		} else {
			fmt.Fprintf(w, "error: %s\n", d)
		}
	}
}
