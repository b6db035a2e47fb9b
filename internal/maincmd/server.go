package maincmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mna/mainer"
)

// Server is a placeholder for a future language-server shell wrapping
// lang/sema and lang/interp, where a surrounding editor integration would
// own one analysis instance per open document. It matches the rest of the
// CLI's surface shape (buildCmds picks it up as an ordinary subcommand)
// without pretending to implement an LSP.
func (c *Cmd) Server(ctx context.Context, stdio mainer.Stdio, args []string) error {
	fmt.Fprintln(stdio.Stderr, "server: not implemented")
	return errors.New("server: not implemented")
}
