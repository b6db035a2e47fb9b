package maincmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mna/mainer"

	"github.com/austincummings/mx/internal/config"
	"github.com/austincummings/mx/lang/interp"
)

// Run compiles a single source file and, if analysis produced no
// diagnostics, executes it with the tree-walking interpreter. The step
// budget passed to interp.Execute comes from --max-steps if given,
// otherwise from the project config file (mx.yaml, or --config), falling
// back to config.DefaultMaxSteps.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		return printError(stdio, fmt.Errorf("run: exactly one source path required, got %d", len(args)))
	}

	unit, err := analyzeFile(args[0])
	if err != nil {
		return printError(stdio, err)
	}
	if len(unit.Diags) > 0 {
		printDiags(stdio.Stderr, unit.Diags, useColor(stdio.Stderr, c.NoColor))
		return unit.Diags.Err()
	}

	maxSteps := c.MaxSteps
	if maxSteps == 0 {
		cfg, err := config.Load(c.configPath())
		if err != nil {
			return printError(stdio, err)
		}
		maxSteps = cfg.MaxSteps
	}

	if _, err := interp.Execute(unit.Mxir, stdio.Stdout, maxSteps); err != nil {
		return printError(stdio, err)
	}
	return nil
}

// configPath resolves the project config file: --config if given, else
// mx.yaml in the current directory (config.Load treats a missing file as
// "use defaults", so this never needs to check existence itself).
func (c *Cmd) configPath() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return filepath.Join(".", "mx.yaml")
}
