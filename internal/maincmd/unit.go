package maincmd

import (
	"os"

	"github.com/google/uuid"

	"github.com/austincummings/mx/lang/ast"
	"github.com/austincummings/mx/lang/diag"
	"github.com/austincummings/mx/lang/mxir"
	"github.com/austincummings/mx/lang/parser"
	"github.com/austincummings/mx/lang/sema"
)

// analyzedUnit bundles one source file's whole analysis result: source
// path, AST, lowered MXIR and accumulated diagnostics. The CLI only ever
// holds one of these at a time (it re-analyzes from scratch on every
// invocation; incremental re-analysis across edits is left for a future
// host), but a future host embedding this module as a language-server shell
// would track many concurrently — UnitID exists so that host can correlate
// a diagnostic back to the unit it came from without relying on path
// strings alone.
type analyzedUnit struct {
	UnitID uuid.UUID
	Path   string
	Ast    *ast.Pool
	Mxir   *mxir.Pool
	Diags  diag.List
}

// analyzeFile reads, parses and analyzes path, concatenating parser and
// analyzer diagnostics: all parser diagnostics first, then all analyzer
// ones, each in the order its phase reported them. The combined list is not
// re-sorted by source position.
func analyzeFile(path string) (analyzedUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return analyzedUnit{}, err
	}

	astPool, parseDiags := parser.Parse(path, src)
	mxirPool, semaDiags := sema.Analyze(astPool)

	var diags diag.List
	diags = append(diags, parseDiags...)
	diags = append(diags, semaDiags...)

	return analyzedUnit{
		UnitID: uuid.New(),
		Path:   path,
		Ast:    astPool,
		Mxir:   mxirPool,
		Diags:  diags,
	}, nil
}
