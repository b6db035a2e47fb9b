// Package diag implements the diagnostic wire format: {path, range, kind}.
// It plays the same role other language tooling gives go/scanner.ErrorList —
// a sortable, appendable list of positioned errors that can be surfaced to a
// host as a single error value. Kind is a closed, typed enumeration instead
// of go/scanner's free-form string message, because every consumer of this
// package (the CLI, the driver, and eventually a language-server shell)
// needs to switch on the diagnostic's kind rather than pattern-match its
// rendered text.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/austincummings/mx/lang/token"
)

// Kind enumerates every diagnostic the analyzer, parser and scanner can
// report. Severity is uniformly "error" at this stage.
type Kind uint8

const (
	MissingEntrypointFunction Kind = iota
	MissingFunctionName
	DuplicateDefinition
	DuplicateParamName
	InvalidFunctionCall
	IncorrectArgumentCount
	SymbolNotFound
	SyntaxError
	SyntaxErrorExpectedToken
	InvalidOperands
)

var kindNames = [...]string{
	MissingEntrypointFunction: "missing entrypoint function",
	MissingFunctionName:       "missing function name",
	DuplicateDefinition:       "duplicate definition",
	DuplicateParamName:        "duplicate parameter name",
	InvalidFunctionCall:       "invalid function call",
	IncorrectArgumentCount:    "incorrect argument count",
	SymbolNotFound:            "symbol not found",
	SyntaxError:               "syntax error",
	SyntaxErrorExpectedToken:  "syntax error, expected token",
	InvalidOperands:           "invalid operands",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", k)
	}
	return kindNames[k]
}

// Diagnostic is one entry of the wire format. Detail carries
// the associated text for the diagnostic (the symbol name for
// SymbolNotFound, the expected lexeme for SyntaxErrorExpectedToken, the
// scanner's message for SyntaxError, a short explanation for the other
// kinds); it may be empty.
type Diagnostic struct {
	Path   string
	Range  token.Range
	Kind   Kind
	Detail string
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s: %s", d.Path, d.Range, d.Kind)
	}
	return fmt.Sprintf("%s: %s: %s: %s", d.Path, d.Range, d.Kind, d.Detail)
}

// List is an ordered, appendable collection of diagnostics. Diagnostics are
// append-only and source-deterministic: List never reorders entries on
// Add, only on an explicit Sort call, mirroring
// go/scanner.ErrorList's RemoveMultiples/Sort split.
type List []Diagnostic

// Add appends d to the list.
func (l *List) Add(d Diagnostic) { *l = append(*l, d) }

// Len, Less and Swap implement sort.Interface, ordering first by path then
// by source range.
func (l List) Len() int      { return len(l) }
func (l List) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l List) Less(i, j int) bool {
	if l[i].Path != l[j].Path {
		return l[i].Path < l[j].Path
	}
	return l[i].Range.Less(l[j].Range)
}

// Sort orders the list in place by path and source range.
func (l List) Sort() { sort.Stable(l) }

// Error implements the error interface, rendering the first diagnostic
// followed by a count of the remaining ones ("(and N more)"). It is only
// meaningful to call when Err would return non-nil.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (and %d more)", l[0], len(l)-1)
	return sb.String()
}

// Err returns nil if the list is empty, or the list itself as an error
// otherwise. Callers use this the same way they use go/scanner.ErrorList.Err:
// a single nilable error value to thread through return signatures.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
