package ast

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Printer renders a Pool as indented, human-readable text, one node per
// line, children indented under their parent, adapted here to walk a flat
// indexed pool instead of a pointer tree. Used by the CLI's "compile"
// command (internal/maincmd) to show what the bundled oracle produced.
type Printer struct {
	Output io.Writer
}

// Print writes the tree rooted at ref to p.Output.
func (p Printer) Print(pool *Pool, ref NodeRef) error {
	return p.print(pool, ref, 0)
}

func (p Printer) print(pool *Pool, ref NodeRef, depth int) error {
	n := pool.Node(ref)
	indent := strings.Repeat("  ", depth)

	label := n.Kind
	if n.Text != "" {
		label = fmt.Sprintf("%s %q", n.Kind, n.Text)
	}
	if _, err := fmt.Fprintf(p.Output, "%s%s [%s]\n", indent, label, n.Range); err != nil {
		return err
	}

	// print named fields before positional children, sorted for determinism,
	// so the same pool always prints identically regardless of map order.
	names := make([]string, 0, len(n.Fields))
	for name := range n.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(p.Output, "%s  .%s:\n", indent, name); err != nil {
			return err
		}
		if err := p.print(pool, n.Fields[name], depth+2); err != nil {
			return err
		}
	}

	for _, child := range n.Children {
		if err := p.print(pool, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
