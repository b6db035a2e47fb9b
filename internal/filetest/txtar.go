package filetest

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// LoadArchive parses the txtar archive at path. Each archive bundles a
// whole test scenario (source plus expected output) in one file instead of
// one golden file per label, which suits multi-file or multi-section
// fixtures (e.g. an MX source alongside its
// expected diagnostic listing and its expected stdout) better than one
// golden file per label.
func LoadArchive(t *testing.T, path string) *txtar.Archive {
	t.Helper()
	a, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parsing txtar archive %s: %v", path, err)
	}
	return a
}

// ArchiveFile returns the contents of the named file within a, failing the
// test if it isn't present. Comparisons trim a single trailing newline
// first, since archive files conventionally end with one and most
// generated output does too, but an exact diff shouldn't be sensitive to
// that one character.
func ArchiveFile(t *testing.T, a *txtar.Archive, name string) string {
	t.Helper()
	for _, f := range a.Files {
		if f.Name == name {
			return trimOneTrailingNewline(string(f.Data))
		}
	}
	t.Fatalf("txtar archive has no file %q", name)
	return ""
}

func trimOneTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}

// Archives returns every *.txtar file directly under dir, sorted by name.
func Archives(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	return matches
}
