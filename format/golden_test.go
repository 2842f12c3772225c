package format_test

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"firrtl/format"
	"firrtl/parser"
)

// TestGoldenCircuits parses each testdata/*.txtar archive's input.fir
// section and checks that format.Circuit reproduces the archive's
// canonical.fir section, bundling a circuit and its expected
// canonical re-print into one golden file.
func TestGoldenCircuits(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no golden archives found")
	}
	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("parsing archive: %v", err)
			}
			input, ok := fileByName(archive, "input.fir")
			if !ok {
				t.Fatal("archive has no input.fir section")
			}
			want, ok := fileByName(archive, "canonical.fir")
			if !ok {
				t.Fatal("archive has no canonical.fir section")
			}
			circuit, err := parser.ParseCircuit(string(input))
			if err != nil {
				t.Fatalf("parsing input.fir: %v", err)
			}
			if got := format.Circuit(circuit); got != string(want) {
				t.Errorf("canonical mismatch:\ngot:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func fileByName(a *txtar.Archive, name string) ([]byte, bool) {
	for _, f := range a.Files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}
