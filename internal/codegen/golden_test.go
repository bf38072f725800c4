package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/alexhholmes/bitfieldgen/internal/analyzer"
)

// TestGenerateFileGolden pins the complete output for the canonical example
// so that incidental emission changes show up as a reviewable diff.
func TestGenerateFileGolden(t *testing.T) {
	layout, err := analyzer.Analyze(statusRegContainer(), nil)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	got, err := GenerateFile("example", []*analyzer.Layout{layout}, Options{})
	if err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}

	path := filepath.Join("testdata", "statusreg.golden")
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}

	if string(got) != string(want) {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(want)),
			B:        difflib.SplitLines(string(got)),
			FromFile: path,
			ToFile:   "generated",
			Context:  3,
		})
		t.Errorf("generated output drifted from %s:\n%s", path, diff)
	}
}
