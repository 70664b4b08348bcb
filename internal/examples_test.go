package internal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/velo/testutils"
)

// TestExamples runs each program in testdata and compares its output to the
// matching .out file.
func TestExamples(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.velo"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no example programs")
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".velo")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			want, err := os.ReadFile(strings.TrimSuffix(file, ".velo") + ".out")
			if err != nil {
				t.Fatal(err)
			}
			c := testutils.SourceTestCase{Source: string(src), Pass: testutils.PassOutput(string(want))}
			c.TestFunc(name)(t)
		})
	}
}
