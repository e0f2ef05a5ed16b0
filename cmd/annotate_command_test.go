package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAnnotateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "therapy_advice.json")
	input := `[
  {"advice": "breathe before answering", "contexts": ["conflict"]},
  {"advice": "just listen"}
]`
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	// Capture stdout so the success line can be checked.
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs([]string{"annotate", "--file", path})
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout
	buf := new(bytes.Buffer)
	buf.ReadFrom(r)
	output := buf.String()

	if execErr != nil {
		t.Fatalf("annotate command failed: %v", execErr)
	}
	if !strings.HasPrefix(output, "✅") {
		t.Errorf("expected checkmark-prefixed success line, got %q", output)
	}
	if strings.Count(output, "\n") != 1 {
		t.Errorf("expected exactly one output line, got %q", output)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	annotated := string(data)
	if !strings.Contains(annotated, `"category": "conflict_resolution"`) {
		t.Errorf("first record not annotated: %s", annotated)
	}
	if !strings.Contains(annotated, `"category": "general"`) {
		t.Errorf("second record not annotated: %s", annotated)
	}
}
