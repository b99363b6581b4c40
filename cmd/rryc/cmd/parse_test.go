package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunParseWellFormedSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rry")
	if err := os.WriteFile(path, []byte("class A end"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	output := captureStdout(t, func() {
		if err := runParse(parseCmd, []string{path}); err != nil {
			t.Fatalf("runParse failed on well-formed source: %v", err)
		}
	})

	if !strings.Contains(output, "1 top-level declaration") {
		t.Errorf("expected declaration count in output, got: %s", output)
	}
}

func TestRunParseStdinFallback(t *testing.T) {
	oldStdin := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdin = r
	go func() {
		w.WriteString("class A end")
		w.Close()
	}()
	defer func() { os.Stdin = oldStdin }()

	output := captureStdout(t, func() {
		if err := runParse(parseCmd, nil); err != nil {
			t.Fatalf("runParse from stdin failed: %v", err)
		}
	})

	if !strings.Contains(output, "1 top-level declaration") {
		t.Errorf("expected declaration count from stdin input, got: %s", output)
	}
}
