package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestRunLexPrintsTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rry")
	if err := os.WriteFile(path, []byte("class A end"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	output := captureStdout(t, func() {
		if err := runLex(lexCmd, []string{path}); err != nil {
			t.Fatalf("runLex failed: %v", err)
		}
	})

	if !strings.Contains(output, "class") {
		t.Errorf("expected a class keyword token in output, got: %s", output)
	}
}

func TestRunLexShowSpan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rry")
	if err := os.WriteFile(path, []byte("class A end"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	oldShowSpan := showSpan
	showSpan = true
	defer func() { showSpan = oldShowSpan }()

	output := captureStdout(t, func() {
		if err := runLex(lexCmd, []string{path}); err != nil {
			t.Fatalf("runLex failed: %v", err)
		}
	})

	if !strings.Contains(output, "a.rry") {
		t.Errorf("expected --show-span output to name the source, got: %s", output)
	}
}
