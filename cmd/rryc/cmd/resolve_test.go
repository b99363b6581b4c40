package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunResolveCountsClasses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rry")
	if err := os.WriteFile(path, []byte("class A end\nclass B is A end"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	output := captureStdout(t, func() {
		if err := runResolve(resolveCmd, []string{path}); err != nil {
			t.Fatalf("runResolve failed: %v", err)
		}
	})

	if !strings.Contains(output, "2 resolved class(es)") {
		t.Errorf("expected 2 resolved classes in output, got: %s", output)
	}
}

func TestRunResolveReportsUnresolvedName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rry")
	if err := os.WriteFile(path, []byte("class A is Missing end"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	err := func() (runErr error) {
		captureStdout(t, func() {
			runErr = runResolve(resolveCmd, []string{path})
		})
		return
	}()

	if err == nil {
		t.Error("expected an error for an unresolved supertype name")
	}
}
