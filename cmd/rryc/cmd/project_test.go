package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProjectFixture(t *testing.T, dir string) string {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "a.rry"), []byte("class A end"), 0o644); err != nil {
		t.Fatalf("writing a.rry: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.rry"), []byte("class B end"), 0o644); err != nil {
		t.Fatalf("writing b.rry: %v", err)
	}
	manifestPath := filepath.Join(dir, "rryc.yaml")
	manifest := "sources:\n  - " + filepath.Join(dir, "a.rry") + "\n  - " + filepath.Join(dir, "b.rry") + "\n"
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return manifestPath
}

func TestRunProjectCompilesEverySource(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeProjectFixture(t, dir)

	var runErr error
	output := captureStdout(t, func() {
		runErr = runProject(projectCmd, []string{manifestPath})
	})

	if runErr != nil {
		t.Fatalf("runProject failed: %v", runErr)
	}
	if !strings.Contains(output, "compiled 2 source(s)") {
		t.Errorf("expected a 2-source summary, got: %s", output)
	}
}

func TestRunProjectMissingManifest(t *testing.T) {
	if err := runProject(projectCmd, []string{filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("expected an error for a missing manifest")
	}
}
