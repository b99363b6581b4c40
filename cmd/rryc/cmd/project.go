package cmd

import (
	"fmt"
	"os"

	"github.com/rry-lang/rryc/internal/compiler"
	"github.com/rry-lang/rryc/internal/source"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project <rryc.yaml>",
	Short: "Compile every source in a project manifest concurrently",
	Long: `Read a project manifest (a YAML file whose "sources" key lists the
source file paths) and compile every
listed source through one shared Store, using internal/query's
Snapshot.Parallel to run independent sources concurrently.`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	manifest, err := LoadManifest(args[0])
	if err != nil {
		return err
	}

	srcs := make([]*source.Source, len(manifest.Sources))
	for i, path := range manifest.Sources {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		srcs[i] = source.New(string(data), path)
	}

	c := compiler.New()
	results := c.CompileAll(srcs)

	failed := false
	for _, r := range results {
		printDiagnostics(r.Diagnostics)
		if hasErrors(r.Diagnostics) {
			failed = true
		}
	}
	fmt.Printf("compiled %d source(s)\n", len(results))
	if failed {
		return fmt.Errorf("one or more sources failed to check")
	}
	return nil
}
