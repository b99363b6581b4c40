package cmd

import (
	"fmt"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/names"
	"github.com/rry-lang/rryc/internal/parser"
	"github.com/rry-lang/rryc/internal/resolve"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Resolve a rry file's names and report ER** diagnostics",
	Long: `Run the two-pass name resolver (NamesWithin, then Resolve) over a
rry source file and print any ER** semantic diagnostics: duplicate
definitions and unresolved names.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	acc := diag.NewAccumulator()
	decls := parser.Parse(src, acc)
	within := names.AllNamesWithin(src, decls, acc)
	res := resolve.Resolve(src, decls, within, acc)
	printDiagnostics(acc)

	fmt.Printf("%d resolved class(es), %d resolved value(s), %d diagnostic(s)\n",
		len(res.Tree.Classes), len(res.Tree.Values), acc.Len())
	if hasErrors(acc) {
		return fmt.Errorf("resolution failed with %d error(s)", acc.Len())
	}
	return nil
}
