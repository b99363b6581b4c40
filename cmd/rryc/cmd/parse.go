package cmd

import (
	"fmt"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a rry file and report syntax diagnostics",
	Long: `Parse a rry source file and print any EP** syntax diagnostics.

If no file is given, reads from stdin. Use "rryc dump --stage ast" to
see the parsed tree itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	acc := diag.NewAccumulator()
	decls := parser.Parse(src, acc)
	printDiagnostics(acc)

	fmt.Printf("%d top-level declaration(s), %d diagnostic(s)\n", len(decls.Items), acc.Len())
	if hasErrors(acc) {
		return fmt.Errorf("parsing failed with %d error(s)", acc.Len())
	}
	return nil
}
