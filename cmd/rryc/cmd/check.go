package cmd

import (
	"fmt"

	"github.com/rry-lang/rryc/internal/compiler"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run the full pipeline over a rry file and report all diagnostics",
	Long: `Run parse, resolve, inheritance analysis, subtyping, and the
annotate/HIR stub over a rry source file, printing every diagnostic the
pipeline produces (EP**, ER**, ET**, and the EH00 not-implemented
notice).

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	c := compiler.New()
	res := c.Compile(src)
	printDiagnostics(res.Diagnostics)

	fmt.Printf("%d diagnostic(s)\n", res.Diagnostics.Len())
	if hasErrors(res.Diagnostics) {
		return fmt.Errorf("check failed")
	}
	return nil
}
