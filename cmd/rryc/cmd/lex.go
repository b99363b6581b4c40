package cmd

import (
	"fmt"

	"github.com/rry-lang/rryc/internal/lexer"
	"github.com/spf13/cobra"
)

var showSpan bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a rry file and print the resulting tokens",
	Long: `Tokenize (lex) a rry source file and print the resulting tokens.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showSpan, "show-span", false, "show each token's source span")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	for _, tok := range lexer.Lex(src) {
		if showSpan {
			fmt.Printf("%-12s %-20q %s\n", tok.Type, tok.Text, tok.Span)
		} else {
			fmt.Printf("%-12s %q\n", tok.Type, tok.Text)
		}
		if tok.Type == lexer.EOF {
			break
		}
	}
	return nil
}
