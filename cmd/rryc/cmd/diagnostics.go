package cmd

import (
	"fmt"
	"os"

	"github.com/rry-lang/rryc/internal/diag"
)

// printDiagnostics renders acc's messages to stderr. spec.md §6 leaves
// textual formatting entirely to the driver; this is rryc's own
// one-line-per-label rendering, not a mandated format.
func printDiagnostics(acc *diag.Accumulator) {
	for _, m := range acc.Messages() {
		fmt.Fprintf(os.Stderr, "%s[%s]: %s\n", m.Level, m.Code, m.Message)
		for _, l := range m.Labels {
			fmt.Fprintf(os.Stderr, "  at %s\n", l.At)
			if l.Message != "" {
				fmt.Fprintf(os.Stderr, "    %s\n", l.Message)
			}
		}
	}
}

func hasErrors(acc *diag.Accumulator) bool {
	for _, m := range acc.Messages() {
		if m.Level == diag.Error {
			return true
		}
	}
	return false
}
