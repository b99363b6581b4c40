package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rry-lang/rryc/internal/source"
)

// readSource reads args[0] as a file path, or stdin if no path was
// given, and wraps it in a named source.Source — the same
// file-or-stdin convention as the teacher's runParse.
func readSource(args []string) (*source.Source, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("error reading file: %w", err)
		}
		return source.New(string(data), args[0]), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return source.New(string(data), "<stdin>"), nil
}
