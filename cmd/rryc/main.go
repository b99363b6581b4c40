package main

import (
	"os"

	"github.com/rry-lang/rryc/cmd/rryc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
