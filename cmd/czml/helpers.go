package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput loads the manifest argument; "-" reads the command's stdin.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func issueNoun(n int) string {
	if n == 1 {
		return "issue"
	}
	return "issues"
}
