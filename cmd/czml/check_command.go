package main

import (
	"fmt"

	"github.com/spf13/cobra"

	goczml "github.com/reoring/goczml"
	"github.com/reoring/goczml/manifest"
)

func newCheckCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Validate every value in a manifest (JSON or YAML, - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			m, err := manifest.Parse(data)
			if err == nil {
				if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "%d values OK\n", len(m.Entries))
				}
				return nil
			}
			iss, ok := goczml.AsIssues(err)
			if !ok {
				return err
			}
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), renderIssueTable(iss))
			}
			return fmt.Errorf("invalid manifest: %d %s", len(iss), issueNoun(len(iss)))
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the issue table and only set the exit code")

	return cmd
}
