package main

import (
	"fmt"

	"github.com/spf13/cobra"

	goczml "github.com/reoring/goczml"
	"github.com/reoring/goczml/manifest"
)

func newRenderCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Print the canonical CZML fragments of a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			m, err := manifest.Parse(data)
			if err != nil {
				if iss, ok := goczml.AsIssues(err); ok {
					fmt.Fprintln(cmd.ErrOrStderr(), renderIssueTable(iss))
					return fmt.Errorf("invalid manifest: %d %s", len(iss), issueNoun(len(iss)))
				}
				return err
			}
			for _, e := range m.Entries {
				if name != "" && e.Name != name {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), e.Value.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "render only the entry with this name")

	return cmd
}
