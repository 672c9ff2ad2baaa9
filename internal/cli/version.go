package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/modularizer/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard("modularizer "+version.GetVersion(),
				renderKeyValueLines([]kvPair{
					{"Commit", version.GetCommit()},
					{"Built", version.GetDate()},
				})))
			return nil
		},
	}
}
