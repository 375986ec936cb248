package commands

import (
	"github.com/orca-repos/orca-sub012/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the code generators of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Generate(cmd.Context(), app.GenerateOptions{Watch: watch})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Regenerate when sources change")
	return cmd
}
