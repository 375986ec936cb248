package commands

import (
	"github.com/orca-repos/orca-sub012/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <project>",
		Short: "Build, deploy and run a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			runConfig, _ := cmd.Flags().GetString("run-config")
			return c.app.Run(cmd.Context(), args[0], app.RunOptions{RunConfig: runConfig})
		},
	}
	cmd.Flags().StringP("run-config", "r", "", "Run configuration to use instead of the active one")
	return cmd
}
