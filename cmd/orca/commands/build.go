package commands

import (
	"github.com/orca-repos/orca-sub012/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd(use, short string, kind app.BuildKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [projects...]",
		Short: short,
		Long:  short + ". Without arguments every project of the workspace is used, in dependency order.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			allConfigs, _ := cmd.Flags().GetBool("all-configs")
			withDeps, _ := cmd.Flags().GetBool("with-deps")
			return c.app.Build(cmd.Context(), kind, args, app.BuildOptions{
				AllConfigs: allConfigs,
				WithDeps:   withDeps,
			})
		},
	}
	cmd.Flags().BoolP("all-configs", "a", false, "Use every build configuration instead of the active one")
	cmd.Flags().BoolP("with-deps", "d", false, "Include the projects the named projects depend on")
	return cmd
}

func (c *CLI) newDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy [projects...]",
		Short: "Deploy projects, building them first unless configured otherwise",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), app.KindDeploy, args, app.BuildOptions{})
		},
	}
}
