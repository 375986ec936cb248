// Package commands implements the CLI commands for orca.
package commands

import (
	"context"
	"io"

	"github.com/orca-repos/orca-sub012/internal/app"
	"github.com/orca-repos/orca-sub012/internal/build"
	"github.com/spf13/cobra"
)

// Application is the part of app.App the commands drive.
type Application interface {
	Configure(opts app.GlobalOptions)
	Build(ctx context.Context, kind app.BuildKind, names []string, opts app.BuildOptions) error
	Run(ctx context.Context, project string, opts app.RunOptions) error
	Generate(ctx context.Context, opts app.GenerateOptions) error
}

// CLI represents the command line interface for orca.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "orca",
		Short:         "Build, deploy and run the projects of a workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write log records as JSON")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Stop running applications without asking")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonOut, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}
		c.app.Configure(app.GlobalOptions{JSON: jsonOut, AssumeYes: yes})
		return nil
	}

	rootCmd.AddCommand(c.newBuildCmd("build", "Build projects", app.KindBuild))
	rootCmd.AddCommand(c.newBuildCmd("clean", "Clean projects", app.KindClean))
	rootCmd.AddCommand(c.newBuildCmd("rebuild", "Clean and build projects", app.KindRebuild))
	rootCmd.AddCommand(c.newDeployCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command output. Used for testing.
func (c *CLI) SetOutput(out io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(out)
}
