// Package commands implements the CLI commands for the cloister provisioner.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/cloister/internal/app"
	"go.trai.ch/cloister/internal/build"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for cloister.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	cli := &CLI{components: c}

	rootCmd := &cobra.Command{
		Use:   "cloister <game-binary> [-- game-args...]",
		Short: "Automated kiosk setup for arcade machines",
		Long: "Provision this machine to boot straight into a game: classify the\n" +
			"binary, set up the compatibility layer if it needs one, negotiate the\n" +
			"display resolution, and install the supervised session that relaunches\n" +
			"the game after every exit.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return cli.provision(cmd, args)
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().Int("width", 0, "Force the screen width (requires --height)")
	rootCmd.Flags().Int("height", 0, "Force the screen height (requires --width)")
	rootCmd.Flags().Bool("offline", false, "Skip every step that needs network access")

	cli.rootCmd = rootCmd

	rootCmd.AddCommand(cli.newSuperviseCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
}

func (c *CLI) provision(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	if (width > 0) != (height > 0) {
		return zerr.New("--width and --height must be given together")
	}
	offline, _ := cmd.Flags().GetBool("offline")

	return c.components.App.Provision(cmd.Context(), app.ProvisionOptions{
		BinaryPath: args[0],
		Width:      width,
		Height:     height,
		Offline:    offline,
		Args:       args[1:],
	})
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
