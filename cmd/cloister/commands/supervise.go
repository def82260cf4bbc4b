package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/engine/supervisor"
)

func (c *CLI) newSuperviseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supervise <command> [args...]",
		Short: "Run a command and relaunch it after every exit",
		Long: "Run a command under the restart-on-exit supervisor: every exit,\n" +
			"clean or crashed, is followed by a fixed delay and a relaunch.\n" +
			"The loop only ends with the process receiving a termination signal.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delay, _ := cmd.Flags().GetDuration("delay")
			skipChrome, _ := cmd.Flags().GetBool("no-session-setup")

			if !skipChrome {
				settings, err := c.components.Loader.Load()
				if err != nil {
					return err
				}
				if err := supervisor.SuppressChrome(cmd.Context(), c.components.System, settings); err != nil {
					// Session chrome is cosmetic; the game still runs without it.
					c.components.Logger.Warn("session setup incomplete: " + err.Error())
				}
			}

			starter := supervisor.StarterFunc(func(ctx context.Context) error {
				_, err := c.components.System.Run(ctx, args[0], args[1:]...)
				return err
			})
			loop := supervisor.NewLoop(domain.RestartPolicy{Delay: delay}, starter, c.components.Logger)
			return loop.Run(cmd.Context())
		},
	}
	cmd.Flags().Duration("delay", domain.DefaultRestartDelay, "Pause between an exit and the relaunch")
	cmd.Flags().Bool("no-session-setup", false, "Skip the one-time session chrome suppression")
	return cmd
}
