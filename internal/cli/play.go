package cli

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively (the default command)",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	loop := NewLoop(app.GameController, app.Renderer, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Cheat, logger)

	if err := loop.Run(cmd.Context()); err != nil {
		return err
	}

	stats, err := app.GameController.Stats(cmd.Context())
	if err != nil {
		return err
	}

	out := NewOutput(cmd.OutOrStdout(), cfg.Output)
	out.Print(NewSessionSummary(stats))
	return nil
}
