package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Generate a grid and print it fully revealed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gameCfg := app.GameController.Config()
			g, err := app.Generator.Generate(cmd.Context(), gameCfg.Size, gameCfg.MineCount)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), app.Renderer.Render(g, nil))

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage(fmt.Sprintf("%dx%d grid with %d mines", g.Size, g.Size, g.MineCount))
			return nil
		},
	}
}
