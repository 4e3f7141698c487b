package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper/internal/factory"
)

var (
	cfg    *Config
	app    *factory.App
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Play minesweeper in the terminal",
		Long: `minesweeper is a terminal minesweeper game.

Pick cells by typing a row and column number separated by a space. Reveal
every cell without a mine to win. Type "cheat" to see the whole grid, or
enter a blank line to quit.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.SeedSet = cmd.Flags().Changed("seed")
			cfg.SizeSet = cmd.Flags().Changed("size")
			cfg.MinesSet = cmd.Flags().Changed("mines")

			logger = cfg.Logger(cmd.ErrOrStderr())
			a, err := factory.New(cfg.FactoryConfig(cmd.OutOrStdout(), logger))
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		RunE:         runPlay,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Variant, "variant", cfg.Variant, "Game variant: classic, compact (env: MINESWEEPER_VARIANT)")
	rootCmd.PersistentFlags().IntVar(&cfg.Size, "size", cfg.Size, "Grid size (default: variant size)")
	rootCmd.PersistentFlags().IntVar(&cfg.Mines, "mines", cfg.Mines, "Number of mines (default: variant mine count)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for deterministic mine placement")
	rootCmd.PersistentFlags().BoolVar(&cfg.Cheat, "cheat", cfg.Cheat, "Show the whole grid when each game starts")
	rootCmd.PersistentFlags().StringVar(&cfg.Color, "color", cfg.Color, "Colored output: auto, always, never (env: MINESWEEPER_COLOR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Summary format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newShowCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
