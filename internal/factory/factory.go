package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
	"github.com/mcoot/minesweeper/internal/services/grid"
	"github.com/mcoot/minesweeper/internal/services/render"
	"github.com/mcoot/minesweeper/internal/storage"
	"github.com/mcoot/minesweeper/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// Services
	Generator      *grid.Generator
	GameController *game.Controller
	Renderer       *render.Renderer
}

// Config holds configuration for the application factory
type Config struct {
	// Variant selects the default size, mine count and layout.
	// Empty means classic.
	Variant model.Variant
	// Size overrides the variant's grid size (optional)
	Size *int
	// MineCount overrides the variant's mine count (optional)
	// Zero is a valid override and yields a mine-free grid
	MineCount *int
	// Seed makes mine placement deterministic (optional)
	// If nil, mines are placed with crypto/rand
	Seed *uint64
	// Color enables ANSI styling of rendered grids
	Color bool
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// ResolveGameConfig starts from the variant defaults, applies any explicit
// overrides and validates the result
func ResolveGameConfig(variant model.Variant, size, mineCount *int) (model.GameConfig, error) {
	if variant == "" {
		variant = model.VariantClassic
	}
	if _, err := model.ParseVariant(string(variant)); err != nil {
		return model.GameConfig{}, err
	}

	resolved := model.DefaultGameConfig(variant)
	if size != nil {
		resolved.Size = *size
	}
	if mineCount != nil {
		resolved.MineCount = *mineCount
	}
	if err := resolved.Validate(); err != nil {
		return model.GameConfig{}, err
	}
	return resolved, nil
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	gameCfg, err := ResolveGameConfig(cfg.Variant, cfg.Size, cfg.MineCount)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
		logger.Debug("using seeded random", slog.Uint64("seed", *cfg.Seed))
	}

	return newWithDependencies(gameCfg, memory.New(), clk, rnd, cfg.Color, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(gameCfg model.GameConfig, store storage.Storage, clk clock.Clock, rnd random.Random, color bool, logger *slog.Logger) *App {
	generator := grid.New(rnd, logger)
	gameController := game.NewController(gameCfg, store, generator, clk, rnd, logger)
	renderer := render.New(render.LayoutFor(gameCfg.Variant), color)

	return &App{
		Storage:        store,
		Generator:      generator,
		GameController: gameController,
		Renderer:       renderer,
	}
}
