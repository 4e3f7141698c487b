package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/grid"
	"github.com/mcoot/minesweeper/internal/services/reveal"
	"github.com/mcoot/minesweeper/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages the game state machine: new game, picks, win/loss
type Controller struct {
	config    model.GameConfig
	storage   storage.Storage
	generator grid.GeneratorInterface
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewController creates a new game Controller. The config must already be
// validated; NewGame reports generator errors otherwise.
func NewController(
	config model.GameConfig,
	storage storage.Storage,
	generator grid.GeneratorInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		config:    config,
		storage:   storage,
		generator: generator,
		clock:     clock,
		random:    random,
		logger:    logger,
	}
}

// PickResult describes the outcome of one pick
type PickResult struct {
	Game     *model.Game
	Revealed []model.Position // Cells uncovered by this pick that were hidden before
	State    model.GameState
}

// Config returns the configuration new games are created with
func (c *Controller) Config() model.GameConfig {
	return c.config
}

// NewGame generates a fresh grid and starts a game on it
func (c *Controller) NewGame(ctx context.Context) (*model.Game, error) {
	g, err := c.generator.Generate(ctx, c.config.Size, c.config.MineCount)
	if err != nil {
		return nil, err
	}

	gameID := model.GameID(c.random.String(8, gameIDAlphabet))
	game := model.NewGame(gameID, c.config, g, c.clock.Now())

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(gameID)),
		slog.String("variant", string(c.config.Variant)),
		slog.Int("size", c.config.Size),
		slog.Int("mine_count", c.config.MineCount),
	)

	return game, nil
}

// Pick reveals the cell at pos. Picking a mine loses the game; revealing
// the last safe cell wins it. Re-picking a revealed cell is allowed and
// changes nothing.
func (c *Controller) Pick(ctx context.Context, gameID model.GameID, pos model.Position) (*PickResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State.IsFinished() {
		return nil, model.ErrGameOver
	}
	if !game.Grid.IsValidPosition(pos) {
		return nil, model.ErrInvalidPosition
	}

	cells, err := reveal.Pick(game.Grid, pos, nil)
	if err != nil {
		return nil, err
	}
	game.Picks++

	result := &PickResult{Game: game}

	if len(cells) == 0 {
		exploded := pos
		game.Exploded = &exploded
		game.State = model.GameStateLost
	} else {
		for _, cell := range cells {
			if game.Revealed.Has(cell) {
				continue
			}
			game.Revealed.Put(cell)
			result.Revealed = append(result.Revealed, cell)
		}
		if game.AllSafeRevealed() {
			game.State = model.GameStateWon
		}
	}
	result.State = game.State

	c.logger.Debug("cell picked",
		slog.String("game_id", string(game.ID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.Int("revealed", len(result.Revealed)),
		slog.String("state", string(game.State)),
	)

	if game.State.IsFinished() {
		if err := c.finish(ctx, game); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return result, nil
}

// Quit abandons an in-progress game
func (c *Controller) Quit(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.State.IsFinished() {
		return nil, model.ErrGameOver
	}

	game.State = model.GameStateQuit
	if err := c.finish(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Stats aggregates the finished games of this session
func (c *Controller) Stats(ctx context.Context) (model.SessionStats, error) {
	summaries, err := c.storage.ListSummaries(ctx)
	if err != nil {
		return model.SessionStats{}, err
	}

	var stats model.SessionStats
	for _, s := range summaries {
		stats.Played++
		switch s.Outcome {
		case model.GameStateWon:
			stats.Won++
		case model.GameStateLost:
			stats.Lost++
		case model.GameStateQuit:
			stats.Quit++
		}
	}
	return stats, nil
}

// finish stamps a game that reached a terminal state and adds it to the
// session history
func (c *Controller) finish(ctx context.Context, game *model.Game) error {
	game.EndedAt = c.clock.Now()

	if err := c.storage.SaveSummary(ctx, game.Summary()); err != nil {
		c.logger.Error("failed to save game summary",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("game finished",
		slog.String("game_id", string(game.ID)),
		slog.String("outcome", string(game.State)),
		slog.Int("picks", game.Picks),
		slog.Int("revealed", game.RevealedCount()),
		slog.Duration("duration", game.Duration()),
	)
	return nil
}
