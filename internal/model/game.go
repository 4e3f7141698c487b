package model

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

// GameID uniquely identifies a game within a session
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlaying GameState = "playing" // Waiting for the next pick
	GameStateWon     GameState = "won"     // Every safe cell revealed
	GameStateLost    GameState = "lost"    // A mine was picked
	GameStateQuit    GameState = "quit"    // Player left before finishing
)

// IsFinished returns true for terminal states
func (s GameState) IsFinished() bool {
	return s != GameStatePlaying
}

// Game represents a single round of minesweeper
type Game struct {
	ID     GameID
	Config GameConfig
	Grid   *Grid
	State  GameState

	// Revealed only grows while the game is in progress
	Revealed mapset.Set[Position]

	Picks    int
	Exploded *Position // The mine that ended the game, nil otherwise

	StartedAt time.Time
	EndedAt   time.Time
}

// NewGame creates a game in the playing state for an already generated grid
func NewGame(id GameID, cfg GameConfig, grid *Grid, now time.Time) *Game {
	return &Game{
		ID:        id,
		Config:    cfg,
		Grid:      grid,
		State:     GameStatePlaying,
		Revealed:  mapset.New[Position](),
		StartedAt: now,
	}
}

// RevealedCount returns the number of revealed cells
func (g *Game) RevealedCount() int {
	return g.Revealed.Size()
}

// IsRevealed returns true if the player has uncovered the position
func (g *Game) IsRevealed(pos Position) bool {
	return g.Revealed.Has(pos)
}

// AllSafeRevealed returns true when every non-mine cell is revealed
func (g *Game) AllSafeRevealed() bool {
	return g.RevealedCount() == g.Grid.SafeCellCount()
}

// Duration returns how long the game ran, or 0 while still playing
func (g *Game) Duration() time.Duration {
	if g.EndedAt.IsZero() {
		return 0
	}
	return g.EndedAt.Sub(g.StartedAt)
}

// Summary builds the history record for a finished game
func (g *Game) Summary() GameSummary {
	return GameSummary{
		ID:        g.ID,
		Variant:   g.Config.Variant,
		Size:      g.Grid.Size,
		MineCount: g.Grid.MineCount,
		Outcome:   g.State,
		Picks:     g.Picks,
		Revealed:  g.RevealedCount(),
		Duration:  g.Duration(),
		EndedAt:   g.EndedAt,
	}
}

// GameSummary is a lightweight record of a finished game
type GameSummary struct {
	ID        GameID
	Variant   Variant
	Size      int
	MineCount int
	Outcome   GameState
	Picks     int
	Revealed  int
	Duration  time.Duration
	EndedAt   time.Time
}

// SessionStats aggregates the games played in one session
type SessionStats struct {
	Played int
	Won    int
	Lost   int
	Quit   int
}
