package storage

import (
	"context"

	"github.com/mcoot/minesweeper/internal/model"
)

// Storage holds the games of one session. Nothing outlives the process.
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)

	// History operations
	SaveSummary(ctx context.Context, summary model.GameSummary) error
	ListSummaries(ctx context.Context) ([]model.GameSummary, error)
}
