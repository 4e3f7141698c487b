package grid

import (
	"context"
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
)

// Generator builds minefields
type Generator struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new Generator drawing mine positions from rnd
func New(rnd random.Random, logger *slog.Logger) *Generator {
	return &Generator{
		random: rnd,
		logger: logger,
	}
}

// Generate creates a size x size grid with exactly mineCount mines and the
// adjacent-mine count stored in every other cell. Configurations that could
// never finish placing mines are rejected before any drawing happens.
func (g *Generator) Generate(ctx context.Context, size, mineCount int) (*model.Grid, error) {
	if err := model.ValidateGridParams(size, mineCount); err != nil {
		return nil, err
	}

	grid := model.NewGrid(size)
	grid.MineCount = mineCount

	draws := 0
	placed := 0
	for placed < mineCount {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pos := model.Position{
			Row: g.random.Intn(size),
			Col: g.random.Intn(size),
		}
		draws++
		if grid.IsMine(pos) {
			continue
		}
		grid.Set(pos, model.Mine)
		placed++
	}

	fillCounts(grid)

	g.logger.Debug("grid generated",
		slog.Int("size", size),
		slog.Int("mine_count", mineCount),
		slog.Int("draws", draws),
	)

	return grid, nil
}

// fillCounts stores the number of neighbouring mines in every safe cell
func fillCounts(grid *model.Grid) {
	bounds := grid.Bounds()
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			if grid.IsMine(pos) {
				continue
			}
			count := 0
			for _, n := range Neighbors(bounds, pos) {
				if grid.IsMine(n) {
					count++
				}
			}
			grid.Set(pos, model.Cell(count))
		}
	}
}

// Interface for dependency injection
type GeneratorInterface interface {
	Generate(ctx context.Context, size, mineCount int) (*model.Grid, error)
}

var _ GeneratorInterface = (*Generator)(nil)
