package reveal

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/grid"
)

// Pick returns the cells uncovered by choosing start.
//
// A mine yields an empty result, which the caller treats as a loss. A
// numbered cell yields only itself. A zero cell yields the connected region
// of zero cells plus their numbered border. The fill uses an explicit stack
// so region size is not limited by recursion depth.
//
// visited is shared across the fill and marks every coordinate already
// processed; pass nil to start from an empty set. The fill never steps onto a
// mine, even if the stored counts are inconsistent with the mine layout.
func Pick(g *model.Grid, start model.Position, visited *mapset.Set[model.Position]) ([]model.Position, error) {
	if !g.IsValidPosition(start) {
		return nil, model.ErrInvalidPosition
	}
	if visited == nil {
		fresh := mapset.New[model.Position]()
		visited = &fresh
	}

	visited.Put(start)
	if g.IsMine(start) {
		return nil, nil
	}

	bounds := g.Bounds()
	var revealed []model.Position
	stack := []model.Position{start}

	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		revealed = append(revealed, pos)

		if g.Get(pos).Count() > 0 {
			continue
		}

		neighbors := grid.Neighbors(bounds, pos)
		// Push in reverse so neighbours pop in scan order
		for i := len(neighbors) - 1; i >= 0; i-- {
			n := neighbors[i]
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			if g.IsMine(n) {
				continue
			}
			stack = append(stack, n)
		}
	}

	return revealed, nil
}
