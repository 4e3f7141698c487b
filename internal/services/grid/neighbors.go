package grid

import "github.com/mcoot/minesweeper/internal/model"

// neighborOffsets lists the eight surrounding cells in scan order:
// left, right, up, down, up-left, up-right, down-left, down-right.
var neighborOffsets = [8]model.Position{
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 1},
}

// Neighbors returns the in-bounds cells adjacent to pos, orthogonally or
// diagonally. The order is fixed so flood fills are reproducible.
func Neighbors(bounds model.Bounds, pos model.Position) []model.Position {
	result := make([]model.Position, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		candidate := model.Position{Row: pos.Row + off.Row, Col: pos.Col + off.Col}
		if bounds.Contains(candidate) {
			result = append(result, candidate)
		}
	}
	return result
}
