package model

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Bounds is the extent of a rectangular grid
type Bounds struct {
	Rows int
	Cols int
}

// Contains returns true if the position lies within the bounds
func (b Bounds) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Rows && pos.Col >= 0 && pos.Col < b.Cols
}
