package model

// Cell holds either the mine marker or the number of adjacent mines
type Cell int8

// Mine marks a cell that holds a mine
const Mine Cell = -1

// IsMine returns true if the cell holds a mine
func (c Cell) IsMine() bool {
	return c == Mine
}

// Count returns the adjacent-mine count, or 0 for a mine
func (c Cell) Count() int {
	if c.IsMine() {
		return 0
	}
	return int(c)
}

// Grid is a square minefield. Once generated it is never modified;
// visibility is tracked separately by the game.
type Grid struct {
	Size      int      // Grid dimension (e.g., 15 for 15x15)
	MineCount int      // Number of mines placed
	Cells     [][]Cell // Row-major: Cells[row][col]
}

// NewGrid creates a mine-free grid of the given size
func NewGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{
		Size:  size,
		Cells: cells,
	}
}

// Bounds returns the extent of the grid
func (g *Grid) Bounds() Bounds {
	return Bounds{Rows: g.Size, Cols: g.Size}
}

// Get returns the cell at the given position, or 0 if out of bounds
func (g *Grid) Get(pos Position) Cell {
	if !g.IsValidPosition(pos) {
		return 0
	}
	return g.Cells[pos.Row][pos.Col]
}

// Set stores a cell value. Only the generator calls this.
func (g *Grid) Set(pos Position, cell Cell) {
	if g.IsValidPosition(pos) {
		g.Cells[pos.Row][pos.Col] = cell
	}
}

// IsMine returns true if the cell at the given position holds a mine
func (g *Grid) IsMine(pos Position) bool {
	return g.IsValidPosition(pos) && g.Cells[pos.Row][pos.Col].IsMine()
}

// IsValidPosition returns true if the position is within bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return g.Bounds().Contains(pos)
}

// CellCount returns the total number of cells
func (g *Grid) CellCount() int {
	return g.Size * g.Size
}

// SafeCellCount returns the number of cells without mines
func (g *Grid) SafeCellCount() int {
	return g.CellCount() - g.MineCount
}

// Mines returns the positions of all mines in row-major order
func (g *Grid) Mines() []Position {
	var mines []Position
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col].IsMine() {
				mines = append(mines, Position{Row: row, Col: col})
			}
		}
	}
	return mines
}
