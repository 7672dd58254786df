package grid

import (
	"fmt"
	"math"
)

// Cell is one square of the static level
type Cell uint8

const (
	Empty Cell = iota
	Wall
	PlayerStart
	EnemySpawn
	Exit
)

// Grid is the immutable obstacle map. All queries are read-only and safe to
// call from any system within a tick.
type Grid struct {
	cells    [][]Cell
	cellSize float64
	rows     int
	cols     int
}

// New builds a grid from a rectangular cell array
// Returns an error if rows have unequal lengths or the array is empty
func New(cells [][]Cell, cellSize float64) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("grid: empty cell array")
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("grid: row %d has %d cells, expected %d", i, len(row), cols)
		}
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("grid: cell size must be positive, got %v", cellSize)
	}
	return &Grid{
		cells:    cells,
		cellSize: cellSize,
		rows:     len(cells),
		cols:     cols,
	}, nil
}

// Size returns (cols, rows)
func (g *Grid) Size() (int, int) {
	return g.cols, g.rows
}

// CellSize returns the world-unit edge length of one cell
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// WorldToCell maps world coordinates to (col, row) indices
// Cell centers sit on multiples of the cell size
func (g *Grid) WorldToCell(worldX, worldZ float64) (int, int) {
	col := int(math.Floor((worldX + g.cellSize/2) / g.cellSize))
	row := int(math.Floor((worldZ + g.cellSize/2) / g.cellSize))
	return col, row
}

// CellCenter returns the world coordinates of a cell's center
func (g *Grid) CellCenter(col, row int) (float64, float64) {
	return float64(col) * g.cellSize, float64(row) * g.cellSize
}

// CellAt returns the cell kind at world coordinates
// Out-of-bounds coordinates map to Wall (fail-safe, not fail-fast)
func (g *Grid) CellAt(worldX, worldZ float64) Cell {
	col, row := g.WorldToCell(worldX, worldZ)
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return Wall
	}
	return g.cells[row][col]
}

// IsBlocked reports whether world coordinates fall in solid space
func (g *Grid) IsBlocked(worldX, worldZ float64) bool {
	return g.CellAt(worldX, worldZ) == Wall
}

// IsExit reports whether world coordinates fall on an exit cell
// Out-of-bounds is false, not an error
func (g *Grid) IsExit(worldX, worldZ float64) bool {
	col, row := g.WorldToCell(worldX, worldZ)
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return false
	}
	return g.cells[row][col] == Exit
}

// Kind returns the cell at (col, row) indices, Wall when out of bounds
func (g *Grid) Kind(col, row int) Cell {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return Wall
	}
	return g.cells[row][col]
}
