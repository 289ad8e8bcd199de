package terminal

import "github.com/lixenwraith/particle-field/parameter"

// Projection maps world pixels onto a character grid
// The bottom row is reserved for the status line
type Projection struct {
	Cols, Rows int
	fieldRows  int
	cellW      float64
	cellH      float64
}

// NewProjection builds a projection for a cols x rows terminal
// Degenerate sizes are raised to a single cell so mapping never divides by zero
func NewProjection(cols, rows int) Projection {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	fieldRows := rows - 1
	if fieldRows < 1 {
		fieldRows = 1
	}
	return Projection{
		Cols:      cols,
		Rows:      rows,
		fieldRows: fieldRows,
		cellW:     float64(parameter.WorldWidth) / float64(cols),
		cellH:     float64(parameter.WorldHeight) / float64(fieldRows),
	}
}

// FieldRows returns the number of rows available to particles
func (p Projection) FieldRows() int {
	return p.fieldRows
}

// StatusRow returns the row index of the status line
func (p Projection) StatusRow() int {
	return p.Rows - 1
}

// Cell returns the grid cell containing world point (x, y), clamped to the field
func (p Projection) Cell(x, y float64) (col, row int) {
	col = clampInt(int(x/p.cellW), 0, p.Cols-1)
	row = clampInt(int(y/p.cellH), 0, p.fieldRows-1)
	return col, row
}

// CellSize returns the world pixels covered by one cell
func (p Projection) CellSize() (w, h float64) {
	return p.cellW, p.cellH
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
