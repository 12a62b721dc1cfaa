package gridcanvas

import "fmt"

// CellPos addresses one cell by row and column.
type CellPos struct {
	Row, Col int
}

// CellState holds one on/off flag per grid cell, indexed by row and column.
// All cells start off.
type CellState struct {
	rows, cols int
	cells      [][]bool
}

// NewCellState creates a rows×cols state with every cell off. Negative
// dimensions are treated as zero.
func NewCellState(rows, cols int) *CellState {
	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	return &CellState{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (s *CellState) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *CellState) Cols() int { return s.cols }

func (s *CellState) check(row, col int) error {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrCellOutOfRange, row, col, s.rows, s.cols)
	}
	return nil
}

// Cell reports whether the cell at (row, col) is on.
func (s *CellState) Cell(row, col int) (bool, error) {
	if err := s.check(row, col); err != nil {
		return false, err
	}
	return s.cells[row][col], nil
}

// SetCell turns the cell at (row, col) on or off.
func (s *CellState) SetCell(row, col int, on bool) error {
	if err := s.check(row, col); err != nil {
		return err
	}
	s.cells[row][col] = on
	return nil
}

// Toggle flips the cell at (row, col) and returns its new value.
func (s *CellState) Toggle(row, col int) (bool, error) {
	if err := s.check(row, col); err != nil {
		return false, err
	}
	s.cells[row][col] = !s.cells[row][col]
	return s.cells[row][col], nil
}

// Active returns the positions of all cells that are on, in row-major order.
func (s *CellState) Active() []CellPos {
	var out []CellPos
	for r, row := range s.cells {
		for c, on := range row {
			if on {
				out = append(out, CellPos{Row: r, Col: c})
			}
		}
	}
	return out
}

// Reset turns every cell off.
func (s *CellState) Reset() {
	for _, row := range s.cells {
		clear(row)
	}
}
