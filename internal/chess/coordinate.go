package chess

import (
	"fmt"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Coordinate is a square on the board. Row 0 is rank 1 and column 0 is the
// a-file. A Coordinate obtained from this package is always in bounds.
type Coordinate struct {
	row, col int8
}

// IsInBounds reports whether row and col both lie in [0, BoardSize).
func IsInBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// NewCoordinate builds a coordinate, failing with ErrOutOfBounds when
// either value is off the board.
func NewCoordinate(row, col int) (Coordinate, error) {
	rowOut := row < 0 || row >= BoardSize
	colOut := col < 0 || col >= BoardSize
	switch {
	case rowOut && colOut:
		return Coordinate{}, fmt.Errorf("row %d and column %d: %w", row, col, errors.ErrOutOfBounds)
	case rowOut:
		return Coordinate{}, fmt.Errorf("row %d: %w", row, errors.ErrOutOfBounds)
	case colOut:
		return Coordinate{}, fmt.Errorf("column %d: %w", col, errors.ErrOutOfBounds)
	}
	return Coordinate{row: int8(row), col: int8(col)}, nil
}

// ParseCoordinate decodes two-character notation such as "e4": the first
// character selects the column, the second the row.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("square %q must be 2 characters: %w", s, errors.ErrOutOfBounds)
	}
	c, err := NewCoordinate(int(s[1])-RankBase, int(s[0])-ColBase)
	if err != nil {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, err)
	}
	return c, nil
}

// coordinateAt builds a coordinate from a 0..63 index without checks.
func coordinateAt(index int) Coordinate {
	return Coordinate{row: int8(index / BoardSize), col: int8(index % BoardSize)}
}

// Row returns the 0-based row (rank 1 is row 0).
func (c Coordinate) Row() int { return int(c.row) }

// Col returns the 0-based column (the a-file is column 0).
func (c Coordinate) Col() int { return int(c.col) }

// Index returns the position of the square in a 64-element grid.
func (c Coordinate) Index() int {
	return int(c.row)*BoardSize + int(c.col)
}

// String returns the square in notation, e.g. "g2" for row 1, column 6.
func (c Coordinate) String() string {
	return string([]byte{byte(ColBase + int(c.col)), byte(RankBase + int(c.row))})
}

// Offset steps from c by the given deltas. The second result is false when
// the step leaves the board.
func (c Coordinate) Offset(dRow, dCol int) (Coordinate, bool) {
	row, col := int(c.row)+dRow, int(c.col)+dCol
	if !IsInBounds(row, col) {
		return Coordinate{}, false
	}
	return Coordinate{row: int8(row), col: int8(col)}, true
}
