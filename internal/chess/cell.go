package chess

// Cell is one square of the board: its coordinate and, optionally, the
// piece standing on it. The zero occupant is never observable as a piece,
// so an empty cell cannot carry a colour.
type Cell struct {
	coord    Coordinate
	piece    Piece
	occupied bool
}

// EmptyCell returns an unoccupied cell.
func EmptyCell(c Coordinate) Cell {
	return Cell{coord: c}
}

// OccupiedCell returns a cell holding p. A piece of type Empty yields an
// empty cell.
func OccupiedCell(c Coordinate, p Piece) Cell {
	if p.Type == Empty {
		return EmptyCell(c)
	}
	return Cell{coord: c, piece: p, occupied: true}
}

// Coordinate returns the square of the cell.
func (c Cell) Coordinate() Coordinate { return c.coord }

// Piece returns the occupant, if any.
func (c Cell) Piece() (Piece, bool) {
	return c.piece, c.occupied
}

// Type returns the occupant's type, or Empty.
func (c Cell) Type() PieceType {
	if !c.occupied {
		return Empty
	}
	return c.piece.Type
}

// Colour returns the occupant's colour. The second result is false for an
// empty cell.
func (c Cell) Colour() (Colour, bool) {
	return c.piece.Colour, c.occupied
}

// IsEmpty reports whether no piece stands on the cell.
func (c Cell) IsEmpty() bool { return !c.occupied }

// Holds reports whether the cell is occupied by a piece of the colour.
func (c Cell) Holds(colour Colour) bool {
	return c.occupied && c.piece.Colour == colour
}

// String returns the piece letter, or "." for an empty cell.
func (c Cell) String() string {
	if !c.occupied {
		return "."
	}
	return c.piece.String()
}
