package chess

// Board is a position: the 64 cells plus the game state carried by a FEN
// record. The Board owns its cells exclusively; accessors return copies.
// Boards are built by NewBoardFromFEN or Clone and change only through
// MakeMove.
type Board struct {
	// cells[row*BoardSize+col]; row 0 is rank 1.
	cells [NumSquares]Cell

	// Who has the next move.
	toMove Colour

	// Castling availability as a subsequence of "KQkq". Empty means "-".
	castling string

	// Is en passant capture possible? If so then epTarget is the square
	// a pawn capturing en passant would land on.
	enPassant bool
	epTarget  Coordinate

	// The half-move clock since the last pawn move or capture.
	halfmoveClock uint

	// The current move number, starting at 1.
	moveNumber uint
}

// newEmptyBoard creates a board with every cell empty, White to move.
func newEmptyBoard() *Board {
	b := &Board{
		toMove:     White,
		moveNumber: 1,
	}
	for i := range b.cells {
		b.cells[i] = EmptyCell(coordinateAt(i))
	}
	return b
}

// Cell returns the cell at c.
func (b *Board) Cell(c Coordinate) Cell {
	return b.cells[c.Index()]
}

// Cells returns a snapshot of the grid, indexed by Coordinate.Index.
func (b *Board) Cells() [NumSquares]Cell {
	return b.cells
}

// Occupied returns the cells holding a piece of the colour, scanning from
// a1 to h8.
func (b *Board) Occupied(colour Colour) []Cell {
	var cells []Cell
	for _, cell := range b.cells {
		if cell.Holds(colour) {
			cells = append(cells, cell)
		}
	}
	return cells
}

// ToMove returns the side to move.
func (b *Board) ToMove() Colour { return b.toMove }

// CastlingRights returns the castling field. The second result is false
// when the record held "-".
func (b *Board) CastlingRights() (string, bool) {
	return b.castling, b.castling != ""
}

// EnPassantTarget returns the en passant target square, if any.
func (b *Board) EnPassantTarget() (Coordinate, bool) {
	return b.epTarget, b.enPassant
}

// HalfmoveClock returns the number of plies since the last capture or
// pawn move.
func (b *Board) HalfmoveClock() uint { return b.halfmoveClock }

// MoveNumber returns the full-move number.
func (b *Board) MoveNumber() uint { return b.moveNumber }

// Clone creates a deep copy of the board. The copy shares nothing with b.
func (b *Board) Clone() *Board {
	nb := &Board{}
	*nb = *b
	return nb
}

// set places a cell's occupant; p.Type == Empty clears it.
func (b *Board) set(c Coordinate, p Piece) {
	b.cells[c.Index()] = OccupiedCell(c, p)
}

// clear empties the cell at c.
func (b *Board) clear(c Coordinate) {
	b.cells[c.Index()] = EmptyCell(c)
}
