package chess

import (
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// offset is a (row, column) step.
type offset struct {
	dRow, dCol int
}

var (
	orthogonalDirs = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs        = append(append([]offset{}, orthogonalDirs...), diagonalDirs...)
	knightOffsets  = []offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// movement describes how a piece type moves: a set of offsets, taken once
// (stepping) or repeated until blocked (sliding).
type movement struct {
	offsets []offset
	sliding bool
}

// pieceMovement is indexed by PieceType. Pawns have no entry; their rules
// depend on colour and position and live in pawnMoves.
var pieceMovement = [NumPieceTypes]movement{
	King:   {offsets: allDirs},
	Knight: {offsets: knightOffsets},
	Bishop: {offsets: diagonalDirs, sliding: true},
	Rook:   {offsets: orthogonalDirs, sliding: true},
	Queen:  {offsets: allDirs, sliding: true},
}

// FindMoves returns the pseudo-legal moves of the piece on c: moves that
// follow the piece's movement pattern and respect occupancy, without
// considering whether they leave the mover's king attacked. Castling and
// promotion are not generated. The order of the result is not significant.
//
// Asking for the moves of an empty square returns an *errors.InvariantError.
func (b *Board) FindMoves(c Coordinate) ([]Move, error) {
	piece, ok := b.Cell(c).Piece()
	if !ok {
		return nil, &errors.InvariantError{Op: "find moves", Square: c.String(), Reason: "square is empty"}
	}
	if piece.Type == Pawn {
		return b.pawnMoves(c, piece.Colour), nil
	}
	return b.tableMoves(c, piece.Colour, pieceMovement[piece.Type]), nil
}

// tableMoves generates moves for a stepping or sliding piece.
func (b *Board) tableMoves(from Coordinate, colour Colour, mv movement) []Move {
	var moves []Move
	for _, off := range mv.offsets {
		to, ok := from.Offset(off.dRow, off.dCol)
		for ok {
			cell := b.Cell(to)
			if cell.Holds(colour) {
				break
			}
			moves = append(moves, Move{Origin: from, Target: to})
			if !mv.sliding || !cell.IsEmpty() {
				break
			}
			to, ok = to.Offset(off.dRow, off.dCol)
		}
	}
	return moves
}

// pawnMoves generates a pawn's pushes and diagonal captures, including the
// capture onto the en passant target.
func (b *Board) pawnMoves(from Coordinate, colour Colour) []Move {
	var moves []Move
	dir := ColourOffset(colour)

	if one, ok := from.Offset(dir, 0); ok && b.Cell(one).IsEmpty() {
		moves = append(moves, Move{Origin: from, Target: one})
		if from.Row() == PawnHomeRow(colour) {
			if two, ok := one.Offset(dir, 0); ok && b.Cell(two).IsEmpty() {
				moves = append(moves, Move{Origin: from, Target: two})
			}
		}
	}

	for _, dCol := range []int{-1, 1} {
		to, ok := from.Offset(dir, dCol)
		if !ok {
			continue
		}
		if b.Cell(to).Holds(colour.Opposite()) || (b.enPassant && to == b.epTarget) {
			moves = append(moves, Move{Origin: from, Target: to})
		}
	}
	return moves
}
