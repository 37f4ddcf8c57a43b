package chess

import (
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// MakeMove applies m to the board. It does not check that the move is
// legal, or even pseudo-legal; it only refuses moves no caller should ever
// produce: moving from an empty square or capturing a piece of the mover's
// own colour. Those return an *errors.InvariantError and leave the board
// unchanged.
//
// The half-move clock is incremented without bound, so a board that reaches
// MaxHalfmoveClock serializes to a record NewBoardFromFEN rejects.
func (b *Board) MakeMove(m Move) error {
	piece, ok := b.Cell(m.Origin).Piece()
	if !ok {
		return &errors.InvariantError{Op: "make move", Square: m.Origin.String(), Reason: "origin square is empty"}
	}

	target := b.Cell(m.Target)
	isCapture := false
	if colour, occupied := target.Colour(); occupied {
		if colour == piece.Colour {
			return &errors.InvariantError{Op: "make move", Square: m.Target.String(), Reason: "destination holds a piece of the same colour"}
		}
		isCapture = true
	}
	isPawn := piece.Type == Pawn

	if isCapture || isPawn {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	// The target is valid for exactly one reply, so remember it before
	// this move replaces or clears it.
	prevTarget, hadTarget := b.epTarget, b.enPassant
	if isPawn && isDoublePush(m) {
		b.enPassant = true
		b.epTarget = Coordinate{row: (m.Origin.row + m.Target.row) / 2, col: m.Origin.col}
	} else {
		b.enPassant = false
		b.epTarget = Coordinate{}
	}

	if isPawn && hadTarget && m.Target == prevTarget {
		b.clear(Coordinate{row: m.Origin.row, col: m.Target.col})
	}

	b.set(m.Target, piece)
	b.clear(m.Origin)

	b.toMove = b.toMove.Opposite()
	if b.toMove == White {
		b.moveNumber++
	}
	return nil
}

// isDoublePush reports whether a move advances two rows along one file.
func isDoublePush(m Move) bool {
	return m.Origin.col == m.Target.col && abs(int(m.Target.row)-int(m.Origin.row)) == 2
}
