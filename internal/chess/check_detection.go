package chess

import (
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// LocateKing finds the king of the given colour. A board without that king
// is a valid state, but asking for it is an invariant violation.
func (b *Board) LocateKing(colour Colour) (Coordinate, error) {
	king := Piece{Type: King, Colour: colour}
	for _, cell := range b.cells {
		if p, ok := cell.Piece(); ok && p == king {
			return cell.Coordinate(), nil
		}
	}
	return Coordinate{}, &errors.InvariantError{Op: "locate king", Reason: colour.String() + " king is not on the board"}
}

// HasKing reports whether a king of the colour is on the board.
func (b *Board) HasKing(colour Colour) bool {
	_, err := b.LocateKing(colour)
	return err == nil
}

// attackedSquares returns the union of the targets of every pseudo-legal
// move of every piece of the given colour.
func (b *Board) attackedSquares(by Colour) ([NumSquares]bool, error) {
	var attacked [NumSquares]bool
	for _, cell := range b.Occupied(by) {
		moves, err := b.FindMoves(cell.Coordinate())
		if err != nil {
			return attacked, err
		}
		for _, target := range MoveTargets(moves) {
			attacked[target.Index()] = true
		}
	}
	return attacked, nil
}

// IsAttacked reports whether any piece of colour by has a pseudo-legal move
// onto c.
func (b *Board) IsAttacked(c Coordinate, by Colour) (bool, error) {
	attacked, err := b.attackedSquares(by)
	if err != nil {
		return false, err
	}
	return attacked[c.Index()], nil
}

// InCheck reports whether the king of the colour is attacked on the
// current board.
func (b *Board) InCheck(colour Colour) (bool, error) {
	king, err := b.LocateKing(colour)
	if err != nil {
		return false, err
	}
	return b.IsAttacked(king, colour.Opposite())
}

// ResultsInCheck reports whether playing m would leave the king of the given
// colour attacked. The move is simulated on a clone; the receiver is never
// modified. Errors from applying the move or locating the king are
// returned as they are.
func (b *Board) ResultsInCheck(m Move, colour Colour) (bool, error) {
	sim := b.Clone()
	if err := sim.MakeMove(m); err != nil {
		return false, err
	}
	return sim.InCheck(colour)
}
