package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Move is an ordered pair of squares. Two moves are equal when both squares
// are equal, so Move can be compared with == and used as a map key.
type Move struct {
	Origin Coordinate
	Target Coordinate
}

// NewMove builds a move from two notation squares, e.g. NewMove("e2", "e4").
func NewMove(origin, target string) (Move, error) {
	from, err := ParseCoordinate(origin)
	if err != nil {
		return Move{}, fmt.Errorf("origin: %w", err)
	}
	to, err := ParseCoordinate(target)
	if err != nil {
		return Move{}, fmt.Errorf("target: %w", err)
	}
	return Move{Origin: from, Target: to}, nil
}

// ParseMove decodes four-character text such as "e2e4" (a hyphen between
// the squares is accepted).
func ParseMove(text string) (Move, error) {
	s := strings.Replace(strings.TrimSpace(text), "-", "", 1)
	if len(s) != 4 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}
	m, err := NewMove(s[:2], s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrIllegalMove)
	}
	return m, nil
}

// ParseMoveList decodes whitespace-separated move text.
func ParseMoveList(text string) ([]Move, error) {
	fields := strings.Fields(text)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// String returns the move as origin and target notation, e.g. "e2e4".
func (m Move) String() string {
	return m.Origin.String() + m.Target.String()
}

// MoveTargets collects the target squares of moves.
func MoveTargets(moves []Move) []Coordinate {
	targets := make([]Coordinate, len(moves))
	for i, m := range moves {
		targets[i] = m.Target
	}
	return targets
}
