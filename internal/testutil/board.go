package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/boardstate-go/internal/chess"
)

// MustBoard parses a FEN record, calling t.Fatal on failure.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := chess.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// MustSquare parses square notation such as "e4", calling t.Fatal on failure.
func MustSquare(t *testing.T, square string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseCoordinate(square)
	if err != nil {
		t.Fatalf("ParseCoordinate(%q): %v", square, err)
	}
	return c
}

// MustMove parses move text such as "e2e4", calling t.Fatal on failure.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

// MoveStrings renders moves as sorted "e2e4" strings so that results can be
// compared as sets.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
