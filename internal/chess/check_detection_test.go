package chess

import (
	"errors"
	"testing"

	boarderrors "github.com/lgbarn/boardstate-go/internal/errors"
)

func TestResultsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		move   string
		colour Colour
		want   bool
	}{
		{"king steps into the queen's file", "rnb1k1nr/pppp1p2/4pqpp/8/1b2P1Q1/1P6/P1PPKPPP/RNB2BNR w kq - 3 6", "e2f3", White, true},
		{"pinned pawn", "r1b1k1nr/1ppp1p2/p1n1p1pp/3N1q2/1bB1P1Q1/1P3N2/P1PP1PPP/R1B1K2R w KQkq - 0 9", "d2d3", White, true},
		{"king next to the queen", "r1b3nr/1ppp1p2/p1n1pkpp/5q2/1NB1P1QP/1P3N2/P1PP1PP1/R1B1K2R b KQ - 0 11", "f6g5", Black, true},
		{"king onto a knight square", "r1b3nr/1ppp1p2/p1n1pkpp/5q2/1NB1P1QP/1P3N2/P1PP1PP1/R1B1K2R b KQ - 0 11", "f6e5", Black, true},
		{"queen captures safely", "r1b3nr/1ppp1p2/p1n1pkpp/5q2/1NB1P1QP/1P3N2/P1PP1PP1/R1B1K2R b KQ - 0 11", "f5f3", Black, false},
		{"pawn push opens the diagonal", "r1b3nr/1ppp1p2/2n1pkp1/p5pP/1NBNP3/1P4q1/P1PP1PP1/R1B1K2R w KQ - 0 15", "f2f3", White, true},
		{"pawn double push opens the diagonal", "r1b3nr/1ppp1p2/2n1pkp1/p5pP/1NBNP3/1P4q1/P1PP1PP1/R1B1K2R w KQ - 0 15", "f2f4", White, true},
		{"quiet move", InitialFEN, "g1f3", White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			got, err := board.ResultsInCheck(mv(t, tt.move), tt.colour)
			if err != nil {
				t.Fatalf("ResultsInCheck(%s) error = %v", tt.move, err)
			}
			if got != tt.want {
				t.Errorf("ResultsInCheck(%s, %v) = %v; want %v", tt.move, tt.colour, got, tt.want)
			}
			if board.FEN() != tt.fen {
				t.Errorf("ResultsInCheck modified the board: %s", board.FEN())
			}
		})
	}
}

func TestResultsInCheck_EmptyOrigin(t *testing.T) {
	fen := "r1b3nr/1ppp1p2/2n1pkp1/p5pP/1NBNP3/1P4q1/P1PP1PP1/R1B1K2R w KQ - 0 15"
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	got, err := board.ResultsInCheck(mv(t, "c3c3"), White)
	if !errors.Is(err, boarderrors.ErrInvariantViolation) {
		t.Fatalf("ResultsInCheck(c3c3) error = %v; want ErrInvariantViolation", err)
	}
	if got {
		t.Error("ResultsInCheck(c3c3) = true alongside an error")
	}
	if board.FEN() != fen {
		t.Errorf("board changed: %s", board.FEN())
	}
}

func TestInCheck(t *testing.T) {
	board, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if check, err := board.InCheck(White); err != nil || !check {
		t.Errorf("InCheck(White) = %v, %v; want true", check, err)
	}
	if check, err := board.InCheck(Black); err != nil || check {
		t.Errorf("InCheck(Black) = %v, %v; want false", check, err)
	}
}

func TestLocateKing(t *testing.T) {
	board := NewInitialBoard()
	king, err := board.LocateKing(Black)
	if err != nil || king.String() != "e8" {
		t.Errorf("LocateKing(Black) = %v, %v; want e8", king, err)
	}

	lone, err := NewBoardFromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if lone.HasKing(Black) {
		t.Error("HasKing(Black) = true on a board without one")
	}
	_, err = lone.LocateKing(Black)
	var inv *boarderrors.InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("LocateKing(Black) error = %v; want *InvariantError", err)
	}
	if _, err := lone.InCheck(Black); !errors.Is(err, boarderrors.ErrInvariantViolation) {
		t.Errorf("InCheck(Black) error = %v; want ErrInvariantViolation", err)
	}
}

func TestIsAttacked(t *testing.T) {
	board := NewInitialBoard()
	tests := []struct {
		square string
		by     Colour
		want   bool
	}{
		{"f3", White, true},
		{"d3", White, true},
		{"e5", White, false},
		{"f6", Black, true},
		{"e4", Black, false},
	}
	for _, tt := range tests {
		got, err := board.IsAttacked(sq(t, tt.square), tt.by)
		if err != nil {
			t.Fatalf("IsAttacked(%s, %v) error = %v", tt.square, tt.by, err)
		}
		if got != tt.want {
			t.Errorf("IsAttacked(%s, %v) = %v; want %v", tt.square, tt.by, got, tt.want)
		}
	}
}
