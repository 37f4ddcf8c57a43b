package chess_test

import (
	"strings"
	"testing"

	oracle "github.com/corentings/chess/v2"

	"github.com/lgbarn/boardstate-go/internal/chess"
)

// oraclePositions are cross-checked against an independent move generator.
var oraclePositions = []string{
	chess.InitialFEN,
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
	"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
	"4k3/P7/8/8/8/8/8/4K3 w - - 4 30",
	"rnb1k1nr/pppp1p2/4pqpp/8/1b2P1Q1/1P6/P1PPKPPP/RNB2BNR w kq - 3 6",
	"r1b1k1nr/1ppp1p2/p1n1p1pp/3N1q2/1bB1P1Q1/1P3N2/P1PP1PPP/R1B1K2R w KQkq - 0 9",
	"r1b3nr/1ppp1p2/p1n1pkpp/5q2/1NB1P1QP/1P3N2/P1PP1PP1/R1B1K2R b KQ - 0 11",
	"r1b3nr/1ppp1p2/2n1pkp1/p5pP/1NBNP3/1P4q1/P1PP1PP1/R1B1K2R w KQ - 0 15",
	"r1b1qrkb/pp1n1p1p/4p1pP/2pnP1B1/3p2N1/3P1NP1/PPP2PB1/R2QR1K1 b - - 6 16",
}

func loadOracle(t *testing.T, fen string) *oracle.Game {
	t.Helper()
	opt, err := oracle.FEN(fen)
	if err != nil {
		t.Fatalf("oracle rejected %q: %v", fen, err)
	}
	return oracle.NewGame(opt)
}

// TestFindMoves_CoversLegalMoves checks that every legal non-castling move
// reported by the oracle is among the pseudo-legal moves of its piece.
func TestFindMoves_CoversLegalMoves(t *testing.T) {
	for _, fen := range oraclePositions {
		t.Run(fen, func(t *testing.T) {
			board, err := chess.NewBoardFromFEN(fen)
			if err != nil {
				t.Fatal(err)
			}
			game := loadOracle(t, fen)

			pseudo := map[string]bool{}
			for _, cell := range board.Occupied(board.ToMove()) {
				moves, err := board.FindMoves(cell.Coordinate())
				if err != nil {
					t.Fatal(err)
				}
				for _, m := range moves {
					pseudo[m.String()] = true
				}
			}

			for _, m := range game.ValidMoves() {
				if m.HasTag(oracle.KingSideCastle) || m.HasTag(oracle.QueenSideCastle) {
					continue
				}
				text := m.S1().String() + m.S2().String()
				if !pseudo[text] {
					t.Errorf("legal move %s missing from FindMoves", text)
				}
			}
		})
	}
}

// TestFindMoves_LegalFilter checks that filtering pseudo-legal moves with
// ResultsInCheck never keeps a move the oracle considers illegal.
func TestFindMoves_LegalFilter(t *testing.T) {
	for _, fen := range oraclePositions {
		t.Run(fen, func(t *testing.T) {
			board, err := chess.NewBoardFromFEN(fen)
			if err != nil {
				t.Fatal(err)
			}
			game := loadOracle(t, fen)

			legal := map[string]bool{}
			for _, m := range game.ValidMoves() {
				legal[m.S1().String()+m.S2().String()] = true
			}

			for _, cell := range board.Occupied(board.ToMove()) {
				moves, err := board.FindMoves(cell.Coordinate())
				if err != nil {
					t.Fatal(err)
				}
				for _, m := range moves {
					exposes, err := board.ResultsInCheck(m, board.ToMove())
					if err != nil {
						t.Fatal(err)
					}
					if !exposes && !legal[m.String()] {
						t.Errorf("move %s kept by the check filter but illegal", m)
					}
				}
			}
		})
	}
}

func TestPlacementMatchesOracle(t *testing.T) {
	for _, fen := range oraclePositions {
		board, err := chess.NewBoardFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		want := strings.Fields(loadOracle(t, fen).FEN())[0]
		got := strings.Fields(board.FEN())[0]
		if got != want {
			t.Errorf("placement = %q; oracle %q", got, want)
		}
	}
}
