package chess

import (
	"testing"
)

// sq parses a square for tests in this package.
func sq(t *testing.T, s string) Coordinate {
	t.Helper()
	c, err := ParseCoordinate(s)
	if err != nil {
		t.Fatalf("ParseCoordinate(%q): %v", s, err)
	}
	return c
}

func TestNewEmptyBoard(t *testing.T) {
	b := newEmptyBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove() != White {
			t.Errorf("ToMove = %v; want White", b.ToMove())
		}
		if b.MoveNumber() != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber())
		}
		if _, ok := b.EnPassantTarget(); ok {
			t.Error("EnPassant = true; want false")
		}
		if b.HalfmoveClock() != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock())
		}
	})

	t.Run("one cell per square", func(t *testing.T) {
		for i, cell := range b.Cells() {
			if !cell.IsEmpty() {
				t.Errorf("cell %d not empty", i)
			}
			if got := cell.Coordinate().Index(); got != i {
				t.Errorf("cell %d has coordinate index %d", i, got)
			}
		}
	})
}

func TestInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		square string
		want   string
	}{
		{"a1", "R"}, {"b1", "N"}, {"c1", "B"}, {"d1", "Q"},
		{"e1", "K"}, {"f1", "B"}, {"g1", "N"}, {"h1", "R"},
		{"a2", "P"}, {"e2", "P"}, {"h2", "P"},
		{"a7", "p"}, {"e7", "p"}, {"h7", "p"},
		{"a8", "r"}, {"b8", "n"}, {"c8", "b"}, {"d8", "q"},
		{"e8", "k"}, {"f8", "b"}, {"g8", "n"}, {"h8", "r"},
		{"e3", "."}, {"d4", "."}, {"f5", "."}, {"c6", "."},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := b.Cell(sq(t, tt.square)).String(); got != tt.want {
				t.Errorf("Cell(%s) = %s; want %s", tt.square, got, tt.want)
			}
		})
	}

	t.Run("piece counts", func(t *testing.T) {
		counts := map[Piece]int{}
		for _, cell := range b.Cells() {
			if p, ok := cell.Piece(); ok {
				counts[p]++
			}
		}
		want := map[Piece]int{
			W(Pawn): 8, B(Pawn): 8,
			W(Rook): 2, B(Rook): 2,
			W(Knight): 2, B(Knight): 2,
			W(Bishop): 2, B(Bishop): 2,
			W(Queen): 1, B(Queen): 1,
			W(King): 1, B(King): 1,
		}
		for p, n := range want {
			if counts[p] != n {
				t.Errorf("count(%s) = %d; want %d", p, counts[p], n)
			}
		}
		if len(counts) != len(want) {
			t.Errorf("found %d distinct pieces; want %d", len(counts), len(want))
		}
	})

	t.Run("colour by rank", func(t *testing.T) {
		for _, cell := range b.Cells() {
			colour, ok := cell.Colour()
			if !ok {
				continue
			}
			row := cell.Coordinate().Row()
			if row <= 1 && colour != White {
				t.Errorf("%s: colour %v on White's side", cell.Coordinate(), colour)
			}
			if row >= 6 && colour != Black {
				t.Errorf("%s: colour %v on Black's side", cell.Coordinate(), colour)
			}
		}
	})

	t.Run("fresh board per call", func(t *testing.T) {
		other := NewInitialBoard()
		if err := other.MakeMove(Move{Origin: sq(t, "e2"), Target: sq(t, "e4")}); err != nil {
			t.Fatal(err)
		}
		if NewInitialBoard().FEN() != InitialFEN {
			t.Error("mutating one starting board changed another")
		}
	})
}

func TestOccupantInvariant(t *testing.T) {
	fens := []string{
		InitialFEN,
		"8/3k3p/1p6/1Np5/2P3P1/4p3/3bK3/8 w - - 0 54",
		"r1b1qrkb/pp1n1p1p/4p1pP/2pnP1B1/3p2N1/3P1NP1/PPP2PB1/R2QR1K1 b - - 6 16",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
		}
		for _, cell := range b.Cells() {
			_, hasPiece := cell.Piece()
			_, hasColour := cell.Colour()
			if hasPiece != (cell.Type() != Empty) || hasColour != hasPiece {
				t.Errorf("%s in %q: piece=%v colour=%v type=%v", cell.Coordinate(), fen, hasPiece, hasColour, cell.Type())
			}
		}
	}
}

func TestOccupiedCellWithEmptyType(t *testing.T) {
	c := OccupiedCell(sq(t, "d4"), Piece{Type: Empty, Colour: White})
	if !c.IsEmpty() {
		t.Error("OccupiedCell with Empty type produced an occupied cell")
	}
	if _, ok := c.Colour(); ok {
		t.Error("empty cell reports a colour")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{OccupiedCell(sq(t, "a1"), B(Knight)), "n"},
		{OccupiedCell(sq(t, "a1"), W(Queen)), "Q"},
		{OccupiedCell(sq(t, "a1"), B(Pawn)), "p"},
		{EmptyCell(sq(t, "a1")), "."},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestBoardClone(t *testing.T) {
	original, err := NewBoardFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	clone := original.Clone()

	if clone.FEN() != original.FEN() {
		t.Fatalf("clone FEN = %q; want %q", clone.FEN(), original.FEN())
	}

	if err := clone.MakeMove(Move{Origin: sq(t, "e7"), Target: sq(t, "e5")}); err != nil {
		t.Fatal(err)
	}
	if original.FEN() != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1" {
		t.Errorf("original changed after mutating clone: %s", original.FEN())
	}
	if original.Cell(sq(t, "e5")).Type() != Empty {
		t.Error("clone shares cells with original")
	}
}

func TestOccupied(t *testing.T) {
	b := NewInitialBoard()
	if got := len(b.Occupied(White)); got != 16 {
		t.Errorf("len(Occupied(White)) = %d; want 16", got)
	}
	black := b.Occupied(Black)
	if len(black) != 16 {
		t.Fatalf("len(Occupied(Black)) = %d; want 16", len(black))
	}
	if got := black[0].Coordinate().String(); got != "a7" {
		t.Errorf("first black cell = %s; want a7", got)
	}
}

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		c    byte
		want Piece
		ok   bool
	}{
		{'r', B(Rook), true},
		{'Q', W(Queen), true},
		{'b', B(Bishop), true},
		{'N', W(Knight), true},
		{'k', B(King), true},
		{'x', Piece{}, false},
		{'1', Piece{}, false},
	}
	for _, tt := range tests {
		got, ok := PieceFromLetter(tt.c)
		if ok != tt.ok || got != tt.want {
			t.Errorf("PieceFromLetter(%q) = %v, %v; want %v, %v", tt.c, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseColour(t *testing.T) {
	for _, s := range []string{"w", "white", "White"} {
		if c, ok := ParseColour(s); !ok || c != White {
			t.Errorf("ParseColour(%q) = %v, %v", s, c, ok)
		}
	}
	for _, s := range []string{"b", "black", "BLACK"} {
		if c, ok := ParseColour(s); !ok || c != Black {
			t.Errorf("ParseColour(%q) = %v, %v", s, c, ok)
		}
	}
	if _, ok := ParseColour("red"); ok {
		t.Error(`ParseColour("red") succeeded`)
	}
}
