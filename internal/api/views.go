package api

import (
	"github.com/lgbarn/boardstate-go/internal/chess"
)

// CellView is one occupied square.
type CellView struct {
	Square string `json:"square"`
	Piece  string `json:"piece"`
}

// BoardView is the JSON form of a session's board.
type BoardView struct {
	ID            string     `json:"id"`
	FEN           string     `json:"fen"`
	SideToMove    string     `json:"sideToMove"`
	Castling      string     `json:"castling"`
	EnPassant     string     `json:"enPassant,omitempty"`
	HalfmoveClock uint       `json:"halfmoveClock"`
	MoveNumber    uint       `json:"moveNumber"`
	Cells         []CellView `json:"cells"`
	// InCheck is omitted when the side to move has no king.
	InCheck  *bool `json:"inCheck,omitempty"`
	Repeated bool  `json:"repeated,omitempty"`
}

// MovesView lists the moves of one piece.
type MovesView struct {
	Square string   `json:"square"`
	Moves  []string `json:"moves"`
}

// CheckView answers a check query.
type CheckView struct {
	Move   string `json:"move"`
	Colour string `json:"colour"`
	Check  bool   `json:"check"`
}

// ErrorView is the body of every error response.
type ErrorView struct {
	Error string `json:"error"`
}

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

// newBoardView renders a board.
func newBoardView(id string, b *chess.Board) BoardView {
	view := BoardView{
		ID:            id,
		FEN:           b.FEN(),
		SideToMove:    b.ToMove().String(),
		Castling:      "-",
		HalfmoveClock: b.HalfmoveClock(),
		MoveNumber:    b.MoveNumber(),
		Cells:         []CellView{},
	}
	if rights, ok := b.CastlingRights(); ok {
		view.Castling = rights
	}
	if ep, ok := b.EnPassantTarget(); ok {
		view.EnPassant = ep.String()
	}
	for _, cell := range b.Cells() {
		if !cell.IsEmpty() {
			view.Cells = append(view.Cells, CellView{
				Square: cell.Coordinate().String(),
				Piece:  cell.String(),
			})
		}
	}
	if b.HasKing(b.ToMove()) {
		if check, err := b.InCheck(b.ToMove()); err == nil {
			view.InCheck = &check
		}
	}
	return view
}

// moveStrings renders moves as "e2e4" text.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
