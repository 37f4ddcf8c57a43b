// Package processing provides record analysis and validation logic.
package processing

import (
	"fmt"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/hashing"
)

// Options control what AnalyzeRecord reports.
type Options struct {
	// Moves are applied to the record, in order, before analysis.
	Moves []chess.Move
	// BothSides lists the pieces of both colours, not only the side to move.
	BothSides bool
	// Annotate marks each move with whether it leaves its own king attacked.
	Annotate bool
}

// OptionsFromConfig builds Options from the analysis configuration.
func OptionsFromConfig(cfg *config.AnalysisConfig) (Options, error) {
	moves, err := chess.ParseMoveList(cfg.Moves)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Moves:     moves,
		BothSides: cfg.BothSides,
		Annotate:  cfg.Annotate,
	}, nil
}

// MoveInfo is one pseudo-legal move of a piece.
type MoveInfo struct {
	Move string `json:"move"`
	// ExposesKing is set only when moves are annotated.
	ExposesKing *bool `json:"exposesKing,omitempty"`
}

// PieceMoves lists the moves of the piece on one square.
type PieceMoves struct {
	Square string     `json:"square"`
	Piece  string     `json:"piece"`
	Moves  []MoveInfo `json:"moves"`
}

// Analysis holds the results of analysing one record.
type Analysis struct {
	FEN        string `json:"fen"`
	SideToMove string `json:"sideToMove"`
	// InCheck is nil when the side to move has no king on the board.
	InCheck *bool        `json:"inCheck,omitempty"`
	Pieces  []PieceMoves `json:"pieces"`
	Key     uint64       `json:"-"`

	// Positions holds the Zobrist key of the record and of the position
	// after each applied move.
	Positions     []uint64 `json:"-"`
	HasRepetition bool     `json:"repetition,omitempty"`
	// ClockExhausted reports a half-move clock that no longer fits a
	// record, so FEN cannot be parsed back.
	ClockExhausted bool `json:"clockExhausted,omitempty"`

	Board *chess.Board `json:"-"`
}

// ReplayRecord parses a record and applies moves to it in order. The error
// names the failing move; the board is not returned in that case.
func ReplayRecord(record string, moves []chess.Move) (*chess.Board, []uint64, error) {
	board, err := chess.NewBoardFromFEN(record)
	if err != nil {
		return nil, nil, err
	}

	positions := []uint64{hashing.GenerateZobristHash(board)}
	for i, m := range moves {
		if err := board.MakeMove(m); err != nil {
			return nil, nil, fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
		positions = append(positions, hashing.GenerateZobristHash(board))
	}
	return board, positions, nil
}

// AnalyzeRecord replays moves on a record and reports the resulting
// position with the pseudo-legal moves of its pieces.
func AnalyzeRecord(record string, opts Options) (*Analysis, error) {
	board, positions, err := ReplayRecord(record, opts.Moves)
	if err != nil {
		return nil, err
	}

	side := board.ToMove()
	analysis := &Analysis{
		FEN:            board.FEN(),
		SideToMove:     side.String(),
		Key:            positions[len(positions)-1],
		Positions:      positions,
		HasRepetition:  hasRepetition(positions),
		ClockExhausted: board.HalfmoveClock() >= chess.MaxHalfmoveClock,
		Board:          board,
	}

	if board.HasKing(side) {
		check, err := board.InCheck(side)
		if err != nil {
			return nil, err
		}
		analysis.InCheck = &check
	}

	colours := []chess.Colour{side}
	if opts.BothSides {
		colours = append(colours, side.Opposite())
	}
	for _, colour := range colours {
		pieces, err := listPieceMoves(board, colour, opts.Annotate)
		if err != nil {
			return nil, err
		}
		analysis.Pieces = append(analysis.Pieces, pieces...)
	}
	return analysis, nil
}

// listPieceMoves collects the moves of every piece of a colour. Annotation
// is skipped when the colour has no king.
func listPieceMoves(board *chess.Board, colour chess.Colour, annotate bool) ([]PieceMoves, error) {
	annotate = annotate && board.HasKing(colour)

	var pieces []PieceMoves
	for _, cell := range board.Occupied(colour) {
		moves, err := board.FindMoves(cell.Coordinate())
		if err != nil {
			return nil, err
		}
		pm := PieceMoves{
			Square: cell.Coordinate().String(),
			Piece:  cell.String(),
			Moves:  make([]MoveInfo, 0, len(moves)),
		}
		for _, m := range moves {
			info := MoveInfo{Move: m.String()}
			if annotate {
				exposes, err := board.ResultsInCheck(m, colour)
				if err != nil {
					return nil, err
				}
				info.ExposesKing = &exposes
			}
			pm.Moves = append(pm.Moves, info)
		}
		pieces = append(pieces, pm)
	}
	return pieces, nil
}

// hasRepetition reports whether any position occurs three times.
func hasRepetition(positions []uint64) bool {
	counts := make(map[uint64]int, len(positions))
	for _, p := range positions {
		counts[p]++
		if counts[p] >= 3 {
			return true
		}
	}
	return false
}

// MoveCount returns the number of moves listed across all pieces.
func (a *Analysis) MoveCount() int {
	n := 0
	for _, p := range a.Pieces {
		n += len(p.Moves)
	}
	return n
}

// ValidationResult holds the result of record validation.
type ValidationResult struct {
	Valid    bool
	Field    int
	ErrorMsg string
}

// ValidateRecord checks a record without analysing it.
func ValidateRecord(record string) *ValidationResult {
	_, err := chess.NewBoardFromFEN(record)
	if err == nil {
		return &ValidationResult{Valid: true}
	}
	result := &ValidationResult{ErrorMsg: err.Error()}
	if verr := asValidationError(err); verr != nil {
		result.Field = verr.Field
	}
	return result
}
