package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Record limits enforced by NewBoardFromFEN.
const (
	NumFENFields     = 6
	MaxHalfmoveClock = 50 // exclusive
	castlingOrder    = "KQkq"
)

// Field numbers of a FEN record, as reported in ValidationError.Field.
const (
	FieldPlacement = iota + 1
	FieldSideToMove
	FieldCastling
	FieldEnPassant
	FieldHalfmoveClock
	FieldMoveNumber
)

var fieldNames = [...]string{
	FieldPlacement:     "piece placement",
	FieldSideToMove:    "side to move",
	FieldCastling:      "castling rights",
	FieldEnPassant:     "en passant target",
	FieldHalfmoveClock: "half-move clock",
	FieldMoveNumber:    "full-move number",
}

// fieldError builds the ValidationError for one field of a record.
func fieldError(field int, value, format string, args ...interface{}) error {
	return &errors.ValidationError{
		Field:  field,
		Name:   fieldNames[field],
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}

// NewBoardFromFEN creates a board from a six-field FEN record. Every field
// is validated before the board is built; on failure the returned error is
// a *errors.ValidationError and no board is returned.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != NumFENFields {
		return nil, &errors.ValidationError{
			Reason: fmt.Sprintf("expected %d space-separated fields, got %d", NumFENFields, len(parts)),
		}
	}

	if err := validatePlacement(parts[0]); err != nil {
		return nil, err
	}
	toMove, err := parseSideToMove(parts[1])
	if err != nil {
		return nil, err
	}
	castling, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	epTarget, enPassant, err := parseEnPassant(parts[3])
	if err != nil {
		return nil, err
	}
	halfmove, err := parseCounter(FieldHalfmoveClock, parts[4])
	if err != nil {
		return nil, err
	}
	if halfmove < 0 || halfmove >= MaxHalfmoveClock {
		return nil, fieldError(FieldHalfmoveClock, parts[4], "must be between 0 and %d", MaxHalfmoveClock-1)
	}
	moveNumber, err := parseCounter(FieldMoveNumber, parts[5])
	if err != nil {
		return nil, err
	}
	if moveNumber < 1 {
		return nil, fieldError(FieldMoveNumber, parts[5], "must be at least 1")
	}

	board := newEmptyBoard()
	placePieces(board, parts[0])
	board.toMove = toMove
	board.castling = castling
	board.enPassant = enPassant
	board.epTarget = epTarget
	board.halfmoveClock = uint(halfmove)
	board.moveNumber = uint(moveNumber)
	return board, nil
}

// NewInitialBoard creates a board with the standard starting position.
// Each call returns a fresh board.
func NewInitialBoard() *Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}

// validatePlacement checks the piece placement field: eight ranks of
// exactly eight files each. Every digit adds that many empty squares, so
// "44" and "08" are accepted as well as the canonical "8".
func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return fieldError(FieldPlacement, placement, "expected %d ranks, got %d", BoardSize, len(ranks))
	}
	for i, rank := range ranks {
		rankName := RankBase + BoardSize - 1 - i
		files := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '0' && c <= '9' {
				files += int(c - '0')
				continue
			}
			if _, ok := PieceFromLetter(c); !ok {
				return fieldError(FieldPlacement, rank, "rank %c has invalid piece character %q", rankName, c)
			}
			files++
		}
		if files != BoardSize {
			return fieldError(FieldPlacement, rank, "rank %c describes %d files, should be %d", rankName, files, BoardSize)
		}
	}
	return nil
}

// placePieces fills an empty board from an already validated placement.
func placePieces(board *Board, placement string) {
	for i, rank := range strings.Split(placement, "/") {
		row := BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '0' && c <= '9' {
				col += int(c - '0')
				continue
			}
			piece, _ := PieceFromLetter(c)
			board.set(Coordinate{row: int8(row), col: int8(col)}, piece)
			col++
		}
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (Colour, error) {
	switch field {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	}
	if len(field) != 1 {
		return White, fieldError(FieldSideToMove, field, "must be exactly one character")
	}
	return White, fieldError(FieldSideToMove, field, `must be "w" or "b"`)
}

// parseCastlingRights parses the castling availability field. The letters
// must be a subsequence of "KQkq", each at most once.
func parseCastlingRights(field string) (string, error) {
	if field == "-" {
		return "", nil
	}
	if len(field) == 0 || len(field) > len(castlingOrder) {
		return "", fieldError(FieldCastling, field, "must be \"-\" or 1 to %d characters", len(castlingOrder))
	}
	next := 0
	for i := 0; i < len(field); i++ {
		idx := strings.IndexByte(castlingOrder[next:], field[i])
		if idx < 0 {
			return "", fieldError(FieldCastling, field, "letters must be drawn from %q in that order without repeats", castlingOrder)
		}
		next += idx + 1
	}
	return field, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(field string) (Coordinate, bool, error) {
	if field == "-" {
		return Coordinate{}, false, nil
	}
	if len(field) != 2 {
		return Coordinate{}, false, fieldError(FieldEnPassant, field, "must be \"-\" or a 2-character square")
	}
	c, err := ParseCoordinate(field)
	if err != nil {
		return Coordinate{}, false, fieldError(FieldEnPassant, field, "square is off the board")
	}
	return c, true, nil
}

// parseCounter parses a clock field as a decimal integer literal. An
// optional sign and leading zeros are accepted; range checks are left to
// the caller.
func parseCounter(field int, value string) (int, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, fieldError(field, value, "is out of range")
		}
		return 0, fieldError(field, value, "is not an integer")
	}
	return int(n), nil
}

// FEN converts the board to a six-field FEN record.
func (b *Board) FEN() string {
	var sb strings.Builder

	b.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if b.toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	if b.castling == "" {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.castling)
	}
	sb.WriteByte(' ')
	if b.enPassant {
		sb.WriteString(b.epTarget.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (b *Board) writePiecePositions(sb *strings.Builder) {
	for row := BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < BoardSize; col++ {
			piece, ok := b.cells[row*BoardSize+col].Piece()
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// String returns the FEN record of the board.
func (b *Board) String() string {
	return b.FEN()
}
