package hashing

import "github.com/lgbarn/boardstate-go/internal/chess"

// Zobrist keys, generated from a fixed seed so that keys are stable across
// runs and processes.
var (
	zobristPiece      [2][chess.NumPieceTypes][chess.NumSquares]uint64 // [Colour][PieceType][Square]
	zobristEnPassant  [chess.BoardSize]uint64                          // one per file
	zobristCastling   [16]uint64                                       // every subset of KQkq
	zobristSideToMove uint64                                           // XOR when Black is to move
)

func init() {
	initZobrist()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x6A09E667F3BCC908}

	for c := chess.Black; c <= chess.White; c++ {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// castlingIndex maps a "KQkq" subsequence onto a 4-bit set.
func castlingIndex(rights string) int {
	index := 0
	for i := 0; i < len(rights); i++ {
		switch rights[i] {
		case 'K':
			index |= 1
		case 'Q':
			index |= 2
		case 'k':
			index |= 4
		case 'q':
			index |= 8
		}
	}
	return index
}

// GenerateZobristHash computes the key of a position: placement, side to
// move, castling rights and en passant file. The clocks are not part of
// the key, so the same position reached at different move numbers hashes
// the same.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, cell := range board.Cells() {
		if p, ok := cell.Piece(); ok {
			hash ^= zobristPiece[p.Colour][p.Type][cell.Coordinate().Index()]
		}
	}
	if board.ToMove() == chess.Black {
		hash ^= zobristSideToMove
	}
	if rights, ok := board.CastlingRights(); ok {
		hash ^= zobristCastling[castlingIndex(rights)]
	}
	if ep, ok := board.EnPassantTarget(); ok {
		hash ^= zobristEnPassant[ep.Col()]
	}
	return hash
}

// WeakHash is a cheap placement-only checksum used to confirm a Zobrist
// match.
func WeakHash(board *chess.Board) uint32 {
	var sum uint32
	for _, cell := range board.Cells() {
		if p, ok := cell.Piece(); ok {
			sum += uint32(cell.Coordinate().Index()+1) * uint32(p.Letter())
		}
	}
	return sum
}
