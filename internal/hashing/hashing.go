// Package hashing provides duplicate detection for analysed positions.
package hashing

import (
	"github.com/lgbarn/boardstate-go/internal/chess"
)

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist key
	hashTable map[uint64][]Signature
	// maxCapacity limits the number of stored signatures; 0 is unlimited
	maxCapacity int
	// size is the number of stored signatures
	size int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature stores identifying information about a position.
type Signature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash is a placement checksum for quick confirmation
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// SignatureOf computes the signature of a board.
func SignatureOf(board *chess.Board) Signature {
	return Signature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd checks if a position is a duplicate and records it.
// Returns true if the position was seen before. Once the detector is full,
// new positions are checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}
	sig := SignatureOf(board)

	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}
