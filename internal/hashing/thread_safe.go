package hashing

import (
	"sync"

	"github.com/lgbarn/boardstate-go/internal/chess"
)

// ThreadSafeDuplicateDetector is a DuplicateDetector that may be shared by
// goroutines, such as the requests of the HTTP service.
type ThreadSafeDuplicateDetector struct {
	mu sync.Mutex
	d  *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a shared detector holding at most
// maxCapacity positions; 0 means unlimited.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{d: NewDuplicateDetector(maxCapacity)}
}

// CheckAndAdd reports whether board's position was seen before and records
// it if not. The check and the insert happen under one lock.
func (t *ThreadSafeDuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.CheckAndAdd(board)
}

// Counts returns the number of distinct positions and of repeats, read
// together.
func (t *ThreadSafeDuplicateDetector) Counts() (unique, duplicates int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.UniqueCount(), t.d.DuplicateCount()
}

// IsFull reports whether new positions are no longer recorded.
func (t *ThreadSafeDuplicateDetector) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.IsFull()
}
