// Package worker provides a worker pool for parallel record analysis.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/processing"
)

// WorkItem represents a record to be analysed.
type WorkItem struct {
	Record processing.Record
	Index  int // Position in the input, used to restore order
}

// ProcessResult represents the result of analysing a record.
type ProcessResult struct {
	Record    processing.Record
	Index     int
	Analysis  *processing.Analysis // nil when Error is set
	Duplicate bool                 // Set by the consumer, not by workers
	Error     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// AnalyzeFunc returns a ProcessFunc that runs processing.AnalyzeRecord with
// opts. Failures are returned as *errors.RecordError carrying the record's
// location.
func AnalyzeFunc(opts processing.Options) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Record: item.Record, Index: item.Index}
		analysis, err := processing.AnalyzeRecord(item.Record.Text, opts)
		if err != nil {
			result.Error = &errors.RecordError{
				Err:   err,
				Index: item.Record.Index,
				File:  item.Record.File,
				Line:  item.Record.Line,
			}
			return result
		}
		result.Analysis = analysis
		return result
	}
}

// Pool runs a ProcessFunc on a fixed number of goroutines. A Pool holds no
// per-run state and may be reused; each call to Run is independent.
type Pool struct {
	numWorkers  int
	bufferSize  int
	processFunc ProcessFunc
	processed   atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the size of the work and result channels. Values
// below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with numWorkers workers and channels of bufferSize.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes items and returns a channel carrying one result per item,
// in completion order. The channel is closed when every item is done.
//
// Cancelling ctx stops feeding the workers; items already taken finish but
// are not reported, and the channel is closed early. The caller must keep
// reading until the channel is closed.
func (p *Pool) Run(ctx context.Context, items []WorkItem) <-chan ProcessResult {
	work := make(chan WorkItem, p.bufferSize)
	results := make(chan ProcessResult, p.bufferSize)

	go func() {
		defer close(work)
		for _, item := range items {
			select {
			case work <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.work(ctx, work, results)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()
	return results
}

// work drains the work channel. Each call to processFunc builds its own
// boards, so workers share no board state.
func (p *Pool) work(ctx context.Context, work <-chan WorkItem, results chan<- ProcessResult) {
	for item := range work {
		if ctx.Err() != nil {
			continue // drain without processing
		}
		result := p.processFunc(item)
		p.processed.Add(1)
		select {
		case results <- result:
		case <-ctx.Done():
		}
	}
}

// Processed returns the number of items processed over the pool's lifetime.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
