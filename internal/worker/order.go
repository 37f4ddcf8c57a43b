package worker

// Reorderer releases results in Index order regardless of the order in
// which workers finish. Indices must be consecutive from the first index.
// It is not safe for concurrent use; feed it from the single goroutine
// reading the channel returned by Pool.Run.
type Reorderer struct {
	next    int
	pending map[int]ProcessResult
	emit    func(ProcessResult)
}

// NewReorderer creates a Reorderer expecting first as the first index.
func NewReorderer(first int, emit func(ProcessResult)) *Reorderer {
	return &Reorderer{
		next:    first,
		pending: make(map[int]ProcessResult),
		emit:    emit,
	}
}

// Add accepts a result and emits every result that is now in sequence.
func (r *Reorderer) Add(result ProcessResult) {
	r.pending[result.Index] = result
	for {
		ready, ok := r.pending[r.next]
		if !ok {
			return
		}
		delete(r.pending, r.next)
		r.next++
		r.emit(ready)
	}
}

// Pending returns the number of results held back waiting for a gap.
func (r *Reorderer) Pending() int {
	return len(r.pending)
}
