// Package worker provides a worker pool for validating saved games in parallel.
package worker

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WorkItem is one saved game to check. Either Data holds the document or
// Path names the file to read it from.
type WorkItem struct {
	Path  string
	Data  []byte
	Index int // Submission order, used to restore it in the results
}

// Name returns a label for the item in reports.
func (w WorkItem) Name() string {
	if w.Path != "" {
		return w.Path
	}
	return "#" + strconv.Itoa(w.Index)
}

// ProcessResult is the outcome of checking one item.
type ProcessResult struct {
	Item     WorkItem
	Position *chess.Position // Replayed position; nil when Error is set
	Tags     chess.Metadata
	Status   chess.Status
	Error    error
}

// OK reports whether the item was accepted.
func (r ProcessResult) OK() bool {
	return r.Error == nil
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers. Each worker builds its own positions, so
// nothing is shared between goroutines except the channels.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Without options it has one worker and a
// buffer of 10 items.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.stopped.Load() {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items still queued; they are drained unprocessed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting work, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}
