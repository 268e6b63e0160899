// coordinator.go - spawn workers, seed the root, run to quiescence, join
//
// (c) 2026- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package pwalk

import (
	"sync"
	"sync/atomic"

	"github.com/opencoff/go-logger"
)

// coordinator holds the state shared by every Worker for one walk: the
// queue they drain, the store they write into, the visitor they call,
// and the bookkeeping the termination protocol and error propagation
// need. One coordinator is built, used, and discarded per Walk call.
type coordinator[T any] struct {
	queue   *workQueue
	store   *ResultMap[T]
	metrics metricAccumulator
	visitFn func(path string, isDir bool) T
	log     logger.Logger

	// active counts Workers currently attempting to acquire a task or
	// processing one they already hold (including pushing any
	// children); see worker.run, which raises it before popLocal/steal
	// is even attempted rather than after a task is in hand, so a task
	// mid-acquire is never invisible to the count. The termination
	// protocol (spec §4.6) requires active == 0 AND a globally empty
	// queue observed together: active == 0 proves no Worker can still
	// be mid-expansion, so nothing more will ever be pushed, and a
	// subsequent empty-queue check is then stable rather than momentary.
	active atomic.Int64

	errOnce sync.Once
	err     *WalkError
}

// visit calls the caller-supplied visitor. Kept as a method (rather
// than worker calling coord.visitFn directly) so every call site goes
// through one place if future instrumentation is added.
func (c *coordinator[T]) visit(path string, isDir bool) T {
	return c.visitFn(path, isDir)
}

// record stores one (path, value) pair and folds its length into the
// path-bytes metric. Safe for concurrent use from any Worker.
func (c *coordinator[T]) record(path string, v T) {
	c.store.Store(path, v)
	c.metrics.addPath(path)
}

// fatal records the first Fatal/VisitorPanic error observed across all
// Workers; later ones are dropped (the first failure is what the
// walk's error describes, per spec §7 "the first fatal condition
// observed"). It also emits the error to the diagnostic logger.
func (c *coordinator[T]) fatal(e *WalkError) {
	c.errOnce.Do(func() {
		c.err = e
	})
	if c.log != nil {
		c.log.Err("%s", e)
	}
}

// logDiagnostic reports a non-fatal (TransientIO) condition to the
// diagnostic channel. It never affects the walk's outcome.
func (c *coordinator[T]) logDiagnostic(e *WalkError) {
	if c.log != nil {
		c.log.Warn("%s", e)
	}
}

// WalkResult is what Walk returns: the accumulated path -> visitor
// output mapping and the aggregate Metrics collected over the walk.
type WalkResult[T any] struct {
	Paths   *ResultMap[T]
	Metrics Metrics
}

// SortedView returns r.Paths ordered by byte-lexicographic path, as a
// derived O(n log n) copy (spec §4.4, §4.7).
func (r *WalkResult[T]) SortedView() []Entry[T] {
	return sortedView(r.Paths)
}

// runWalk implements the Coordinator operation from spec §4.6: allocate
// the Work Queue, Result Store and metrics; seed the root; spawn
// numThreads Workers inside a scope that guarantees they've all joined
// before returning; sum metrics; return the aggregate. log may be nil,
// in which case diagnostics are simply discarded.
func runWalk[T any](root string, numThreads int, log logger.Logger, visitFn func(path string, isDir bool) T) (*WalkResult[T], error) {
	c := &coordinator[T]{
		store:   newResultMap[T](),
		visitFn: visitFn,
		log:     log,
	}

	// The root is special: an inaccessible root is fatal (spec §8
	// boundary behavior), whereas an inaccessible non-root entry is
	// silently dropped. So it is always classified here, synchronously,
	// before any Worker exists.
	kind, werr := classify(root)
	if werr != nil {
		return nil, werr
	}
	if kind == kindInaccessible {
		return nil, &WalkError{Kind: Fatal, Op: "classify", Path: root, Err: errRootInaccessible}
	}

	if kind == kindNonDirectory {
		// Single-file root (spec §8): no Workers needed at all.
		c.invokeRootVisitor(root, false)
		if c.err != nil {
			return nil, c.err
		}
		return &WalkResult[T]{Paths: c.store, Metrics: c.metrics.snapshot()}, nil
	}

	c.queue = newWorkQueue(numThreads)
	c.queue.pushRoot(root)

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for i := 0; i < numThreads; i++ {
		w := &worker[T]{id: i, queue: c.queue, coord: c}
		go func() {
			defer wg.Done()
			runWorkerRecovered(w)
		}()
	}
	wg.Wait()

	if c.err != nil {
		return nil, c.err
	}
	return &WalkResult[T]{Paths: c.store, Metrics: c.metrics.snapshot()}, nil
}

// runWorkerRecovered runs one Worker's loop and converts any panic that
// escapes it (a bug in the core itself, not the visitor - visitor
// panics are already caught in worker.invokeVisitor) into a Fatal
// WalkError, in the spirit of go-fio's workpool.go recover-and-report.
func runWorkerRecovered[T any](w *worker[T]) {
	defer func() {
		if r := recover(); r != nil {
			w.coord.fatal(&WalkError{Kind: Fatal, Op: "worker", Path: "", Err: panicToError(r)})
		}
	}()
	w.run()
}

// invokeRootVisitor handles the single-file-root fast path with the
// same panic-to-WalkError conversion worker.invokeVisitor uses.
func (c *coordinator[T]) invokeRootVisitor(path string, isDir bool) {
	defer func() {
		if r := recover(); r != nil {
			c.fatal(&WalkError{Kind: VisitorPanic, Op: "visit", Path: path, Err: panicToError(r)})
		}
	}()
	v := c.visit(path, isDir)
	c.record(path, v)
}
