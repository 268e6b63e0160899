// worker.go - per-goroutine traversal loop
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
	"runtime"
	"time"
)

// maxBackoff bounds how long an idle worker sleeps between re-checks
// for work before trying again; it never blocks long-term (spec §5).
const maxBackoff = 2 * time.Millisecond

// worker runs one goroutine's share of the traversal. id indexes into
// the workQueue's per-worker deques.
type worker[T any] struct {
	id    int
	queue *workQueue
	coord *coordinator[T]
}

// run is the Worker's main loop (spec §4.5). It exits only when the
// coordinator's termination protocol confirms global quiescence -
// never on a merely-momentary empty observation.
//
// active is raised before popLocal/steal is even attempted, not after a
// task is in hand: a task that has already left the queue but hasn't
// yet been reflected in active would otherwise be invisible to both
// active and globallyEmpty for the duration of the acquire, letting
// every idle peer conclude quiescence and exit while this Worker is
// still about to fan its task's children out. Raising active first
// means the worst case is a spurious non-empty reading on a failed
// acquire (corrected immediately below), never a missed one.
func (w *worker[T]) run() {
	backoff := time.Microsecond
	for {
		w.coord.active.Add(1)
		t, ok := w.queue.popLocal(w.id)
		if !ok {
			t, ok = w.queue.steal(w.id)
		}

		if !ok {
			w.coord.active.Add(-1)
			if w.coord.active.Load() == 0 && w.queue.globallyEmpty() {
				return
			}
			time.Sleep(backoff)
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			runtime.Gosched()
			continue
		}

		backoff = time.Microsecond
		abort := w.process(t)
		w.coord.active.Add(-1)
		if abort {
			return
		}
	}
}

// process classifies t's path (unless the Directory Reader already
// typed it), expands it if it is a directory, invokes the visitor, and
// records the result. It must finish pushing every child it discovers
// before returning, since the coordinator's quiescence check treats
// "active" as "might still push work".
//
// process returns true if a Fatal classification error or a visitor
// panic means this Worker should stop; a directory-read error is only
// logged and never stops the Worker. Per spec §4.5/§5, stopping aborts
// only this Worker - its siblings keep running until natural
// termination, and the Coordinator surfaces the failure once every
// Worker has joined.
func (w *worker[T]) process(t task) bool {
	kind := t.kind
	if !t.kindKnown {
		var werr *WalkError
		kind, werr = classify(t.path)
		if werr != nil {
			w.coord.fatal(werr)
			return true
		}
	}
	if kind == kindInaccessible {
		return false
	}

	isDir := kind == kindDirectory
	if isDir {
		children, rerr := readChildren(t.path)
		if rerr != nil {
			w.coord.logDiagnostic(rerr)
		}
		w.queue.pushChildren(children)
	}

	return w.invokeVisitor(t.path, isDir)
}

// invokeVisitor calls the caller's visitor and converts a panic into a
// VisitorPanic WalkError observed by the coordinator, matching the
// teacher's workpool.go recover-and-report idiom. It reports true if
// the visitor panicked, so the Worker aborts exactly as it would for a
// Fatal classification error.
func (w *worker[T]) invokeVisitor(path string, isDir bool) (aborted bool) {
	defer func() {
		if r := recover(); r != nil {
			w.coord.fatal(&WalkError{
				Kind: VisitorPanic,
				Op:   "visit",
				Path: path,
				Err:  panicToError(r),
			})
			aborted = true
		}
	}()

	v := w.coord.visit(path, isDir)
	w.coord.record(path, v)
	return false
}
