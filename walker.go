// walker.go - public entry point
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

	"github.com/opencoff/go-logger"
)

// Walker configures and runs one parallel tree walk. T is the type
// returned by the caller's visitor for each entry; the zero value of
// Walker is not usable - build one with NewWalker.
type Walker[T any] struct {
	numThreads int
	log        logger.Logger
}

// NewWalker returns a Walker that spreads the traversal across
// numThreads worker goroutines. numThreads <= 0 means
// runtime.NumCPU(), matching go-fio's WorkPool default.
func NewWalker[T any](numThreads int) *Walker[T] {
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}
	return &Walker[T]{numThreads: numThreads}
}

// WithLogger attaches a diagnostic logger. Fatal and VisitorPanic
// conditions are logged at Err level; TransientIO conditions, which do
// not fail the walk, are logged at Warn level. Entries skipped because
// they are access-denied or vanished are dropped without any log line.
// Passing nil (the default) discards diagnostics.
func (w *Walker[T]) WithLogger(log logger.Logger) *Walker[T] {
	w.log = log
	return w
}

// Walk traverses root, calling visit exactly once for every reachable
// entry (including root itself), and returns the aggregate result once
// every worker has joined (spec §4.6, §8 completeness/uniqueness
// properties). visit's path argument is root itself, or root joined
// byte-for-byte with the path segments read off each directory - no
// cleaning or normalization (spec §9).
//
// Walk returns a non-nil error only when the walk could not complete
// at all: the root path could not be classified or was itself
// inaccessible, classifying some entry failed with an unexpected
// (neither missing nor permission-denied) error, or some worker's
// visit call panicked. Every other
// failure encountered along the way (a permission-denied subdirectory,
// a file that vanished mid-walk, a directory whose enumeration failed
// partway through) is absorbed internally, reported only to the
// diagnostic logger if one is attached, and never prevents the rest of
// the tree from being walked.
func (w *Walker[T]) Walk(root string, visit func(path string, isDir bool) T) (*WalkResult[T], error) {
	return runWalk(root, w.numThreads, w.log, visit)
}
