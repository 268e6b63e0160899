// store.go - concurrent result map and aggregate metrics
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
	"sort"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// ResultMap is a concurrency-safe path -> visitor-output mapping. It is
// safe for concurrent Store calls from multiple Workers so long as keys
// are distinct, which the traversal invariant (every entry visited
// exactly once) guarantees.
type ResultMap[T any] = xsync.MapOf[string, T]

func newResultMap[T any]() *ResultMap[T] {
	return xsync.NewMapOf[string, T]()
}

// Metrics holds aggregate counters collected over one walk.
type Metrics struct {
	// TotalPathBytes is the sum of len(path) over every entry in the
	// ResultMap at the time the walk returned. Callers can use it to
	// pre-size output buffers before formatting results.
	TotalPathBytes uint64
}

// metricAccumulator is an atomic per-walk accumulator folded into
// Metrics at join time. A single atomic counter is sufficient here -
// Worker contention on it is far cheaper than the syscalls surrounding
// each increment, so there is no need for go-fio's per-shard-then-fold
// style used for hotter counters elsewhere in the pack.
type metricAccumulator struct {
	pathBytes atomic.Uint64
}

func (m *metricAccumulator) addPath(path string) {
	m.pathBytes.Add(uint64(len(path)))
}

func (m *metricAccumulator) snapshot() Metrics {
	return Metrics{TotalPathBytes: m.pathBytes.Load()}
}

// Entry is one (path, visitor-output) pair, as produced by SortedView.
type Entry[T any] struct {
	Path  string
	Value T
}

// sortedView copies rm into a slice ordered by byte-lexicographic path
// comparison. This is an O(n log n) copy, not a live ordering - the
// ResultMap itself has no iteration-order guarantee.
func sortedView[T any](rm *ResultMap[T]) []Entry[T] {
	out := make([]Entry[T], 0, rm.Size())
	rm.Range(func(path string, v T) bool {
		out = append(out, Entry[T]{Path: path, Value: v})
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}
