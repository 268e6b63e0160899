// store_test.go - test harness for store.go
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
	"testing"
)

func TestMetricAccumulator(t *testing.T) {
	assert := newAsserter(t)
	var m metricAccumulator

	m.addPath("/a")
	m.addPath("/bb")
	m.addPath("/ccc")

	snap := m.snapshot()
	assert(snap.TotalPathBytes == 2+3+4, "metrics: got %d, want 9", snap.TotalPathBytes)
}

func TestSortedView(t *testing.T) {
	assert := newAsserter(t)
	rm := newResultMap[int]()
	rm.Store("/c", 3)
	rm.Store("/a", 1)
	rm.Store("/b", 2)

	view := sortedView(rm)
	assert(len(view) == 3, "sortedView: got %d entries, want 3", len(view))

	want := []string{"/a", "/b", "/c"}
	for i, e := range view {
		assert(e.Path == want[i], "sortedView[%d]: got %s, want %s", i, e.Path, want[i])
	}
}
