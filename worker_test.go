// worker_test.go - test harness for worker.go's abort semantics
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
	"errors"
	"path"
	"testing"
)

func TestVisitorPanicFailsTheWalk(t *testing.T) {
	assert := newAsserter(t)
	root := path.Join(t.TempDir(), "root")
	mkfile(t, path.Join(root, "a"))
	mkfile(t, path.Join(root, "boom"))

	_, err := NewWalker[bool](4).Walk(root, func(p string, isDir bool) bool {
		if path.Base(p) == "boom" {
			panic("visitor exploded")
		}
		return isDir
	})
	assert(err != nil, "a panicking visitor should fail the walk")

	var werr *WalkError
	assert(errors.As(err, &werr), "walk error should unwrap to a *WalkError")
	assert(werr.Kind == VisitorPanic, "walk error kind = %v, want VisitorPanic", werr.Kind)
}

func TestVisitorPanicOnSingleFileRoot(t *testing.T) {
	assert := newAsserter(t)
	root := path.Join(t.TempDir(), "only.txt")
	mkfile(t, root)

	_, err := NewWalker[bool](2).Walk(root, func(p string, isDir bool) bool {
		panic("boom")
	})
	assert(err != nil, "a panicking visitor on a single-file root should fail the walk")
}

func TestWorkerInvokeVisitorWithoutPanicDoesNotAbort(t *testing.T) {
	assert := newAsserter(t)
	q := newWorkQueue(1)
	c := &coordinator[bool]{
		store:   newResultMap[bool](),
		visitFn: func(p string, isDir bool) bool { return isDir },
	}
	w := &worker[bool]{id: 0, queue: q, coord: c}

	// invokeVisitor's abort flag is what process hands back to run; with
	// a visitor that returns normally it must stay false, so the Worker
	// keeps going.
	aborted := w.invokeVisitor("/does-not-matter", false)
	assert(!aborted, "invokeVisitor without a panicking visitor must not abort")
}
