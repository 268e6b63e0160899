// doc.go - package overview for pwalk
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

// Package pwalk is a parallel, work-stealing file system tree walker.
//
// Given a root path and a visitor, Walk enumerates every entry reachable
// from the root, classifies each as a directory or not, calls the visitor
// once per entry, and returns the collected path -> visitor-result mapping
// together with aggregate metrics. The traversal is driven by a fixed pool
// of worker goroutines that pull work from per-worker deques and steal from
// a shared injector (and from each other) when their own deque runs dry, so
// that a deep narrow subtree and a wide shallow one both keep every worker
// busy without funnelling all scheduling through one contended queue.
//
// Basic usage:
//
//	res, err := pwalk.NewWalker[bool](0).Walk(".", func(p string, isDir bool) bool {
//		return isDir
//	})
//	if err != nil {
//		// fatal: root unreadable, or a worker panicked
//	}
//	fmt.Println(res.Metrics.TotalPathBytes)
//
// pwalk does not follow symlinks, does not detect cycles across mount
// points, does not order visitation, and does not filter entries - the
// visitor alone decides what is recorded. See the classify function and
// the workQueue and coordinator types for the pieces that make traversal correct and
// fast; see Walker for the public entry point.
package pwalk
