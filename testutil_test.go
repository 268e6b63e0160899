// testutil_test.go - shared test helpers
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
	"fmt"
	"os"
	"path"
	"runtime"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("\n%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// mkdir makes an empty directory (and any missing parents).
func mkdir(t *testing.T, dn string) {
	t.Helper()
	if err := os.MkdirAll(dn, 0700); err != nil {
		t.Fatalf("mkdir %s: %s", dn, err)
	}
}

// mkfile makes an empty regular file, creating parent dirs as needed.
func mkfile(t *testing.T, fn string) {
	t.Helper()
	mkdir(t, path.Dir(fn))
	fd, err := os.OpenFile(fn, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatalf("mkfile %s: %s", fn, err)
	}
	fd.Close()
}

// linearTree builds a chain root/d0/d1/.../d(n-1)/leaf.txt, n directories
// deep, for probing stack/recursion-depth independence (spec §8 boundary:
// "10,000-deep linear directory chain").
func linearTree(t *testing.T, root string, n int) {
	t.Helper()
	dir := root
	for i := 0; i < n; i++ {
		dir = path.Join(dir, fmt.Sprintf("d%d", i))
	}
	mkfile(t, path.Join(dir, "leaf.txt"))
}

// wideTree builds root/f0.txt..f(n-1).txt, n sibling files in one
// directory, for probing fan-out handling (spec §8 boundary: "100,000
// entries in a single directory").
func wideTree(t *testing.T, root string, n int) {
	t.Helper()
	mkdir(t, root)
	for i := 0; i < n; i++ {
		mkfile(t, path.Join(root, fmt.Sprintf("f%d.txt", i)))
	}
}
