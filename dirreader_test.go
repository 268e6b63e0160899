// dirreader_test.go - test harness for dirreader.go
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
	"os"
	"path"
	"testing"
)

func TestReadChildrenEmptyDir(t *testing.T) {
	assert := newAsserter(t)
	tmp := t.TempDir()

	children, werr := readChildren(tmp)
	assert(werr == nil, "readChildren: %s", werr)
	assert(len(children) == 0, "readChildren empty dir: got %d children", len(children))
}

func TestReadChildrenMixed(t *testing.T) {
	assert := newAsserter(t)
	tmp := t.TempDir()
	mkfile(t, path.Join(tmp, "a.txt"))
	mkdir(t, path.Join(tmp, "sub"))

	children, werr := readChildren(tmp)
	assert(werr == nil, "readChildren: %s", werr)
	assert(len(children) == 2, "readChildren: got %d children, want 2", len(children))

	var sawFile, sawDir bool
	for _, c := range children {
		assert(c.kindKnown, "readChildren: child %s has kindKnown=false on a platform with d_type support", c.path)
		switch c.kind {
		case kindDirectory:
			sawDir = true
			assert(c.path == path.Join(tmp, "sub"), "readChildren: dir child path = %s", c.path)
		case kindNonDirectory:
			sawFile = true
			assert(c.path == path.Join(tmp, "a.txt"), "readChildren: file child path = %s", c.path)
		}
	}
	assert(sawFile && sawDir, "readChildren: did not see both a file and a directory child")
}

func TestReadChildrenNonexistentDirIsSilent(t *testing.T) {
	assert := newAsserter(t)
	tmp := t.TempDir()

	children, werr := readChildren(path.Join(tmp, "gone"))
	assert(werr == nil, "readChildren on vanished dir should not report an error, got %s", werr)
	assert(children == nil, "readChildren on vanished dir: got %d children, want none", len(children))
}

func TestReadChildrenPermissionDeniedIsSilent(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root: permission bits are not enforced")
	}
	assert := newAsserter(t)
	tmp := t.TempDir()
	mkfile(t, path.Join(tmp, "x.txt"))
	if err := os.Chmod(tmp, 0); err != nil {
		t.Fatalf("chmod: %s", err)
	}
	defer os.Chmod(tmp, 0700)

	children, werr := readChildren(tmp)
	assert(werr == nil, "readChildren on denied dir should not report an error, got %s", werr)
	assert(children == nil, "readChildren on denied dir: got %d children, want none", len(children))
}

func TestJoinChildNoNormalization(t *testing.T) {
	assert := newAsserter(t)

	got := joinChild("/a/b", "c")
	assert(got == "/a/b/c", "joinChild: got %q", got)

	got = joinChild("/a/b/", "c")
	assert(got == "/a/b/c", "joinChild with trailing separator: got %q", got)
}
