// dirreader.go - enumerate the children of one directory
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
	"io"
	"io/fs"
	"os"
)

// unknownFileMode is the sentinel os.DirEntry.Type() returns when the
// entry's type bit could not be determined - either the platform's
// directory read never carried one, or (for the lazy-lstat path some
// platforms use) the lstat failed, typically because the entry vanished
// between the readdir call and the type lookup.
const unknownFileMode = ^fs.FileMode(0)

// childEntry is one entry returned by readChildren. kindKnown reports
// whether the underlying directory read already carries a trustworthy
// type bit (true on platforms where ReadDir is backed by getdents'
// d_type) so the Worker can skip a redundant Classify call.
type childEntry struct {
	path      string
	kind      entryKind
	kindKnown bool
}

// readChildren opens dirPath, yields one childEntry per entry (path
// built by joining dirPath and the entry's base name), and closes the
// directory on every exit path. It does not recurse.
//
// On a permission or TOCTOU (vanished) failure to open the directory,
// readChildren returns (nil, nil): the caller still records the
// directory itself, and an unreadable directory simply contributes no
// children. Any other open failure, or a failure partway through
// reading entries, is reported as a non-nil *WalkError of Kind
// TransientIO: enumeration of this directory stops but whatever
// entries were already read are still returned.
func readChildren(dirPath string) ([]childEntry, *WalkError) {
	fd, err := os.Open(dirPath)
	if err != nil {
		if isPermission(err) || isNotExist(err) {
			return nil, nil
		}
		return nil, &WalkError{Kind: TransientIO, Op: "open", Path: dirPath, Err: err}
	}
	defer fd.Close()

	var out []childEntry
	for {
		ents, err := fd.ReadDir(128)
		for _, e := range ents {
			child := childEntry{path: joinChild(dirPath, e.Name())}
			if t := e.Type(); t != unknownFileMode {
				child.kind = kindFromFileMode(t)
				child.kindKnown = true
			}
			out = append(out, child)
		}
		if err != nil {
			if err == io.EOF {
				return out, nil
			}
			return out, &WalkError{Kind: TransientIO, Op: "readdir", Path: dirPath, Err: err}
		}
	}
}

// kindFromFileMode derives an entryKind from a fs.DirEntry's cached type
// bit. Callers must only pass a t that is not unknownFileMode - an
// all-ones FileMode happens to have its ModeDir bit set too, which would
// misreport a vanished entry as a directory.
func kindFromFileMode(t fs.FileMode) entryKind {
	if t.IsDir() {
		return kindDirectory
	}
	return kindNonDirectory
}

// joinChild appends the platform separator and name to parent; no
// cleaning, no normalization - children of "/a/b" are "/a/b/<name>"
// verbatim, per the spec's path-handling rule.
func joinChild(parent, name string) string {
	if len(parent) > 0 && parent[len(parent)-1] == os.PathSeparator {
		return parent + name
	}
	return parent + string(os.PathSeparator) + name
}
