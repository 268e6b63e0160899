// classify_unix.go - cheap directory/non-directory classification for unix
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

//go:build unix

package pwalk

import (
	"golang.org/x/sys/unix"
)

// classify lstat's path and reports whether it is a directory. It never
// follows symlinks - a symlink to a directory classifies as NonDirectory,
// matching the spec's "link-stat, not a dereferencing stat" contract.
//
// Unlike os.Lstat, this reads only the mode's type bits out of the raw
// stat_t: no xattr, no full fs.FileInfo allocation. Classify is the
// hottest call in the walker (once per entry) so it stays this narrow
// on purpose.
func classify(path string) (entryKind, *WalkError) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		if err == unix.ENOENT {
			return kindInaccessible, nil
		}
		if err == unix.EACCES || err == unix.EPERM {
			return kindInaccessible, nil
		}
		return kindInaccessible, classifyErrno("lstat", path, err)
	}

	if st.Mode&unix.S_IFMT == unix.S_IFDIR {
		return kindDirectory, nil
	}
	return kindNonDirectory, nil
}
