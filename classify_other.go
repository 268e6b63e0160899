// classify_other.go - directory/non-directory classification for non-unix platforms
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

//go:build !unix

package pwalk

import (
	"os"
)

// classify is the non-unix fallback. Platforms here have no cheaper
// lstat-family call exposed to Go, so a full link-stat is acceptable
// per the spec's platform note; only the type bit is read out of it.
func classify(path string) (entryKind, *WalkError) {
	fi, err := os.Lstat(path)
	if err != nil {
		if isNotExist(err) {
			return kindInaccessible, nil
		}
		if isPermission(err) {
			return kindInaccessible, nil
		}
		return kindInaccessible, classifyErrno("lstat", path, err)
	}
	if fi.IsDir() {
		return kindDirectory, nil
	}
	return kindNonDirectory, nil
}
