// classify.go - shared Classifier contract
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

// entryKind is the Classifier's result: directory, non-directory, or
// inaccessible (permission denied / vanished - treated as non-directory
// and dropped silently, per spec).
type entryKind int

const (
	kindNonDirectory entryKind = iota
	kindDirectory
	kindInaccessible
)
