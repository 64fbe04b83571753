// Package bytealg holds the byte primitives behind the byte-specialised
// search paths.
package bytealg

import (
	"bytes"
	"unsafe"
)

// IndexByte returns the index of the first c in s, or -1.
func IndexByte(s []byte, c byte) int {
	return bytes.IndexByte(s, c)
}

// FromString returns the bytes of s without copying.
// The result must not be modified.
func FromString(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
