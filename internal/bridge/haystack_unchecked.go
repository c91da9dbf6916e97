//go:build unchecked

package bridge

import "unsafe"

// haystackView returns haystack as a string without validating it. Invalid
// UTF-8 is matched as is; Go's decoding turns each invalid byte into
// U+FFFD without reading outside of haystack.
func haystackView(haystack []byte) (string, func(int) int) {
	return unsafe.String(unsafe.SliceData(haystack), len(haystack)), identity
}

func identity(i int) int { return i }
