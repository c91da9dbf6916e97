//go:build !unchecked

package bridge

import (
	"unicode/utf8"
	"unsafe"
)

// haystackView returns haystack as a string together with a function mapping
// byte offsets in that string back to offsets in haystack.
//
// Valid input is viewed without copying. Invalid input is reported and
// matched on a repaired copy, in which every invalid byte is replaced by
// U+FFFD. The caller must not modify haystack while the view is in use.
func haystackView(haystack []byte) (string, func(int) int) {
	if utf8.Valid(haystack) {
		return unsafe.String(unsafe.SliceData(haystack), len(haystack)), identity
	}
	tracer().Errorf("haystack is not valid UTF-8: %q", haystack)
	return repair(haystack)
}

func identity(i int) int { return i }

func repair(haystack []byte) (string, func(int) int) {
	buf := make([]byte, 0, len(haystack)+8)
	offs := make([]int, 0, len(haystack)+9)
	for i := 0; i < len(haystack); {
		r, size := utf8.DecodeRune(haystack[i:])
		if r == utf8.RuneError && size == 1 {
			buf = utf8.AppendRune(buf, utf8.RuneError)
		} else {
			buf = append(buf, haystack[i:i+size]...)
		}
		for len(offs) < len(buf) {
			offs = append(offs, i)
		}
		i += size
	}
	offs = append(offs, len(haystack))
	return string(buf), func(i int) int { return offs[i] }
}
