package utils

import "unicode/utf8"

// TruncateRunes - Returns s cut down to at most maxRunes characters, never splitting a multibyte character.
// The second return value is true if s was shortened.
func TruncateRunes(s string, maxRunes int) (truncated string, wasTruncated bool) {
	if maxRunes < 0 {
		maxRunes = 0
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s, false
	}

	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i], true
		}
		n++
	}

	return s, false
}

// PositiveMod - Returns a mod n in the range 0 to n - 1 also for negative a.
// The result is undefined for n <= 0.
func PositiveMod(a, n int64) int64 {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
