package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	t.Run("keeps a string at exactly the max length", func(t *testing.T) {
		// Prepare
		s := strings.Repeat("a", 49)

		// Execute
		r, truncated := TruncateRunes(s, 49)

		// Check
		assert.Equal(t, s, r, "string kept intact")
		assert.False(t, truncated, "not truncated")
	})

	t.Run("truncates a string one above the max length", func(t *testing.T) {
		// Prepare
		s := strings.Repeat("b", 50)

		// Execute
		r, truncated := TruncateRunes(s, 49)

		// Check
		assert.Equal(t, strings.Repeat("b", 49), r, "string truncated")
		assert.True(t, truncated, "reported as truncated")
	})

	t.Run("never splits a multibyte character", func(t *testing.T) {
		// Prepare
		s := strings.Repeat("ç", 60)

		// Execute
		r, truncated := TruncateRunes(s, 49)

		// Check
		assert.Equal(t, strings.Repeat("ç", 49), r, "string truncated on rune boundary")
		assert.True(t, truncated, "reported as truncated")
	})

	t.Run("handles empty strings and zero length", func(t *testing.T) {
		// Execute
		r1, t1 := TruncateRunes("", 49)
		r2, t2 := TruncateRunes("abc", 0)

		// Check
		assert.Equal(t, "", r1, "empty kept empty")
		assert.False(t, t1, "empty not truncated")
		assert.Equal(t, "", r2, "zero max gives empty")
		assert.True(t, t2, "zero max truncates")
	})
}

func TestPositiveMod(t *testing.T) {
	t.Run("positive values", func(t *testing.T) {
		assert.Equal(t, int64(5), PositiveMod(25, 20), "25 mod 20")
		assert.Equal(t, int64(0), PositiveMod(40, 20), "40 mod 20")
	})

	t.Run("negative values are brought into range", func(t *testing.T) {
		assert.Equal(t, int64(19), PositiveMod(-1, 20), "-1 mod 20")
		assert.Equal(t, int64(0), PositiveMod(-20, 20), "-20 mod 20")
		assert.Equal(t, int64(15), PositiveMod(-25, 20), "-25 mod 20")
	})
}
