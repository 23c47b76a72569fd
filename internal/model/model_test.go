package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	t.Run("keeps a 49 character title", func(t *testing.T) {
		// Prepare
		title := strings.Repeat("x", 49)

		// Execute
		r := NewRecord(1, title, 1999)

		// Check
		assert.Equal(t, Record{Id: 1, Title: title, Year: 1999}, r, "record intact")
		assert.True(t, TitleFits(title), "title fits")
	})

	t.Run("truncates a 50 character title", func(t *testing.T) {
		// Prepare
		title := strings.Repeat("x", 50)

		// Execute
		r := NewRecord(1, title, 1999)

		// Check
		assert.Len(t, r.Title, 49, "title truncated")
		assert.False(t, TitleFits(title), "title does not fit")
	})

	t.Run("normalize leaves the original untouched", func(t *testing.T) {
		// Prepare
		r := Record{Id: 2, Title: strings.Repeat("y", 80), Year: 2001}

		// Execute
		n := r.Normalize()

		// Check
		assert.Len(t, r.Title, 80, "original kept")
		assert.Len(t, n.Title, 49, "copy truncated")
	})
}

func TestSlotState_String(t *testing.T) {
	assert.Equal(t, "Vacant", SlotEmpty.String())
	assert.Equal(t, "Occupied", SlotOccupied.String())
	assert.Equal(t, "Removed", SlotTombstone.String())
}
