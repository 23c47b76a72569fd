package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gostonefire/recordtable"
	"github.com/gostonefire/recordtable/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, crtType int, capacity int64, script ...string) (*recordtable.RecordTable, string) {
	table, _, err := recordtable.NewRecordTable(crtType, capacity)
	require.NoError(t, err, "create new record table")

	var out bytes.Buffer
	h := NewHarness(table, strings.NewReader(strings.Join(script, "\n")+"\n"), &out, nil)
	require.NoError(t, h.Run(), "run harness")

	return table, out.String()
}

func TestHarness_Run(t *testing.T) {
	t.Run("inserts updates and lists for open addressing", func(t *testing.T) {
		// Execute
		table, out := runSession(t, crt.OpenAddressing, 5,
			"1", "5", "A", "2000",
			"2", "5", "B", "2001",
			"4",
			"0",
		)

		// Check
		assert.Contains(t, out, "Record inserted.", "insert reported")
		assert.Contains(t, out, "Record updated.", "update reported")
		assert.Contains(t, out, "Slot 0 -> ID: 5, Title: B, Year: 2001", "updated record listed")
		assert.Contains(t, out, "Slot 1 -> Empty", "empty slot listed")
		assert.Contains(t, out, "Exiting...", "exit reported")
		r, err := table.Get(5)
		assert.NoError(t, err, "record stored")
		assert.Equal(t, "B", r.Title, "title updated")
	})

	t.Run("shows removed slots for open addressing", func(t *testing.T) {
		// Execute
		_, out := runSession(t, crt.OpenAddressing, 5,
			"1", "1", "one", "2001",
			"3", "1",
			"3", "1",
			"4",
		)

		// Check
		assert.Contains(t, out, "Record removed.", "remove reported")
		assert.Contains(t, out, "Record with ID 1 not found for removal.", "second remove reported")
		assert.Contains(t, out, "Slot 1 -> Removed", "tombstone listed")
	})

	t.Run("lists chains newest first for separate chaining", func(t *testing.T) {
		// Execute
		_, out := runSession(t, crt.SeparateChaining, 5,
			"1", "2", "two", "2002",
			"1", "7", "seven", "2007",
			"4",
			"0",
		)

		// Check
		assert.Contains(t, out, "Bucket 2 -> [ID: 7, Title: seven, Year: 2007] [ID: 2, Title: two, Year: 2002]", "chain listed")
		assert.Contains(t, out, "Bucket 0 -> Empty", "empty bucket listed")
	})

	t.Run("reports duplicates and missing records", func(t *testing.T) {
		// Execute
		_, out := runSession(t, crt.SeparateChaining, 5,
			"1", "3", "x", "1999",
			"1", "3", "y", "1998",
			"2", "4", "z", "1997",
			"5", "4",
			"5", "3",
			"0",
		)

		// Check
		assert.Contains(t, out, "ID 3 already exists!", "duplicate reported")
		assert.Contains(t, out, "Record with ID 4 not found for update.", "update miss reported")
		assert.Contains(t, out, "Record with ID 4 not found.", "search miss reported")
		assert.Contains(t, out, "ID: 3, Title: x, Year: 1999", "search hit shown")
	})

	t.Run("reports a full table", func(t *testing.T) {
		// Execute
		_, out := runSession(t, crt.OpenAddressing, 1,
			"1", "1", "a", "1",
			"1", "2", "b", "2",
			"0",
		)

		// Check
		assert.Contains(t, out, "Table is full!", "table full reported")
	})

	t.Run("continues after invalid input", func(t *testing.T) {
		// Execute
		table, out := runSession(t, crt.OpenAddressing, 5,
			"9",
			"1", "abc",
			"1", "4", "four", "20x",
			"1", "4", "four", "2004",
			"0",
		)

		// Check
		assert.Contains(t, out, "Invalid option! Try again.", "unknown option reported")
		assert.Contains(t, out, `invalid id "abc"`, "bad id reported")
		assert.Contains(t, out, `invalid year "20x"`, "bad year reported")
		_, err := table.Get(4)
		assert.NoError(t, err, "valid insert stored")
	})

	t.Run("warns about and truncates long titles", func(t *testing.T) {
		// Prepare
		long := strings.Repeat("t", 60)

		// Execute
		table, out := runSession(t, crt.OpenAddressing, 5, "1", "1", long, "2000", "0")

		// Check
		assert.Contains(t, out, "Warning: title longer than 49 characters", "warning shown")
		r, err := table.Get(1)
		assert.NoError(t, err, "record stored")
		assert.Equal(t, strings.Repeat("t", 49), r.Title, "title truncated")
	})

	t.Run("prints statistics", func(t *testing.T) {
		// Execute
		_, out := runSession(t, crt.SeparateChaining, 4,
			"1", "1", "a", "1",
			"1", "5", "b", "2",
			"6",
			"0",
		)

		// Check
		assert.Contains(t, out, "Records: 2", "records")
		assert.Contains(t, out, "Empty buckets: 3", "empty buckets")
		assert.Contains(t, out, "Live nodes: 2", "live nodes")
		assert.Contains(t, out, "Load factor: 0.50", "load factor")
	})

	t.Run("ends on end of input in the middle of an operation", func(t *testing.T) {
		// Prepare
		table, _, err := recordtable.NewRecordTable(crt.OpenAddressing, 5)
		require.NoError(t, err, "create new record table")
		var out bytes.Buffer
		h := NewHarness(table, strings.NewReader("1\n7\n"), &out, nil)

		// Execute
		err = h.Run()

		// Check
		assert.NoError(t, err, "end of input is not an error")
		assert.Contains(t, out.String(), "Exiting...", "exit reported")
		_, err = table.Get(7)
		assert.ErrorIs(t, err, crt.NotFound{}, "nothing inserted")
	})
}
