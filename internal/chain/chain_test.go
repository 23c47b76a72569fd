package chain

import (
	"testing"

	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, l *List) []int64 {
	var ids []int64
	iter := l.Records()
	for iter.HasNext() {
		r, err := iter.Next()
		require.NoError(t, err, "gets next record")
		ids = append(ids, r.Id)
	}
	return ids
}

func TestList_Prepend(t *testing.T) {
	t.Run("keeps newest first", func(t *testing.T) {
		// Prepare
		var l List

		// Execute
		l.Prepend(NewNode(model.Record{Id: 2}))
		l.Prepend(NewNode(model.Record{Id: 7}))
		l.Prepend(NewNode(model.Record{Id: 12}))

		// Check
		assert.Equal(t, []int64{12, 7, 2}, collect(t, &l), "newest to oldest")
		assert.Equal(t, int64(3), l.Len(), "length")
	})
}

func TestList_Unlink(t *testing.T) {
	t.Run("unlinks head, middle and tail", func(t *testing.T) {
		for _, id := range []int64{1, 2, 3} {
			// Prepare
			var l List
			l.Prepend(NewNode(model.Record{Id: 1}))
			l.Prepend(NewNode(model.Record{Id: 2}))
			l.Prepend(NewNode(model.Record{Id: 3}))

			// Execute
			n := l.Unlink(id)

			// Check
			require.NotNilf(t, n, "unlinked node %d", id)
			assert.Equal(t, id, n.Record().Id, "right node unlinked")
			assert.Nil(t, n.next, "detached node has no successor")
			assert.NotContains(t, collect(t, &l), id, "id no longer in chain")
			assert.Equal(t, int64(2), l.Len(), "length decreased")
		}
	})

	t.Run("returns nil for a missing id", func(t *testing.T) {
		// Prepare
		var l List
		l.Prepend(NewNode(model.Record{Id: 1}))

		// Execute
		n := l.Unlink(5)

		// Check
		assert.Nil(t, n, "nothing unlinked")
		assert.Equal(t, []int64{1}, collect(t, &l), "chain unchanged")
	})
}

func TestList_FindAndReplace(t *testing.T) {
	t.Run("finds and replaces a record", func(t *testing.T) {
		// Prepare
		var l List
		l.Prepend(NewNode(model.Record{Id: 5, Title: "A", Year: 2000}))

		// Execute
		ok := l.Replace(5, model.Record{Id: 5, Title: "B", Year: 2001})
		r, found := l.Find(5)

		// Check
		assert.True(t, ok, "replaced")
		assert.True(t, found, "found")
		assert.Equal(t, model.Record{Id: 5, Title: "B", Year: 2001}, r, "new payload")
	})

	t.Run("reports missing ids", func(t *testing.T) {
		// Prepare
		var l List

		// Execute
		ok := l.Replace(5, model.Record{Id: 5})
		_, found := l.Find(5)

		// Check
		assert.False(t, ok, "not replaced")
		assert.False(t, found, "not found")
	})
}

func TestList_Drain(t *testing.T) {
	t.Run("releases every node", func(t *testing.T) {
		// Prepare
		var l List
		for i := int64(0); i < 5; i++ {
			l.Prepend(NewNode(model.Record{Id: i}))
		}
		var released []int64

		// Execute
		l.Drain(func(n *Node) { released = append(released, n.Record().Id) })

		// Check
		assert.Equal(t, []int64{4, 3, 2, 1, 0}, released, "released head to tail")
		assert.Equal(t, int64(0), l.Len(), "chain empty")
		assert.False(t, l.Records().HasNext(), "no records left")
	})
}

func TestRecords_Next(t *testing.T) {
	t.Run("returns NotFound when exhausted", func(t *testing.T) {
		// Prepare
		var l List
		iter := l.Records()

		// Execute
		_, err := iter.Next()

		// Check
		assert.ErrorIs(t, err, crt.NotFound{}, "correct error")
	})
}
