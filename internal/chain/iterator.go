package chain

import (
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/model"
)

// Records - Is used to iterate over chain records one by one.
// The iterator is only valid until the chain is modified.
type Records struct {
	node *Node
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.node != nil
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is of type crt.NotFound if there are no more records when calling this function.
func (R *Records) Next() (record model.Record, err error) {
	if R.node == nil {
		err = crt.NotFound{}
		return
	}

	record = R.node.record
	R.node = R.node.next

	return
}
