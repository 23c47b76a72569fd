package separatechaining

import (
	"fmt"

	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/chain"
	"github.com/gostonefire/recordtable/internal/model"
)

// nodeAllocator - Hands out chain nodes and keeps count of the ones currently owned by the table.
// With maxNodes above zero it refuses to have more than maxNodes live nodes at any time.
type nodeAllocator struct {
	live     int64
	maxNodes int64
}

// allocate - Returns a new node holding record, or crt.AllocationFailure if the node limit is reached
func (A *nodeAllocator) allocate(record model.Record) (node *chain.Node, err error) {
	if A.maxNodes > 0 && A.live >= A.maxNodes {
		err = crt.AllocationFailure{}
		return
	}

	node = chain.NewNode(record)
	A.live++

	return
}

// release - Takes back a node that has been unlinked from its chain
func (A *nodeAllocator) release(node *chain.Node) {
	node.Clear()
	A.live--
	if A.live < 0 {
		panic(fmt.Sprintf("node allocator released more nodes than allocated (%d)", A.live))
	}
}
