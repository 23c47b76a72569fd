package chain

import "github.com/gostonefire/recordtable/internal/model"

// Node - One link in a bucket chain. A node is owned either by the chain head or by its predecessor,
// never by both, and its fields are only reachable through the List operations.
type Node struct {
	record model.Record
	next   *Node
}

// NewNode - Returns a pointer to a new detached node holding record
func NewNode(record model.Record) *Node {
	return &Node{record: record}
}

// Record - Returns the record held by the node
func (N *Node) Record() model.Record {
	return N.record
}

// Clear - Drops the record and the successor link of a detached node
func (N *Node) Clear() {
	N.record = model.Record{}
	N.next = nil
}

// List - A singly linked chain of nodes, head is the most recently prepended node
type List struct {
	head   *Node
	length int64
}

// Len - Returns the number of nodes in the chain
func (L *List) Len() int64 {
	return L.length
}

// Prepend - Makes node the new head of the chain. The chain takes ownership of node.
func (L *List) Prepend(node *Node) {
	node.next = L.head
	L.head = node
	L.length++
}

// Find - Returns the record with the given id if present in the chain
func (L *List) Find(id int64) (record model.Record, found bool) {
	for n := L.head; n != nil; n = n.next {
		if n.record.Id == id {
			return n.record, true
		}
	}

	return
}

// Replace - Replaces the record of the first node with the given id, returns false if no such node exists
func (L *List) Replace(id int64, record model.Record) bool {
	for n := L.head; n != nil; n = n.next {
		if n.record.Id == id {
			n.record = record
			return true
		}
	}

	return false
}

// Unlink - Detaches the first node with the given id from the chain and hands it over to the caller.
// It returns nil if no such node exists.
func (L *List) Unlink(id int64) (node *Node) {
	var prev *Node
	for n := L.head; n != nil; n = n.next {
		if n.record.Id == id {
			if prev == nil {
				L.head = n.next
			} else {
				prev.next = n.next
			}
			n.next = nil
			L.length--
			return n
		}
		prev = n
	}

	return nil
}

// Drain - Detaches every node from head to tail, handing each one to release
func (L *List) Drain(release func(*Node)) {
	n := L.head
	L.head = nil
	L.length = 0
	for n != nil {
		next := n.next
		n.next = nil
		release(n)
		n = next
	}
}

// Records - Returns an iterator over the records in the chain, newest to oldest
func (L *List) Records() *Records {
	return &Records{node: L.head}
}
