package separatechaining

import (
	"fmt"

	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/chain"
	"github.com/gostonefire/recordtable/internal/hash"
	"github.com/gostonefire/recordtable/internal/model"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// It uses one fixed array of buckets where each bucket is the head of a singly linked list of records,
// newest record first. Nodes are handed out by a node allocator which keeps count of live nodes.
type SCTable struct {
	buckets                  []chain.List
	numberOfBucketsNeeded    int64
	numberOfBucketsAvailable int64
	hashAlgorithm            hashfunc.HashAlgorithm
	internalAlgorithm        bool
	allocator                *nodeAllocator
	closed                   bool
}

// NewSCTable - Returns a pointer to a new instance of a Separate Chaining table with every bucket empty.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable(tableConf model.TableConf) (scTable *SCTable, err error) {
	if tableConf.NumberOfBucketsNeeded <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if tableConf.HashAlgorithm == nil {
		tableConf.HashAlgorithm = hash.NewModuloHashAlgorithm(tableConf.NumberOfBucketsNeeded)
		internalAlg = true
	} else {
		tableConf.HashAlgorithm.SetTableSize(tableConf.NumberOfBucketsNeeded)
	}

	numberOfBuckets := tableConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d, must be higher than 0 (zero)", numberOfBuckets)
		return
	}

	scTable = &SCTable{
		buckets:                  make([]chain.List, numberOfBuckets),
		numberOfBucketsNeeded:    tableConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable: numberOfBuckets,
		hashAlgorithm:            tableConf.HashAlgorithm,
		internalAlgorithm:        internalAlg,
		allocator:                &nodeAllocator{maxNodes: tableConf.MaxNodes},
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		NumberOfBucketsNeeded:        S.numberOfBucketsNeeded,
		NumberOfBucketsAvailable:     S.numberOfBucketsAvailable,
		InternalAlgorithm:            S.internalAlgorithm,
		MaxNodes:                     S.allocator.maxNodes,
	}

	return
}

// GetBucketNo - Returns which bucket number the given id results in
func (S *SCTable) GetBucketNo(id int64) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1(id)
	if bucketNo < 0 || bucketNo >= S.numberOfBucketsAvailable {
		err = fmt.Errorf("recieved bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// GetBucket - Returns a bucket with its records given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct containing all records in the chain, newest first
//   - err is crt.TableClosed or a standard error
func (S *SCTable) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if S.closed {
		err = crt.TableClosed{}
		return
	}
	if bucketNo < 0 || bucketNo >= S.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 to %d", bucketNo, S.numberOfBucketsAvailable-1)
		return
	}

	bucket = model.Bucket{BucketNo: bucketNo, State: model.SlotEmpty}

	iter := S.buckets[bucketNo].Records()
	var record model.Record
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		bucket.Records = append(bucket.Records, record)
	}
	if len(bucket.Records) > 0 {
		bucket.State = model.SlotOccupied
	}

	return
}

// Get - Gets the record that corresponds to the given id.
//   - id is the identifier of a record
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NotFound is also returned.
//   - err is either of type crt.NotFound, crt.TableClosed or a standard error, if something went wrong
func (S *SCTable) Get(id int64) (record model.Record, err error) {
	list, err := S.bucketOf(id)
	if err != nil {
		return
	}

	record, found := list.Find(id)
	if !found {
		err = crt.NotFound{}
	}

	return
}

// Insert - Adds a record at the head of its bucket chain, fails if a record with the same id already exists.
//   - record is the record to insert, its title is truncated if too long
//
// It returns:
//   - err is crt.DuplicateKey, crt.AllocationFailure, crt.TableClosed or a standard error, the table is left unchanged on error
func (S *SCTable) Insert(record model.Record) (err error) {
	list, err := S.bucketOf(record.Id)
	if err != nil {
		return
	}

	if _, found := list.Find(record.Id); found {
		err = crt.DuplicateKey{}
		return
	}

	node, err := S.allocator.allocate(record.Normalize())
	if err != nil {
		return
	}
	list.Prepend(node)

	return
}

// Update - Replaces the record with the given id, the id of the stored record is kept.
//   - id is the identifier of the record to update
//   - record is the new payload
//
// It returns:
//   - err is crt.NotFound, crt.TableClosed or a standard error, the table is left unchanged on error
func (S *SCTable) Update(id int64, record model.Record) (err error) {
	list, err := S.bucketOf(id)
	if err != nil {
		return
	}

	record.Id = id
	if !list.Replace(id, record.Normalize()) {
		err = crt.NotFound{}
	}

	return
}

// Remove - Unlinks the record with the given id from its bucket chain and releases the node
//   - id is the identifier of the record to remove
//
// It returns:
//   - err is crt.NotFound, crt.TableClosed or a standard error, the table is left unchanged on error
func (S *SCTable) Remove(id int64) (err error) {
	list, err := S.bucketOf(id)
	if err != nil {
		return
	}

	node := list.Unlink(id)
	if node == nil {
		err = crt.NotFound{}
		return
	}
	S.allocator.release(node)

	return
}

// LiveNodes - Returns the number of nodes currently owned by the table
func (S *SCTable) LiveNodes() int64 {
	return S.allocator.live
}

// Teardown - Releases every node in every bucket and then the bucket array. The table can not be used afterwards,
// any further call, including another Teardown, returns crt.TableClosed.
func (S *SCTable) Teardown() (err error) {
	if S.closed {
		err = crt.TableClosed{}
		return
	}

	for i := range S.buckets {
		S.buckets[i].Drain(S.allocator.release)
	}
	S.buckets = nil
	S.closed = true

	return
}

// bucketOf - Returns the chain that the given id belongs to
func (S *SCTable) bucketOf(id int64) (list *chain.List, err error) {
	if S.closed {
		err = crt.TableClosed{}
		return
	}

	bucketNo, err := S.GetBucketNo(id)
	if err != nil {
		return
	}

	list = &S.buckets[bucketNo]

	return
}
