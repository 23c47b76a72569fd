package openaddressing

import (
	"fmt"

	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/hash"
	"github.com/gostonefire/recordtable/internal/model"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Technique.
// It uses one fixed array of slots where each slot holds at most one record. In case of a collision, it probes
// linearly through the table looking for a slot that is not occupied and assigns the record to it.
// Removed records leave a tombstone so that records placed further down the probe sequence stay reachable.
// Once all slots are occupied the table will accept no more records.
type OATable struct {
	slots                    []model.Slot
	numberOfBucketsNeeded    int64
	numberOfBucketsAvailable int64
	hashAlgorithm            hashfunc.HashAlgorithm
	internalAlgorithm        bool
	nEmpty                   int64
	nOccupied                int64
	nTombstone               int64
}

// NewOATable - Returns a pointer to a new instance of an Open Addressing table with every slot empty.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable(tableConf model.TableConf) (oaTable *OATable, err error) {
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

	oaTable = &OATable{
		slots:                    make([]model.Slot, numberOfBuckets),
		numberOfBucketsNeeded:    tableConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable: numberOfBuckets,
		hashAlgorithm:            tableConf.HashAlgorithm,
		internalAlgorithm:        internalAlg,
		nEmpty:                   numberOfBuckets,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.OpenAddressing,
		NumberOfBucketsNeeded:        Q.numberOfBucketsNeeded,
		NumberOfBucketsAvailable:     Q.numberOfBucketsAvailable,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetBucketNo - Returns the home slot of the given id, that is where probing starts
func (Q *OATable) GetBucketNo(id int64) (bucketNo int64, err error) {
	bucketNo = Q.hashAlgorithm.HashFunc1(id)
	if bucketNo < 0 || bucketNo >= Q.numberOfBucketsAvailable {
		err = fmt.Errorf("recieved bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// GetBucket - Returns the slot with the given slot number
//   - bucketNo is the index of the slot, 0 to number of buckets - 1
//
// It returns:
//   - bucket is a model.Bucket struct holding the slot state and zero or one record
//   - err is standard error
func (Q *OATable) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if bucketNo < 0 || bucketNo >= Q.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 to %d", bucketNo, Q.numberOfBucketsAvailable-1)
		return
	}

	slot := Q.slots[bucketNo]
	bucket = model.Bucket{BucketNo: bucketNo, State: slot.State}
	if slot.State == model.SlotOccupied {
		bucket.Records = []model.Record{slot.Record}
	}

	return
}

// Get - Gets the record that corresponds to the given id.
//   - id is the identifier of a record
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NotFound is also returned.
//   - err is either of type crt.NotFound or a standard error, if something went wrong
func (Q *OATable) Get(id int64) (record model.Record, err error) {
	probe, err := Q.probingForExisting(id)
	if err != nil {
		return
	}

	record = Q.slots[probe].Record

	return
}

// Insert - Adds a record, fails if a record with the same id already exists.
//   - record is the record to insert, its title is truncated if too long
//
// It returns:
//   - err is crt.DuplicateKey, crt.TableFull or a standard error, the table is left unchanged on error
func (Q *OATable) Insert(record model.Record) (err error) {
	probe, err := Q.probingForInsert(record.Id)
	if err != nil {
		return
	}

	fromState := Q.slots[probe].State
	Q.slots[probe] = model.Slot{State: model.SlotOccupied, Record: record.Normalize()}
	Q.updateUtilizationInfo(fromState, model.SlotOccupied)

	return
}

// Update - Replaces the record with the given id, the id of the stored record is kept.
//   - id is the identifier of the record to update
//   - record is the new payload
//
// It returns:
//   - err is crt.NotFound or a standard error, the table is left unchanged on error
func (Q *OATable) Update(id int64, record model.Record) (err error) {
	probe, err := Q.probingForExisting(id)
	if err != nil {
		return
	}

	record.Id = id
	Q.slots[probe].Record = record.Normalize()

	return
}

// Remove - Removes the record with the given id by turning its slot into a tombstone
//   - id is the identifier of the record to remove
//
// It returns:
//   - err is crt.NotFound or a standard error, the table is left unchanged on error
func (Q *OATable) Remove(id int64) (err error) {
	probe, err := Q.probingForExisting(id)
	if err != nil {
		return
	}

	Q.slots[probe] = model.Slot{State: model.SlotTombstone}
	Q.updateUtilizationInfo(model.SlotOccupied, model.SlotTombstone)

	return
}

// Utilization - Returns the number of empty, occupied and tombstone slots
func (Q *OATable) Utilization() (nEmpty, nOccupied, nTombstone int64) {
	return Q.nEmpty, Q.nOccupied, Q.nTombstone
}

// Teardown - Nothing to release for open addressing, the slot array lives as long as the table
func (Q *OATable) Teardown() (err error) {
	return
}
