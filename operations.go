package recordtable

import (
	"errors"

	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/model"
	"go.uber.org/zap"
)

// Get - Gets the record that corresponds to the given id.
//   - id is the identifier of a record
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NotFound is also returned.
//   - err is either of type crt.NotFound, crt.TableClosed or a standard error, if something went wrong
func (R *RecordTable) Get(id int64) (record Record, err error) {
	record, err = R.storage.Get(id)
	R.logOutcome("get", id, err)

	return
}

// Insert - Adds a new record. The title is truncated to 49 characters.
//   - record is the record to add, its Id must not already be present
//
// It returns:
//   - err is crt.DuplicateKey, crt.TableFull (open addressing), crt.AllocationFailure (separate chaining),
//     crt.TableClosed or a standard error. The table is left unchanged on error.
func (R *RecordTable) Insert(record Record) (err error) {
	err = R.storage.Insert(record)
	R.logOutcome("insert", record.Id, err)

	return
}

// Update - Replaces the title and year of the record with the given id, the id itself is kept.
//   - id is the identifier of the record to update
//   - record is the new payload, its Id is set to id
//
// It returns:
//   - err is crt.NotFound, crt.TableClosed or a standard error. The table is left unchanged on error.
func (R *RecordTable) Update(id int64, record Record) (err error) {
	record.Id = id
	err = R.storage.Update(id, record)
	R.logOutcome("update", id, err)

	return
}

// Remove - Removes the record with the given id.
// In an open addressing table the slot becomes a tombstone, in a separate chaining table the node is released.
//   - id is the identifier of the record to remove
//
// It returns:
//   - err is crt.NotFound, crt.TableClosed or a standard error. The table is left unchanged on error.
func (R *RecordTable) Remove(id int64) (err error) {
	err = R.storage.Remove(id)
	R.logOutcome("remove", id, err)

	return
}

// BucketNo - Returns which slot or bucket the given id hashes to, in open addressing this is where probing starts
func (R *RecordTable) BucketNo(id int64) (bucketNo int64, err error) {
	return R.storage.GetBucketNo(id)
}

// List - Returns an iterator over every slot or bucket in index order. Nothing is read until Next is called.
func (R *RecordTable) List() *Listing {
	return newListing(R.storage, R.numberOfBuckets)
}

// Buckets - Returns every slot or bucket in index order in one slice
func (R *RecordTable) Buckets() (buckets []Bucket, err error) {
	var bucket Bucket
	buckets = make([]Bucket, 0, R.numberOfBuckets)

	iter := R.List()
	for iter.HasNext() {
		bucket, err = iter.Next()
		if err != nil {
			buckets = nil
			return
		}
		buckets = append(buckets, bucket)
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set TableStat.BucketDistribution to nil.
func (R *RecordTable) Stat(includeDistribution bool) (tableStat *TableStat, err error) {
	var bucket model.Bucket
	var ts TableStat

	if includeDistribution {
		ts.BucketDistribution = make([]int64, R.numberOfBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < R.numberOfBuckets; i++ {
		bucket, err = R.storage.GetBucket(i)
		if err != nil {
			return
		}

		n := int64(len(bucket.Records))
		ts.Records += n
		if n == 0 {
			ts.EmptyBuckets++
		}
		if bucket.State == model.SlotTombstone {
			ts.Tombstones++
		}
		if includeDistribution {
			ts.BucketDistribution[i] = n
		}
	}

	if nc, ok := R.storage.(nodeCounter); ok {
		ts.LiveNodes = nc.LiveNodes()
	}
	ts.LoadFactor = float64(ts.Records) / float64(R.numberOfBuckets)

	tableStat = &ts
	return
}

// Teardown - Releases everything the table owns. For separate chaining every node and the bucket array are
// released and any later call returns crt.TableClosed. For open addressing there is nothing to release.
func (R *RecordTable) Teardown() (err error) {
	err = R.storage.Teardown()
	if err != nil {
		R.logger.Debug("teardown failed", zap.Error(err))
		return
	}

	R.logger.Debug("record table torn down")

	return
}

// logOutcome - Logs the result of a single record operation
func (R *RecordTable) logOutcome(op string, id int64, err error) {
	if err == nil {
		R.logger.Debug(op+" succeeded", zap.Int64("id", id))
		return
	}

	R.logger.Debug(op+" failed", zap.Int64("id", id), zap.String("kind", ErrorKind(err)), zap.Error(err))
}

// ErrorKind - Returns the name of the error kind of err, or "Error" if it is not one of the crt errors
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, crt.DuplicateKey{}):
		return "DuplicateKey"
	case errors.Is(err, crt.NotFound{}):
		return "NotFound"
	case errors.Is(err, crt.TableFull{}):
		return "TableFull"
	case errors.Is(err, crt.AllocationFailure{}):
		return "AllocationFailure"
	case errors.Is(err, crt.TableClosed{}):
		return "TableClosed"
	case errors.Is(err, crt.ProbingAlgorithm{}):
		return "ProbingAlgorithm"
	default:
		return "Error"
	}
}
