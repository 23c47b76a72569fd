package recordtable

import (
	"fmt"

	"github.com/gostonefire/recordtable/crt"
)

// Listing - Is used to iterate over slots or buckets one by one, in index order.
// It reads the table as it goes, so it reflects any change made to buckets not yet visited.
type Listing struct {
	storage         Storage
	bucketNo        int64
	numberOfBuckets int64
}

// newListing - Returns a pointer to a new Listing struct
func newListing(storage Storage, numberOfBuckets int64) *Listing {
	return &Listing{
		storage:         storage,
		numberOfBuckets: numberOfBuckets,
	}
}

// HasNext - Returns true if there are more buckets to be fetched from a call to Next.
func (L *Listing) HasNext() bool {
	return L.bucketNo < L.numberOfBuckets
}

// Next - Returns bucket.
// It returns:
//   - bucket is the next slot or bucket.
//   - err is either a standard error, crt.TableClosed or if there are no more buckets when calling this function an error of type crt.NotFound is returned.
func (L *Listing) Next() (bucket Bucket, err error) {
	if L.bucketNo >= L.numberOfBuckets {
		err = crt.NotFound{}
		return
	}

	bucket, err = L.storage.GetBucket(L.bucketNo)
	if err != nil {
		err = fmt.Errorf("error while retrieving bucket %d: %w", L.bucketNo, err)
		return
	}

	L.bucketNo++

	return
}

// Reset - Starts the iteration over from the first bucket
func (L *Listing) Reset() {
	L.bucketNo = 0
}
