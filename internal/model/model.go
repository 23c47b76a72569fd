package model

import (
	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/gostonefire/recordtable/internal/utils"
)

// SlotState - State of one slot in an open addressing table, or of a bucket as a whole in a separate chaining table
type SlotState uint8

// SlotEmpty - State indicating a slot that has never been in use
const SlotEmpty SlotState = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied SlotState = 1

// SlotTombstone - State indicating a slot that has been in use but was removed
const SlotTombstone SlotState = 2

// String - Returns the name used when listing a slot in the given state
func (S SlotState) String() string {
	switch S {
	case SlotOccupied:
		return "Occupied"
	case SlotTombstone:
		return "Removed"
	default:
		return "Vacant"
	}
}

// Record - Represents one stored record
type Record struct {
	Id    int64
	Title string
	Year  int64
}

// NewRecord - Returns a Record with the title truncated to conf.MaxTitleLength characters
func NewRecord(id int64, title string, year int64) Record {
	r := Record{Id: id, Title: title, Year: year}
	return r.Normalize()
}

// Normalize - Returns a copy of the record with the title truncated to conf.MaxTitleLength characters
func (R Record) Normalize() Record {
	R.Title, _ = utils.TruncateRunes(R.Title, conf.MaxTitleLength)
	return R
}

// TitleFits - Returns true if the title is stored without truncation
func TitleFits(title string) bool {
	_, truncated := utils.TruncateRunes(title, conf.MaxTitleLength)
	return !truncated
}

// Slot - Represents one cell in an open addressing table, Record is only meaningful when State is SlotOccupied
type Slot struct {
	State  SlotState
	Record Record
}

// Bucket - Represents the content of one slot or bucket as presented to callers
//   - BucketNo is the index of the slot or bucket
//   - State is SlotOccupied if it holds at least one record, SlotTombstone for a removed open addressing slot and SlotEmpty otherwise
//   - Records holds the records in the slot (zero or one) or in the bucket chain ordered newest to oldest
type Bucket struct {
	BucketNo int64
	State    SlotState
	Records  []Record
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBucketsNeeded        int64
	NumberOfBucketsAvailable     int64
	InternalAlgorithm            bool
	MaxNodes                     int64
}

// TableConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation.
//   - NumberOfBucketsNeeded is the capacity asked for
//   - HashAlgorithm is the hash function to use, nil gives the internal modulo algorithm
//   - MaxNodes is the max number of live chain nodes for separate chaining, zero or less means no limit
type TableConf struct {
	NumberOfBucketsNeeded int64
	HashAlgorithm         hashfunc.HashAlgorithm
	MaxNodes              int64
}
