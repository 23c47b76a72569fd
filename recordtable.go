package recordtable

import (
	"fmt"

	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/model"
	"github.com/gostonefire/recordtable/internal/storage/openaddressing"
	"github.com/gostonefire/recordtable/internal/storage/separatechaining"
	"go.uber.org/zap"
)

// Record - One stored record, Id is the key and Title holds at most 49 characters
type Record = model.Record

// Bucket - Content of one slot (open addressing) or bucket (separate chaining) as returned by List
type Bucket = model.Bucket

// SlotState - State of a slot or bucket in a Bucket
type SlotState = model.SlotState

// Slot and bucket states
const (
	SlotEmpty     = model.SlotEmpty
	SlotOccupied  = model.SlotOccupied
	SlotTombstone = model.SlotTombstone
)

// NewRecord - Returns a Record with the title truncated to 49 characters
func NewRecord(id int64, title string, year int64) Record {
	return model.NewRecord(id, title, year)
}

// TitleFits - Returns true if the title is stored without truncation
func TitleFits(title string) bool {
	return model.TitleFits(title)
}

// Storage - Interface for any collision resolution technique implementation
type Storage interface {
	Get(id int64) (record model.Record, err error)
	Insert(record model.Record) (err error)
	Update(id int64, record model.Record) (err error)
	Remove(id int64) (err error)
	GetBucket(bucketNo int64) (bucket model.Bucket, err error)
	GetBucketNo(id int64) (bucketNo int64, err error)
	GetStorageParameters() (params model.StorageParameters)
	Teardown() (err error)
}

// nodeCounter - Implemented by storage that allocates nodes
type nodeCounter interface {
	LiveNodes() int64
}

// TableInfo - Information structure containing some information about the table created
//   - CollisionResolutionTechnique is crt.OpenAddressing or crt.SeparateChaining
//   - NumberOfBuckets is the fixed number of slots or buckets in the table
//   - InternalAlgorithm is true if the built-in modulo hash algorithm is in use
//   - MaxNodes is the cap on live chain nodes, zero means no cap
type TableInfo struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	InternalAlgorithm            bool
	MaxNodes                     int64
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Tombstones is the number of removed slots in an open addressing table
//   - EmptyBuckets is the number of slots or buckets without records
//   - LiveNodes is the number of allocated chain nodes in a separate chaining table
//   - LoadFactor is Records divided by the number of buckets, it is reported only, never acted upon
//   - BucketDistribution is the number of records stored in each bucket
type TableStat struct {
	Records            int64
	Tombstones         int64
	EmptyBuckets       int64
	LiveNodes          int64
	LoadFactor         float64
	BucketDistribution []int64
}

// RecordTable - The main implementation struct
type RecordTable struct {
	storage         Storage
	crtType         int
	numberOfBuckets int64
	logger          *zap.Logger
}

// Option - Sets an optional parameter in a call to NewRecordTable
type Option func(*options)

type options struct {
	hashAlgorithm hashfunc.HashAlgorithm
	logger        *zap.Logger
	maxNodes      int64
}

// WithHashAlgorithm - Uses a custom hash algorithm instead of the built-in id mod capacity
func WithHashAlgorithm(hashAlgorithm hashfunc.HashAlgorithm) Option {
	return func(o *options) {
		o.hashAlgorithm = hashAlgorithm
	}
}

// WithLogger - Logs the outcome of every operation at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxNodes - Caps the number of live chain nodes, an insert beyond the cap fails with crt.AllocationFailure.
// Only valid for crt.SeparateChaining.
func WithMaxNodes(maxNodes int64) Option {
	return func(o *options) {
		o.maxNodes = maxNodes
	}
}

// NewRecordTable - Returns a new record table with a fixed number of slots or buckets, all empty.
//   - crtType is the collision resolution technique, crt.OpenAddressing or crt.SeparateChaining
//   - capacity is the number of slots or buckets, it never changes
//   - opts are optional settings, see WithHashAlgorithm, WithLogger and WithMaxNodes
//
// It returns:
//   - recordTable is a pointer to a RecordTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the table created.
//   - err is a normal go Error which should be nil if everything went ok
func NewRecordTable(crtType int, capacity int64, opts ...Option) (recordTable *RecordTable, tableInfo TableInfo, err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	// Check if the node limit is valid
	if o.maxNodes < 0 {
		err = fmt.Errorf("max nodes can not be negative")
		return
	}
	if o.maxNodes > 0 && crtType != crt.SeparateChaining {
		err = fmt.Errorf("max nodes only applies to the separate chaining collision resolution technique")
		return
	}

	tableConf := model.TableConf{
		NumberOfBucketsNeeded: capacity,
		HashAlgorithm:         o.hashAlgorithm,
		MaxNodes:              o.maxNodes,
	}

	var storage Storage
	switch crtType {
	case crt.OpenAddressing:
		storage, err = openaddressing.NewOATable(tableConf)
	case crt.SeparateChaining:
		storage, err = separatechaining.NewSCTable(tableConf)
	default:
		err = fmt.Errorf("unknown collision resolution technique %d", crtType)
	}
	if err != nil {
		return
	}

	sp := storage.GetStorageParameters()

	recordTable = &RecordTable{
		storage:         storage,
		crtType:         crtType,
		numberOfBuckets: sp.NumberOfBucketsAvailable,
		logger:          o.logger.With(zap.String("crt", crt.Name(crtType))),
	}

	tableInfo = TableInfo{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		NumberOfBuckets:              sp.NumberOfBucketsAvailable,
		InternalAlgorithm:            sp.InternalAlgorithm,
		MaxNodes:                     sp.MaxNodes,
	}

	recordTable.logger.Debug("record table created",
		zap.Int64("buckets", tableInfo.NumberOfBuckets),
		zap.Bool("internalAlgorithm", tableInfo.InternalAlgorithm),
	)

	return
}

// CollisionResolutionTechnique - Returns the technique the table was created with
func (R *RecordTable) CollisionResolutionTechnique() int {
	return R.crtType
}

// NumberOfBuckets - Returns the fixed number of slots or buckets
func (R *RecordTable) NumberOfBuckets() int64 {
	return R.numberOfBuckets
}
