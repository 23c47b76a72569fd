package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Slot/bucket selection using xxhash.Sum64 over the little endian bytes of the id,
// bucket = hash mod tableSize. Probing is linear.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, the size is used as is.
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// HashFunc1 - Given id it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(id int64) int64 {
	h := xxhash.Sum64(idBytes(id))
	return int64(h % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}

// ProbeIteration - Implements Linear Probing
func (X *XXHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return linearProbe(hf1Value, iteration, X.tableSize)
}
