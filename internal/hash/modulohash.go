package hash

import "github.com/gostonefire/recordtable/internal/utils"

// ModuloHashAlgorithm - The internally used slot/bucket selection algorithm, bucket = id mod tableSize.
// Negative ids are brought into range by adding tableSize to a negative remainder.
// Probing is linear, (bucket + iteration) mod tableSize.
type ModuloHashAlgorithm struct {
	tableSize int64
}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm(tableSize int64) *ModuloHashAlgorithm {
	ha := &ModuloHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, the size is used as is.
func (M *ModuloHashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// HashFunc1 - Given id it generates an index (bucket) between 0 and table size - 1
func (M *ModuloHashAlgorithm) HashFunc1(id int64) int64 {
	return utils.PositiveMod(id, M.tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (M *ModuloHashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}

// ProbeIteration - Implements Linear Probing
func (M *ModuloHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return linearProbe(hf1Value, iteration, M.tableSize)
}

// linearProbe - Returns (hf1Value + iteration) mod tableSize
func linearProbe(hf1Value, iteration, tableSize int64) int64 {
	return utils.PositiveMod(hf1Value+iteration, tableSize)
}
