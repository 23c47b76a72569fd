package hash

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Murmur3HashAlgorithm - Slot/bucket selection using murmur3.Sum64 over the little endian bytes of the id,
// bucket = hash mod tableSize. It spreads ids that share a common stride (0, N, 2N...) which the modulo
// algorithm would put in the same bucket. Probing is linear.
type Murmur3HashAlgorithm struct {
	tableSize int64
}

// NewMurmur3HashAlgorithm - Returns a pointer to a new Murmur3HashAlgorithm instance
func NewMurmur3HashAlgorithm(tableSize int64) *Murmur3HashAlgorithm {
	ha := &Murmur3HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, the size is used as is.
func (M *Murmur3HashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// HashFunc1 - Given id it generates an index (bucket) between 0 and table size - 1
func (M *Murmur3HashAlgorithm) HashFunc1(id int64) int64 {
	h := murmur3.Sum64(idBytes(id))
	return int64(h % uint64(M.tableSize))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (M *Murmur3HashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}

// ProbeIteration - Implements Linear Probing
func (M *Murmur3HashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return linearProbe(hf1Value, iteration, M.tableSize)
}

// idBytes - Returns the id as 8 little endian bytes
func idBytes(id int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(id))
	return b
}
