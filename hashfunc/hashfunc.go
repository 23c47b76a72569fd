package hashfunc

// HashAlgorithm - Interface that permits an implementation using the RecordTable to supply a custom bucket
// selection algorithm suited for its particular distribution of ids.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new record table. Hence, if a custom hash algorithm is supplied that implements
	// this interface and the instance is already having a table size, it will be overwritten by the capacity
	// that was supplied when creating the record table.
	//   - tableSize is the number of slots or buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given id it generates an index (slot or bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(id int64) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	// The returned value decides how many slots or buckets the table allocates, it must not be less than one.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in the given iteration, given the value from HashFunc1.
	// Since this function will be called repeatedly in a collision resolution situation, and the hash value
	// is the same throughout iterations for one id, the function takes that value rather than the id as input.
	// A probing value outside the table range is allowed, the internal loop will then just increment the
	// iteration by one and call this function again.
	// The function is not used for the Separate Chaining Collision Resolution Technique.
	ProbeIteration(hf1Value, iteration int64) int64
}
