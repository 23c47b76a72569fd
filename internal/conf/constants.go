package conf

// DefaultCapacity - Number of slots or buckets used when no capacity is configured
const DefaultCapacity int64 = 20

// MaxTitleLength - Maximum number of characters kept in a record title, longer titles are truncated
const MaxTitleLength int = 49

// MaxProbeFactor - Multiplier on the table size giving the max number of probe iterations before giving up.
// Only a badly behaving custom hash algorithm will ever get near it.
const MaxProbeFactor int64 = 10
