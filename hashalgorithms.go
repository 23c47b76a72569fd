package recordtable

import (
	"fmt"
	"strings"

	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/config"
	"github.com/gostonefire/recordtable/internal/hash"
)

// NewModuloHashAlgorithm - Returns the built-in hash algorithm, id mod tableSize with linear probing
func NewModuloHashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewModuloHashAlgorithm(tableSize)
}

// NewMurmur3HashAlgorithm - Returns a hash algorithm using murmur3 over the id bytes, with linear probing
func NewMurmur3HashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewMurmur3HashAlgorithm(tableSize)
}

// NewXXHashAlgorithm - Returns a hash algorithm using xxhash over the id bytes, with linear probing
func NewXXHashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewXXHashAlgorithm(tableSize)
}

// NewHashAlgorithm - Returns the hash algorithm with the given name, one of modulo, murmur3 or xxhash.
// The modulo algorithm is returned as nil, so the table registers it as its internal algorithm.
func NewHashAlgorithm(name string, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch strings.ToLower(name) {
	case "", config.HashModulo:
	case config.HashMurmur3:
		hashAlgorithm = NewMurmur3HashAlgorithm(tableSize)
	case config.HashXXHash:
		hashAlgorithm = NewXXHashAlgorithm(tableSize)
	default:
		err = fmt.Errorf("unknown hash algorithm %q", name)
	}

	return
}
