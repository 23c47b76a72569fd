package recordtable

import "github.com/gostonefire/recordtable/crt"

// Errors returned by RecordTable operations, all are values of the types in package crt so both
// errors.Is(err, recordtable.NotFound{}) and errors.Is(err, crt.NotFound{}) hold.
type (
	NotFound          = crt.NotFound
	DuplicateKey      = crt.DuplicateKey
	TableFull         = crt.TableFull
	AllocationFailure = crt.AllocationFailure
	TableClosed       = crt.TableClosed
)
