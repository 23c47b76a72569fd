package crt

// NotFound - Custom error to inform that no record with the requested id was found
type NotFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (N NotFound) Error() string {
	if N.msg == "" {
		return "no record found"
	}
	return N.msg
}

// DuplicateKey - Custom error to inform that a record with the same id already exists
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the id is already present
func (D DuplicateKey) Error() string {
	if D.msg == "" {
		return "duplicate key"
	}
	return D.msg
}

// TableFull - Custom error to inform that every slot in the probe cycle is occupied
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (T TableFull) Error() string {
	if T.msg == "" {
		return "table full"
	}
	return T.msg
}

// AllocationFailure - Custom error to inform that a chain node could not be allocated
type AllocationFailure struct {
	msg string
}

// Error - Used to notify that node allocation failed
func (A AllocationFailure) Error() string {
	if A.msg == "" {
		return "node allocation failed"
	}
	return A.msg
}

// TableClosed - Custom error to inform that the table has been torn down
type TableClosed struct {
	msg string
}

// Error - Used to notify that the table can no longer be used
func (T TableClosed) Error() string {
	if T.msg == "" {
		return "table closed"
	}
	return T.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
