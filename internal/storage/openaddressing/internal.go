package openaddressing

import (
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/gostonefire/recordtable/internal/model"
)

// probingForExisting - Is the Probing Collision Resolution Technique algorithm for finding the slot of an
// existing record. Tombstones do not stop the probing, only an empty slot or a full cycle does.
func (Q *OATable) probingForExisting(id int64) (probe int64, err error) {
	var n int64

	hf1Value, err := Q.GetBucketNo(id)
	if err != nil {
		return
	}

	iMax := Q.numberOfBucketsAvailable * conf.MaxProbeFactor // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < Q.numberOfBucketsAvailable && probe >= 0 {
			slot := Q.slots[probe]

			switch slot.State {
			case model.SlotEmpty:
				err = crt.NotFound{}
				return

			case model.SlotOccupied:
				if slot.Record.Id == id {
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= Q.numberOfBucketsAvailable {
				err = crt.NotFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// probingForInsert - Is the Probing Collision Resolution Technique algorithm for finding a slot to insert into.
// Only occupied slots are taken. The first tombstone met is remembered and probing goes on until an empty slot
// or a full cycle, so that the same id sitting further down the probe sequence still gives crt.DuplicateKey.
// The remembered tombstone is preferred over a later empty slot.
func (Q *OATable) probingForInsert(id int64) (probe int64, err error) {
	var tombstone, n int64
	var hasTombstone bool

	hf1Value, err := Q.GetBucketNo(id)
	if err != nil {
		return
	}

	iMax := Q.numberOfBucketsAvailable * conf.MaxProbeFactor // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < Q.numberOfBucketsAvailable && probe >= 0 {
			slot := Q.slots[probe]

			switch slot.State {
			case model.SlotEmpty:
				if hasTombstone {
					probe = tombstone
				}
				return

			case model.SlotOccupied:
				if slot.Record.Id == id {
					err = crt.DuplicateKey{}
					return
				}

			case model.SlotTombstone:
				if !hasTombstone {
					tombstone = probe
					hasTombstone = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= Q.numberOfBucketsAvailable {
				if hasTombstone {
					probe = tombstone
					return
				}
				err = crt.TableFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// updateUtilizationInfo - Keeps the count of slots per state current
func (Q *OATable) updateUtilizationInfo(fromState, toState model.SlotState) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.SlotEmpty:
		Q.nEmpty--
	case model.SlotOccupied:
		Q.nOccupied--
	case model.SlotTombstone:
		Q.nTombstone--
	}

	switch toState {
	case model.SlotEmpty:
		Q.nEmpty++
	case model.SlotOccupied:
		Q.nOccupied++
	case model.SlotTombstone:
		Q.nTombstone++
	}
}
