// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ring

import "errors"

// Errors returned by [Buffer] methods are wrapped with the values that caused
// them and MUST be checked with [errors.Is].
var (
	ErrOutOfRange   = errors.New("index out of range")
	ErrInvalidRange = errors.New("invalid range")

	ErrFixedCapacity   = errors.New("buffer full and not resizable")
	ErrCapacityCeiling = errors.New("capacity ceiling")
	ErrNotGrowing      = errors.New("reservation does not grow capacity")
	ErrBelowLength     = errors.New("capacity below length")

	ErrAllocation = errors.New("allocating storage")
)
