// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic.
package intmath

import "golang.org/x/exp/constraints"

// BoundedSubtract returns `max(a-b,floor)` without underflow.
func BoundedSubtract[T constraints.Unsigned](a, b, floor T) T {
	// If `floor + b` overflows then it's impossible for `a` to ever be large
	// enough for the subtraction to not be bounded.
	minA := floor + b
	if overflow := minA < b; overflow || a <= minA {
		return floor
	}
	return a - b
}

// Wrap returns `i` modulo `n`, in the range `[0,n)` even for negative `i`. It
// panics if `n` is not positive.
func Wrap[T constraints.Signed](i, n T) T {
	if n <= 0 {
		panic("intmath.Wrap: non-positive modulus")
	}
	if i %= n; i < 0 {
		i += n
	}
	return i
}
