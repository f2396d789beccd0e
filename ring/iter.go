// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ring

import "iter"

// runs returns the live elements as at most two physically contiguous runs,
// which, concatenated, are in logical order.
func (b *Buffer[T]) runs() (first, second []T) {
	if end := b.head + b.n; end <= len(b.buf) {
		return b.buf[b.head:end], nil
	}
	return b.buf[b.head:], b.buf[:b.tail]
}

// copyTo copies the elements, in logical order, to the start of `dst`, which
// MUST have length of at least b.n.
func (b *Buffer[T]) copyTo(dst []T) {
	x, y := b.runs()
	copy(dst[copy(dst, x):], y)
}

// Slice returns a newly allocated copy of the elements in logical order.
func (b *Buffer[T]) Slice() []T {
	s := make([]T, b.n)
	b.copyTo(s)
	return s
}

// All returns an iterator over index-value pairs in logical order. Behaviour
// is undefined if the buffer is modified during iteration.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range b.n {
			if !yield(i, b.buf[b.physical(i)]) {
				return
			}
		}
	}
}

// Backward is equivalent to [Buffer.All] but iterates from the last element
// to the first.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.n - 1; i >= 0; i-- {
			if !yield(i, b.buf[b.physical(i)]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in logical order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range b.All() {
			if !yield(x) {
				return
			}
		}
	}
}
