// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ring

// PushBack appends `x` to the end of the buffer, growing it if full. If growth
// is denied, the buffer is unchanged and the error is returned.
func (b *Buffer[T]) PushBack(x T) error {
	if err := b.makeRoom(1); err != nil {
		return err
	}
	b.pushBack(x)
	return nil
}

// PushFront prepends `x` to the start of the buffer, growing it if full. If
// growth is denied, the buffer is unchanged and the error is returned.
func (b *Buffer[T]) PushFront(x T) error {
	if err := b.makeRoom(1); err != nil {
		return err
	}
	b.pushFront(x)
	return nil
}

// pushBack requires that b.n < len(b.buf).
func (b *Buffer[T]) pushBack(x T) {
	b.buf[b.tail] = x
	if b.tail == len(b.buf)-1 {
		b.tail = 0
	} else {
		b.tail++
	}
	b.n++
}

// pushFront requires that b.n < len(b.buf).
func (b *Buffer[T]) pushFront(x T) {
	if b.head == 0 {
		b.head = len(b.buf) - 1
	} else {
		b.head--
	}
	b.buf[b.head] = x
	b.n++
}

// PeekFront returns the first element without removing it, and a boolean
// indicating whether the buffer was non-empty.
func (b *Buffer[T]) PeekFront() (T, bool) {
	if b.n == 0 {
		var zero T
		return zero, false
	}
	return b.buf[b.head], true
}

// PeekBack returns the last element without removing it, and a boolean
// indicating whether the buffer was non-empty.
func (b *Buffer[T]) PeekBack() (T, bool) {
	if b.n == 0 {
		var zero T
		return zero, false
	}
	return b.buf[b.physical(b.n-1)], true
}

// PopFront removes and returns the first element, and a boolean indicating
// whether the buffer was non-empty. Popping never reclaims capacity.
func (b *Buffer[T]) PopFront() (T, bool) {
	if b.n == 0 {
		var zero T
		return zero, false
	}
	return b.popFront(), true
}

// PopBack removes and returns the last element, and a boolean indicating
// whether the buffer was non-empty. Popping never reclaims capacity.
func (b *Buffer[T]) PopBack() (T, bool) {
	if b.n == 0 {
		var zero T
		return zero, false
	}
	return b.popBack(), true
}

// popFront requires that b.n > 0.
func (b *Buffer[T]) popFront() T {
	x := b.buf[b.head]
	b.release(b.head)
	if b.head == len(b.buf)-1 {
		b.head = 0
	} else {
		b.head++
	}
	b.n--
	return x
}

// popBack requires that b.n > 0.
func (b *Buffer[T]) popBack() T {
	if b.tail == 0 {
		b.tail = len(b.buf) - 1
	} else {
		b.tail--
	}
	x := b.buf[b.tail]
	b.release(b.tail)
	b.n--
	return x
}

// release zeroes the slot at physical offset `p` unless elements are
// bulk-copyable, in which case leftovers are harmless.
func (b *Buffer[T]) release(p int) {
	if b.cfg.BulkCopy {
		return
	}
	var zero T
	b.buf[p] = zero
}

// Clear removes all elements, retaining the buffer's capacity. It is O(1) if
// [Config.BulkCopy] is set, otherwise O(b.Len()) to release the elements.
func (b *Buffer[T]) Clear() {
	if !b.cfg.BulkCopy {
		x, y := b.runs()
		clear(x)
		clear(y)
	}
	b.head, b.tail, b.n = 0, 0, 0
}
