// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ring

import (
	"fmt"

	"go.uber.org/zap"
)

// Insert inserts `xs`, in order, such that `xs[0]` becomes the i'th element.
// `i` MUST be in `[0,b.Len()]`. The buffer grows as necessary; if growth is
// denied, no elements are inserted and the error is returned.
func (b *Buffer[T]) Insert(i int, xs ...T) error {
	if i < 0 || i > b.n {
		err := fmt.Errorf("%w: insertion at %d with length %d", ErrOutOfRange, i, b.n)
		b.log.Warn("Ring buffer insertion out of range",
			zap.Int("index", i),
			zap.Int("len", b.n),
			zap.Error(err),
		)
		return err
	}
	k := len(xs)
	if k == 0 {
		return nil
	}
	if err := b.makeRoom(k); err != nil {
		return err
	}

	switch i {
	case b.n:
		for _, x := range xs {
			b.pushBack(x)
		}
	case 0:
		for j := k - 1; j >= 0; j-- {
			b.pushFront(xs[j])
		}
	default:
		b.shift(i, k)
		b.n += k
		for j, x := range xs {
			b.buf[b.physical(i+j)] = x
		}
	}
	return nil
}

// Remove removes and returns the i'th element, returning an error wrapping
// [ErrOutOfRange] if there is no such element.
func (b *Buffer[T]) Remove(i int) (T, error) {
	if err := b.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	switch i {
	case 0:
		return b.popFront(), nil
	case b.n - 1:
		return b.popBack(), nil
	}
	x := b.buf[b.physical(i)]
	b.close(i, 1)
	return x, nil
}

// Erase removes the elements in the inclusive range `[first,last]`, returning
// an error wrapping [ErrInvalidRange] if it isn't within `[0,b.Len())`.
func (b *Buffer[T]) Erase(first, last int) error {
	if first < 0 || last < first || last >= b.n {
		err := fmt.Errorf("%w: [%d,%d] with length %d", ErrInvalidRange, first, last, b.n)
		b.log.Warn("Invalid ring buffer erase range",
			zap.Int("first", first),
			zap.Int("last", last),
			zap.Int("len", b.n),
			zap.Error(err),
		)
		return err
	}
	b.close(first, last-first+1)
	return nil
}

// close removes the `k` elements starting at logical index `at`.
func (b *Buffer[T]) close(at, k int) {
	if !b.cfg.BulkCopy {
		var zero T
		for i := range k {
			b.buf[b.physical(at+i)] = zero
		}
	}
	b.shift(at, -k)
	b.n -= k
}

type layout uint8

const (
	inconsistent layout = iota
	unwrapped
	wrapped
)

// layout reports whether the live elements occupy a single physical run
// (unwrapped) or cross the end of storage (wrapped).
func (b *Buffer[T]) layout() layout {
	c := len(b.buf)
	switch {
	case c < MinCapacity, b.n < 0, b.n > c, b.head < 0, b.head >= c:
		return inconsistent
	case b.tail != (b.head+b.n)%c:
		return inconsistent
	case b.head+b.n <= c:
		return unwrapped
	default:
		return wrapped
	}
}

// shift opens (positive `delta`) or closes (negative `delta`) a gap of
// `|delta|` slots starting at logical index `at`, without changing b.n. After
// opening, the elements previously at `[at,b.n)` are at `[at+delta,b.n+delta)`
// and the gap is free for writing. After closing, the elements previously at
// `[at+|delta|,b.n)` are at `[at,b.n-|delta|)`.
//
// When unwrapped, the suffix after the gap moves and `tail` follows it. When
// wrapped, the prefix before the gap moves the other way and `head` follows
// it. Opening a gap requires `b.n+delta <= len(b.buf)`.
func (b *Buffer[T]) shift(at, delta int) {
	k := max(delta, -delta)

	switch b.layout() {
	case unwrapped:
		if delta > 0 {
			b.moveUp(b.physical(at), b.n-at, k)
		} else {
			b.moveDown(b.physical(at+k), b.n-at-k, k)
		}
		b.tail = b.wrap(b.tail + delta)

	case wrapped:
		if delta > 0 {
			b.moveDown(b.head, at, k)
		} else {
			b.moveUp(b.head, at, k)
		}
		b.head = b.wrap(b.head - delta)

	default:
		b.log.Fatal("BUG: ring buffer is neither wrapped nor unwrapped",
			zap.Int("head", b.head),
			zap.Int("tail", b.tail),
			zap.Int("len", b.n),
			zap.Int("capacity", len(b.buf)),
			zap.Int("at", at),
			zap.Int("delta", delta),
		)
		panic(fmt.Sprintf("ring: inconsistent cursors (head=%d tail=%d len=%d cap=%d) shifting %d at %d", b.head, b.tail, b.n, len(b.buf), delta, at))
	}
}

// moveUp moves the `n` elements starting at physical offset `src` forwards by
// `d` slots, wrapping around the end of storage. Elements are moved
// back-to-front so none are overwritten before being moved.
func (b *Buffer[T]) moveUp(src, n, d int) {
	for n > 0 {
		s := b.wrap(src + n - 1)
		t := b.wrap(s + d)
		k := min(n, s+1, t+1)
		b.relocate(t-k+1, s-k+1, k)
		n -= k
	}
}

// moveDown moves the `n` elements starting at physical offset `src` backwards
// by `d` slots, wrapping around the start of storage. Elements are moved
// front-to-back so none are overwritten before being moved.
func (b *Buffer[T]) moveDown(src, n, d int) {
	c := len(b.buf)
	for done := 0; done < n; {
		s := b.wrap(src + done)
		t := b.wrap(s - d)
		k := min(n-done, c-s, c-t)
		b.relocate(t, s, k)
		done += k
	}
}

// relocate moves `k` elements from `b.buf[src:src+k]` to `b.buf[dst:dst+k]`,
// neither of which may cross the end of storage, although they MAY overlap.
func (b *Buffer[T]) relocate(dst, src, k int) {
	if b.cfg.BulkCopy {
		copy(b.buf[dst:dst+k], b.buf[src:src+k])
		return
	}

	var zero T
	if dst > src {
		for i := k - 1; i >= 0; i-- {
			b.buf[dst+i], b.buf[src+i] = b.buf[src+i], zero
		}
		return
	}
	for i := range k {
		b.buf[dst+i], b.buf[src+i] = b.buf[src+i], zero
	}
}
