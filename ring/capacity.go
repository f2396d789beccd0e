// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ring

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/ava-labs/ringseq/intmath"
)

// Reserve grows the buffer's capacity to exactly `n`. It is an error to
// request a capacity that doesn't exceed the current one; use [Buffer.Resize]
// to also allow shrinking.
func (b *Buffer[T]) Reserve(n int) error {
	return b.reserve(n, false)
}

// Resize sets the buffer's capacity to `max(n,MinCapacity)`, which MUST NOT be
// less than [Buffer.Len].
func (b *Buffer[T]) Resize(n int) error {
	return b.reserve(max(n, MinCapacity), true)
}

// Shrink reduces the buffer's capacity to the smallest that holds its current
// elements.
func (b *Buffer[T]) Shrink() error {
	return b.Resize(b.n)
}

func (b *Buffer[T]) reserve(n int, allowShrink bool) error {
	c := len(b.buf)

	var err error
	switch {
	case n < b.n:
		err = fmt.Errorf("%w: capacity %d for %d elements", ErrBelowLength, n, b.n)
	case n <= c && !allowShrink:
		err = fmt.Errorf("%w: requested %d with capacity %d", ErrNotGrowing, n, c)
	case n > b.cfg.MaxCapacity:
		err = fmt.Errorf("%w: requested %d above %d", ErrCapacityCeiling, n, b.cfg.MaxCapacity)
	case n == c:
		return nil
	default:
		return b.migrate(n)
	}

	b.log.Warn("Ring buffer capacity change denied",
		zap.Int("requested", n),
		zap.Int("len", b.n),
		zap.Int("capacity", c),
		zap.Error(err),
	)
	return err
}

// makeRoom grows the buffer, as many times as necessary, until it has space
// for `k` more elements.
func (b *Buffer[T]) makeRoom(k int) error {
	for len(b.buf)-b.n < k {
		if err := b.grow(); err != nil {
			return err
		}
	}
	return nil
}

// grow performs a single step of automatic growth, clamped to the capacity
// ceiling. Reaching the ceiling permanently disables automatic growth.
func (b *Buffer[T]) grow() error {
	c := len(b.buf)
	headroom := intmath.BoundedSubtract(uint64(b.cfg.MaxCapacity), uint64(c), 0) //nolint:gosec // Both non-negative
	if headroom == 0 {
		b.resizable = false
	}
	if !b.resizable {
		return b.denyGrowth()
	}

	step := uint64(c) //nolint:gosec // Non-negative
	if b.cfg.Growth == GrowCompact {
		step /= 2
	}
	next := c + int(min(step, headroom)) //nolint:gosec // Bounded by MaxCapacity
	if err := b.migrate(next); err != nil {
		return err
	}

	if next == b.cfg.MaxCapacity {
		b.resizable = false
		b.log.Info("Ring buffer reached maximum capacity; automatic growth disabled",
			zap.Int("capacity", next),
		)
	}
	return nil
}

func (b *Buffer[T]) denyGrowth() error {
	sentinel := ErrCapacityCeiling
	if b.cfg.Fixed {
		sentinel = ErrFixedCapacity
	}
	err := fmt.Errorf("%w: %d elements with capacity %d", sentinel, b.n, len(b.buf))
	b.log.Warn("Ring buffer growth denied",
		zap.Int("len", b.n),
		zap.Int("capacity", len(b.buf)),
		zap.Error(err),
	)
	return err
}

// migrate moves the buffer's elements into new storage of capacity `n`, which
// MUST be at least b.n, un-wrapping them so the first is at offset 0. If
// allocation fails, the buffer is unchanged.
func (b *Buffer[T]) migrate(n int) error {
	buf, err := b.allocate(n)
	if err != nil {
		return err
	}
	b.log.Debug("Migrating ring buffer storage",
		zap.Int("from", len(b.buf)),
		zap.Int("to", n),
		zap.Int("len", b.n),
	)

	if b.cfg.BulkCopy {
		b.copyTo(buf)
	} else {
		x, y := b.runs()
		transfer(buf, x)
		transfer(buf[len(x):], y)
	}

	b.buf = buf
	b.head = 0
	b.tail = b.n % n
	return nil
}

// transfer moves `src` into `dst`, zeroing `src` as it goes.
func transfer[T any](dst, src []T) {
	var zero T
	for i := range src {
		dst[i], src[i] = src[i], zero
	}
}

// allocate returns new storage of length `n`, converting a runtime panic from
// an impossible allocation (e.g. `makeslice: len out of range`) into an error
// wrapping [ErrAllocation].
func (b *Buffer[T]) allocate(n int) (_ []T, retErr error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rErr, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		retErr = fmt.Errorf("%w for capacity %d: %v", ErrAllocation, n, rErr)
		b.log.Error("Allocating ring buffer storage",
			zap.Int("capacity", n),
			zap.Error(retErr),
		)
	}()
	return make([]T, n), nil
}
