// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ring provides a growable circular buffer that acts as a
// double-ended queue. Pushing and popping at either end is amortised O(1), and
// elements can be inserted or removed at arbitrary positions by relocating
// whichever contiguous run of elements the current layout allows.
package ring

import (
	"fmt"
	"math"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/ringseq/intmath"
)

const (
	// MinCapacity is the floor below which a [Buffer]'s capacity never falls.
	MinCapacity = 2
	// DefaultCapacity is the initial capacity used when [Config.Capacity] is
	// zero.
	DefaultCapacity = 16
	// DefaultMaxCapacity is the ceiling for automatic growth used when
	// [Config.MaxCapacity] is zero.
	DefaultMaxCapacity = min(math.MaxUint32, math.MaxInt)
)

// Growth selects the factor by which a full, resizable [Buffer] grows.
type Growth uint8

const (
	// GrowFast doubles the capacity.
	GrowFast Growth = iota
	// GrowCompact increases the capacity by half.
	GrowCompact
)

func (g Growth) String() string {
	switch g {
	case GrowFast:
		return "fast"
	case GrowCompact:
		return "compact"
	default:
		return fmt.Sprintf("Growth(%d)", uint8(g))
	}
}

// Config holds the construction parameters of a [Buffer]. The zero value is a
// resizable buffer of [DefaultCapacity] that doubles when full.
type Config struct {
	// Capacity is the initial capacity, floored at [MinCapacity]. Zero means
	// [DefaultCapacity].
	Capacity int
	// Fixed disables automatic growth, in which case insertion into a full
	// buffer fails. Explicit calls to [Buffer.Reserve] and [Buffer.Resize] are
	// still honoured.
	Fixed bool
	// Growth selects the factor applied by automatic growth.
	Growth Growth
	// BulkCopy marks elements as trivially relocatable. They are then moved
	// with the built-in copy() and vacated slots are not cleared, so it SHOULD
	// only be set for element types that don't hold pointers. Otherwise every
	// element is moved individually and the slot it leaves is zeroed.
	BulkCopy bool
	// MaxCapacity is the ceiling for automatic growth. Zero means
	// [DefaultMaxCapacity]. Once reached, automatic growth is permanently
	// disabled.
	MaxCapacity int
}

func (c Config) resolve() Config {
	if c.MaxCapacity <= 0 {
		c.MaxCapacity = DefaultMaxCapacity
	}
	c.MaxCapacity = max(c.MaxCapacity, MinCapacity)
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	c.Capacity = min(max(c.Capacity, MinCapacity), c.MaxCapacity)
	return c
}

// A Buffer is a growable circular buffer of elements in logical order. It is
// not safe for concurrent use, nor is the zero value valid; use [New].
type Buffer[T any] struct {
	buf  []T // len(buf) MUST == cap(buf) && len(buf) >= MinCapacity
	head int // 0 <= head < len(buf)
	tail int // tail == (head+n) % len(buf)
	n    int // 0 <= n <= len(buf)

	resizable bool
	cfg       Config
	log       logging.Logger
}

// IMPORTANT: keep [Buffer.CloneFunc] next to the struct definition to make it
// easier to check that all fields are copied.

// CloneFunc returns an independent copy of the buffer, with the same capacity
// and configuration, in which every element is replaced by `fn(element)`. A
// nil `fn` is equivalent to [Buffer.Clone].
func (b *Buffer[T]) CloneFunc(fn func(T) T) *Buffer[T] {
	c := &Buffer[T]{
		buf:       make([]T, len(b.buf)),
		head:      0,
		tail:      b.n % len(b.buf),
		n:         b.n,
		resizable: b.resizable,
		cfg:       b.cfg,
		log:       b.log,
	}
	b.copyTo(c.buf)
	if fn != nil {
		for i := range c.n {
			c.buf[i] = fn(c.buf[i])
		}
	}
	return c
}

// Clone returns an independent, shallow copy of the buffer.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return b.CloneFunc(nil)
}

// New constructs an empty [Buffer]. Diagnostics for failed operations are
// reported to `log`, which MAY be nil.
func New[T any](cfg Config, log logging.Logger) (*Buffer[T], error) {
	if log == nil {
		log = logging.NoLog{}
	}
	cfg = cfg.resolve()
	b := &Buffer[T]{
		resizable: !cfg.Fixed,
		cfg:       cfg,
		log:       log,
	}
	buf, err := b.allocate(cfg.Capacity)
	if err != nil {
		return nil, err
	}
	b.buf = buf
	return b, nil
}

// Move transfers the buffer's storage and contents to a new [Buffer]. The
// original is left empty and reusable, with [MinCapacity] storage.
func (b *Buffer[T]) Move() *Buffer[T] {
	moved := *b
	*b = Buffer[T]{
		buf:       make([]T, MinCapacity),
		resizable: !moved.cfg.Fixed,
		cfg:       moved.cfg,
		log:       moved.log,
	}
	return &moved
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return b.n
}

// Cap returns the number of elements that the buffer can hold without growing.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}

// IsEmpty returns whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.n == 0
}

// IsFull returns whether the next insertion requires the buffer to grow.
func (b *Buffer[T]) IsFull() bool {
	return b.n == len(b.buf)
}

// Resizable returns whether the buffer will grow automatically when full.
func (b *Buffer[T]) Resizable() bool {
	return b.resizable
}

func (b *Buffer[T]) wrap(i int) int {
	return intmath.Wrap(i, len(b.buf))
}

// physical converts a logical index, valid in `[0,b.n]`, to an offset in
// `b.buf`. The upper bound maps to `b.tail`.
func (b *Buffer[T]) physical(i int) int {
	return b.wrap(b.head + i)
}

func (b *Buffer[T]) inRange(i int) bool {
	return 0 <= i && i < b.n
}

func (b *Buffer[T]) mustBeInRange(i int) {
	if !b.inRange(i) {
		panic(fmt.Sprintf("ring: index %d out of range [0,%d)", i, b.n))
	}
}

func (b *Buffer[T]) checkIndex(i int) error {
	if b.inRange(i) {
		return nil
	}
	err := fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, b.n)
	b.log.Warn("Ring buffer index out of range",
		zap.Int("index", i),
		zap.Int("len", b.n),
		zap.Error(err),
	)
	return err
}

// At returns the i'th element. It panics if `i` is not in `[0,b.Len())`.
func (b *Buffer[T]) At(i int) T {
	b.mustBeInRange(i)
	return b.buf[b.physical(i)]
}

// Ref returns a pointer to the i'th element. The pointer is only valid until
// the next mutation of the buffer. It panics if `i` is not in `[0,b.Len())`.
func (b *Buffer[T]) Ref(i int) *T {
	b.mustBeInRange(i)
	return &b.buf[b.physical(i)]
}

// Get is equivalent to [Buffer.At] except that it returns an error wrapping
// [ErrOutOfRange] instead of panicking.
func (b *Buffer[T]) Get(i int) (T, error) {
	if err := b.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return b.buf[b.physical(i)], nil
}

// Set overwrites the i'th element, returning an error wrapping [ErrOutOfRange]
// if there is no such element.
func (b *Buffer[T]) Set(i int, x T) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.buf[b.physical(i)] = x
	return nil
}

// Swap swaps the i'th and j'th elements. It panics if either index is out of
// range.
func (b *Buffer[T]) Swap(i, j int) {
	b.mustBeInRange(i)
	b.mustBeInRange(j)
	i = b.physical(i)
	j = b.physical(j)
	b.buf[i], b.buf[j] = b.buf[j], b.buf[i]
}
