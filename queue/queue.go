// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue implements queue-like data structures on top of
// [ring.Buffer]. The zero value of every type is ready for use.
package queue

import (
	"fmt"

	"github.com/ava-labs/ringseq/ring"
)

// buffer lazily constructs a growable [ring.Buffer], allowing the zero values
// of the queue types to be valid.
type buffer[T any] struct {
	b *ring.Buffer[T]
}

func (b *buffer[T]) init() *ring.Buffer[T] {
	if b.b == nil {
		r, err := ring.New[T](ring.Config{}, nil)
		if err != nil {
			panic(fmt.Sprintf("default ring buffer: %v", err))
		}
		b.b = r
	}
	return b.b
}

func (b *buffer[T]) len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// push appends `x`, panicking if the buffer can't grow to hold it; this only
// occurs beyond [ring.DefaultMaxCapacity] elements, akin to the built-in
// append() failing to allocate.
func (b *buffer[T]) push(x T) {
	if err := b.init().PushBack(x); err != nil {
		panic(err)
	}
}

// grow reserves capacity for `n` elements, clamped to
// [ring.DefaultMaxCapacity]. Like make(), it panics if the storage can't be
// allocated.
func (b *buffer[T]) grow(n int) {
	n = min(n, ring.DefaultMaxCapacity)
	r := b.init()
	if n <= r.Cap() {
		return
	}
	if err := r.Reserve(n); err != nil {
		panic(err)
	}
}

// peekFront, peekBack, popFront and popBack don't allocate storage for a zero
// value.
func (b *buffer[T]) peekFront() (T, bool) {
	if b.b == nil {
		var zero T
		return zero, false
	}
	return b.b.PeekFront()
}

func (b *buffer[T]) peekBack() (T, bool) {
	if b.b == nil {
		var zero T
		return zero, false
	}
	return b.b.PeekBack()
}

func (b *buffer[T]) popFront() (T, bool) {
	if b.b == nil {
		var zero T
		return zero, false
	}
	return b.b.PopFront()
}

func (b *buffer[T]) popBack() (T, bool) {
	if b.b == nil {
		var zero T
		return zero, false
	}
	return b.b.PopBack()
}

// A FIFO is a first-in, first-out queue.
type FIFO[T any] struct {
	buf buffer[T]
}

// Len returns the number of elements in the queue.
func (f *FIFO[T]) Len() int {
	return f.buf.len()
}

// Push adds `x` to the back of the queue.
func (f *FIFO[T]) Push(x T) {
	f.buf.push(x)
}

// Peek returns the element at the front of the queue without removing it. The
// boolean is false i.f.f. the queue is empty.
func (f *FIFO[T]) Peek() (T, bool) {
	return f.buf.peekFront()
}

// Pop removes and returns the element at the front of the queue. The boolean
// is false i.f.f. the queue is empty.
func (f *FIFO[T]) Pop() (T, bool) {
	return f.buf.popFront()
}

// Grow increases the queue's capacity to `n`, if necessary, but never beyond
// [ring.DefaultMaxCapacity]. This does not limit the size of the queue, but
// pre-allocates memory. Like make(), it panics if the memory can't be
// allocated.
func (f *FIFO[T]) Grow(n int) {
	f.buf.grow(n)
}

// A Stack is a last-in, first-out queue.
type Stack[T any] struct {
	buf buffer[T]
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.buf.len()
}

// Push adds `x` to the top of the stack.
func (s *Stack[T]) Push(x T) {
	s.buf.push(x)
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.buf.peekBack()
}

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() (T, bool) {
	return s.buf.popBack()
}
