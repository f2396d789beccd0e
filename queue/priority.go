// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import "container/heap"

// A LessThan implementation has a strict ordering.
type LessThan[T any] interface {
	LessThan(T) bool
}

// A Priority is a priority queue. The zero value is valid. It wraps a
// [heap.Interface] and exposes methods with the same semantics and complexity
// as the [heap] package's functions.
type Priority[T LessThan[T]] struct {
	p priority[T]
}

// Len returns the number of items in the queue.
func (p *Priority[T]) Len() int {
	return p.p.Len()
}

// Push adds an item to the queue.
func (p *Priority[T]) Push(x T) {
	heap.Push(&p.p, x)
}

// Peek returns the first value in the queue without removing it. It panics if
// the queue is empty.
func (p *Priority[T]) Peek() T {
	if p.p.b == nil {
		panic("peek into empty priority queue")
	}
	return p.p.b.At(0)
}

// Pop removes and returns the first element from the queue. It panics if the
// queue is empty.
func (p *Priority[T]) Pop() T {
	return heap.Pop(&p.p).(T)
}

// Fix reestablishes the queue's ordering if the i'th element's priority
// changes.
func (p *Priority[T]) Fix(i int) {
	heap.Fix(&p.p, i)
}

// Grow increases the queue's allocated buffer to hold up to `n` items, but
// never beyond [ring.DefaultMaxCapacity]. This does not place a limit on the
// size of the queue, but pre-allocates memory. Like make(), it panics if the
// memory can't be allocated.
func (p *Priority[T]) Grow(n int) {
	p.p.grow(n)
}

// priority implements [heap.Interface].
type priority[T LessThan[T]] struct {
	buffer[T]
}

func (p *priority[T]) Len() int {
	return p.len()
}

func (p *priority[T]) Less(i, j int) bool {
	return p.b.At(i).LessThan(p.b.At(j))
}

func (p *priority[T]) Pop() any {
	x, ok := p.popBack()
	if !ok {
		panic("pop from empty priority queue")
	}
	return x
}

func (p *priority[T]) Push(x any) {
	p.push(x.(T))
}

func (p *priority[T]) Swap(i, j int) {
	p.init().Swap(i, j)
}
