// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ava-labs/ringseq/ring"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type popper[T any] interface {
	Len() int
	Pop() (T, bool)
}

func all[T any](tb testing.TB, q popper[T]) []T {
	tb.Helper()
	var got []T
	for {
		x, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, x)
	}
	require.Zerof(tb, q.Len(), "%T.Len() after Pop() returned false", q)
	return got
}

func TestFIFO(t *testing.T) {
	diff := func(t *testing.T, got, want []int) {
		t.Helper()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%T.Pop() until !ok; diff (-want +got):\n%s", FIFO[int]{}, diff)
		}
	}

	t.Run("empty", func(t *testing.T) {
		var q FIFO[int]
		assert.Zero(t, q.Len(), "Len()")
		_, ok := q.Peek()
		assert.False(t, ok, "Peek() ok")
		_, ok = q.Pop()
		assert.False(t, ok, "Pop() ok")
	})

	t.Run("disjoint_Push_Pop", func(t *testing.T) {
		var q FIFO[int]

		var want []int
		for i := range 5 {
			q.Push(i)
			want = append(want, i)
		}
		got, ok := q.Peek()
		require.True(t, ok, "Peek() ok")
		assert.Equal(t, 0, got, "Peek()")
		diff(t, all(t, &q), want)
	})

	t.Run("interleaved_Push_Pop", func(t *testing.T) {
		var q FIFO[int]
		q.Grow(4)

		rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is useful in tests

		var got, want []int
		for i := range 1000 {
			q.Push(i)
			want = append(want, i)

			if rng.IntN(4) == 0 {
				x, ok := q.Pop()
				require.True(t, ok, "Pop() ok with non-empty queue")
				got = append(got, x)
			}
		}

		got = append(got, all(t, &q)...)
		diff(t, got, want)
	})
}

func TestFIFOGrow(t *testing.T) {
	var q FIFO[int]
	q.Grow(100)
	assert.Equal(t, 100, q.buf.b.Cap(), "Cap() after Grow(100)")
	q.Grow(10)
	assert.Equal(t, 100, q.buf.b.Cap(), "Cap() after Grow(10) is unchanged")
}

func TestGrowClampsToCeiling(t *testing.T) {
	// Zero-sized elements allow the ceiling to be reached without allocating.
	var q FIFO[struct{}]
	assert.NotPanics(t, func() { q.Grow(math.MaxInt) }, "Grow(math.MaxInt)")
	assert.Equal(t, ring.DefaultMaxCapacity, q.buf.b.Cap(), "Cap() after Grow(math.MaxInt)")

	var p Priority[Int]
	p.Grow(math.MinInt)
	assert.Equal(t, ring.DefaultCapacity, p.p.b.Cap(), "Cap() after Grow(math.MinInt)")
}

func TestZeroValueReadsDoNotAllocate(t *testing.T) {
	var q FIFO[int]
	q.Peek()
	q.Pop()
	assert.Nil(t, q.buf.b, "FIFO storage after Peek() and Pop()")

	var s Stack[int]
	s.Peek()
	s.Pop()
	assert.Nil(t, s.buf.b, "Stack storage after Peek() and Pop()")

	var p Priority[Int]
	assert.Panics(t, func() { p.Peek() }, "Priority.Peek() on zero value")
	assert.Nil(t, p.p.b, "Priority storage after Peek()")
}

func TestStack(t *testing.T) {
	var s Stack[string]
	_, ok := s.Peek()
	assert.False(t, ok, "Peek() ok on empty stack")

	in := []string{"a", "b", "c", "d"}
	for _, x := range in {
		s.Push(x)
	}
	top, ok := s.Peek()
	require.True(t, ok, "Peek() ok")
	assert.Equal(t, "d", top, "Peek()")
	assert.Equal(t, len(in), s.Len(), "Len()")

	want := slices.Clone(in)
	slices.Reverse(want)
	if diff := cmp.Diff(want, all(t, &s)); diff != "" {
		t.Errorf("%T.Pop() until !ok; diff (-want +got):\n%s", s, diff)
	}
}
