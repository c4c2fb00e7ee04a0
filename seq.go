// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import (
	"fmt"
	"iter"
	"slices"
)

// Seq is a lazy, re-iterable sequence of V. It wraps a producer closure
// together with an optional O(1) size hint.
//
// The producer is a factory for cursors: every invocation (every range over
// Values, every Pull) restarts iteration from the first element, and distinct
// cursors obtained from the same Seq do not interfere. Operators that build
// auxiliary state (OrderBy, GroupBy, Except, ...) share that state across all
// cursors of the stage; it is built once, on first demand, and read-only
// afterwards. A Seq and its cursors are meant for single-goroutine use.
type Seq[V any] struct {
	seq  iter.Seq[V]
	size func() int
}

// New wraps a raw producer into a Seq with unknown size.
func New[V any](seq iter.Seq[V]) Seq[V] {
	return Seq[V]{seq: seq}
}

// NewSized wraps a raw producer together with a size hint. size must report,
// in O(1), the exact number of elements the producer will yield.
func NewSized[V any](seq iter.Seq[V], size func() int) Seq[V] {
	return Seq[V]{seq: seq, size: size}
}

// Values returns the underlying producer for use with range-over-func. Each
// call starts a fresh cursor at the first element.
func (s Seq[V]) Values() iter.Seq[V] {
	if s.seq == nil {
		return func(func(V) bool) {}
	}
	return s.seq
}

// Pull returns a pull-style cursor over s. stop must be called when the
// cursor is no longer needed.
func (s Seq[V]) Pull() (next func() (V, bool), stop func()) {
	return iter.Pull(s.Values())
}

// HasFastSize reports whether Size answers in O(1).
func (s Seq[V]) HasFastSize() bool {
	return s.size != nil
}

// Size returns the number of elements. When no size hint is present it counts
// by exhausting a fresh cursor, which leaves other cursors undisturbed.
func (s Seq[V]) Size() int {
	if s.size != nil {
		return s.size()
	}
	var n int
	for range s.Values() {
		n++
	}
	return n
}

// Pair is a key/value tuple produced by the pairing adapters and consumed by
// the map conversions.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Empty returns a sequence with no elements and fast size 0.
func Empty[V any]() Seq[V] {
	return NewSized(func(func(V) bool) {}, func() int { return 0 })
}

// Of returns a sequence over the given values. Of(v) lifts a single value.
func Of[V any](vs ...V) Seq[V] {
	return OfSlice(vs)
}

// OfSlice returns a sequence borrowing s. The caller keeps s alive for the
// lifetime of the sequence; elements are yielded by value.
func OfSlice[S ~[]V, V any](s S) Seq[V] {
	return NewSized(slices.Values(s), func() int { return len(s) })
}

// RefsOf returns a sequence of pointers into s. Writing through a yielded
// pointer mutates the corresponding slice element, so pipelines built over
// RefsOf preserve element identity across Where, Drop and friends.
func RefsOf[S ~[]V, V any](s S) Seq[*V] {
	return NewSized(func(yield func(*V) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}, func() int { return len(s) })
}

// OfMap returns a sequence of the map's key/value pairs in map order.
func OfMap[M ~map[K]V, K comparable, V any](m M) Seq[Pair[K, V]] {
	return NewSized(func(yield func(Pair[K, V]) bool) {
		for k, v := range m {
			if !yield(Pair[K, V]{k, v}) {
				return
			}
		}
	}, func() int { return len(m) })
}

// OfMapKeys returns a sequence of the map's keys in map order.
func OfMapKeys[M ~map[K]V, K comparable, V any](m M) Seq[K] {
	return NewSized(func(yield func(K) bool) {
		for k := range m {
			if !yield(k) {
				return
			}
		}
	}, func() int { return len(m) })
}

// OfMapValues returns a sequence of the map's values in map order.
func OfMapValues[M ~map[K]V, K comparable, V any](m M) Seq[V] {
	return NewSized(func(yield func(V) bool) {
		for _, v := range m {
			if !yield(v) {
				return
			}
		}
	}, func() int { return len(m) })
}

// OfChan returns a sequence draining c. The sequence is single-pass in
// practice (a second cursor sees only elements not yet received) and has no
// size hint.
func OfChan[C interface{ ~<-chan V | ~chan V }, V any](c C) Seq[V] {
	return New(func(yield func(V) bool) {
		for v := range c {
			if !yield(v) {
				return
			}
		}
	})
}

// OfNext lifts a raw next-producer into a sequence. f is invoked until it
// reports ok=false. Multi-pass behavior is up to f.
func OfNext[V any](f func() (V, bool)) Seq[V] {
	return New(func(yield func(V) bool) {
		for {
			v, ok := f()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	})
}

func rangeSize(start, end, step int) int {
	if step > 0 {
		return (end - start + step - 1) / step
	}
	return (start - end + (-step) - 1) / (-step)
}

// Range returns the sequence of integers in the half-open interval
// [start, end), with fast size end-start. start must not exceed end.
func Range(start, end int) Seq[int] {
	if start > end {
		panic(fmt.Sprintf("xlinq.Range: %d to %d is not a valid range", start, end))
	}
	return NewSized(func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}, func() int { return end - start })
}

// RangeStep returns the integers from start towards end in increments of
// step, excluding end. step may be negative for descending ranges.
func RangeStep(start, end, step int) Seq[int] {
	if step == 0 {
		panic("xlinq.RangeStep: step cannot be zero")
	}
	if start < end && step < 0 || start > end && step > 0 {
		panic(fmt.Sprintf("xlinq.RangeStep: %d to %d step %d is not a valid range", start, end, step))
	}
	return NewSized(func(yield func(int) bool) {
		if step > 0 {
			for i := start; i < end; i += step {
				if !yield(i) {
					return
				}
			}
			return
		}
		for i := start; i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}, func() int { return rangeSize(start, end, step) })
}

// Repeat returns a sequence yielding v exactly n times.
func Repeat[V any](v V, n int) Seq[V] {
	if n < 0 {
		panic("xlinq.Repeat: negative count")
	}
	return NewSized(func(yield func(V) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}, func() int { return n })
}
