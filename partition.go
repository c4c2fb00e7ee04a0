// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import "slices"

// Take yields at most the first n elements of seq.
func Take[V any](n int, seq Seq[V]) Seq[V] {
	return NewSized(func(yield func(V) bool) {
		var i int
		for v := range seq.Values() {
			if i >= n {
				return
			}

			i++
			if !yield(v) {
				return
			}
		}
	}, capSize(seq.size, n))
}

// TakeWhile yields elements until f first returns false.
func TakeWhile[V any](f func(V) bool, seq Seq[V]) Seq[V] {
	return New(func(yield func(V) bool) {
		for v := range seq.Values() {
			if !f(v) {
				return
			}

			if !yield(v) {
				return
			}
		}
	})
}

// Drop yields the elements of seq after skipping the first n.
func Drop[V any](n int, seq Seq[V]) Seq[V] {
	return NewSized(func(yield func(V) bool) {
		var i int
		for v := range seq.Values() {
			if i < n {
				i++
				continue
			}

			if !yield(v) {
				return
			}
		}
	}, subSize(seq.size, n))
}

// DropWhile skips elements until f first returns false, then yields the rest.
func DropWhile[V any](f func(V) bool, seq Seq[V]) Seq[V] {
	return New(func(yield func(V) bool) {
		drop := true
		for v := range seq.Values() {
			if drop {
				if f(v) {
					continue
				}
				drop = false
			}

			if !yield(v) {
				return
			}
		}
	})
}

// Chunk yields the elements of seq in freshly allocated slices of n
// elements each; the final chunk may be shorter. n must be positive.
func Chunk[V any](n int, seq Seq[V]) Seq[[]V] {
	if n <= 0 {
		panic("xlinq.Chunk: n must be greater than 0")
	}
	var size func() int
	if seq.size != nil {
		size = func() int { return (seq.size() + n - 1) / n }
	}
	return NewSized(func(yield func([]V) bool) {
		vs := make([]V, 0, n)
		for v := range seq.Values() {
			vs = append(vs, v)
			if len(vs) == n {
				if !yield(vs) {
					return
				}

				vs = make([]V, 0, n)
			}
		}
		if len(vs) > 0 {
			yield(vs)
		}
	}, size)
}

// ChunkNoCopy is Chunk reusing a single buffer across yields. The consumer
// must finish with a chunk before advancing; holding on to it sees later
// elements.
func ChunkNoCopy[V any](n int, seq Seq[V]) Seq[[]V] {
	if n <= 0 {
		panic("xlinq.ChunkNoCopy: n must be greater than 0")
	}
	var size func() int
	if seq.size != nil {
		size = func() int { return (seq.size() + n - 1) / n }
	}
	return NewSized(func(yield func([]V) bool) {
		vs := make([]V, 0, n)
		for v := range seq.Values() {
			vs = append(vs, v)
			if len(vs) == n {
				if !yield(vs) {
					return
				}

				vs = vs[:0]
			}
		}
		if len(vs) > 0 {
			yield(vs)
		}
	}, size)
}

// Reverse yields the elements of seq in reverse order. The source is
// materialized once, on first demand, and the buffer is shared by all
// cursors of the stage.
func Reverse[V any](seq Seq[V]) Seq[V] {
	cell := &lazySlice[V]{src: seq}
	size := seq.size
	if size == nil {
		size = func() int { return len(cell.get()) }
	}
	return NewSized(func(yield func(V) bool) {
		vs := cell.get()
		for i := len(vs) - 1; i >= 0; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}, size)
}

// lazySlice materializes a source sequence at most once. Single-goroutine
// re-entrancy is all the flag has to guard; there are no locks by design of
// the execution model.
type lazySlice[V any] struct {
	src   Seq[V]
	built bool
	vs    []V
}

func (l *lazySlice[V]) get() []V {
	if !l.built {
		l.vs = slices.AppendSeq(make([]V, 0, sliceCap(l.src)), l.src.Values())
		l.built = true
	}
	return l.vs
}
