// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import (
	"cmp"
	"slices"
)

// Number covers the built-in numeric types Cast, Sum and Average operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Where yields the elements of seq for which f returns true. Evaluation is
// lazy: each cursor advancement scans forward from the previous position
// until a satisfying element is found or seq is exhausted.
func Where[V any](f func(V) bool, seq Seq[V]) Seq[V] {
	return New(func(yield func(V) bool) {
		for v := range seq.Values() {
			if f(v) {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// WhereIndexed is Where with the predicate also receiving the element's
// position in seq. The index counts source elements scanned, not elements
// yielded.
func WhereIndexed[V any](f func(V, int) bool, seq Seq[V]) Seq[V] {
	return New(func(yield func(V) bool) {
		var i int
		for v := range seq.Values() {
			if f(v, i) {
				if !yield(v) {
					return
				}
			}
			i++
		}
	})
}

// Select yields f(v) for every element of seq, preserving the size hint.
// f runs once per element per cursor pass; wrap the result in Memoize when f
// is expensive and the stage is iterated more than once.
func Select[In, Out any](f func(In) Out, seq Seq[In]) Seq[Out] {
	return NewSized(func(yield func(Out) bool) {
		for v := range seq.Values() {
			if !yield(f(v)) {
				return
			}
		}
	}, seq.size)
}

// SelectIndexed is Select with the selector also receiving the element's
// position in seq.
func SelectIndexed[In, Out any](f func(In, int) Out, seq Seq[In]) Seq[Out] {
	return NewSized(func(yield func(Out) bool) {
		var i int
		for v := range seq.Values() {
			if !yield(f(v, i)) {
				return
			}
			i++
		}
	}, seq.size)
}

// SelectMany yields the concatenation of the sub-sequences f produces per
// element, evaluated lazily one sub-sequence at a time.
func SelectMany[In, Out any](f func(In) Seq[Out], seq Seq[In]) Seq[Out] {
	return New(func(yield func(Out) bool) {
		for v := range seq.Values() {
			for vi := range f(v).Values() {
				if !yield(vi) {
					return
				}
			}
		}
	})
}

// Cast converts every element to Out via Go's numeric conversion rules,
// preserving the size hint.
func Cast[Out, In Number](seq Seq[In]) Seq[Out] {
	return NewSized(func(yield func(Out) bool) {
		for v := range seq.Values() {
			if !yield(Out(v)) {
				return
			}
		}
	}, seq.size)
}

// Distinct yields only the first occurrence of each element, in source order.
func Distinct[V cmp.Ordered](seq Seq[V]) Seq[V] {
	return DistinctFunc(cmp.Compare, seq)
}

// DistinctFunc is Distinct under a caller-supplied ordering. compare must be
// a total order over the elements; membership is tracked in a sorted index,
// so a mere equality check is not enough. The index is per cursor, grown
// incrementally as the source is scanned.
func DistinctFunc[V any](compare func(V, V) int, seq Seq[V]) Seq[V] {
	return New(func(yield func(V) bool) {
		var seen sortedIndex[V]
		for v := range seq.Values() {
			if !seen.insert(v, compare) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// Tap invokes f on every element as it passes through, unchanged.
func Tap[V any](f func(V), seq Seq[V]) Seq[V] {
	return NewSized(func(yield func(V) bool) {
		for v := range seq.Values() {
			f(v)
			if !yield(v) {
				return
			}
		}
	}, seq.size)
}

// Foreach eagerly invokes f on every element of seq.
func Foreach[V any](f func(V), seq Seq[V]) {
	for v := range seq.Values() {
		f(v)
	}
}

// sortedIndex is the auxiliary membership structure behind Distinct, Union,
// Except and Intersect: a sorted slice probed and grown via binary search.
type sortedIndex[V any] struct {
	vs []V
}

// insert adds v unless an equal element is already present. It reports
// whether v was new.
func (x *sortedIndex[V]) insert(v V, compare func(V, V) int) bool {
	i, ok := slices.BinarySearchFunc(x.vs, v, compare)
	if ok {
		return false
	}
	x.vs = slices.Insert(x.vs, i, v)
	return true
}

// contains reports whether an element equal to v is present.
func (x *sortedIndex[V]) contains(v V, compare func(V, V) int) bool {
	_, ok := slices.BinarySearchFunc(x.vs, v, compare)
	return ok
}
