// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import (
	"cmp"
	"slices"
)

// Concat concatenates multiple sequences into one, first to last. The size
// hint is the sum of the inputs' hints when all are present.
func Concat[V any](seqs ...Seq[V]) Seq[V] {
	return NewSized(func(yield func(V) bool) {
		for _, seq := range seqs {
			for v := range seq.Values() {
				if !yield(v) {
					return
				}
			}
		}
	}, addSizes(seqs))
}

// Except yields the elements of seq that do not occur in other, preserving
// seq's order and duplicates.
func Except[V cmp.Ordered](seq, other Seq[V]) Seq[V] {
	return ExceptFunc(cmp.Compare, seq, other)
}

// ExceptFunc is Except under a caller-supplied ordering. compare must be a
// total order. A sorted index over other's elements is built on the first
// membership probe and shared, read-only, by every cursor of the stage.
func ExceptFunc[V any](compare func(V, V) int, seq, other Seq[V]) Seq[V] {
	idx := &lazyMembers[V]{src: other, compare: compare}
	return New(func(yield func(V) bool) {
		for v := range seq.Values() {
			if idx.contains(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// Intersect yields the elements of seq that also occur in other, preserving
// seq's order and duplicates.
func Intersect[V cmp.Ordered](seq, other Seq[V]) Seq[V] {
	return IntersectFunc(cmp.Compare, seq, other)
}

// IntersectFunc is Intersect under a caller-supplied ordering; the same
// index sharing and total-order requirement as ExceptFunc apply.
func IntersectFunc[V any](compare func(V, V) int, seq, other Seq[V]) Seq[V] {
	idx := &lazyMembers[V]{src: other, compare: compare}
	return New(func(yield func(V) bool) {
		for v := range seq.Values() {
			if !idx.contains(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// Union yields the distinct elements of seq followed by the distinct
// elements of other not already seen, in encounter order.
func Union[V cmp.Ordered](seq, other Seq[V]) Seq[V] {
	return UnionFunc(cmp.Compare, seq, other)
}

// UnionFunc is Union under a caller-supplied ordering. compare must be a
// total order. One seen-index spans both inputs; unlike the membership index
// of ExceptFunc it is cursor-local state, rebuilt per pass.
func UnionFunc[V any](compare func(V, V) int, seq, other Seq[V]) Seq[V] {
	return New(func(yield func(V) bool) {
		var seen sortedIndex[V]
		for _, s := range []Seq[V]{seq, other} {
			for v := range s.Values() {
				if !seen.insert(v, compare) {
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	})
}

// lazyMembers is the shared membership side of Except and Intersect: the
// secondary sequence drained into a sorted slice on first probe, binary
// searched afterwards.
type lazyMembers[V any] struct {
	src     Seq[V]
	compare func(V, V) int
	built   bool
	vs      []V
}

func (l *lazyMembers[V]) contains(v V) bool {
	if !l.built {
		l.vs = slices.AppendSeq(make([]V, 0, sliceCap(l.src)), l.src.Values())
		slices.SortFunc(l.vs, l.compare)
		l.built = true
	}
	_, ok := slices.BinarySearchFunc(l.vs, v, l.compare)
	return ok
}
