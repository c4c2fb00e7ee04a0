// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import (
	"cmp"
	"slices"
)

// OrderedSeq is a Seq sorted under a comparator, with the comparator kept
// around so ThenBy can refine it. The sort is stable and deferred: nothing is
// collected or compared until some cursor of the stage first demands an
// element, after which the sorted buffer is shared by all its cursors.
type OrderedSeq[V any] struct {
	Seq[V]
	src     Seq[V]
	compare func(V, V) int
}

func newOrderedSeq[V any](src Seq[V], compare func(V, V) int) OrderedSeq[V] {
	cell := &lazySorted[V]{src: src, compare: compare}
	size := src.size
	if size == nil {
		size = func() int { return len(cell.get()) }
	}
	return OrderedSeq[V]{
		Seq: NewSized(func(yield func(V) bool) {
			for _, v := range cell.get() {
				if !yield(v) {
					return
				}
			}
		}, size),
		src:     src,
		compare: compare,
	}
}

// OrderBy sorts seq ascending by the given key.
func OrderBy[V any, K cmp.Ordered](key func(V) K, seq Seq[V]) OrderedSeq[V] {
	return OrderByFunc(keyCompare(key, false), seq)
}

// OrderByDescending sorts seq descending by the given key.
func OrderByDescending[V any, K cmp.Ordered](key func(V) K, seq Seq[V]) OrderedSeq[V] {
	return OrderByFunc(keyCompare(key, true), seq)
}

// OrderByFunc sorts seq under a caller-supplied comparator returning
// negative, zero or positive. The sort is stable, so elements comparing
// equal keep their source order.
func OrderByFunc[V any](compare func(V, V) int, seq Seq[V]) OrderedSeq[V] {
	return newOrderedSeq(seq, compare)
}

// ThenBy refines an existing ordering with an ascending secondary key,
// consulted only where the primary comparator ties.
func ThenBy[V any, K cmp.Ordered](key func(V) K, seq OrderedSeq[V]) OrderedSeq[V] {
	return ThenByFunc(keyCompare(key, false), seq)
}

// ThenByDescending refines an existing ordering with a descending secondary
// key.
func ThenByDescending[V any, K cmp.Ordered](key func(V) K, seq OrderedSeq[V]) OrderedSeq[V] {
	return ThenByFunc(keyCompare(key, true), seq)
}

// ThenByFunc refines an existing ordering with a secondary comparator.
// The refined stage sorts the original source once under the composed
// comparator; any buffer the coarser stage may have built is untouched.
func ThenByFunc[V any](compare func(V, V) int, seq OrderedSeq[V]) OrderedSeq[V] {
	primary := seq.compare
	return newOrderedSeq(seq.src, func(a, b V) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return compare(a, b)
	})
}

func keyCompare[V any, K cmp.Ordered](key func(V) K, desc bool) func(V, V) int {
	if desc {
		return func(a, b V) int { return cmp.Compare(key(b), key(a)) }
	}
	return func(a, b V) int { return cmp.Compare(key(a), key(b)) }
}

type lazySorted[V any] struct {
	src     Seq[V]
	compare func(V, V) int
	built   bool
	vs      []V
}

func (l *lazySorted[V]) get() []V {
	if !l.built {
		l.vs = slices.AppendSeq(make([]V, 0, sliceCap(l.src)), l.src.Values())
		slices.SortStableFunc(l.vs, l.compare)
		l.built = true
	}
	return l.vs
}
