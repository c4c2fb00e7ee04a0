// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import (
	"cmp"
	"slices"
)

// Grouping is one key's worth of a GroupBy or GroupJoin result: the key and
// a sequence over the elements collected under it, in encounter order.
type Grouping[K, V any] struct {
	Key    K
	Values Seq[V]
}

// GroupBy partitions seq by the given key. The result yields one Grouping
// per distinct key, in ascending key order; within a group, values keep the
// order in which they were encountered. The source is scanned once, on first
// demand (iteration or Size), and the table is shared by all cursors.
func GroupBy[K cmp.Ordered, V any](key func(V) K, seq Seq[V]) Seq[Grouping[K, V]] {
	return GroupByFunc(key, cmp.Compare, seq)
}

// GroupByFunc is GroupBy under a caller-supplied key ordering. compare must
// be a total order on keys; the group table is key-sorted, not hashed, so
// keys need not be comparable in the language sense.
func GroupByFunc[K, V any](key func(V) K, compare func(K, K) int, seq Seq[V]) Seq[Grouping[K, V]] {
	return groupSeq(key, ident[V], compare, seq)
}

// GroupValuesBy is GroupBy with an element selector applied to each value
// before it is collected into its group.
func GroupValuesBy[K cmp.Ordered, V, U any](key func(V) K, value func(V) U, seq Seq[V]) Seq[Grouping[K, U]] {
	return GroupValuesByFunc(key, value, cmp.Compare, seq)
}

// GroupValuesByFunc is GroupValuesBy under a caller-supplied key ordering.
func GroupValuesByFunc[K, V, U any](key func(V) K, value func(V) U, compare func(K, K) int, seq Seq[V]) Seq[Grouping[K, U]] {
	return groupSeq(key, value, compare, seq)
}

// GroupByFold groups seq by key and collapses each group through fold,
// yielding one result per distinct key in ascending key order.
func GroupByFold[K cmp.Ordered, V, R any](key func(V) K, fold func(K, Seq[V]) R, seq Seq[V]) Seq[R] {
	return GroupByFoldFunc(key, fold, cmp.Compare, seq)
}

// GroupByFoldFunc is GroupByFold under a caller-supplied key ordering.
func GroupByFoldFunc[K, V, R any](key func(V) K, fold func(K, Seq[V]) R, compare func(K, K) int, seq Seq[V]) Seq[R] {
	groups := GroupByFunc(key, compare, seq)
	return Select(func(g Grouping[K, V]) R {
		return fold(g.Key, g.Values)
	}, groups)
}

// Join correlates two sequences on matching keys: for every outer element
// whose key occurs in inner, sel is applied once per matching inner element.
// Outer elements without a match produce nothing. Results preserve outer
// order, then inner encounter order within each outer element.
func Join[O, I any, K cmp.Ordered, R any](outer Seq[O], inner Seq[I], outerKey func(O) K, innerKey func(I) K, sel func(O, I) R) Seq[R] {
	return JoinFunc(outer, inner, outerKey, innerKey, sel, cmp.Compare)
}

// JoinFunc is Join under a caller-supplied key ordering. The inner sequence
// is indexed into a key-sorted group table on first demand; the table is
// shared, read-only, by all cursors of the stage.
func JoinFunc[O, I, K, R any](outer Seq[O], inner Seq[I], outerKey func(O) K, innerKey func(I) K, sel func(O, I) R, compare func(K, K) int) Seq[R] {
	tbl := &groupTable[K, I, I]{src: inner, key: innerKey, value: ident[I], compare: compare}
	return New(func(yield func(R) bool) {
		for o := range outer.Values() {
			matches, ok := tbl.lookup(outerKey(o))
			if !ok {
				continue
			}
			for _, i := range matches {
				if !yield(sel(o, i)) {
					return
				}
			}
		}
	})
}

// GroupJoin correlates two sequences on matching keys, emitting exactly one
// result per outer element: sel applied to the element and the (possibly
// empty) sequence of its matches. The result's size hint is the outer's.
func GroupJoin[O, I any, K cmp.Ordered, R any](outer Seq[O], inner Seq[I], outerKey func(O) K, innerKey func(I) K, sel func(O, Seq[I]) R) Seq[R] {
	return GroupJoinFunc(outer, inner, outerKey, innerKey, sel, cmp.Compare)
}

// GroupJoinFunc is GroupJoin under a caller-supplied key ordering.
func GroupJoinFunc[O, I, K, R any](outer Seq[O], inner Seq[I], outerKey func(O) K, innerKey func(I) K, sel func(O, Seq[I]) R, compare func(K, K) int) Seq[R] {
	tbl := &groupTable[K, I, I]{src: inner, key: innerKey, value: ident[I], compare: compare}
	return NewSized(func(yield func(R) bool) {
		for o := range outer.Values() {
			matches, ok := tbl.lookup(outerKey(o))
			if !ok {
				if !yield(sel(o, Empty[I]())) {
					return
				}
				continue
			}
			if !yield(sel(o, OfSlice(matches))) {
				return
			}
		}
	}, outer.size)
}

func groupSeq[K, V, U any](key func(V) K, value func(V) U, compare func(K, K) int, seq Seq[V]) Seq[Grouping[K, U]] {
	tbl := &groupTable[K, V, U]{src: seq, key: key, value: value, compare: compare}
	return NewSized(func(yield func(Grouping[K, U]) bool) {
		tbl.build()
		for i, k := range tbl.keys {
			if !yield(Grouping[K, U]{Key: k, Values: OfSlice(tbl.vals[i])}) {
				return
			}
		}
	}, func() int {
		tbl.build()
		return len(tbl.keys)
	})
}

// groupTable is the auxiliary index behind GroupBy, Join and GroupJoin: a
// key-sorted slice with a parallel slice of per-key value lists. Built once,
// lazily, and never mutated afterwards.
type groupTable[K, V, U any] struct {
	src     Seq[V]
	key     func(V) K
	value   func(V) U
	compare func(K, K) int
	built   bool
	keys    []K
	vals    [][]U
}

func (t *groupTable[K, V, U]) build() {
	if t.built {
		return
	}
	for v := range t.src.Values() {
		k := t.key(v)
		i, ok := slices.BinarySearchFunc(t.keys, k, t.compare)
		if ok {
			t.vals[i] = append(t.vals[i], t.value(v))
			continue
		}
		t.keys = slices.Insert(t.keys, i, k)
		t.vals = slices.Insert(t.vals, i, []U{t.value(v)})
	}
	t.built = true
}

func (t *groupTable[K, V, U]) lookup(k K) ([]U, bool) {
	t.build()
	i, ok := slices.BinarySearchFunc(t.keys, k, t.compare)
	if !ok {
		return nil, false
	}
	return t.vals[i], true
}

func ident[V any](v V) V { return v }
