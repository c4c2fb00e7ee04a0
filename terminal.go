// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import "cmp"

// Aggregate folds seq through f with the first element as the seed;
// accumulation starts at the second element. Panics with ErrEmptySequence on
// an empty sequence — use Reduce with an explicit seed when empty input is a
// normal possibility.
func Aggregate[V any](f func(V, V) V, seq Seq[V]) V {
	var (
		acc    V
		seeded bool
	)
	for v := range seq.Values() {
		if !seeded {
			acc = v
			seeded = true
			continue
		}
		acc = f(acc, v)
	}
	if !seeded {
		panic(opError("Aggregate", ErrEmptySequence))
	}
	return acc
}

// Reduce folds seq through f starting from sum. Every element participates;
// an empty sequence returns sum unchanged.
func Reduce[Sum, V any](sum Sum, f func(Sum, V) Sum, seq Seq[V]) Sum {
	for v := range seq.Values() {
		sum = f(sum, v)
	}
	return sum
}

// ReduceResult is Reduce followed by a single application of result to the
// final accumulator.
func ReduceResult[Sum, V, R any](sum Sum, f func(Sum, V) Sum, result func(Sum) R, seq Seq[V]) R {
	return result(Reduce(sum, f, seq))
}

// Sum adds up all elements. Panics with ErrEmptySequence on an empty
// sequence.
func Sum[V Number](seq Seq[V]) V {
	var (
		sum  V
		seen bool
	)
	for v := range seq.Values() {
		sum += v
		seen = true
	}
	if !seen {
		panic(opError("Sum", ErrEmptySequence))
	}
	return sum
}

// Average returns the mean of all elements in V's arithmetic, so integer
// input truncates. Panics with ErrEmptySequence on an empty sequence.
func Average[V Number](seq Seq[V]) V {
	var (
		sum V
		n   int
	)
	for v := range seq.Values() {
		sum += v
		n++
	}
	if n == 0 {
		panic(opError("Average", ErrEmptySequence))
	}
	return sum / V(n)
}

// Min returns the smallest element. Panics with ErrEmptySequence on an empty
// sequence.
func Min[V cmp.Ordered](seq Seq[V]) V {
	v, ok := MinOk(seq)
	if !ok {
		panic(opError("Min", ErrEmptySequence))
	}
	return v
}

// MinFunc is Min under a caller-supplied comparator.
func MinFunc[V any](compare func(V, V) int, seq Seq[V]) V {
	v, ok := MinOkFunc(compare, seq)
	if !ok {
		panic(opError("MinFunc", ErrEmptySequence))
	}
	return v
}

// MinOk returns the smallest element, or false on an empty sequence.
func MinOk[V cmp.Ordered](seq Seq[V]) (V, bool) {
	return MinOkFunc(cmp.Compare, seq)
}

// MinOkFunc is MinOk under a caller-supplied comparator. Ties keep the
// earlier element.
func MinOkFunc[V any](compare func(V, V) int, seq Seq[V]) (V, bool) {
	var (
		res V
		ok  bool
	)
	for v := range seq.Values() {
		if !ok || compare(v, res) < 0 {
			res = v
			ok = true
		}
	}
	return res, ok
}

// Max returns the largest element. Panics with ErrEmptySequence on an empty
// sequence.
func Max[V cmp.Ordered](seq Seq[V]) V {
	v, ok := MaxOk(seq)
	if !ok {
		panic(opError("Max", ErrEmptySequence))
	}
	return v
}

// MaxFunc is Max under a caller-supplied comparator.
func MaxFunc[V any](compare func(V, V) int, seq Seq[V]) V {
	v, ok := MaxOkFunc(compare, seq)
	if !ok {
		panic(opError("MaxFunc", ErrEmptySequence))
	}
	return v
}

// MaxOk returns the largest element, or false on an empty sequence.
func MaxOk[V cmp.Ordered](seq Seq[V]) (V, bool) {
	return MaxOkFunc(cmp.Compare, seq)
}

// MaxOkFunc is MaxOk under a caller-supplied comparator. Ties keep the
// earlier element.
func MaxOkFunc[V any](compare func(V, V) int, seq Seq[V]) (V, bool) {
	var (
		res V
		ok  bool
	)
	for v := range seq.Values() {
		if !ok || compare(v, res) > 0 {
			res = v
			ok = true
		}
	}
	return res, ok
}

// First returns the first element. Panics with ErrEmptySequence on an empty
// sequence.
func First[V any](seq Seq[V]) V {
	v, ok := FirstOk(seq)
	if !ok {
		panic(opError("First", ErrEmptySequence))
	}
	return v
}

// FirstFunc returns the first element satisfying f. Panics with
// ErrOutOfRange when no element matches.
func FirstFunc[V any](f func(V) bool, seq Seq[V]) V {
	v, ok := FirstOkFunc(f, seq)
	if !ok {
		panic(opError("FirstFunc", ErrOutOfRange))
	}
	return v
}

// FirstOk returns the first element, or false on an empty sequence.
func FirstOk[V any](seq Seq[V]) (V, bool) {
	for v := range seq.Values() {
		return v, true
	}
	var zero V
	return zero, false
}

// FirstOkFunc returns the first element satisfying f, or false when none
// does.
func FirstOkFunc[V any](f func(V) bool, seq Seq[V]) (V, bool) {
	for v := range seq.Values() {
		if f(v) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Last returns the last element. Panics with ErrEmptySequence on an empty
// sequence.
func Last[V any](seq Seq[V]) V {
	v, ok := LastOk(seq)
	if !ok {
		panic(opError("Last", ErrEmptySequence))
	}
	return v
}

// LastFunc returns the last element satisfying f. Panics with ErrOutOfRange
// when no element matches.
func LastFunc[V any](f func(V) bool, seq Seq[V]) V {
	v, ok := LastOkFunc(f, seq)
	if !ok {
		panic(opError("LastFunc", ErrOutOfRange))
	}
	return v
}

// LastOk returns the last element, or false on an empty sequence.
func LastOk[V any](seq Seq[V]) (V, bool) {
	var (
		res V
		ok  bool
	)
	for v := range seq.Values() {
		res = v
		ok = true
	}
	return res, ok
}

// LastOkFunc returns the last element satisfying f, or false when none does.
func LastOkFunc[V any](f func(V) bool, seq Seq[V]) (V, bool) {
	var (
		res V
		ok  bool
	)
	for v := range seq.Values() {
		if f(v) {
			res = v
			ok = true
		}
	}
	return res, ok
}

// Single returns the sole element of seq. Panics with ErrEmptySequence on an
// empty sequence and with ErrOutOfRange when a second element exists; the
// second violation is detected as soon as that element is produced.
func Single[V any](seq Seq[V]) V {
	var (
		res   V
		found bool
	)
	for v := range seq.Values() {
		if found {
			panic(opError("Single", ErrOutOfRange))
		}
		res = v
		found = true
	}
	if !found {
		panic(opError("Single", ErrEmptySequence))
	}
	return res
}

// SingleFunc returns the sole element satisfying f. Panics with
// ErrOutOfRange when no element or more than one element matches.
func SingleFunc[V any](f func(V) bool, seq Seq[V]) V {
	var (
		res   V
		found bool
	)
	for v := range seq.Values() {
		if !f(v) {
			continue
		}
		if found {
			panic(opError("SingleFunc", ErrOutOfRange))
		}
		res = v
		found = true
	}
	if !found {
		panic(opError("SingleFunc", ErrOutOfRange))
	}
	return res
}

// SingleOk returns the sole element of seq. It never panics: the zero value
// and false are returned both when the sequence is empty and when it holds
// more than one element, deliberately conflating "not found" with
// "ambiguous".
func SingleOk[V any](seq Seq[V]) (V, bool) {
	return SingleOkFunc(func(V) bool { return true }, seq)
}

// SingleOkFunc is SingleOk restricted to elements satisfying f: false for
// zero matches and for two or more.
func SingleOkFunc[V any](f func(V) bool, seq Seq[V]) (V, bool) {
	var (
		res   V
		found bool
	)
	for v := range seq.Values() {
		if !f(v) {
			continue
		}
		if found {
			var zero V
			return zero, false
		}
		res = v
		found = true
	}
	return res, found
}

// ElementAt returns the element at position idx, scanning linearly. Panics
// with ErrOutOfRange when idx is negative or the sequence is shorter than
// idx+1.
func ElementAt[V any](idx int, seq Seq[V]) V {
	v, ok := ElementAtOk(idx, seq)
	if !ok {
		panic(opError("ElementAt", ErrOutOfRange))
	}
	return v
}

// ElementAtOk returns the element at position idx, or false when out of
// bounds.
func ElementAtOk[V any](idx int, seq Seq[V]) (V, bool) {
	if idx < 0 {
		var zero V
		return zero, false
	}
	var i int
	for v := range seq.Values() {
		if i == idx {
			return v, true
		}
		i++
	}
	var zero V
	return zero, false
}

// Count returns the number of elements satisfying f.
func Count[V any](f func(V) bool, seq Seq[V]) int {
	var n int
	for v := range seq.Values() {
		if f(v) {
			n++
		}
	}
	return n
}

// Len returns the number of elements, using the O(1) size hint when one is
// present.
func Len[V any](seq Seq[V]) int {
	return seq.Size()
}

// All reports whether every element satisfies f. Vacuously true on an empty
// sequence.
func All[V any](f func(V) bool, seq Seq[V]) bool {
	for v := range seq.Values() {
		if !f(v) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element satisfies f.
func Any[V any](f func(V) bool, seq Seq[V]) bool {
	for v := range seq.Values() {
		if f(v) {
			return true
		}
	}
	return false
}

// None reports whether no element satisfies f.
func None[V any](f func(V) bool, seq Seq[V]) bool {
	return !Any(f, seq)
}

// Contains reports whether needle occurs in seq.
func Contains[V comparable](seq Seq[V], needle V) bool {
	for v := range seq.Values() {
		if v == needle {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether any element satisfies f.
func ContainsFunc[V any](f func(V) bool, seq Seq[V]) bool {
	return Any(f, seq)
}

// SequenceEqual reports whether both sequences have the same length and
// equal elements pairwise, stopping at the first mismatch.
func SequenceEqual[V comparable](seq1, seq2 Seq[V]) bool {
	for z := range Zip(seq1, seq2).Values() {
		if z.Ok1 != z.Ok2 || z.V1 != z.V2 {
			return false
		}
	}
	return true
}

// SequenceEqualFunc is SequenceEqual under a caller-supplied equality
// predicate; the sequences may differ in element type.
func SequenceEqualFunc[V1, V2 any](seq1 Seq[V1], seq2 Seq[V2], f func(V1, V2) bool) bool {
	for z := range Zip(seq1, seq2).Values() {
		if z.Ok1 != z.Ok2 {
			return false
		}
		if z.Ok1 && !f(z.V1, z.V2) {
			return false
		}
	}
	return true
}
