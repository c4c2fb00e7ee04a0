// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

// Zipped holds one pairing step of Zip: a value from each input, with
// presence flags that go false once the respective input is exhausted.
type Zipped[V1, V2 any] struct {
	V1  V1
	Ok1 bool

	V2  V2
	Ok2 bool
}

// Zip pairs the two sequences element by element. Pairing continues until
// both inputs are exhausted; once one input ends, its side of the pair
// carries the zero value and a false flag. The size hint is the larger of
// the inputs' hints when both are present.
func Zip[V1, V2 any](seq1 Seq[V1], seq2 Seq[V2]) Seq[Zipped[V1, V2]] {
	var size func() int
	if seq1.size != nil && seq2.size != nil {
		size = func() int { return max(seq1.size(), seq2.size()) }
	}
	return NewSized(func(yield func(Zipped[V1, V2]) bool) {
		next, stop := seq2.Pull()
		defer stop()

		ok := true
		v2, ok2 := next()
		seq1.Values()(func(v1 V1) bool {
			if !yield(Zipped[V1, V2]{v1, true, v2, ok2}) {
				ok = false
				return false
			}
			v2, ok2 = next()
			return true
		})
		if !ok {
			return
		}

		var v1 V1
		for ok2 {
			if !yield(Zipped[V1, V2]{v1, false, v2, ok2}) {
				return
			}
			v2, ok2 = next()
		}
	}, size)
}

// Enumerate pairs every element with its position, starting at zero.
func Enumerate[V any](seq Seq[V]) Seq[Pair[int, V]] {
	return NewSized(func(yield func(Pair[int, V]) bool) {
		var i int
		for v := range seq.Values() {
			if !yield(Pair[int, V]{i, v}) {
				return
			}
			i++
		}
	}, seq.size)
}
