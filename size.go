// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

// Size-hint algebra. An operator forwards a hint only when it can be derived
// in O(1) from its inputs' hints; otherwise the result carries none and
// Size falls back to counting.

// addSizes combines the hints of concatenated sequences. The result is nil
// unless every input has a hint.
func addSizes[V any](seqs []Seq[V]) func() int {
	for _, s := range seqs {
		if s.size == nil {
			return nil
		}
	}
	return func() int {
		var n int
		for _, s := range seqs {
			n += s.size()
		}
		return n
	}
}

// capSize bounds a hint from above, as Take does.
func capSize(size func() int, n int) func() int {
	if size == nil {
		return nil
	}
	return func() int {
		return min(size(), max(n, 0))
	}
}

// subSize lowers a hint by n, saturating at zero, as Drop does.
func subSize(size func() int, n int) func() int {
	if size == nil {
		return nil
	}
	return func() int {
		return max(size()-max(n, 0), 0)
	}
}

// sliceCap turns a hint into an initial capacity for materializing
// conversions. Unknown size reserves nothing.
func sliceCap[V any](s Seq[V]) int {
	if s.size == nil {
		return 0
	}
	return s.size()
}
