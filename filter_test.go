// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "spheric.cloud/xlinq"
)

func TestWhere(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	s := Where(even, OfSlice([]int{42, 23, 66, 67, 11, 7}))
	assert.Equal(t, []int{42, 66}, ToSlice(s))
	assert.False(t, s.HasFastSize())
	assert.Equal(t, 2, s.Size())
}

func TestWhereIsLazy(t *testing.T) {
	var scans int
	src := OfSlice([]int{1, 2, 3, 4})
	s := Where(func(n int) bool {
		scans++
		return n%2 == 0
	}, src)

	require.Zero(t, scans, "construction must not scan the source")

	next, stop := s.Pull()
	defer stop()
	v, ok := next()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, scans, "advancing one step scans only up to the first match")

	Drain(s)
	assert.Equal(t, 6, scans)
}

func TestWhereIndexed(t *testing.T) {
	// The index counts source elements scanned, not elements yielded.
	var indices []int
	s := WhereIndexed(func(v int, i int) bool {
		indices = append(indices, i)
		return v > 10
	}, OfSlice([]int{42, 3, 66, 4}))

	assert.Equal(t, []int{42, 66}, ToSlice(s))
	assert.Equal(t, []int{0, 1, 2, 3}, indices)
}

func TestSelect(t *testing.T) {
	s := Select(strconv.Itoa, OfSlice([]int{42, 23}))

	require.True(t, s.HasFastSize())
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []string{"42", "23"}, ToSlice(s))
}

func TestSelectMultiPass(t *testing.T) {
	double := func(n int) int { return n * 2 }
	s := Select(double, OfSlice([]int{1, 2, 3}))

	first := ToSlice(s)
	second := ToSlice(s)
	assert.Equal(t, []int{2, 4, 6}, first)
	assert.Equal(t, first, second, "independent cursors must yield identical sequences")
}

func TestSelectIndexed(t *testing.T) {
	s := SelectIndexed(func(v string, i int) string {
		return strconv.Itoa(i) + v
	}, OfSlice([]string{"a", "b", "c"}))

	assert.Equal(t, []string{"0a", "1b", "2c"}, ToSlice(s))
}

func TestSelectMany(t *testing.T) {
	s := SelectMany(func(n int) Seq[int] {
		return Repeat(n, n)
	}, OfSlice([]int{1, 2, 3}))

	assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, ToSlice(s))
	assert.False(t, s.HasFastSize())
}

func TestSelectManyIsLazy(t *testing.T) {
	var expanded int
	s := SelectMany(func(n int) Seq[int] {
		expanded++
		return Of(n, n)
	}, OfSlice([]int{1, 2, 3}))

	require.Zero(t, expanded)

	got := ToSlice(Take(3, s))
	assert.Equal(t, []int{1, 1, 2}, got)
	assert.Equal(t, 2, expanded, "third sub-sequence must not be produced")
}

func TestCast(t *testing.T) {
	s := Cast[float64](OfSlice([]int{1, 2, 3}))
	require.True(t, s.HasFastSize())
	assert.Equal(t, []float64{1, 2, 3}, ToSlice(s))

	narrowed := Cast[int8](OfSlice([]int{300}))
	assert.Equal(t, []int8{44}, ToSlice(narrowed))
}

func TestDistinct(t *testing.T) {
	in := []int{42, 23, 66, 42, 67, 66, 23, 11}
	want := []int{42, 23, 66, 67, 11}

	s := Distinct(OfSlice(in))
	assert.Equal(t, want, ToSlice(s))

	// Idempotence: applying Distinct twice changes nothing.
	assert.Equal(t, want, ToSlice(Distinct(s)))

	// Multi-pass: the seen-index is rebuilt per cursor.
	assert.Equal(t, want, ToSlice(s))
}

func TestDistinctFunc(t *testing.T) {
	// Order strings by length only; first occurrence of a length wins.
	compare := func(a, b string) int {
		return len(a) - len(b)
	}
	s := DistinctFunc(compare, OfSlice([]string{"aa", "b", "cc", "ddd"}))
	assert.Equal(t, []string{"aa", "b", "ddd"}, ToSlice(s))
}

func TestTap(t *testing.T) {
	var seen []int
	s := Tap(func(v int) { seen = append(seen, v) }, OfSlice([]int{1, 2}))

	require.True(t, s.HasFastSize())
	require.Empty(t, seen, "Tap must not run before iteration")

	assert.Equal(t, []int{1, 2}, ToSlice(s))
	assert.Equal(t, []int{1, 2}, seen)
}

func TestMemoize(t *testing.T) {
	var calls int
	expensive := Select(func(n int) int {
		calls++
		return n * n
	}, OfSlice([]int{1, 2, 3}))

	s, stop := Memoize(expensive)
	defer stop()

	require.Zero(t, calls, "Memoize must not eagerly evaluate")
	require.True(t, s.HasFastSize())

	assert.Equal(t, []int{1, 4, 9}, ToSlice(s))
	assert.Equal(t, 3, calls)

	// A second pass replays the record without re-invoking the selector.
	assert.Equal(t, []int{1, 4, 9}, ToSlice(s))
	assert.Equal(t, 3, calls)
}

func TestMemoizePartialThenFull(t *testing.T) {
	var calls int
	src := Tap(func(int) { calls++ }, OfSlice([]int{1, 2, 3, 4}))

	s, stop := Memoize(src)
	defer stop()

	assert.Equal(t, []int{1, 2}, ToSlice(Take(2, s)))
	assert.Equal(t, 2, calls)

	assert.Equal(t, []int{1, 2, 3, 4}, ToSlice(s))
	assert.Equal(t, 4, calls, "prefix must come from the record")
}
