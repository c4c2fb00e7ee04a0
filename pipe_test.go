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

func TestPipe(t *testing.T) {
	itoa := func(s Seq[int]) Seq[string] {
		return Select(strconv.Itoa, s)
	}
	got := ToSlice(Pipe(OfSlice([]int{1, 2}), itoa))
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestPipe3(t *testing.T) {
	evens := func(s Seq[int]) Seq[int] {
		return Where(func(n int) bool { return n%2 == 0 }, s)
	}
	itoa := func(s Seq[int]) Seq[string] {
		return Select(strconv.Itoa, s)
	}
	pad := func(s Seq[string]) Seq[string] {
		return Select(func(v string) string { return "#" + v }, s)
	}

	got := ToSlice(Pipe3(Range(0, 6), evens, itoa, pad))
	assert.Equal(t, []string{"#0", "#2", "#4"}, got)
}

func TestChain(t *testing.T) {
	double := func(s Seq[int]) Seq[int] {
		return Select(func(n int) int { return n * 2 }, s)
	}
	dropOne := func(s Seq[int]) Seq[int] {
		return Drop(1, s)
	}

	got := ToSlice(Chain(OfSlice([]int{1, 2, 3}), double, dropOne))
	assert.Equal(t, []int{4, 6}, got)

	// No stages is the identity.
	assert.Equal(t, []int{1, 2}, ToSlice(Chain(OfSlice([]int{1, 2}))))
}

func TestChainIsLazy(t *testing.T) {
	var scans int
	count := func(s Seq[int]) Seq[int] {
		return Tap(func(int) { scans++ }, s)
	}

	s := Chain(OfSlice([]int{1, 2, 3}), count, count)
	require.Zero(t, scans, "chaining must not evaluate any stage")

	Drain(s)
	assert.Equal(t, 6, scans)
}
