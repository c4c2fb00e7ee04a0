// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq_test

import (
	"slices"
	"testing"

	. "spheric.cloud/xlinq"
)

func TestOfSlice(t *testing.T) {
	testCases := []struct {
		name string
		in   []int
	}{
		{"empty", []int{}},
		{"single", []int{4}},
		{"multiple", []int{4, 3, 7}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := OfSlice(tc.in)

			if !s.HasFastSize() {
				t.Error("expected fast size")
			}
			if got := s.Size(); got != len(tc.in) {
				t.Errorf("got size %d, expected %d", got, len(tc.in))
			}
			if got := ToSlice(s); !slices.Equal(got, tc.in) {
				t.Errorf("got %v, expected %v", got, tc.in)
			}
			// Second pass restarts at the first element.
			if got := ToSlice(s); !slices.Equal(got, tc.in) {
				t.Errorf("second pass got %v, expected %v", got, tc.in)
			}
		})
	}
}

func TestOf(t *testing.T) {
	s := Of(42, 23)
	if got := ToSlice(s); !slices.Equal(got, []int{42, 23}) {
		t.Errorf("got %v, expected [42 23]", got)
	}

	single := Of("x")
	if got := s.Size(); got != 2 {
		t.Errorf("got size %d, expected 2", got)
	}
	if got := single.Size(); got != 1 {
		t.Errorf("got size %d, expected 1", got)
	}
}

func TestEmpty(t *testing.T) {
	s := Empty[int]()
	if !s.HasFastSize() || s.Size() != 0 {
		t.Errorf("expected fast size 0, got fast=%v size=%d", s.HasFastSize(), s.Size())
	}
	for range s.Values() {
		t.Fatal("empty sequence yielded an element")
	}
}

func TestSizeCountsWhenUnknown(t *testing.T) {
	s := New(slices.Values([]int{1, 2, 3}))
	if s.HasFastSize() {
		t.Error("expected no fast size")
	}
	if got := s.Size(); got != 3 {
		t.Errorf("got size %d, expected 3", got)
	}
	// Counting must not disturb other cursors.
	next, stop := s.Pull()
	defer stop()
	v, _ := next()
	_ = s.Size()
	if v2, _ := next(); v != 1 || v2 != 2 {
		t.Errorf("cursor disturbed by Size: got %d, %d", v, v2)
	}
}

func TestPullCursorsAreIndependent(t *testing.T) {
	s := OfSlice([]int{1, 2, 3})

	next1, stop1 := s.Pull()
	defer stop1()
	next2, stop2 := s.Pull()
	defer stop2()

	a, _ := next1()
	b, _ := next1()
	c, _ := next2()
	if a != 1 || b != 2 || c != 1 {
		t.Errorf("cursors interfered: got %d, %d, %d", a, b, c)
	}
}

func TestRange(t *testing.T) {
	testCases := []struct {
		name       string
		start, end int
		want       []int
	}{
		{"empty", 3, 3, []int{}},
		{"simple", 0, 4, []int{0, 1, 2, 3}},
		{"offset", 40, 43, []int{40, 41, 42}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Range(tc.start, tc.end)
			if got := s.Size(); got != len(tc.want) {
				t.Errorf("got size %d, expected %d", got, len(tc.want))
			}
			if got := ToSlice(s); !slices.Equal(got, tc.want) {
				t.Errorf("got %v, expected %v", got, tc.want)
			}
		})
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for reversed range")
		}
	}()
	Range(4, 0)
}

func TestRangeStep(t *testing.T) {
	testCases := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"step one", 0, 3, 1, []int{0, 1, 2}},
		{"step two", 0, 7, 2, []int{0, 2, 4, 6}},
		{"descending", 5, 0, -2, []int{5, 3, 1}},
		{"empty", 2, 2, 3, []int{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := RangeStep(tc.start, tc.end, tc.step)
			if got := s.Size(); got != len(tc.want) {
				t.Errorf("got size %d, expected %d", got, len(tc.want))
			}
			if got := ToSlice(s); !slices.Equal(got, tc.want) {
				t.Errorf("got %v, expected %v", got, tc.want)
			}
		})
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero step")
		}
	}()
	RangeStep(0, 4, 0)
}

func TestRepeat(t *testing.T) {
	s := Repeat("x", 3)
	if got := s.Size(); got != 3 {
		t.Errorf("got size %d, expected 3", got)
	}
	if got := ToSlice(s); !slices.Equal(got, []string{"x", "x", "x"}) {
		t.Errorf("got %v, expected [x x x]", got)
	}
}

func TestRefsOfMutatesSource(t *testing.T) {
	vs := []int{1, 2, 3, 4, 5}

	// Mutating through a filtered pipeline writes into vs.
	odds := Where(func(p *int) bool { return *p%2 == 1 }, RefsOf(vs))
	Foreach(func(p *int) { *p *= 10 }, odds)
	if want := []int{10, 2, 30, 4, 50}; !slices.Equal(vs, want) {
		t.Errorf("got %v, expected %v", vs, want)
	}

	// Same through Drop.
	Foreach(func(p *int) { *p = 0 }, Drop(3, RefsOf(vs)))
	if want := []int{10, 2, 30, 0, 0}; !slices.Equal(vs, want) {
		t.Errorf("got %v, expected %v", vs, want)
	}
}

func TestOfMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	pairs := OfMap(m)
	if got := pairs.Size(); got != 2 {
		t.Errorf("got size %d, expected 2", got)
	}
	back := ToMapValues(
		func(p Pair[string, int]) string { return p.Key },
		func(p Pair[string, int]) int { return p.Value },
		pairs,
	)
	if back["a"] != 1 || back["b"] != 2 || len(back) != 2 {
		t.Errorf("round trip got %v", back)
	}

	keys := ToSlice(OfMapKeys(m))
	slices.Sort(keys)
	if !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("got keys %v", keys)
	}

	vals := ToSlice(OfMapValues(m))
	slices.Sort(vals)
	if !slices.Equal(vals, []int{1, 2}) {
		t.Errorf("got values %v", vals)
	}
}

func TestOfNext(t *testing.T) {
	i := 0
	s := OfNext(func() (int, bool) {
		if i >= 3 {
			return 0, false
		}
		i++
		return i, true
	})
	if s.HasFastSize() {
		t.Error("expected no fast size")
	}
	if got := ToSlice(s); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v, expected [1 2 3]", got)
	}
}

func TestOfChan(t *testing.T) {
	c := make(chan int, 3)
	c <- 7
	c <- 8
	close(c)

	got := ToSlice(OfChan(c))
	if !slices.Equal(got, []int{7, 8}) {
		t.Errorf("got %v, expected [7 8]", got)
	}
}
