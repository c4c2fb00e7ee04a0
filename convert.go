// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import (
	"container/list"
	"strings"
)

// AppendSlice appends every element of seq to s and returns the result.
func AppendSlice[S ~[]V, V any](s S, seq Seq[V]) S {
	for v := range seq.Values() {
		s = append(s, v)
	}
	return s
}

// ToSlice drains seq into a fresh slice, pre-reserving capacity when the
// sequence reports a fast size.
func ToSlice[V any](seq Seq[V]) []V {
	return AppendSlice(make([]V, 0, sliceCap(seq)), seq)
}

// CopyToSlice fills dst from seq and returns the number of elements copied,
// stopping at whichever runs out first.
func CopyToSlice[S ~[]V, V any](dst S, seq Seq[V]) int {
	n := len(dst)
	if n == 0 {
		return 0
	}

	var i int
	for v := range seq.Values() {
		dst[i] = v
		i++
		if i >= n {
			break
		}
	}
	return i
}

// SetMap inserts every element into m under its computed key. A later
// element with an already-present key overwrites the earlier entry.
func SetMap[M ~map[K]V, K comparable, V any](m M, key func(V) K, seq Seq[V]) {
	for v := range seq.Values() {
		m[key(v)] = v
	}
}

// ToMap drains seq into a map keyed by key, last write winning on duplicate
// keys. Capacity is pre-reserved from the fast size when available.
func ToMap[K comparable, V any](key func(V) K, seq Seq[V]) map[K]V {
	res := make(map[K]V, sliceCap(seq))
	SetMap(res, key, seq)
	return res
}

// ToMapValues is ToMap with an element selector applied to each value before
// insertion; last write wins on duplicate keys.
func ToMapValues[K comparable, V, U any](key func(V) K, value func(V) U, seq Seq[V]) map[K]U {
	res := make(map[K]U, sliceCap(seq))
	for v := range seq.Values() {
		res[key(v)] = value(v)
	}
	return res
}

// ToGroupedMap drains seq into a map of per-key slices, values in encounter
// order.
func ToGroupedMap[K comparable, V any](key func(V) K, seq Seq[V]) map[K][]V {
	res := make(map[K][]V)
	for v := range seq.Values() {
		k := key(v)
		res[k] = append(res[k], v)
	}
	return res
}

// ToList drains seq into a container/list in order.
func ToList[V any](seq Seq[V]) *list.List {
	l := list.New()
	for v := range seq.Values() {
		l.PushBack(v)
	}
	return l
}

// JoinStrings concatenates the elements separated by sep.
func JoinStrings[V ~string](seq Seq[V], sep string) string {
	var (
		sb   strings.Builder
		tail bool
	)
	for v := range seq.Values() {
		if tail {
			sb.WriteString(sep)
		}
		tail = true
		sb.WriteString(string(v))
	}
	return sb.String()
}

// Drain runs seq to exhaustion, discarding every element.
func Drain[V any](seq Seq[V]) {
	seq.Values()(func(V) bool { return true })
}
