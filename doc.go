// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

// Package xlinq is a lazy, composable query-operator library over finite or
// infinite sequences, in the style of language-integrated query.
//
// The central type is [Seq], a re-iterable wrapper around an iter.Seq
// producer plus an optional O(1) size hint. Sequence adapters ([Of],
// [OfSlice], [OfMap], [Range], [Repeat], ...) lift ordinary data into a Seq;
// operator functions ([Where], [Select], [OrderBy], [GroupBy], [Join], ...)
// wrap one Seq in another without doing any work; terminal functions
// ([First], [Aggregate], [ToSlice], ...) drive the pipeline and collapse it
// into a value. Nothing upstream runs until a cursor is advanced or a
// terminal is invoked:
//
//	evens := xlinq.Where(func(n int) bool { return n%2 == 0 }, xlinq.Range(0, 100))
//	squares := xlinq.Select(func(n int) int { return n * n }, evens)
//	total := xlinq.Sum(xlinq.Take(10, squares))
//
// Operators that need an auxiliary index (ordering, grouping, joins, set
// operations) build it once, lazily, and share it read-only across every
// cursor of that stage. The whole package is single-goroutine by design:
// cursors of one sequence may be interleaved freely on one goroutine, but
// nothing here is safe for concurrent use.
//
// Terminal operators come in a hard form that panics with a wrapped
// [ErrEmptySequence] or [ErrOutOfRange] on contract violation, and an Ok
// form returning (zero, false) instead. Use the Ok form whenever absence is
// a normal outcome.
package xlinq
