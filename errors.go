// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

import (
	"errors"
	"fmt"
)

// Terminal operators distinguish two contract violations: asking a question
// that is undefined on an empty sequence, and making a request the sequence
// cannot satisfy (index past the end, zero or ambiguous matches). Both are
// raised as panics carrying a wrapped sentinel, so a recovered value can be
// classified with errors.Is.
var (
	// ErrEmptySequence signals an operator that requires at least one
	// element (Aggregate, Average, First, Last, Max, Min, Single, Sum).
	ErrEmptySequence = errors.New("empty sequence")

	// ErrOutOfRange signals an unsatisfiable request: ElementAt past the
	// end, or a predicate form of First/Last/Single finding no match, or
	// Single finding more than one.
	ErrOutOfRange = errors.New("out of range")
)

func opError(op string, err error) error {
	return fmt.Errorf("xlinq.%s: %w", op, err)
}
