// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

// Operator is a pipeline stage: it consumes a sequence and produces a new
// one. Non-terminal operators in this package curry into Operator values via
// closures, e.g.
//
//	double := func(s Seq[int]) Seq[int] { return Select(func(v int) int { return v * 2 }, s) }
//
// Terminal operators collapse a sequence into a scalar and are applied
// directly, not piped.
type Operator[In, Out any] func(Seq[In]) Seq[Out]

// Pipe applies op to s. The input stage is fully constructed before op sees
// it, so pipelines read left to right.
func Pipe[In, Out any](s Seq[In], op Operator[In, Out]) Seq[Out] {
	return op(s)
}

// Pipe2 applies two type-changing stages in order.
func Pipe2[A, B, C any](s Seq[A], op1 Operator[A, B], op2 Operator[B, C]) Seq[C] {
	return op2(op1(s))
}

// Pipe3 applies three type-changing stages in order.
func Pipe3[A, B, C, D any](s Seq[A], op1 Operator[A, B], op2 Operator[B, C], op3 Operator[C, D]) Seq[D] {
	return op3(op2(op1(s)))
}

// Chain applies any number of element-type-preserving stages in order.
func Chain[V any](s Seq[V], ops ...Operator[V, V]) Seq[V] {
	for _, op := range ops {
		s = op(s)
	}
	return s
}
