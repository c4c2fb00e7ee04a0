// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package xlinq

// Memoize returns a sequence that records elements as they are first
// produced and replays the record on later passes, so upstream work (an
// expensive Select, a side-effecting source) happens at most once per
// element. Interleaved cursors share one upstream pull cursor: each reads the
// buffer first, then continues pulling where the buffer ends.
//
// stop releases the upstream cursor and must be called once the memoized
// sequence is no longer needed, unless some cursor already ran to exhaustion.
func Memoize[V any](seq Seq[V]) (res Seq[V], stop func()) {
	var (
		vs      []V
		done    bool
		next    func() (V, bool)
		stopSeq func()
	)
	memo := func(yield func(V) bool) {
		var pos int
		for {
			// Replay whatever the shared buffer holds beyond this
			// cursor's position; yield may advance other cursors
			// underneath us and grow the buffer.
			for pos < len(vs) {
				if !yield(vs[pos]) {
					return
				}
				pos++
			}
			if done {
				return
			}

			if next == nil {
				next, stopSeq = seq.Pull()
			}
			v, ok := next()
			if !ok {
				done = true
				stopSeq()
				stopSeq = nil
				return
			}
			vs = append(vs, v)
		}
	}
	return NewSized(memo, seq.size), func() {
		if stopSeq != nil {
			stopSeq()
			stopSeq = nil
		}
	}
}
