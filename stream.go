// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

import (
	"context"
	"iter"
	"sync/atomic"
)

// pickCounter is the ambient seed source Pick advances on every call —
// the package-level atomic counter spec.md §9's "pick(generator) -> T:
// one draw using an ambient seed" calls for, playing the same "a global,
// automatically-advancing source of randomness" role math/rand's
// top-level functions played before math/rand/v2 pushed everything onto
// explicit *Rand values.
var pickCounter uint64

// Stream returns an infinite, lazy sequence of values drawn from g,
// splitting seed once per value so each draw is independent. It stops
// early if ctx is cancelled, the same cancellation-point discipline the
// rest of this package's blocking entry points follow.
func Stream[T any](ctx context.Context, g Generator[T], seed Seed, size Size) iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := seed
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			var s Seed
			s, cur = cur.Split()
			t, err := g(s, size)
			if err != nil {
				return
			}
			if !yield(t.Root) {
				return
			}
		}
	}
}

// Take draws the first n values g produces from seed, discarding shrink
// trees — a convenience for callers who just want sample data, not a
// property run.
func Take[T any](g Generator[T], seed Seed, size Size, n int) []T {
	out := make([]T, 0, n)
	for v := range Stream(context.Background(), g, seed, size) {
		if len(out) >= n {
			break
		}
		out = append(out, v)
	}
	return out
}

// Pick draws exactly one value from g using an ambient seed — each call
// advances pickCounter, so back-to-back Picks in the same process draw
// independent values without the caller threading a Seed through. For
// callers assembling a value out-of-band from property checking (e.g.
// seeding a benchmark fixture) where reproducibility matters, build the
// generator with Seeded instead.
func Pick[T any](g Generator[T], size Size) (T, error) {
	n := atomic.AddUint64(&pickCounter, 1)
	t, err := g(NewSeed(n), size)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.Root, nil
}

// Shrinks enumerates every node of t's shrink tree in the same
// inner-first, leftmost-first order the runner's shrink search walks,
// depth-first. Useful for inspecting or testing a generator's shrink
// shape directly without running a failing property.
func Shrinks[T any](t Tree[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(t.Root) {
			return
		}
		for c := range t.Children {
			for v := range Shrinks(c) {
				if !yield(v) {
					return
				}
			}
		}
	}
}
