// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// LengthOpts bounds a collection generator's length. Zero value means
// [0, size] where size is the ambient generation size.
type LengthOpts struct {
	Min    int
	Max    int
	HasMax bool
}

func (o LengthOpts) resolve(size Size) (lo, hi int, err error) {
	lo = o.Min
	if lo < 0 {
		return 0, 0, newOptionError("length min %d is negative", lo)
	}
	hi = size
	if o.HasMax {
		hi = o.Max
	}
	if hi < lo {
		return 0, 0, newOptionError("length max %d is below min %d", hi, lo)
	}
	return lo, hi, nil
}

// ListOf generates a slice of values drawn from g with length in opts'
// bounds (default [0, size]), shrinking first by deleting elements
// (shortest forms considered earliest) and then by shrinking individual
// elements in place, matching spec.md's "list shrink-tree construction":
// one-deletion children before elementwise children.
func ListOf[T any](g Generator[T], opts LengthOpts) Generator[[]T] {
	return func(s Seed, size Size) (Tree[[]T], error) {
		lo, hi, err := opts.resolve(size)
		if err != nil {
			var zero Tree[[]T]
			return zero, err
		}
		lenSeed, elemSeed := s.Split()
		n := lo
		if hi > lo {
			n = int(UniformInRange(int64(lo), int64(hi), lenSeed))
		}
		trees := make([]Tree[T], n)
		cur := elemSeed
		for i := 0; i < n; i++ {
			var si Seed
			si, cur = cur.Split()
			t, err := g(si, size)
			if err != nil {
				var zero Tree[[]T]
				return zero, err
			}
			trees[i] = t
		}
		return listShrinkTree(trees, lo), nil
	}
}

// listShrinkTree builds the deletion-then-elementwise shrink tree for a
// fixed slice of element trees, respecting a minimum length.
func listShrinkTree[T any](trees []Tree[T], minLen int) Tree[[]T] {
	roots := make([]T, len(trees))
	for i, t := range trees {
		roots[i] = t.Root
	}
	return Tree[[]T]{
		Root: roots,
		Children: func(yield func(Tree[[]T]) bool) {
			if len(trees) > minLen {
				for i := range trees {
					shorter := make([]Tree[T], 0, len(trees)-1)
					shorter = append(shorter, trees[:i]...)
					shorter = append(shorter, trees[i+1:]...)
					if !yield(listShrinkTree(shorter, minLen)) {
						return
					}
				}
			}
			for i := range trees {
				for sub := range trees[i].Children {
					replaced := make([]Tree[T], len(trees))
					copy(replaced, trees)
					replaced[i] = sub
					if !yield(listShrinkTree(replaced, minLen)) {
						return
					}
				}
			}
		},
	}
}

// UniqListOf generates a slice of distinct-by-equality values, retrying
// each draw that collides with an already-chosen element up to retries
// times before failing the whole generation with TooManyDuplicates.
func UniqListOf[T comparable](g Generator[T], opts LengthOpts, retries int) Generator[[]T] {
	return UniqByListOf(g, opts, retries, func(x T) T { return x })
}

// UniqByListOf is UniqListOf parameterized by a key function, for
// elements that should be compared by a derived key rather than by their
// own equality.
func UniqByListOf[T any, K comparable](g Generator[T], opts LengthOpts, retries int, key func(T) K) Generator[[]T] {
	return func(s Seed, size Size) (Tree[[]T], error) {
		lo, hi, err := opts.resolve(size)
		if err != nil {
			var zero Tree[[]T]
			return zero, err
		}
		lenSeed, elemSeed := s.Split()
		n := lo
		if hi > lo {
			n = int(UniformInRange(int64(lo), int64(hi), lenSeed))
		}
		trees := make([]Tree[T], 0, n)
		seen := make(map[K]struct{}, n)
		cur := elemSeed
		for i := 0; i < n; i++ {
			ok := false
			for attempt := 0; attempt <= retries; attempt++ {
				var si Seed
				si, cur = cur.Split()
				t, err := g(si, size)
				if err != nil {
					var zero Tree[[]T]
					return zero, err
				}
				k := key(t.Root)
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				trees = append(trees, t)
				ok = true
				break
			}
			if !ok {
				var zero Tree[[]T]
				return zero, &GenError{Kind: TooManyDuplicates, Message: "could not draw enough unique elements within the retry budget"}
			}
		}
		return uniqListShrinkTree(trees, lo, key), nil
	}
}

// uniqListShrinkTree mirrors listShrinkTree but re-validates uniqueness
// after every elementwise shrink attempt, dropping any candidate that
// would introduce a duplicate key.
func uniqListShrinkTree[T any, K comparable](trees []Tree[T], minLen int, key func(T) K) Tree[[]T] {
	roots := make([]T, len(trees))
	for i, t := range trees {
		roots[i] = t.Root
	}
	return Tree[[]T]{
		Root: roots,
		Children: func(yield func(Tree[[]T]) bool) {
			if len(trees) > minLen {
				for i := range trees {
					shorter := make([]Tree[T], 0, len(trees)-1)
					shorter = append(shorter, trees[:i]...)
					shorter = append(shorter, trees[i+1:]...)
					if !yield(uniqListShrinkTree(shorter, minLen, key)) {
						return
					}
				}
			}
			for i := range trees {
				for sub := range trees[i].Children {
					if keyCollides(trees, i, sub.Root, key) {
						continue
					}
					replaced := make([]Tree[T], len(trees))
					copy(replaced, trees)
					replaced[i] = sub
					if !yield(uniqListShrinkTree(replaced, minLen, key)) {
						return
					}
				}
			}
		},
	}
}

func keyCollides[T any, K comparable](trees []Tree[T], skip int, candidate T, key func(T) K) bool {
	k := key(candidate)
	for i, t := range trees {
		if i == skip {
			continue
		}
		if key(t.Root) == k {
			return true
		}
	}
	return false
}

// MapOf generates a map from uniquely-keyed kg draws to vg draws, with
// length in opts' bounds, shrinking the same way UniqByListOf shrinks its
// backing key-value pairs, then folding them into a map.
func MapOf[K comparable, V any](kg Generator[K], vg Generator[V], opts LengthOpts) Generator[map[K]V] {
	pairs := UniqByListOf(zipPair(kg, vg), opts, DefaultFilterRetries, func(p kvPair[K, V]) K { return p.Key })
	return Map(pairs, pairsToMap[K, V])
}

type kvPair[K comparable, V any] struct {
	Key K
	Val V
}

func zipPair[K comparable, V any](kg Generator[K], vg Generator[V]) Generator[kvPair[K, V]] {
	return Bind(kg, func(k K) Generator[kvPair[K, V]] {
		return Map(vg, func(v V) kvPair[K, V] { return kvPair[K, V]{Key: k, Val: v} })
	})
}

func pairsToMap[K comparable, V any](pairs []kvPair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Val
	}
	return m
}
