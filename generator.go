// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// Size is a non-negative hint to generators for how large a value to
// produce. It starts at Options.InitialSize and grows by one per
// successful run up to Options.MaxGenerationSize. It is not a hard limit —
// a contract generators should honor monotonically (bigger size implies a
// broader range) — but nothing in this package enforces that generators
// obey it.
type Size = int

// Generator is a pure function from (seed, size) to a lazy rose tree of
// candidate values, plus an error for the rare generator-level failures
// (FilterTooNarrow, TooManyDuplicates, EmptyEnum, ...) that abort a run
// rather than participate in it. Determinism invariant: the same (seed,
// size) always produces an equal tree, including equal k-th children once
// forced.
//
// Generators are values: built once, shared freely, never mutated.
type Generator[T any] func(Seed, Size) (Tree[T], error)

// ConstantGen returns a generator that always produces x with no shrinks.
func ConstantGen[T any](x T) Generator[T] {
	return func(Seed, Size) (Tree[T], error) {
		return Constant(x), nil
	}
}

// Map transforms every value a generator produces, root and shrinks alike.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return func(s Seed, size Size) (Tree[U], error) {
		t, err := g(s, size)
		if err != nil {
			var zero Tree[U]
			return zero, err
		}
		return MapTree(t, f), nil
	}
}

// Bind sequences two generators: draw from g, then use its value to build
// the next generator. The two draws use independently split seeds, so the
// bound generator's shrinks do not perturb g's shrinks or vice versa.
// Because flatten puts the inner tree's shrinks first, values bound from g
// shrink toward their minimal instances before the outer structure does.
func Bind[T, U any](g Generator[T], k func(T) Generator[U]) Generator[U] {
	return func(s Seed, size Size) (Tree[U], error) {
		s1, s2 := s.Split()
		t, err := g(s1, size)
		if err != nil {
			var zero Tree[U]
			return zero, err
		}
		inner, err := k(t.Root)(s2, size)
		if err != nil {
			var zero Tree[U]
			return zero, err
		}
		return bindTree(t, k, s2, size, inner), nil
	}
}

// bindTree is the direct equivalent of flatten(map(t, fn a -> k(a)(s2, size))),
// specialized so generator-level errors from re-applying k to a shrink
// candidate can be handled (the candidate is simply dropped from the shrink
// sequence) instead of propagating out of a pure tree algebra that has no
// error channel. The inner tree's children are yielded before t's own
// children, preserving "shrink the bound side first".
func bindTree[T, U any](t Tree[T], k func(T) Generator[U], s2 Seed, size Size, inner Tree[U]) Tree[U] {
	return Tree[U]{
		Root: inner.Root,
		Children: func(yield func(Tree[U]) bool) {
			for c := range inner.Children {
				if !yield(c) {
					return
				}
			}
			for c := range t.Children {
				subInner, err := k(c.Root)(s2, size)
				if err != nil {
					continue
				}
				if !yield(bindTree(c, k, s2, size, subInner)) {
					return
				}
			}
		},
	}
}

// Then sequences two generators, discarding the first result.
func Then[T, U any](g Generator[T], next Generator[U]) Generator[U] {
	return Bind(g, func(T) Generator[U] { return next })
}

// BindFilter sequences g into f, where f decides per drawn value whether to
// continue (Cont(g2), behave like Bind into g2) or reject (Skip, retry the
// whole draw with a freshly split seed). The first draw plus retries
// retries make retries+1 attempts; after retries+1 consecutive rejections
// the draw fails with FilterTooNarrow — re-running with a
// different seed would not change the generator's shape, so this is not
// retried at the run level either.
func BindFilter[T, U any](g Generator[T], f func(T) FilterResult[Generator[U]], retries int) Generator[U] {
	return func(s Seed, size Size) (Tree[U], error) {
		attemptSeed := s
		var lastRejected T
		for attempt := 0; attempt <= retries; attempt++ {
			trial, rest := attemptSeed.Split()
			attemptSeed = rest
			s1, s2 := trial.Split()
			t, err := g(s1, size)
			if err != nil {
				var zero Tree[U]
				return zero, err
			}
			decision := f(t.Root)
			if decision.Kind == SkipResult {
				lastRejected = t.Root
				continue
			}
			inner, err := decision.Value(s2, size)
			if err != nil {
				var zero Tree[U]
				return zero, err
			}
			return bindFilterTree(t, f, s2, size, inner), nil
		}
		var zero Tree[U]
		return zero, &GenError{Kind: FilterTooNarrow, Message: "filter rejected every draw within the retry budget", RejectedValue: lastRejected}
	}
}

// bindFilterTree is BindFilter's analogue of bindTree: the inner tree's
// shrinks come first, then t's own children re-run through f (dropping any
// that Skip) each bound through the same s2, so forcing twice reproduces
// the same subtree.
func bindFilterTree[T, U any](t Tree[T], f func(T) FilterResult[Generator[U]], s2 Seed, size Size, inner Tree[U]) Tree[U] {
	return Tree[U]{
		Root: inner.Root,
		Children: func(yield func(Tree[U]) bool) {
			for c := range inner.Children {
				if !yield(c) {
					return
				}
			}
			for c := range t.Children {
				decision := f(c.Root)
				if decision.Kind == SkipResult {
					continue
				}
				subInner, err := decision.Value(s2, size)
				if err != nil {
					continue
				}
				if !yield(bindFilterTree(c, f, s2, size, subInner)) {
					return
				}
			}
		},
	}
}

// Filter keeps only values satisfying pred, retrying up to retries times on
// rejection (default 25 via the Filter-specific constructor below).
// Equivalent to BindFilter(g, x -> pred(x) ? Cont(constant(x)) : Skip, retries).
func Filter[T any](g Generator[T], pred func(T) bool, retries int) Generator[T] {
	return BindFilter(g, func(x T) FilterResult[Generator[T]] {
		if pred(x) {
			return Cont[Generator[T]](ConstantGen(x))
		}
		return Skip[Generator[T]]()
	}, retries)
}

// DefaultFilterRetries is the retry budget FilterDefault passes to Filter,
// and the one MapOf uses when redrawing colliding keys.
const DefaultFilterRetries = 25

// FilterDefault is Filter with the package's default retry budget.
func FilterDefault[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return Filter(g, pred, DefaultFilterRetries)
}

// Resize ignores the incoming size and calls g with n instead.
func Resize[T any](g Generator[T], n Size) Generator[T] {
	return func(s Seed, _ Size) (Tree[T], error) {
		return g(s, n)
	}
}

// Sized builds a generator whose shape depends on the current size.
func Sized[T any](f func(Size) Generator[T]) Generator[T] {
	return func(s Seed, size Size) (Tree[T], error) {
		return f(size)(s, size)
	}
}

// Scale transforms the incoming size through f before passing it to g.
func Scale[T any](g Generator[T], f func(Size) Size) Generator[T] {
	return Sized(func(size Size) Generator[T] {
		return Resize(g, f(size))
	})
}

// NoShrink disables shrinking: the resulting generator keeps g's root but
// discards its shrink tree, for values that have no meaningful smaller form.
func NoShrink[T any](g Generator[T]) Generator[T] {
	return func(s Seed, size Size) (Tree[T], error) {
		t, err := g(s, size)
		if err != nil {
			var zero Tree[T]
			return zero, err
		}
		return Constant(t.Root), nil
	}
}

// Seeded pins a generator to a fixed seed, ignoring whatever seed the
// caller supplies. Useful for deterministic doctest-style examples.
func Seeded[T any](g Generator[T], fixed Seed) Generator[T] {
	return func(_ Seed, size Size) (Tree[T], error) {
		return g(fixed, size)
	}
}
