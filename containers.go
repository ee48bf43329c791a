// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// TupleOf2..TupleOf6 generate fixed-arity heterogeneous tuples
// (Tuple2..Tuple6). Go has no
// variadic generics, so spec.md's arbitrary-arity tuple generator becomes
// one function per arity actually needed by callers — the common
// StreamData usage is small, fixed tuples, not dynamic-width ones.
//
// Each component shrinks independently: a child tree replaces exactly one
// component with one of that component's own subchildren, leaving the
// others at their current value, mirroring ZipTree's one-position-
// replacement rule generalized across heterogeneous types.

type Tuple2[A, B any] struct {
	First  A
	Second B
}

func TupleOf2[A, B any](ga Generator[A], gb Generator[B]) Generator[Tuple2[A, B]] {
	return func(s Seed, size Size) (Tree[Tuple2[A, B]], error) {
		sa, sb := s.Split()
		ta, err := ga(sa, size)
		if err != nil {
			var zero Tree[Tuple2[A, B]]
			return zero, err
		}
		tb, err := gb(sb, size)
		if err != nil {
			var zero Tree[Tuple2[A, B]]
			return zero, err
		}
		return tuple2Tree(ta, tb), nil
	}
}

func tuple2Tree[A, B any](ta Tree[A], tb Tree[B]) Tree[Tuple2[A, B]] {
	return Tree[Tuple2[A, B]]{
		Root: Tuple2[A, B]{First: ta.Root, Second: tb.Root},
		Children: func(yield func(Tree[Tuple2[A, B]]) bool) {
			for sub := range ta.Children {
				if !yield(tuple2Tree(sub, tb)) {
					return
				}
			}
			for sub := range tb.Children {
				if !yield(tuple2Tree(ta, sub)) {
					return
				}
			}
		},
	}
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func TupleOf3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Tuple3[A, B, C]] {
	return func(s Seed, size Size) (Tree[Tuple3[A, B, C]], error) {
		sa, rest := s.Split()
		sb, sc := rest.Split()
		ta, err := ga(sa, size)
		if err != nil {
			var zero Tree[Tuple3[A, B, C]]
			return zero, err
		}
		tb, err := gb(sb, size)
		if err != nil {
			var zero Tree[Tuple3[A, B, C]]
			return zero, err
		}
		tc, err := gc(sc, size)
		if err != nil {
			var zero Tree[Tuple3[A, B, C]]
			return zero, err
		}
		return tuple3Tree(ta, tb, tc), nil
	}
}

func tuple3Tree[A, B, C any](ta Tree[A], tb Tree[B], tc Tree[C]) Tree[Tuple3[A, B, C]] {
	return Tree[Tuple3[A, B, C]]{
		Root: Tuple3[A, B, C]{First: ta.Root, Second: tb.Root, Third: tc.Root},
		Children: func(yield func(Tree[Tuple3[A, B, C]]) bool) {
			for sub := range ta.Children {
				if !yield(tuple3Tree(sub, tb, tc)) {
					return
				}
			}
			for sub := range tb.Children {
				if !yield(tuple3Tree(ta, sub, tc)) {
					return
				}
			}
			for sub := range tc.Children {
				if !yield(tuple3Tree(ta, tb, sub)) {
					return
				}
			}
		},
	}
}

type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func TupleOf4[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[Tuple4[A, B, C, D]] {
	return func(s Seed, size Size) (Tree[Tuple4[A, B, C, D]], error) {
		s1, s2 := s.Split()
		sa, sb := s1.Split()
		sc, sd := s2.Split()
		ta, err := ga(sa, size)
		if err != nil {
			var zero Tree[Tuple4[A, B, C, D]]
			return zero, err
		}
		tb, err := gb(sb, size)
		if err != nil {
			var zero Tree[Tuple4[A, B, C, D]]
			return zero, err
		}
		tc, err := gc(sc, size)
		if err != nil {
			var zero Tree[Tuple4[A, B, C, D]]
			return zero, err
		}
		td, err := gd(sd, size)
		if err != nil {
			var zero Tree[Tuple4[A, B, C, D]]
			return zero, err
		}
		return tuple4Tree(ta, tb, tc, td), nil
	}
}

func tuple4Tree[A, B, C, D any](ta Tree[A], tb Tree[B], tc Tree[C], td Tree[D]) Tree[Tuple4[A, B, C, D]] {
	return Tree[Tuple4[A, B, C, D]]{
		Root: Tuple4[A, B, C, D]{First: ta.Root, Second: tb.Root, Third: tc.Root, Fourth: td.Root},
		Children: func(yield func(Tree[Tuple4[A, B, C, D]]) bool) {
			for sub := range ta.Children {
				if !yield(tuple4Tree(sub, tb, tc, td)) {
					return
				}
			}
			for sub := range tb.Children {
				if !yield(tuple4Tree(ta, sub, tc, td)) {
					return
				}
			}
			for sub := range tc.Children {
				if !yield(tuple4Tree(ta, tb, sub, td)) {
					return
				}
			}
			for sub := range td.Children {
				if !yield(tuple4Tree(ta, tb, tc, sub)) {
					return
				}
			}
		},
	}
}

type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

func TupleOf5[A, B, C, D, E any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E]) Generator[Tuple5[A, B, C, D, E]] {
	return func(s Seed, size Size) (Tree[Tuple5[A, B, C, D, E]], error) {
		s1, s2 := s.Split()
		s3, se := s2.Split()
		sa, sb := s1.Split()
		sc, sd := s3.Split()
		ta, err := ga(sa, size)
		if err != nil {
			var zero Tree[Tuple5[A, B, C, D, E]]
			return zero, err
		}
		tb, err := gb(sb, size)
		if err != nil {
			var zero Tree[Tuple5[A, B, C, D, E]]
			return zero, err
		}
		tc, err := gc(sc, size)
		if err != nil {
			var zero Tree[Tuple5[A, B, C, D, E]]
			return zero, err
		}
		td, err := gd(sd, size)
		if err != nil {
			var zero Tree[Tuple5[A, B, C, D, E]]
			return zero, err
		}
		te, err := ge(se, size)
		if err != nil {
			var zero Tree[Tuple5[A, B, C, D, E]]
			return zero, err
		}
		return tuple5Tree(ta, tb, tc, td, te), nil
	}
}

func tuple5Tree[A, B, C, D, E any](ta Tree[A], tb Tree[B], tc Tree[C], td Tree[D], te Tree[E]) Tree[Tuple5[A, B, C, D, E]] {
	return Tree[Tuple5[A, B, C, D, E]]{
		Root: Tuple5[A, B, C, D, E]{First: ta.Root, Second: tb.Root, Third: tc.Root, Fourth: td.Root, Fifth: te.Root},
		Children: func(yield func(Tree[Tuple5[A, B, C, D, E]]) bool) {
			for sub := range ta.Children {
				if !yield(tuple5Tree(sub, tb, tc, td, te)) {
					return
				}
			}
			for sub := range tb.Children {
				if !yield(tuple5Tree(ta, sub, tc, td, te)) {
					return
				}
			}
			for sub := range tc.Children {
				if !yield(tuple5Tree(ta, tb, sub, td, te)) {
					return
				}
			}
			for sub := range td.Children {
				if !yield(tuple5Tree(ta, tb, tc, sub, te)) {
					return
				}
			}
			for sub := range te.Children {
				if !yield(tuple5Tree(ta, tb, tc, td, sub)) {
					return
				}
			}
		},
	}
}

type Tuple6[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

func TupleOf6[A, B, C, D, E, F any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F]) Generator[Tuple6[A, B, C, D, E, F]] {
	return func(s Seed, size Size) (Tree[Tuple6[A, B, C, D, E, F]], error) {
		s1, s2 := s.Split()
		s3, s4 := s2.Split()
		sa, sb := s1.Split()
		sc, sd := s3.Split()
		se, sf := s4.Split()
		ta, err := ga(sa, size)
		if err != nil {
			var zero Tree[Tuple6[A, B, C, D, E, F]]
			return zero, err
		}
		tb, err := gb(sb, size)
		if err != nil {
			var zero Tree[Tuple6[A, B, C, D, E, F]]
			return zero, err
		}
		tc, err := gc(sc, size)
		if err != nil {
			var zero Tree[Tuple6[A, B, C, D, E, F]]
			return zero, err
		}
		td, err := gd(sd, size)
		if err != nil {
			var zero Tree[Tuple6[A, B, C, D, E, F]]
			return zero, err
		}
		te, err := ge(se, size)
		if err != nil {
			var zero Tree[Tuple6[A, B, C, D, E, F]]
			return zero, err
		}
		tf, err := gf(sf, size)
		if err != nil {
			var zero Tree[Tuple6[A, B, C, D, E, F]]
			return zero, err
		}
		return tuple6Tree(ta, tb, tc, td, te, tf), nil
	}
}

func tuple6Tree[A, B, C, D, E, F any](ta Tree[A], tb Tree[B], tc Tree[C], td Tree[D], te Tree[E], tf Tree[F]) Tree[Tuple6[A, B, C, D, E, F]] {
	return Tree[Tuple6[A, B, C, D, E, F]]{
		Root: Tuple6[A, B, C, D, E, F]{First: ta.Root, Second: tb.Root, Third: tc.Root, Fourth: td.Root, Fifth: te.Root, Sixth: tf.Root},
		Children: func(yield func(Tree[Tuple6[A, B, C, D, E, F]]) bool) {
			for sub := range ta.Children {
				if !yield(tuple6Tree(sub, tb, tc, td, te, tf)) {
					return
				}
			}
			for sub := range tb.Children {
				if !yield(tuple6Tree(ta, sub, tc, td, te, tf)) {
					return
				}
			}
			for sub := range tc.Children {
				if !yield(tuple6Tree(ta, tb, sub, td, te, tf)) {
					return
				}
			}
			for sub := range td.Children {
				if !yield(tuple6Tree(ta, tb, tc, sub, te, tf)) {
					return
				}
			}
			for sub := range te.Children {
				if !yield(tuple6Tree(ta, tb, tc, td, sub, tf)) {
					return
				}
			}
			for sub := range tf.Children {
				if !yield(tuple6Tree(ta, tb, tc, td, te, sub)) {
					return
				}
			}
		},
	}
}

// FixedMap generates a map[string]any whose keys are exactly the keys of
// fields, each value drawn from the corresponding generator. Go's map
// type can't express heterogeneous value types per key at the type
// level, so field generators are erased to any — callers destructure with
// a type assertion, the same trade-off StreamData's fixed_map makes
// dynamically.
func FixedMap(fields map[string]Generator[any]) Generator[map[string]any] {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return func(s Seed, size Size) (Tree[map[string]any], error) {
		trees := make(map[string]Tree[any], len(keys))
		cur := s
		for _, k := range keys {
			var sk Seed
			sk, cur = cur.Split()
			t, err := fields[k](sk, size)
			if err != nil {
				var zero Tree[map[string]any]
				return zero, err
			}
			trees[k] = t
		}
		return fixedMapTree(keys, trees), nil
	}
}

func fixedMapTree(keys []string, trees map[string]Tree[any]) Tree[map[string]any] {
	root := make(map[string]any, len(keys))
	for _, k := range keys {
		root[k] = trees[k].Root
	}
	return Tree[map[string]any]{
		Root: root,
		Children: func(yield func(Tree[map[string]any]) bool) {
			for _, k := range keys {
				for sub := range trees[k].Children {
					replaced := make(map[string]Tree[any], len(trees))
					for k2, t2 := range trees {
						replaced[k2] = t2
					}
					replaced[k] = sub
					if !yield(fixedMapTree(keys, replaced)) {
						return
					}
				}
			}
		},
	}
}

// OptionalMap is FixedMap where each field additionally has a chance of
// being omitted entirely, shrinking toward omission.
func OptionalMap(fields map[string]Generator[any], includeProbability float64) Generator[map[string]any] {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return func(s Seed, size Size) (Tree[map[string]any], error) {
		trees := make(map[string]Tree[any], len(keys))
		present := make(map[string]bool, len(keys))
		cur := s
		for _, k := range keys {
			var decideSeed, sk Seed
			decideSeed, cur = cur.Split()
			sk, cur = cur.Split()
			include := UniformFloat(decideSeed) < includeProbability
			present[k] = include
			if !include {
				continue
			}
			t, err := fields[k](sk, size)
			if err != nil {
				var zero Tree[map[string]any]
				return zero, err
			}
			trees[k] = t
		}
		return optionalMapTree(keys, trees, present), nil
	}
}

func optionalMapTree(keys []string, trees map[string]Tree[any], present map[string]bool) Tree[map[string]any] {
	root := make(map[string]any, len(keys))
	for _, k := range keys {
		if present[k] {
			root[k] = trees[k].Root
		}
	}
	return Tree[map[string]any]{
		Root: root,
		Children: func(yield func(Tree[map[string]any]) bool) {
			for _, k := range keys {
				if !present[k] {
					continue
				}
				omitted := make(map[string]bool, len(present))
				for k2, v := range present {
					omitted[k2] = v
				}
				omitted[k] = false
				if !yield(optionalMapTree(keys, trees, omitted)) {
					return
				}
				for sub := range trees[k].Children {
					replaced := make(map[string]Tree[any], len(trees))
					for k2, t2 := range trees {
						replaced[k2] = t2
					}
					replaced[k] = sub
					if !yield(optionalMapTree(keys, replaced, present)) {
						return
					}
				}
			}
		},
	}
}

// KV is an ordered key-value pair, the building block of KeywordOf — the
// Go-native stand-in for StreamData's keyword lists, which (unlike maps)
// preserve insertion order and permit duplicate keys.
type KV[K, V any] struct {
	Key K
	Val V
}

// KeywordOf generates an ordered slice of KV pairs, shrinking the same
// way ListOf shrinks any other slice (deletion first, then elementwise).
func KeywordOf[K, V any](kg Generator[K], vg Generator[V], opts LengthOpts) Generator[[]KV[K, V]] {
	pair := Bind(kg, func(k K) Generator[KV[K, V]] {
		return Map(vg, func(v V) KV[K, V] { return KV[K, V]{Key: k, Val: v} })
	})
	return ListOf(pair, opts)
}
