// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package proper is a property-based testing library built on integrated
// shrinking.
//
// Rather than pairing every generator with a hand-written shrinker (the
// classic QuickCheck approach, which breaks down once generators are
// composed with map/bind), every [Generator] produces a [Tree]: a lazy rose
// tree whose root is the generated value and whose children are
// progressively smaller candidates of the same type. Combinators operate on
// the tree itself, so shrink behavior is derived automatically and survives
// composition — the "integrated shrinking" design.
//
// # Design Philosophy
//
// proper provides:
//   - A small algebra of lazy rose tree operations ([MapTree], [FlattenTree],
//     [FilterTree], [MapFilterTree], [ZipTree]) that every combinator is built from
//   - A splittable seed so independently-bound sub-generators draw from
//     statistically independent streams, making shrinking of composed
//     generators reproducible
//   - A bounded, deterministic, leftmost-first shrink search rather than an
//     unbounded or backtracking one
//
// # Core Types
//
//   - [Seed]: splittable pseudo-random state threaded through generators.
//   - [Tree]: a lazy rose tree — eagerly realized root, lazily realized children.
//   - [Generator]: func(Seed, Size) (Tree[T], error). Same (seed, size)
//     always produces an equal tree, including equal k-th children once forced.
//
// # Building Generators
//
// Primitives (see each constructor's doc for its exact shrink target):
//
//   - [Integer], [IntegerInRange], [PositiveInteger], [Float], [Boolean], [Byte]
//   - [Binary], [Bitstring], [String], [Atom]
//   - [ListOf], [UniqListOf], [UniqByListOf], [MapOf], [KeywordOf]
//   - [TupleOf2], [TupleOf3], [TupleOf4], [TupleOf5], [TupleOf6], [FixedMap], [OptionalMap]
//   - [ConstantGen], [Term]
//
// Combinators:
//
//   - [Map], [Bind], [BindFilter], [Filter]: transform, sequence, and
//     constrain generators; shrink trees inherit accordingly
//   - [Resize], [Sized], [Scale]: control how the size hint flows into a generator
//   - [Frequency], [OneOf], [MemberOf]: weighted and uniform choice among alternatives
//   - [RecursiveTree]: depth-bounded recursive generators (JSON-shaped data, s-expressions, ...)
//   - [NoShrink]: suppress shrinking for a generator that has no meaningful smaller form
//   - [Seeded]: pin a generator to a fixed seed, for doctest-style examples
//
// # Lifting Plain Values
//
// [ToGenerator] and the [GenInput] sum type let a constant or a tuple of
// generators/constants stand in for a generator wherever one is expected —
// see [Lift2]..[Lift6].
//
// # Running Properties
//
//   - [CheckAll]: repeatedly draws from a generator, evaluates a property
//     function, and on failure performs a bounded shrink search for a
//     locally minimal counterexample.
//   - [Take], [Pick], [Stream]: sample a generator outside of a property run.
//   - [Shrinks]: walk the shrink candidates of an already-built [Tree] lazily.
//
// # Example
//
//	result := proper.CheckAll(
//		context.Background(),
//		proper.ListOf(proper.IntegerInRange(0, 100), proper.LengthOpts{}),
//		func(list []int) proper.PropertyResult {
//			for _, v := range list {
//				if v == 5 {
//					return proper.Fail(proper.Failure{Err: errors.New("5 must not be in the list")})
//				}
//			}
//			return proper.Pass()
//		},
//		proper.DefaultOptions(),
//	)
//	if !result.Passed() {
//		fmt.Println(result.Failure)
//	}
package proper
