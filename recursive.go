// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// RecursiveTree builds a generator for self-referential structures (trees,
// nested terms) by letting the body reference the generator being built.
// leaf produces the non-recursive base case; branch receives a generator
// for "one more level down" and builds the next level up from it.
//
// Every level is frequency([(1, leaf), (2, branch(smaller))]): staying at
// the leaf is always a real one-in-three outcome, at every size, not just
// a size-triggered stop — matching spec.md's recursive-structure
// exemplar. size is halved going down so depth still stays bounded by
// roughly log2(size), and size<=1 forces the leaf outright so recursion
// is guaranteed to terminate regardless of how the weighted coin lands.
func RecursiveTree[T any](leaf Generator[T], branch func(Generator[T]) Generator[T]) Generator[T] {
	return Sized(func(size Size) Generator[T] {
		if size <= 1 {
			return leaf
		}
		smaller := Scale(RecursiveTree(leaf, branch), func(Size) Size { return size / 2 })
		return Frequency([]WeightedGen[T]{
			{Weight: 1, Gen: leaf},
			{Weight: 2, Gen: branch(smaller)},
		})
	})
}
