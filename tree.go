// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

import "iter"

// Tree is a lazy rose tree: the root is eagerly realized, the children are
// a lazy, possibly-infinite sequence realized on demand. Each child's root
// represents a value "smaller" than the parent's root under a type-specific
// partial order (or, for Bind/Flatten, a value reachable through the
// monadic structure). Shrinking is "traverse toward leaves"; no global
// smallness metric is enforced, but every primitive's shrink children must
// terminate.
//
// Children is an iter.Seq — a push-style range-over-func iterator — rather
// than a materialized slice or a channel. Iterating it must be free of
// side effects on the Tree value itself: forcing Children() twice must
// yield equivalent subtrees, so every constructor below builds the
// returned sequence from the constructor's captured, immutable parameters
// rather than from any cursor state shared across calls.
type Tree[T any] struct {
	Root     T
	Children iter.Seq[Tree[T]]
}

// emptySeq is the shared zero-children iterator, avoiding a fresh closure
// allocation at every leaf.
func emptySeq[T any](func(T) bool) {}

// Constant builds a tree with no children: a leaf that never shrinks.
func Constant[T any](x T) Tree[T] {
	return Tree[T]{Root: x, Children: emptySeq[Tree[T]]}
}

// MapTree applies f to the root eagerly and to each child lazily.
// f must be deterministic: map(t, id) must equal t, and
// map(map(t, f), g) must equal map(t, g∘f).
func MapTree[T, U any](t Tree[T], f func(T) U) Tree[U] {
	return Tree[U]{
		Root: f(t.Root),
		Children: func(yield func(Tree[U]) bool) {
			for c := range t.Children {
				if !yield(MapTree(c, f)) {
					return
				}
			}
		},
	}
}

// FlattenTree collapses a tree-of-trees. The inner tree's own shrinks come
// before the outer tree's shrinks, which is what lets bound generators
// shrink "from the bound side first": flatten(map(t, constant)) == t, and
// flatten(constant(constant(x))) == constant(x).
func FlattenTree[T any](tt Tree[Tree[T]]) Tree[T] {
	inner := tt.Root
	return Tree[T]{
		Root: inner.Root,
		Children: func(yield func(Tree[T]) bool) {
			for c := range inner.Children {
				if !yield(c) {
					return
				}
			}
			for outerChild := range tt.Children {
				if !yield(FlattenTree(outerChild)) {
					return
				}
			}
		},
	}
}

// FilterTree keeps only the children whose root satisfies pred, recursing
// into kept children so their own children are filtered too. The root is
// assumed to already satisfy pred (callers establish that invariant before
// calling FilterTree) and is never tested.
func FilterTree[T any](t Tree[T], pred func(T) bool) Tree[T] {
	return Tree[T]{
		Root: t.Root,
		Children: func(yield func(Tree[T]) bool) {
			for c := range t.Children {
				if !pred(c.Root) {
					continue
				}
				if !yield(FilterTree(c, pred)) {
					return
				}
			}
		},
	}
}

// FilterResultKind distinguishes MapFilterTree's two outcomes without an
// extra generic sum type — Cont carries the mapped value, Skip means the
// root should be discarded entirely.
type FilterResultKind int

const (
	// ContResult carries a successfully mapped value.
	ContResult FilterResultKind = iota
	// SkipResult signals that the input should be discarded.
	SkipResult
)

// FilterResult is the outcome of the function passed to MapFilterTree:
// either Cont(y), kept and mapped to y, or Skip, discarded.
type FilterResult[U any] struct {
	Kind  FilterResultKind
	Value U
}

// Cont wraps a kept, mapped value for MapFilterTree.
func Cont[U any](y U) FilterResult[U] { return FilterResult[U]{Kind: ContResult, Value: y} }

// Skip discards the input for MapFilterTree.
func Skip[U any]() FilterResult[U] { return FilterResult[U]{Kind: SkipResult} }

// MapFilterTree applies f to the root; if f rejects the root (Skip), the
// whole tree is rejected (ok=false). Otherwise the result is rooted at the
// mapped value, with children drawn from map(t, f) filtered down to the
// Cont branches and unwrapped.
func MapFilterTree[T, U any](t Tree[T], f func(T) FilterResult[U]) (Tree[U], bool) {
	root := f(t.Root)
	if root.Kind == SkipResult {
		var zero Tree[U]
		return zero, false
	}
	return Tree[U]{
		Root: root.Value,
		Children: func(yield func(Tree[U]) bool) {
			for c := range t.Children {
				if mapped, ok := MapFilterTree(c, f); ok {
					if !yield(mapped) {
						return
					}
				}
			}
		},
	}, true
}

// ZipTree combines a slice of trees into a tree of slices: the root is the
// slice of every input tree's root, and each child replaces exactly one
// position with one of that position's subchildren — leaving the other
// positions untouched — so downstream shrinking can narrow each component
// independently. CheckAllClauses zips its clause trees with it; the tuple
// and list generators build their own trees by the same one-position rule.
func ZipTree[T any](ts []Tree[T]) Tree[[]T] {
	roots := make([]T, len(ts))
	for i, t := range ts {
		roots[i] = t.Root
	}
	return Tree[[]T]{
		Root: roots,
		Children: func(yield func(Tree[[]T]) bool) {
			for i := range ts {
				for sub := range ts[i].Children {
					replaced := make([]Tree[T], len(ts))
					copy(replaced, ts)
					replaced[i] = sub
					if !yield(ZipTree(replaced)) {
						return
					}
				}
			}
		},
	}
}
