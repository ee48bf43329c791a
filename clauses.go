// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

import "context"

// CheckAllBound is CheckAll for a single labeled generator: the label
// travels all the way into the reported Failure, and GeneratedValues
// carries the one binding the run made, the single-clause case of
// spec.md's generated_values mechanism.
func CheckAllBound[T any](ctx context.Context, b Bound[T], prop func(T) PropertyResult, opts Options) Result {
	result := CheckAll(ctx, b.Gen, prop, opts)
	if result.Kind != ResultFailed {
		return result
	}
	result.Original.Label = b.Label
	result.Failure.Label = b.Label
	result.Original.GeneratedValues = []Binding{{Clause: b.Label, Value: result.Original.Value}}
	result.Failure.GeneratedValues = []Binding{{Clause: b.Label, Value: result.Failure.Value}}
	return result
}

// Clause is one labeled, type-erased generator in a multi-binding
// property — the building block CheckAllClauses consumes so an
// arbitrary-length "check all a <- g1, b <- g2, ..." binding list can be
// a plain slice instead of a fixed tuple arity.
type Clause struct {
	Label string
	Gen   Generator[any]
}

// BoundClause lifts a typed Bound into the type-erased Clause shape
// CheckAllClauses consumes.
func BoundClause[T any](b Bound[T]) Clause {
	return Clause{Label: b.Label, Gen: Map(b.Gen, func(v T) any { return v })}
}

// CheckAllClauses runs a property against several independently-drawn,
// independently-labeled values at once, the direct analogue of
// spec.md's "check all a <- g1, b <- g2, ..." binding list. Each
// clause's generator draws and shrinks independently (via ZipTree, so
// narrowing one clause's value never perturbs another's), and a
// failure's GeneratedValues carries one Binding per clause in
// declaration order — first bound first.
func CheckAllClauses(ctx context.Context, clauses []Clause, prop func([]any) PropertyResult, opts Options) Result {
	g := func(s Seed, size Size) (Tree[[]any], error) {
		trees := make([]Tree[any], len(clauses))
		cur := s
		for i, c := range clauses {
			var si Seed
			si, cur = cur.Split()
			t, err := c.Gen(si, size)
			if err != nil {
				var zero Tree[[]any]
				return zero, err
			}
			trees[i] = t
		}
		return ZipTree(trees), nil
	}
	result := CheckAll(ctx, g, prop, opts)
	if result.Kind != ResultFailed {
		return result
	}
	result.Original.GeneratedValues = bindClauses(clauses, result.Original.Value)
	result.Failure.GeneratedValues = bindClauses(clauses, result.Failure.Value)
	return result
}

func bindClauses(clauses []Clause, v any) []Binding {
	vals, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Binding, len(clauses))
	for i, c := range clauses {
		var val any
		if i < len(vals) {
			val = vals[i]
		}
		out[i] = Binding{Clause: c.Label, Value: val}
	}
	return out
}
