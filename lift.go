// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// GenInput lets call sites pass either a Generator[T] or a plain T value
// wherever a generator is expected, the Go-native equivalent of
// StreamData's "anything enumerable lifts into a generator automatically"
// rule. A plain value lifts to a no-shrink constant generator.
type GenInput[T any] struct {
	gen   Generator[T]
	value T
	isGen bool
}

// FromGenerator wraps an existing generator as a GenInput.
func FromGenerator[T any](g Generator[T]) GenInput[T] {
	return GenInput[T]{gen: g, isGen: true}
}

// FromValue lifts a plain value as a GenInput that always draws it,
// unshrunk.
func FromValue[T any](v T) GenInput[T] {
	return GenInput[T]{value: v}
}

// ToGenerator resolves a GenInput to a concrete Generator.
func ToGenerator[T any](in GenInput[T]) Generator[T] {
	if in.isGen {
		return in.gen
	}
	return ConstantGen(in.value)
}

// Lift2 combines two generators' draws through f, in applicative style:
// f runs over every shrink combination produced by independently
// shrinking each input (via Bind, so the second argument's shrinks are
// tried before the first's, matching Bind's inner-first order).
func Lift2[A, B, R any](ga Generator[A], gb Generator[B], f func(A, B) R) Generator[R] {
	return Bind(ga, func(a A) Generator[R] {
		return Map(gb, func(b B) R { return f(a, b) })
	})
}

func Lift3[A, B, C, R any](ga Generator[A], gb Generator[B], gc Generator[C], f func(A, B, C) R) Generator[R] {
	return Bind(ga, func(a A) Generator[R] {
		return Lift2(gb, gc, func(b B, c C) R { return f(a, b, c) })
	})
}

func Lift4[A, B, C, D, R any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], f func(A, B, C, D) R) Generator[R] {
	return Bind(ga, func(a A) Generator[R] {
		return Lift3(gb, gc, gd, func(b B, c C, d D) R { return f(a, b, c, d) })
	})
}

func Lift5[A, B, C, D, E, R any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], f func(A, B, C, D, E) R) Generator[R] {
	return Bind(ga, func(a A) Generator[R] {
		return Lift4(gb, gc, gd, ge, func(b B, c C, d D, e E) R { return f(a, b, c, d, e) })
	})
}

func Lift6[A, B, C, D, E, F, R any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], f func(A, B, C, D, E, F) R) Generator[R] {
	return Bind(ga, func(a A) Generator[R] {
		return Lift5(gb, gc, gd, ge, gf, func(b B, c C, d D, e E, ff F) R { return f(a, b, c, d, e, ff) })
	})
}

// Bound pairs a generator with the label its caller wants attached to
// draws from it in a failure report — the Go-native stand-in for the
// clause-source-text StreamData's check-all macro captures automatically
// from the binding's left-hand side at compile time. Go has no macros, so
// the caller supplies the label explicitly. CheckAllBound and
// CheckAllClauses (clauses.go) are what thread a Bound's label into a
// Result's reported Failure.
type Bound[T any] struct {
	Label string
	Gen   Generator[T]
}

// NewBound constructs a Bound.
func NewBound[T any](label string, g Generator[T]) Bound[T] {
	return Bound[T]{Label: label, Gen: g}
}
