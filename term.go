// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// Term generates an arbitrary leaf value from a small, weighted mix of
// primitive kinds (integers, booleans, short strings, floats, nil), type-erased to
// any. It exists for callers building fuzzers over dynamically-typed
// containers (FixedMap, OptionalMap, KeywordOf) who need "some plausible
// scalar" without committing to one type up front, the same role
// StreamData's term/0 plays for lifting into Erlang's dynamically typed
// values.
func Term() Generator[any] {
	return Frequency([]WeightedGen[any]{
		{Weight: 4, Gen: Map(Integer(0), func(n int) any { return n })},
		{Weight: 2, Gen: Map(Boolean(), func(b bool) any { return b })},
		{Weight: 2, Gen: Map(String(CharsAlphanumeric, LengthOpts{Max: 8, HasMax: true}), func(s string) any { return s })},
		{Weight: 1, Gen: Map(Float(FloatOpts{}), func(f float64) any { return f })},
		{Weight: 1, Gen: ConstantGen[any](nil)},
	})
}
