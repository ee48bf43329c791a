// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// Boolean generates true or false, shrinking true toward false (false has
// no shrinks).
func Boolean() Generator[bool] {
	return func(s Seed, _ Size) (Tree[bool], error) {
		v := UniformInRange(0, 1, s) == 1
		if !v {
			return Constant(false), nil
		}
		return Tree[bool]{
			Root: true,
			Children: func(yield func(Tree[bool]) bool) {
				yield(Constant(false))
			},
		}, nil
	}
}

// Binary generates a byte slice of length in [0, size], shrinking by
// deleting bytes (shortest forms first) and, within a fixed length, by
// shrinking individual bytes toward zero.
func Binary() Generator[[]byte] {
	return ListOf(Byte(), LengthOpts{})
}

// Bitstring generates a bool slice of length in [0, size], with the same
// shrink shape as Binary.
func Bitstring() Generator[[]bool] {
	return ListOf(Boolean(), LengthOpts{})
}
