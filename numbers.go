// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

import "golang.org/x/exp/constraints"

// IntegerInRange generates a uniformly distributed value of any integer
// kind in [lo, hi] inclusive, shrinking by halving toward zero if zero is
// in range, or toward whichever bound is nearest zero otherwise.
//
// Shrink-tree construction (spec.md's "integer shrink-tree exemplar"):
// for a value n shrinking toward a target z, children are
// z + (n-z) - (n-z)>>k for k = 0, 1, 2, ... while the subtrahend is
// non-zero — i.e. the sequence z, z+(n-z)/2, z+3(n-z)/4, ... This gives
// logarithmic-depth convergence and always terminates because the
// subtrahend strictly shrinks every step and eventually hits zero.
func IntegerInRange[N constraints.Integer](lo, hi N) Generator[N] {
	return func(s Seed, _ Size) (Tree[N], error) {
		v := N(UniformInRange(int64(lo), int64(hi), s))
		target := shrinkTargetInRange(lo, hi)
		return integerShrinkTree(v, target), nil
	}
}

// shrinkTargetInRange picks the value integer generators shrink toward:
// zero if it's in range, otherwise the range bound nearest zero.
func shrinkTargetInRange[N constraints.Integer](lo, hi N) N {
	var zero N
	if lo <= zero && zero <= hi {
		return zero
	}
	if hi < zero {
		return hi
	}
	return lo
}

// integerShrinkTree builds the halving shrink tree for n toward target:
// the first child is target itself (the biggest possible jump), and each
// further child halves the remaining jump, converging back toward n. The
// arithmetic runs in int64 regardless of N so a signed diff's magnitude
// shifts cleanly — shifting a two's-complement negative number directly
// converges to -1, not 0, which would never terminate the loop below.
func integerShrinkTree[N constraints.Integer](n, target N) Tree[N] {
	return intShrinkTree[N](int64(n), int64(target))
}

func intShrinkTree[N constraints.Integer](n, target int64) Tree[N] {
	return Tree[N]{
		Root: N(n),
		Children: func(yield func(Tree[N]) bool) {
			diff := n - target
			if diff == 0 {
				return
			}
			mag, sign := diff, int64(1)
			if mag < 0 {
				mag, sign = -mag, -1
			}
			for k := uint(0); ; k++ {
				shifted := mag >> k
				if shifted == 0 {
					return
				}
				candidate := n - sign*shifted
				if !yield(intShrinkTree[N](candidate, target)) {
					return
				}
			}
		},
	}
}

// Integer generates a signed int in [-n, n], shrinking toward zero, where
// n is size when size is positive and the ambient generation size
// otherwise.
func Integer(size Size) Generator[int] {
	return Sized(func(sz Size) Generator[int] {
		n := sz
		if size > 0 {
			n = size
		}
		return IntegerInRange(-n, n)
	})
}

// PositiveInteger generates an int in [1, size], shrinking toward 1.
func PositiveInteger() Generator[int] {
	return Sized(func(sz Size) Generator[int] {
		if sz < 1 {
			sz = 1
		}
		return IntegerInRange(1, sz)
	})
}

// Byte generates a uniformly distributed byte in [0, 255].
func Byte() Generator[byte] {
	return IntegerInRange[byte](0, 255)
}

// FloatOpts bounds Float's output. A side whose HasMin/HasMax flag is
// unset defaults to -1e6 or 1e6; with neither flag set, values are drawn
// from [-(size+1), size+1].
type FloatOpts struct {
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Float generates an IEEE double honoring the optional bounds in opts,
// shrinking toward 0.0 (clamped into [Min, Max] when bounds are set).
func Float(opts FloatOpts) Generator[float64] {
	lo, hi := -1e6, 1e6
	if opts.HasMin {
		lo = opts.Min
	}
	if opts.HasMax {
		hi = opts.Max
	}
	target := 0.0
	if target < lo {
		target = lo
	}
	if target > hi {
		target = hi
	}
	return func(s Seed, size Size) (Tree[float64], error) {
		scale := float64(size + 1)
		span := hi - lo
		effectiveLo, effectiveHi := lo, hi
		if !opts.HasMin && !opts.HasMax {
			effectiveLo, effectiveHi = -scale, scale
		} else if span > scale*2 {
			mid := (lo + hi) / 2
			effectiveLo, effectiveHi = mid-scale, mid+scale
			if effectiveLo < lo {
				effectiveLo = lo
			}
			if effectiveHi > hi {
				effectiveHi = hi
			}
		}
		v := effectiveLo + UniformFloat(s)*(effectiveHi-effectiveLo)
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		return floatShrinkTree(v, target), nil
	}
}

// floatShrinkTree halves the distance to target, in the style of the
// integer shrink tree, stopping once the jump is negligible relative to
// the starting distance to target (float halving never hits exactly
// zero bit-for-bit the way integer shifting does).
func floatShrinkTree(v, target float64) Tree[float64] {
	return Tree[float64]{
		Root: v,
		Children: func(yield func(Tree[float64]) bool) {
			diff := v - target
			if diff == 0 {
				return
			}
			step := diff
			for i := 0; i < 64; i++ {
				candidate := v - step
				if candidate == v {
					return
				}
				if !yield(floatShrinkTree(candidate, target)) {
					return
				}
				if withinEpsilon(step, diff) {
					return
				}
				step /= 2
			}
		},
	}
}

func withinEpsilon(step, diff float64) bool {
	const eps = 1e-9
	if diff < 0 {
		step, diff = -step, -diff
	}
	return step < diff*eps && step > -diff*eps
}
