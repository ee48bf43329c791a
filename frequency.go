// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// WeightedGen pairs a generator with its selection weight for Frequency.
type WeightedGen[T any] struct {
	Weight int
	Gen    Generator[T]
}

// Frequency picks among choices with probability proportional to their
// weights, and shrinks toward the first choice in the list whose weight
// is positive — spec.md leaves the shrink-target ordering among weighted
// alternatives as an open question; this package resolves it to
// "first-listed wins" for determinism independent of weight magnitude.
func Frequency[T any](choices []WeightedGen[T]) Generator[T] {
	firstIdx := -1
	for i, c := range choices {
		if c.Weight > 0 {
			firstIdx = i
			break
		}
	}
	return func(s Seed, size Size) (Tree[T], error) {
		if firstIdx < 0 {
			var zero Tree[T]
			return zero, &GenError{Kind: EmptyEnum, Message: "frequency has no choices with positive weight"}
		}
		total := 0
		for _, c := range choices {
			if c.Weight > 0 {
				total += c.Weight
			}
		}
		pickSeed, drawSeed := s.Split()
		pick := UniformInRange(0, int64(total-1), pickSeed)
		chosenIdx := firstIdx
		for i, c := range choices {
			if c.Weight <= 0 {
				continue
			}
			if pick < int64(c.Weight) {
				chosenIdx = i
				break
			}
			pick -= int64(c.Weight)
		}
		t, err := choices[chosenIdx].Gen(drawSeed, size)
		if err != nil {
			var zero Tree[T]
			return zero, err
		}
		if chosenIdx == firstIdx {
			return t, nil
		}
		firstSeed, _ := drawSeed.Split()
		shrinkTarget, err := choices[firstIdx].Gen(firstSeed, size)
		if err != nil {
			return t, nil
		}
		return Tree[T]{
			Root: t.Root,
			Children: func(yield func(Tree[T]) bool) {
				if !yield(shrinkTarget) {
					return
				}
				for c := range t.Children {
					if !yield(c) {
						return
					}
				}
			},
		}, nil
	}
}

// OneOf picks uniformly among generators, shrinking toward the first.
func OneOf[T any](choices ...Generator[T]) Generator[T] {
	weighted := make([]WeightedGen[T], len(choices))
	for i, g := range choices {
		weighted[i] = WeightedGen[T]{Weight: 1, Gen: g}
	}
	return Frequency(weighted)
}

// MemberOf lifts a plain, non-empty slice of values into a generator that
// picks uniformly among them, shrinking toward values[0].
func MemberOf[T any](values []T) Generator[T] {
	if len(values) == 0 {
		return func(Seed, Size) (Tree[T], error) {
			var zero Tree[T]
			return zero, &GenError{Kind: EmptyEnum, Message: "member_of received an empty slice"}
		}
	}
	return func(s Seed, _ Size) (Tree[T], error) {
		idx := UniformInRange(0, int64(len(values)-1), s)
		return memberShrinkTree(values, int(idx)), nil
	}
}

// memberShrinkTree shrinks a member_of draw toward values[0]: its only
// child is values[0] itself (unless already there), which in turn has no
// further children — a one-step shrink, matching StreamData's member_of.
func memberShrinkTree[T any](values []T, idx int) Tree[T] {
	return Tree[T]{
		Root: values[idx],
		Children: func(yield func(Tree[T]) bool) {
			if idx == 0 {
				return
			}
			yield(Constant(values[0]))
		},
	}
}
