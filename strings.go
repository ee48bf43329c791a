// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// CharsOpts selects the rune set String draws from. The zero value has no
// ranges; generators drawing from it fail with EmptyRange.
type CharsOpts struct {
	Ranges []CharRange
}

// CharRange is an inclusive rune range.
type CharRange struct {
	Lo, Hi rune
}

var (
	// CharsASCII covers printable ASCII, space through tilde.
	CharsASCII = CharsOpts{Ranges: []CharRange{{0x20, 0x7E}}}
	// CharsAlphanumeric covers digits and upper/lower-case Latin letters.
	CharsAlphanumeric = CharsOpts{Ranges: []CharRange{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}}}
	// CharsPrintable is an alias for CharsASCII, named for parity with
	// StreamData's :printable character class.
	CharsPrintable = CharsASCII
)

// CharsRange builds a CharsOpts from a single inclusive rune range, for
// callers that want something narrower than the named classes above.
func CharsRange(lo, hi rune) CharsOpts {
	return CharsOpts{Ranges: []CharRange{{lo, hi}}}
}

func (o CharsOpts) total() int64 {
	var n int64
	for _, r := range o.Ranges {
		n += int64(r.Hi-r.Lo) + 1
	}
	return n
}

func (o CharsOpts) at(i int64) rune {
	for _, r := range o.Ranges {
		width := int64(r.Hi-r.Lo) + 1
		if i < width {
			return r.Lo + rune(i)
		}
		i -= width
	}
	return o.Ranges[0].Lo
}

// charGen draws a single rune from opts, shrinking toward the first
// range's lowest rune.
func charGen(opts CharsOpts) Generator[rune] {
	return func(s Seed, _ Size) (Tree[rune], error) {
		total := opts.total()
		if total <= 0 {
			var zero Tree[rune]
			return zero, &GenError{Kind: EmptyRange, Message: "character class has no ranges"}
		}
		idx := UniformInRange(0, total-1, s)
		v := opts.at(idx)
		target := opts.Ranges[0].Lo
		return runeShrinkTree(v, target, opts), nil
	}
}

func runeShrinkTree(v, target rune, opts CharsOpts) Tree[rune] {
	return Tree[rune]{
		Root: v,
		Children: func(yield func(Tree[rune]) bool) {
			if v == target {
				return
			}
			diff := int64(v) - int64(target)
			mag, sign := diff, int64(1)
			if mag < 0 {
				mag, sign = -mag, -1
			}
			for k := uint(0); ; k++ {
				shifted := mag >> k
				if shifted == 0 {
					return
				}
				candidate := rune(int64(v) - sign*shifted)
				if !inRanges(candidate, opts) {
					continue
				}
				if !yield(runeShrinkTree(candidate, target, opts)) {
					return
				}
			}
		},
	}
}

func inRanges(r rune, opts CharsOpts) bool {
	for _, cr := range opts.Ranges {
		if r >= cr.Lo && r <= cr.Hi {
			return true
		}
	}
	return false
}

// String generates a string of runes drawn from opts with length bounded
// by lenOpts, shrinking the same way ListOf shrinks any slice, then
// joining runes back into a string.
func String(opts CharsOpts, lenOpts LengthOpts) Generator[string] {
	return Map(ListOf(charGen(opts), lenOpts), runesToString)
}

func runesToString(rs []rune) string {
	return string(rs)
}

// Atom generates a string from a restricted identifier-like alphabet
// (lower-case letters, digits, underscore, starting with a letter),
// standing in for StreamData's interned-symbol atoms — Go has no atom
// type, so an Atom-generated string is a plain string the caller may
// intern itself if it needs pointer-equal interning.
func Atom(lenOpts LengthOpts) Generator[string] {
	first := charGen(CharsOpts{Ranges: []CharRange{{'a', 'z'}}})
	rest := charGen(CharsOpts{Ranges: []CharRange{{'a', 'z'}, {'0', '9'}, {'_', '_'}}})
	if lenOpts.Max == 0 && !lenOpts.HasMax {
		lenOpts.HasMax = true
		lenOpts.Max = 16
	}
	body := ListOf(rest, LengthOpts{Min: max0(lenOpts.Min - 1), Max: max0(lenOpts.Max - 1), HasMax: true})
	return Bind(first, func(f rune) Generator[string] {
		return Map(body, func(rest []rune) string {
			return string(f) + string(rest)
		})
	})
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
