// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper_test

import (
	"testing"

	"code.hybscloud.com/proper"
)

func TestIntegerInRangeStaysInBounds(t *testing.T) {
	g := proper.IntegerInRange(-5, 5)
	s := proper.NewSeed(1)
	for i := 0; i < 100; i++ {
		s, _ = s.Split()
		tr, err := g(s, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Root < -5 || tr.Root > 5 {
			t.Fatalf("value %d out of [-5,5]", tr.Root)
		}
	}
}

func TestIntegerShrinksTowardZero(t *testing.T) {
	g := proper.IntegerInRange(-100, 100)
	s := proper.NewSeed(123)
	tr, err := g(s, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Root == 0 {
		return
	}
	found := false
	for c := range tr.Children {
		if absInt(c.Root) < absInt(tr.Root) {
			found = true
		}
	}
	if !found {
		t.Fatalf("no shrink child of %d was smaller in magnitude", tr.Root)
	}
}

func TestIntegerInRangeShrinksTowardNearestBoundWhenZeroExcluded(t *testing.T) {
	g := proper.IntegerInRange(10, 20)
	s := proper.NewSeed(7)
	tr, err := g(s, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first, ok := firstChild(tr); ok && first.Root != 10 {
		t.Fatalf("first shrink child of %d is %d, want the nearest bound 10", tr.Root, first.Root)
	}
	for c := range proper.Shrinks(tr) {
		if c < 10 || c > 20 {
			t.Fatalf("shrink candidate %d escaped [10,20]", c)
		}
	}
}

func TestIntegerInRangeFirstShrinkChildIsExactlyZeroWhenInRange(t *testing.T) {
	g := proper.IntegerInRange(0, 10000)
	s := proper.NewSeed(1)
	for i := 0; i < 30; i++ {
		s, _ = s.Split()
		tr, err := g(s, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Root == 0 {
			continue
		}
		first, ok := firstChild(tr)
		if !ok {
			t.Fatalf("value %d has no shrink children", tr.Root)
		}
		if first.Root != 0 {
			t.Fatalf("first shrink child of %d is %d, want exactly 0", tr.Root, first.Root)
		}
	}
}

func TestByteStaysInBounds(t *testing.T) {
	g := proper.Byte()
	s := proper.NewSeed(2)
	for i := 0; i < 50; i++ {
		s, _ = s.Split()
		tr, err := g(s, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_ = tr.Root // byte is always in [0,255] by type
	}
}

func TestFloatRespectsBounds(t *testing.T) {
	g := proper.Float(proper.FloatOpts{Min: 0, Max: 1, HasMin: true, HasMax: true})
	s := proper.NewSeed(3)
	for i := 0; i < 50; i++ {
		s, _ = s.Split()
		tr, err := g(s, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Root < 0 || tr.Root > 1 {
			t.Fatalf("value %v out of [0,1]", tr.Root)
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
