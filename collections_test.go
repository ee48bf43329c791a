// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper_test

import (
	"context"
	"fmt"
	"testing"

	"code.hybscloud.com/proper"
)

func TestListOfRespectsLengthBounds(t *testing.T) {
	g := proper.ListOf(proper.IntegerInRange(0, 9), proper.LengthOpts{Min: 2, Max: 5, HasMax: true})
	s := proper.NewSeed(1)
	for i := 0; i < 50; i++ {
		s, _ = s.Split()
		tr, err := g(s, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tr.Root) < 2 || len(tr.Root) > 5 {
			t.Fatalf("list length %d outside [2,5]", len(tr.Root))
		}
	}
}

func TestListOfShrinksByDeletionBeforeElementwise(t *testing.T) {
	g := proper.ListOf(proper.IntegerInRange(0, 9), proper.LengthOpts{Min: 0, Max: 4, HasMax: true})
	tr, err := g(proper.NewSeed(42), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Root) < 2 {
		t.Skip("root list too short to exercise deletion shrinks")
	}
	first, ok := firstChild(tr)
	if !ok {
		t.Fatalf("expected at least one shrink child")
	}
	if len(first.Root) != len(tr.Root)-1 {
		t.Fatalf("first shrink child has length %d, want %d (a one-element deletion)", len(first.Root), len(tr.Root)-1)
	}
}

func firstChild[T any](t proper.Tree[T]) (proper.Tree[T], bool) {
	for c := range t.Children {
		return c, true
	}
	var zero proper.Tree[T]
	return zero, false
}

func TestListOfShrinkChildrenIncludeEveryOneDeletion(t *testing.T) {
	g := proper.ListOf(proper.IntegerInRange(0, 9), proper.LengthOpts{Min: 0, Max: 6, HasMax: true})
	tr, err := g(proper.NewSeed(42), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := len(tr.Root)
	if n < 2 {
		t.Skip("root list too short to exercise one-deletion shrinks")
	}
	wantDeletions := make([]([]int), n)
	for i := 0; i < n; i++ {
		deleted := make([]int, 0, n-1)
		deleted = append(deleted, tr.Root[:i]...)
		deleted = append(deleted, tr.Root[i+1:]...)
		wantDeletions[i] = deleted
	}
	got := make([][]int, 0, n)
	for c := range tr.Children {
		if len(got) >= n {
			break
		}
		got = append(got, c.Root)
	}
	if len(got) < n {
		t.Fatalf("got only %d of the first %d children, want one per deletion", len(got), n)
	}
	for i, want := range wantDeletions {
		if !equalInts(got[i], want) {
			t.Fatalf("child %d is %v, want the one-deletion %v", i, got[i], want)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListOfCheckAllShrinksToTheMinimalFailingSingleton(t *testing.T) {
	g := proper.ListOf(proper.IntegerInRange(0, 10), proper.LengthOpts{Min: 0, Max: 20, HasMax: true})
	opts := proper.DefaultOptions().WithSeed(1).WithMaxRuns(300).WithMaxGenerationSize(50)
	result := proper.CheckAll(
		context.Background(),
		g,
		func(list []int) proper.PropertyResult {
			for _, v := range list {
				if v == 5 {
					return proper.Fail(proper.Failure{Err: fmt.Errorf("5 must not appear in %v", list)})
				}
			}
			return proper.Pass()
		},
		opts,
	)
	if result.Kind != proper.ResultFailed {
		t.Fatalf("expected a failing draw across %d runs, got %v", opts.MaxRuns, result.Kind)
	}
	shrunk, ok := result.Failure.Value.([]int)
	if !ok || len(shrunk) != 1 || shrunk[0] != 5 {
		t.Fatalf("got shrunk value %v, want exactly [5]", result.Failure.Value)
	}
}

func TestListOfNeverShrinksBelowMinLength(t *testing.T) {
	g := proper.ListOf(proper.IntegerInRange(0, 9), proper.LengthOpts{Min: 3, Max: 3, HasMax: true})
	tr, err := g(proper.NewSeed(5), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for c := range proper.Shrinks(tr) {
		if len(c) < 3 {
			t.Fatalf("shrink produced list shorter than min length: %v", c)
		}
	}
}

func TestUniqListOfProducesDistinctElements(t *testing.T) {
	g := proper.UniqListOf(proper.IntegerInRange(0, 100), proper.LengthOpts{Min: 5, Max: 5, HasMax: true}, 50)
	tr, err := g(proper.NewSeed(9), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[int]bool{}
	for _, v := range tr.Root {
		if seen[v] {
			t.Fatalf("duplicate value %d in unique list %v", v, tr.Root)
		}
		seen[v] = true
	}
}

func TestUniqListOfTooNarrowReportsError(t *testing.T) {
	g := proper.UniqListOf(proper.IntegerInRange(0, 1), proper.LengthOpts{Min: 5, Max: 5, HasMax: true}, 3)
	_, err := g(proper.NewSeed(1), 10)
	if err == nil {
		t.Fatalf("expected TooManyDuplicates error when asking for 5 unique values from a 2-value range")
	}
	genErr, ok := err.(*proper.GenError)
	if !ok || genErr.Kind != proper.TooManyDuplicates {
		t.Fatalf("got %v, want a TooManyDuplicates GenError", err)
	}
}

func TestMapOfProducesRequestedSize(t *testing.T) {
	g := proper.MapOf(proper.IntegerInRange(0, 1000), proper.Boolean(), proper.LengthOpts{Min: 3, Max: 3, HasMax: true})
	tr, err := g(proper.NewSeed(2), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Root) != 3 {
		t.Fatalf("got map of size %d, want 3", len(tr.Root))
	}
}
