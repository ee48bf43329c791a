// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper_test

import (
	"context"
	"errors"
	"testing"

	"code.hybscloud.com/proper"
)

func TestTupleOf2ShrinksEachComponentIndependently(t *testing.T) {
	g := proper.TupleOf2(proper.IntegerInRange(0, 10), proper.IntegerInRange(0, 10))
	tr, err := g(proper.NewSeed(6), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for c := range tr.Children {
		if c.Root.First != tr.Root.First && c.Root.Second != tr.Root.Second {
			t.Fatalf("child %v changed both components of root %v in one step", c.Root, tr.Root)
		}
	}
}

func TestTupleOf2CheckAllShrinksToTheSumBoundary(t *testing.T) {
	g := proper.TupleOf2(proper.IntegerInRange(0, 100), proper.IntegerInRange(0, 100))
	opts := proper.DefaultOptions().WithSeed(3).WithMaxRuns(300).WithMaxGenerationSize(100)
	result := proper.CheckAll(
		context.Background(),
		g,
		func(p proper.Tuple2[int, int]) proper.PropertyResult {
			if p.First+p.Second >= 10 {
				return proper.Fail(proper.Failure{Err: errors.New("sum must stay below 10")})
			}
			return proper.Pass()
		},
		opts,
	)
	if result.Kind != proper.ResultFailed {
		t.Fatalf("expected a failing draw across %d runs, got %v", opts.MaxRuns, result.Kind)
	}
	pair, ok := result.Failure.Value.(proper.Tuple2[int, int])
	if !ok {
		t.Fatalf("got %v (%T), want a Tuple2[int,int]", result.Failure.Value, result.Failure.Value)
	}
	if pair.First+pair.Second != 10 {
		t.Fatalf("shrunk pair %+v sums to %d, want exactly 10", pair, pair.First+pair.Second)
	}
}

func TestTupleOf3RootHasAllComponents(t *testing.T) {
	g := proper.TupleOf3(proper.ConstantGen(1), proper.ConstantGen("a"), proper.ConstantGen(true))
	tr, err := g(proper.NewSeed(1), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Root.First != 1 || tr.Root.Second != "a" || tr.Root.Third != true {
		t.Fatalf("got %+v, want {1 a true}", tr.Root)
	}
}

func TestFixedMapHasExactlyDeclaredKeys(t *testing.T) {
	g := proper.FixedMap(map[string]proper.Generator[any]{
		"a": proper.Map(proper.ConstantGen(1), func(x int) any { return x }),
		"b": proper.Map(proper.ConstantGen("x"), func(x string) any { return x }),
	})
	tr, err := g(proper.NewSeed(1), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Root) != 2 {
		t.Fatalf("got %d keys, want 2", len(tr.Root))
	}
	if tr.Root["a"] != 1 || tr.Root["b"] != "x" {
		t.Fatalf("got %v", tr.Root)
	}
}

func TestKeywordOfAllowsDuplicateKeys(t *testing.T) {
	g := proper.KeywordOf(proper.MemberOf([]string{"k"}), proper.IntegerInRange(0, 5), proper.LengthOpts{Min: 3, Max: 3, HasMax: true})
	tr, err := g(proper.NewSeed(1), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Root) != 3 {
		t.Fatalf("got %d pairs, want 3", len(tr.Root))
	}
	for _, kv := range tr.Root {
		if kv.Key != "k" {
			t.Fatalf("got key %q, want %q", kv.Key, "k")
		}
	}
}
