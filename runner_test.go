// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/proper"
)

func TestCheckAllPassesWhenPropertyAlwaysHolds(t *testing.T) {
	result := proper.CheckAll(
		context.Background(),
		proper.IntegerInRange(0, 100),
		func(int) proper.PropertyResult { return proper.Pass() },
		proper.DefaultOptions().WithMaxRuns(50),
	)
	require.True(t, result.Passed())
	require.Equal(t, proper.ResultPassed, result.Kind)
}

func TestCheckAllShrinksToAMinimalCounterexample(t *testing.T) {
	opts := proper.DefaultOptions().WithSeed(1).WithMaxRuns(200).WithMaxGenerationSize(200)
	result := proper.CheckAll(
		context.Background(),
		proper.IntegerInRange(0, 1000),
		func(n int) proper.PropertyResult {
			if n >= 50 {
				return proper.Fail(proper.Failure{Err: errors.New("must be less than 50")})
			}
			return proper.Pass()
		},
		opts,
	)
	require.Equal(t, proper.ResultFailed, result.Kind)
	value, ok := result.Failure.Value.(int)
	require.True(t, ok)
	require.Equal(t, 50, value, "the halving shrink tree must converge exactly on the n<50 boundary")

	original, ok := result.Original.Value.(int)
	require.True(t, ok)
	require.GreaterOrEqual(t, original, 50, "the original counterexample must itself have failed the property")
	require.GreaterOrEqual(t, result.NodesVisited, result.Failure.ShrinkSteps, "nodes visited must be at least the shrink path's depth")
}

func TestCheckAllIsReproducibleAcrossRunsWithTheSameSeed(t *testing.T) {
	prop := func(n int) proper.PropertyResult {
		if n >= 50 {
			return proper.Fail(proper.Failure{Err: errors.New("must be less than 50")})
		}
		return proper.Pass()
	}
	opts := proper.DefaultOptions().WithSeed(7).WithMaxRuns(200).WithMaxGenerationSize(200)
	first := proper.CheckAll(context.Background(), proper.IntegerInRange(0, 1000), prop, opts)
	second := proper.CheckAll(context.Background(), proper.IntegerInRange(0, 1000), prop, opts)
	require.Equal(t, first.Kind, second.Kind)
	require.Equal(t, first.Failure.Value, second.Failure.Value)
	require.Equal(t, first.NodesVisited, second.NodesVisited)
}

func TestResultReportedPrefersTheAssertionFailureWhenTheyDiverge(t *testing.T) {
	calls := 0
	opts := proper.DefaultOptions().WithSeed(1).WithMaxRuns(50)
	result := proper.CheckAll(
		context.Background(),
		proper.IntegerInRange(0, 1000),
		func(n int) proper.PropertyResult {
			calls++
			if calls == 1 {
				panic("boom")
			}
			return proper.Fail(proper.Failure{Err: errors.New("assertion failed")})
		},
		opts,
	)
	require.Equal(t, proper.ResultFailed, result.Kind)
	require.False(t, result.Original.Assertion, "the first failure was a recovered panic, not an explicit assertion")
	require.True(t, result.Failure.Assertion, "every shrink-path failure after the first call is an explicit assertion")
	require.True(t, result.Reported().Assertion, "Reported must prefer the sole assertion failure over the panic")
}

func TestCheckAllClausesReportsGeneratedValuesForTheShrunkListClause(t *testing.T) {
	listGen := proper.ListOf(proper.IntegerInRange(0, 10), proper.LengthOpts{Min: 0, Max: 20, HasMax: true})
	clauses := []proper.Clause{
		proper.BoundClause(proper.NewBound("list", listGen)),
	}
	opts := proper.DefaultOptions().WithSeed(1).WithMaxRuns(300).WithMaxGenerationSize(50)
	result := proper.CheckAllClauses(
		context.Background(),
		clauses,
		func(values []any) proper.PropertyResult {
			list := values[0].([]int)
			for _, v := range list {
				if v == 5 {
					return proper.Fail(proper.Failure{Err: errors.New("5 must not appear in the list")})
				}
			}
			return proper.Pass()
		},
		opts,
	)
	require.Equal(t, proper.ResultFailed, result.Kind)
	require.NotEmpty(t, result.Failure.GeneratedValues)
	last := result.Failure.GeneratedValues[len(result.Failure.GeneratedValues)-1]
	require.Equal(t, "list", last.Clause)
	require.Equal(t, []int{5}, last.Value)
}

func TestCheckAllStopsAtMaxRuns(t *testing.T) {
	result := proper.CheckAll(
		context.Background(),
		proper.IntegerInRange(0, 5),
		func(int) proper.PropertyResult { return proper.Pass() },
		proper.DefaultOptions().WithMaxRuns(13),
	)
	require.Equal(t, 13, result.Runs)
}

func TestCheckAllAbortsOnGeneratorError(t *testing.T) {
	g := proper.Filter(proper.IntegerInRange(0, 1), func(int) bool { return false }, 2)
	result := proper.CheckAll(
		context.Background(),
		g,
		func(int) proper.PropertyResult { return proper.Pass() },
		proper.DefaultOptions().WithMaxRuns(5),
	)
	require.Equal(t, proper.ResultAborted, result.Kind)
	require.Error(t, result.Err)
}

func TestCheckAllRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := proper.CheckAll(
		ctx,
		proper.IntegerInRange(0, 5),
		func(int) proper.PropertyResult { return proper.Pass() },
		proper.DefaultOptions().WithMaxRuns(100),
	)
	require.Equal(t, proper.ResultAborted, result.Kind)
}
