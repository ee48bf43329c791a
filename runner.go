// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

import (
	"context"
	"fmt"
	"time"
)

// Binding pairs a clause label with the value bound to it in one draw —
// the building block of Failure.GeneratedValues, in binding order (first
// bound first), the Go representation of a generated_values entry.
type Binding struct {
	Clause string
	Value  any
}

// Failure describes one failing run, either the original counterexample
// or the result of the shrink search that followed it. Value is
// type-erased (any) because Result itself can't be generic over the
// property's value type without infecting every caller that just wants
// to inspect a failure after the fact. Assertion reports whether this
// failure came from the property body explicitly returning Fail(...)
// rather than from a recovered panic — the distinction Result.Reported's
// classification rule keys off of.
type Failure struct {
	Value           any
	Err             error
	Seed            Seed
	Size            Size
	ShrinkSteps     int
	Label           string
	Assertion       bool
	GeneratedValues []Binding
}

func (f Failure) String() string {
	if f.Label != "" {
		return fmt.Sprintf("%s: %v failed after %d shrink step(s): %v", f.Label, f.Value, f.ShrinkSteps, f.Err)
	}
	return fmt.Sprintf("%v failed after %d shrink step(s): %v", f.Value, f.ShrinkSteps, f.Err)
}

// ResultKind distinguishes Result's three outcomes.
type ResultKind int

const (
	// ResultPassed: every run satisfied the property.
	ResultPassed ResultKind = iota
	// ResultFailed: a run failed. Original carries the first failing draw
	// before any shrinking; Failure carries the (possibly shrunk)
	// counterexample the search converged on.
	ResultFailed
	// ResultAborted: a generator-level error (FilterTooNarrow and the
	// like) stopped the run outright before the property even ran.
	ResultAborted
)

// Result is what CheckAll returns — the Go shape of spec.md's terminal
// runner state Fail{original, shrunk, nodes_visited, successful_runs}.
type Result struct {
	Kind         ResultKind
	Runs         int
	Original     Failure
	Failure      Failure
	NodesVisited int
	Err          error
}

// Passed reports whether every run satisfied the property.
func (r Result) Passed() bool { return r.Kind == ResultPassed }

// Reported applies spec.md's error-classification-at-reporting rule to
// decide which of Original and Failure a caller should surface: when
// exactly one of the two is an assertion failure, that one is preferred
// (the other path may have morphed into, or started as, an unrelated
// exception); otherwise the shrunk failure is reported, whether both are
// assertions (it is better-minimized) or both are plain errors (the
// arbitrary but documented default).
func (r Result) Reported() Failure {
	return reportedFailure(r.Original, r.Failure)
}

// CheckAll draws up to opts.MaxRuns values from g, running prop on each.
// The generation size starts at opts.InitialSize and grows by one per
// successful run, capped at opts.MaxGenerationSize (unless it is
// UnboundedGenerationSize). On the first failing run, it greedily shrinks
// toward a smaller counterexample before returning: it tries a failing
// tree's children left to right, moves into the first one that also
// fails, and repeats from there, stopping when no child fails or the
// shrink step budget is exhausted. This is a local-minimum search, not a
// global one — it finds *a* smaller counterexample along the
// first-discovered failing path, not necessarily the smallest one
// reachable.
func CheckAll[T any](ctx context.Context, g Generator[T], prop func(T) PropertyResult, opts Options) Result {
	seed := NewSeed(opts.InitialSeed)
	size := opts.InitialSize
	deadline := time.Time{}
	if opts.MaxRunTime > 0 {
		deadline = time.Now().Add(opts.MaxRunTime)
	}
	for run := 0; run < opts.MaxRuns; run++ {
		select {
		case <-ctx.Done():
			return Result{Kind: ResultAborted, Runs: run, Err: ctx.Err()}
		default:
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return Result{Kind: ResultPassed, Runs: run}
		}
		runSeed, rest := seed.Split()
		seed = rest
		tree, err := g(runSeed, size)
		if err != nil {
			return Result{Kind: ResultAborted, Runs: run, Err: err}
		}
		res, runErr, panicked := runProperty(prop, tree.Root)
		if runErr != nil || res.Failed() {
			original := Failure{Value: tree.Root, Err: runErr, Seed: runSeed, Size: size, Assertion: !panicked}
			if f, ok := res.FailureRecord(); ok {
				if original.Err == nil {
					original.Err = f.Err
				}
				original.Label = f.Label
			}
			shrunk, nodesVisited := shrinkSearch(tree, prop, opts.MaxShrinkingSteps, original.Assertion)
			shrunk.Seed = runSeed
			shrunk.Size = size
			if shrunk.Err == nil {
				shrunk.Err = original.Err
			}
			if shrunk.Label == "" {
				shrunk.Label = original.Label
			}
			return Result{Kind: ResultFailed, Runs: run + 1, Original: original, Failure: shrunk, NodesVisited: nodesVisited}
		}
		if opts.MaxGenerationSize == UnboundedGenerationSize || size < opts.MaxGenerationSize {
			size++
		}
	}
	return Result{Kind: ResultPassed, Runs: opts.MaxRuns}
}

// shrinkSearch performs the greedy leftmost-first bounded search
// described on CheckAll, starting from a tree already known to fail.
// rootAssertion carries the originating failure's assertion/non-assertion
// classification forward as the default, in case the search never moves
// (steps stays 0, so the reported failure is still the root value).
// nodesVisited counts every child evaluated along the way, including
// ones that turned out to still pass — distinct from ShrinkSteps, which
// only counts successful moves, i.e. the path's depth.
func shrinkSearch[T any](t Tree[T], prop func(T) PropertyResult, maxSteps int, rootAssertion bool) (Failure, int) {
	current := t
	steps := 0
	nodesVisited := 0
	var lastErr error
	assertion := rootAssertion
	for steps < maxSteps {
		moved := false
		for child := range current.Children {
			nodesVisited++
			res, err, panicked := runProperty(prop, child.Root)
			if err == nil && !res.Failed() {
				continue
			}
			if err != nil {
				lastErr = err
			} else if f, ok := res.FailureRecord(); ok {
				lastErr = f.Err
			}
			assertion = !panicked
			current = child
			steps++
			moved = true
			break
		}
		if !moved {
			break
		}
	}
	return Failure{Value: current.Root, Err: lastErr, ShrinkSteps: steps, Assertion: assertion}, nodesVisited
}

// runProperty calls prop, recovering from panics so a failing assertion
// inside the property body (rather than an explicit Fail(...) return)
// still counts as a failed run instead of crashing the whole check.
// panicked distinguishes that recovered-panic path from an explicit
// Fail(...), the classification callers need to tag a Failure's
// Assertion field.
func runProperty[T any](prop func(T) PropertyResult, v T) (res PropertyResult, err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			if asErr, ok := r.(error); ok {
				err = asErr
			} else {
				err = fmt.Errorf("%v", r)
			}
			res = Fail(Failure{Value: v, Err: err})
		}
	}()
	res = prop(v)
	if f, ok := res.FailureRecord(); ok && f.Err != nil {
		err = f.Err
	}
	return res, err, false
}
