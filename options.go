// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

import "time"

// Options configures a CheckAll run. Construct with DefaultOptions and
// override through the With... functions, which return a modified copy —
// Options values are never mutated in place, matching every other value
// type in this package.
type Options struct {
	InitialSeed       uint64
	InitialSize       Size
	MaxRuns           int
	MaxRunTime        time.Duration
	MaxShrinkingSteps int
	MaxGenerationSize Size
}

// UnboundedGenerationSize, set as Options.MaxGenerationSize, disables the
// size cap: size keeps growing by one every successful run for as long as
// the check runs.
const UnboundedGenerationSize Size = -1

// DefaultOptions returns the package's default run configuration,
// process-wide defaults re-expressed as an explicit value rather than a
// global: starting size 1, 100 runs, unlimited run time, unbounded
// generation size, up to 100 shrink steps.
func DefaultOptions() Options {
	return Options{
		InitialSeed:       0,
		InitialSize:       1,
		MaxRuns:           100,
		MaxRunTime:        0,
		MaxShrinkingSteps: 100,
		MaxGenerationSize: UnboundedGenerationSize,
	}
}

func (o Options) WithSeed(seed uint64) Options {
	o.InitialSeed = seed
	return o
}

func (o Options) WithInitialSize(n Size) Options {
	o.InitialSize = n
	return o
}

func (o Options) WithMaxRuns(n int) Options {
	o.MaxRuns = n
	return o
}

func (o Options) WithMaxRunTime(d time.Duration) Options {
	o.MaxRunTime = d
	return o
}

func (o Options) WithMaxShrinkingSteps(n int) Options {
	o.MaxShrinkingSteps = n
	return o
}

func (o Options) WithMaxGenerationSize(n Size) Options {
	o.MaxGenerationSize = n
	return o
}
