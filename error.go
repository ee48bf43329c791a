// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

import "fmt"

// GenErrorKind enumerates the generator-level failures that abort a run
// outright rather than participating in it — they are never shrunk, and a
// run is not retried at the run level after one occurs, because re-running
// with a different seed would not change the generator's shape.
type GenErrorKind int

const (
	// FilterTooNarrow: a filter/bind_filter exceeded its retry budget.
	FilterTooNarrow GenErrorKind = iota
	// TooManyDuplicates: uniq_list_of could not find enough unique elements.
	TooManyDuplicates
	// EmptyEnum: member_of or frequency received an empty input.
	EmptyEnum
	// InvalidGenerator: a non-liftable value was supplied where a generator is required.
	InvalidGenerator
	// InvalidOption: an option had an invalid shape (e.g. a negative length bound).
	InvalidOption
	// EmptyRange: a range- or set-backed generator had nothing to draw from.
	EmptyRange
)

func (k GenErrorKind) String() string {
	switch k {
	case FilterTooNarrow:
		return "FilterTooNarrow"
	case TooManyDuplicates:
		return "TooManyDuplicates"
	case EmptyEnum:
		return "EmptyEnum"
	case InvalidGenerator:
		return "InvalidGenerator"
	case InvalidOption:
		return "InvalidOption"
	case EmptyRange:
		return "EmptyRange"
	default:
		return "GenErrorKind(?)"
	}
}

// GenError is a generator-level error. It implements the standard error
// interface so it composes with everything else in Go that speaks error,
// while RejectedValue (type-erased; the caller already knows T) preserves
// the spec's "reported with the last rejected value" requirement for
// FilterTooNarrow without making GenError itself generic — a generic error
// type cannot satisfy the error interface's fixed Error() string method
// in a single non-generic way callers can catch with errors.As.
type GenError struct {
	Kind          GenErrorKind
	Message       string
	RejectedValue any
}

func (e *GenError) Error() string {
	if e.Message == "" {
		return "proper: " + e.Kind.String()
	}
	return fmt.Sprintf("proper: %s: %s", e.Kind, e.Message)
}

// newOptionError builds an InvalidOption GenError with a formatted message.
func newOptionError(format string, args ...any) *GenError {
	return &GenError{Kind: InvalidOption, Message: fmt.Sprintf(format, args...)}
}

// PropertyOutcomeKind distinguishes PropertyResult's two outcomes, mirroring
// the tagged-union idiom the generator-level FilterResult (tree.go) also uses:
// a small bool-like tag field plus a payload, rather than an interface.
type PropertyOutcomeKind int

const (
	passOutcome PropertyOutcomeKind = iota
	failOutcome
)

// PropertyResult is what a property function returns: Pass, or Fail
// carrying the FailureRecord that describes what went wrong. The property
// function signature is func(T) PropertyResult, matching spec.md's
// property_fn: (value) -> Ok | Err(failure_record).
type PropertyResult struct {
	kind    PropertyOutcomeKind
	failure Failure
}

// Pass reports that the property held for the generated value.
func Pass() PropertyResult { return PropertyResult{kind: passOutcome} }

// Fail reports that the property failed, carrying the failure record that
// will seed the shrink search.
func Fail(f Failure) PropertyResult { return PropertyResult{kind: failOutcome, failure: f} }

// Failed reports whether this result is a Fail.
func (r PropertyResult) Failed() bool { return r.kind == failOutcome }

// FailureRecord returns the carried failure and true, or the zero Failure
// and false if this result is a Pass.
func (r PropertyResult) FailureRecord() (Failure, bool) {
	if r.kind == failOutcome {
		return r.failure, true
	}
	return Failure{}, false
}
