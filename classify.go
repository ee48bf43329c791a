// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package proper

// reportedFailure implements the error-classification-at-reporting rule:
// if both original and shrunk are assertion failures, the shrunk one
// wins (it is better minimized); if exactly one is an assertion failure,
// that one wins (the other path started as, or morphed into, an
// unrelated exception); otherwise — both plain, non-assertion errors —
// the shrunk one wins, an arbitrary but explicitly preserved default.
func reportedFailure(original, shrunk Failure) Failure {
	if original.Assertion == shrunk.Assertion {
		return shrunk
	}
	if original.Assertion {
		return original
	}
	return shrunk
}
