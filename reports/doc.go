// Package reports classifies ordered integer sequences ("reports" or
// "levels") as safe or unsafe by inspecting the steps between neighbours.
//
// What
//
//   - Deltas derives the step sequence D[i] = S[i+1] - S[i].
//   - Classify applies two universal rules to a step sequence:
//   - magnitude: every step satisfies MinStep ≤ |d| ≤ MaxStep (default 1..3)
//   - direction: every step has the same sign as the first step
//   - IsSafe composes the two; CountSafe counts safe sequences in a batch.
//
// Direction rule
//
//	The sign of every step is compared against the sign of D[0], never
//	against its immediate predecessor. A step of 0 is never valid because
//	it fails the magnitude rule first.
//
// Degenerate input
//
//	A sequence of length 0 or 1 has no steps and is always unsafe.
//
// Complexity
//
//   - Time:   O(n) per sequence
//   - Memory: O(n) for the step sequence
//
// Overflow
//
//	Values are expected to fit in 32 bits (lineparse guarantees this), so
//	subtracting neighbours never overflows a 64-bit int.
//
// Usage:
//
//	reports.IsSafe([]int{7, 6, 4, 2, 1})           // true
//	reports.CountSafe([][]int{{1, 3, 5}, {1, 5}})  // 1
//
//	c, err := reports.NewClassifier(reports.WithMaxStep(4))
//	if err != nil {
//	  // ErrBadStepBounds
//	}
//	c.IsSafe([]int{1, 5, 9}) // true
package reports
