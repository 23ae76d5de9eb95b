package reports

import "slices"

// defaultClassifier backs the package-level helpers.
var defaultClassifier = &Classifier{opts: DefaultOptions()}

// Classifier applies a fixed set of step bounds. The zero value is not
// usable; construct with NewClassifier. A Classifier is immutable and safe
// for concurrent use.
type Classifier struct {
	opts Options
}

// NewClassifier builds a Classifier from DefaultOptions plus opts.
// Returns ErrBadStepBounds if the resulting bounds are unusable.
func NewClassifier(opts ...Option) (*Classifier, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Classifier{opts: o}, nil
}

// Options returns a copy of the bounds in effect.
func (c *Classifier) Options() Options {
	return c.opts
}

// Deltas returns the steps between consecutive elements of seq:
// D[i] = seq[i+1] - seq[i]. len(D) == max(len(seq)-1, 0). seq is not
// modified; the result is never nil.
func Deltas(seq []int) []int {
	if len(seq) < 2 {
		return []int{}
	}
	d := make([]int, len(seq)-1)
	for i := 0; i < len(seq)-1; i++ {
		d[i] = seq[i+1] - seq[i]
	}

	return d
}

// Classify reports whether deltas describe a safe sequence under c's bounds.
// An empty step sequence is unsafe.
func (c *Classifier) Classify(deltas []int) bool {
	if len(deltas) == 0 {
		return false
	}

	return c.validSteps(deltas) && monotonic(deltas)
}

// IsSafe is Classify(Deltas(seq)).
func (c *Classifier) IsSafe(seq []int) bool {
	return c.Classify(Deltas(seq))
}

// CountSafe returns how many of seqs are safe.
func (c *Classifier) CountSafe(seqs [][]int) int {
	n := 0
	for _, s := range seqs {
		if c.IsSafe(s) {
			n++
		}
	}

	return n
}

// Analyze returns the values, steps and verdict of seq in one Report.
func (c *Classifier) Analyze(seq []int) Report {
	d := Deltas(seq)

	return Report{
		Values: slices.Clone(seq),
		Deltas: d,
		Safe:   c.Classify(d),
	}
}

// validSteps holds when every step magnitude is within [MinStep, MaxStep].
// Vacuously true for no steps.
func (c *Classifier) validSteps(deltas []int) bool {
	for _, d := range deltas {
		m := abs(d)
		if m < c.opts.MinStep || m > c.opts.MaxStep {
			return false
		}
	}

	return true
}

// monotonic holds when every step shares the sign of deltas[0].
// False for no steps.
func monotonic(deltas []int) bool {
	if len(deltas) == 0 {
		return false
	}
	up := deltas[0] > 0
	for _, d := range deltas {
		if (d > 0) != up {
			return false
		}
	}

	return true
}

// Classify reports whether deltas are safe under the default bounds (1..3).
func Classify(deltas []int) bool {
	return defaultClassifier.Classify(deltas)
}

// IsSafe reports whether seq is safe under the default bounds (1..3).
func IsSafe(seq []int) bool {
	return defaultClassifier.IsSafe(seq)
}

// CountSafe counts the safe sequences in seqs under the default bounds.
func CountSafe(seqs [][]int) int {
	return defaultClassifier.CountSafe(seqs)
}

// Analyze reports on seq under the default bounds.
func Analyze(seq []int) Report {
	return defaultClassifier.Analyze(seq)
}

// HasValidStepSizes reports whether every step of seq has magnitude in
// [1, 3]. A sequence with no steps passes.
func HasValidStepSizes(seq []int) bool {
	return defaultClassifier.validSteps(Deltas(seq))
}

// IsMonotonic reports whether every step of seq has the sign of its first
// step. A sequence with no steps is not monotonic.
func IsMonotonic(seq []int) bool {
	return monotonic(Deltas(seq))
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
