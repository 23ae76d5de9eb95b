package reports

import (
	"errors"
	"fmt"
)

// Default step bounds.
const (
	DefaultMinStep = 1
	DefaultMaxStep = 3
)

// ErrBadStepBounds is returned when MinStep < 1 or MaxStep < MinStep.
var ErrBadStepBounds = errors.New("reports: invalid step bounds")

// Options holds the magnitude bounds applied to every step.
//
// Fields:
//   - MinStep — smallest allowed |d|. Must be ≥ 1 so a flat step stays unsafe.
//   - MaxStep — largest allowed |d|. Must be ≥ MinStep.
type Options struct {
	MinStep int
	MaxStep int
}

// DefaultOptions returns Options{MinStep: 1, MaxStep: 3}.
func DefaultOptions() Options {
	return Options{MinStep: DefaultMinStep, MaxStep: DefaultMaxStep}
}

// Validate reports ErrBadStepBounds for unusable bounds.
func (o Options) Validate() error {
	if o.MinStep < 1 {
		return fmt.Errorf("%w: MinStep=%d, want >= 1", ErrBadStepBounds, o.MinStep)
	}
	if o.MaxStep < o.MinStep {
		return fmt.Errorf("%w: MaxStep=%d < MinStep=%d", ErrBadStepBounds, o.MaxStep, o.MinStep)
	}

	return nil
}

// Option configures a Classifier.
type Option func(*Options)

// WithMinStep sets the smallest allowed step magnitude.
func WithMinStep(n int) Option {
	return func(o *Options) { o.MinStep = n }
}

// WithMaxStep sets the largest allowed step magnitude.
func WithMaxStep(n int) Option {
	return func(o *Options) { o.MaxStep = n }
}

// Report is the full analysis of one sequence: its values, its steps and
// the verdict. Values and Deltas are owned by the Report.
type Report struct {
	Values []int
	Deltas []int
	Safe   bool
}
