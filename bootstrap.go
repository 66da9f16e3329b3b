package bootstrap

import "context"

// Sequence executes an ordered list of bootstrap steps.
// It is strictly sequential: a step only starts after the previous one has
// finished, and there is no rollback of earlier steps on failure.
//
// Run returns the results of every step that ran, in order. It returns a
// non-nil error only when a step with PolicyFatal fails; steps with
// PolicyTolerate never abort the sequence, whatever their error.
//
// Run returns ctx.Err() if the context is cancelled between steps; the step
// that was in flight decides for itself how it reacts to cancellation.
type Sequence interface {
	Run(ctx context.Context, steps []Step) ([]StepResult, error)
}
