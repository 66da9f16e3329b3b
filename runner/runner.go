package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/getpup/deploy-bootstrap"
	"github.com/getpup/deploy-bootstrap/metrics"
)

// Config holds configuration for the sequential step Runner.
type Config struct {
	// RunID correlates log lines of one deployment run. Defaults to a fresh
	// UUID.
	RunID string

	// Logger is for observability (optional).
	Logger bootstrap.Logger

	// Collector records metrics (optional).
	Collector *metrics.Collector
}

// Runner executes bootstrap steps strictly in order, honoring each step's
// failure policy: tolerated failures are logged and skipped over, a fatal
// failure aborts the sequence. There is no rollback of earlier steps.
type Runner struct {
	config Config
}

// Compile-time check that Runner implements Sequence.
var _ bootstrap.Sequence = (*Runner)(nil)

// New creates a new Runner with the given configuration.
// Generates a RunID if none is provided.
func New(cfg Config) *Runner {
	if cfg.RunID == "" {
		cfg.RunID = uuid.New().String()
	}

	return &Runner{
		config: cfg,
	}
}

// RunID returns the identifier stamped on this runner's log lines.
func (r *Runner) RunID() string {
	return r.config.RunID
}

// Run executes the steps in order and returns a result per step that ran.
// It returns a non-nil error only for a fatal step failure (wrapping
// ErrSequenceAborted) or for context cancellation between steps.
func (r *Runner) Run(ctx context.Context, steps []bootstrap.Step) ([]bootstrap.StepResult, error) {
	results := make([]bootstrap.StepResult, 0, len(steps))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if r.config.Logger != nil {
			r.config.Logger.Info(ctx, "step starting", "runID", r.config.RunID, "step", step.Name())
		}

		start := time.Now()
		attempts, err := step.Run(ctx)
		duration := time.Since(start)

		if r.config.Collector != nil {
			r.config.Collector.AddStepAttempts(string(step.Name()), attempts)
			r.config.Collector.ObserveStepDuration(string(step.Name()), duration.Seconds())
		}

		result := bootstrap.StepResult{
			Step:     step.Name(),
			Attempts: attempts,
			Duration: duration,
			Err:      err,
		}

		switch {
		case err == nil:
			result.Outcome = bootstrap.OutcomeSucceeded
			if r.config.Logger != nil {
				r.config.Logger.Info(ctx, "step succeeded",
					"runID", r.config.RunID,
					"step", step.Name(),
					"attempts", attempts,
					"duration", duration)
			}

		case step.Policy() == bootstrap.PolicyTolerate:
			result.Outcome = bootstrap.OutcomeTolerated
			if r.config.Collector != nil {
				r.config.Collector.IncStepFailure(string(step.Name()), string(bootstrap.OutcomeTolerated))
			}
			if r.config.Logger != nil {
				r.config.Logger.Warn(ctx, "step failed; continuing",
					"runID", r.config.RunID,
					"step", step.Name(),
					"attempts", attempts,
					"error", err)
			}

		default:
			result.Outcome = bootstrap.OutcomeFailed
			results = append(results, result)
			if r.config.Collector != nil {
				r.config.Collector.IncStepFailure(string(step.Name()), string(bootstrap.OutcomeFailed))
				r.config.Collector.IncSequence("aborted")
			}
			if r.config.Logger != nil {
				r.config.Logger.Error(ctx, "step failed; aborting",
					"runID", r.config.RunID,
					"step", step.Name(),
					"error", err)
			}
			return results, fmt.Errorf("%w: step %s: %w", bootstrap.ErrSequenceAborted, step.Name(), err)
		}

		results = append(results, result)
	}

	if r.config.Collector != nil {
		r.config.Collector.IncSequence("ok")
	}
	return results, nil
}
