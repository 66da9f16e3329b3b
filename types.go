package bootstrap

import (
	"context"
	"time"
)

// StepName identifies a single bootstrap step.
type StepName string

const (
	// StepProbe is the best-effort database reachability check.
	StepProbe StepName = "db-probe"

	// StepMigrate applies pending schema migrations.
	StepMigrate StepName = "migrate"

	// StepMedia provisions the media directory tree.
	StepMedia StepName = "media"

	// StepAdmin ensures the admin account exists.
	StepAdmin StepName = "admin"

	// StepTranslations compiles message catalogs.
	StepTranslations StepName = "translations"

	// StepStatic collects and verifies static assets.
	StepStatic StepName = "static"
)

// FailurePolicy determines how the sequence reacts when a step fails.
type FailurePolicy string

const (
	// PolicyTolerate logs the failure and continues with the next step.
	// Used for steps affecting background data state, where full consistency
	// is deferred to manual operator follow-up.
	PolicyTolerate FailurePolicy = "tolerate"

	// PolicyFatal aborts the sequence with a nonzero outcome.
	// Used for steps affecting user-facing text or the serving path.
	PolicyFatal FailurePolicy = "fatal"
)

// Outcome is the recorded result of running one step.
type Outcome string

const (
	// OutcomeSucceeded indicates the step completed without error.
	OutcomeSucceeded Outcome = "succeeded"

	// OutcomeTolerated indicates the step failed but the sequence continued.
	OutcomeTolerated Outcome = "tolerated"

	// OutcomeFailed indicates the step failed and aborted the sequence.
	OutcomeFailed Outcome = "failed"
)

// StepResult records what happened when a step ran.
type StepResult struct {
	// Step is the name of the step that ran.
	Step StepName

	// Outcome is how the step finished.
	Outcome Outcome

	// Attempts is how many times the step's underlying operation was tried.
	// At least 1 for any step that ran. Steps without internal retries
	// always report 1.
	Attempts int

	// Duration is the wall-clock time the step took, including retries.
	Duration time.Duration

	// Err is the final error for tolerated or failed outcomes, nil otherwise.
	Err error
}

// Step is a single named bootstrap operation.
// Implementations live in their own packages (probe, migrate, media, admin,
// i18n, static) and are wired together by a Sequence.
type Step interface {
	// Name returns the step's stable identifier, used in logs and metrics.
	Name() StepName

	// Policy returns how a failure of this step is treated.
	Policy() FailurePolicy

	// Run executes the step. A nil return means the step succeeded.
	// Attempts reports how many times the underlying operation was tried;
	// it is meaningful even when err is non-nil.
	Run(ctx context.Context) (attempts int, err error)
}

// Logger is an optional structured logger threaded through component configs.
// All methods accept alternating key/value pairs after the message.
type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...any)
	Info(ctx context.Context, msg string, keysAndValues ...any)
	Warn(ctx context.Context, msg string, keysAndValues ...any)
	Error(ctx context.Context, msg string, keysAndValues ...any)
}
