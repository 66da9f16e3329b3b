package migrate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/getpup/deploy-bootstrap"
	"github.com/getpup/deploy-bootstrap/command"
	"github.com/getpup/deploy-bootstrap/metrics"
)

// DuplicateTypeSignature identifies the benign duplicate-type race: a schema
// object was already partially created by a prior (failed or concurrent)
// migration run, and Postgres rejects the re-creation on the type-name index.
const DuplicateTypeSignature = `pg_type_typname_nsp_index`

// unappliedMarker prefixes unapplied entries in the migration plan listing.
const unappliedMarker = "[ ]"

// Config holds configuration for the migration Runner.
type Config struct {
	// Commander invokes the management CLI (required).
	Commander command.Commander

	// MaxAttempts is the total number of migration attempts (default: 3).
	MaxAttempts int

	// RetryDelay is the fixed delay between attempts (default: 2s).
	RetryDelay time.Duration

	// Logger is for observability (optional).
	Logger bootstrap.Logger

	// Collector records metrics (optional).
	Collector *metrics.Collector
}

// Runner brings the database schema to the latest known state.
// Failures never abort the deployment: the step is tolerated so a flaky
// database cannot block a release, and consistency is deferred to operator
// follow-up.
type Runner struct {
	config Config
}

// Compile-time check that Runner implements Step.
var _ bootstrap.Step = (*Runner)(nil)

// New creates a new migration Runner with the given configuration.
// Applies default values for MaxAttempts and RetryDelay if zero.
func New(cfg Config) *Runner {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}

	return &Runner{
		config: cfg,
	}
}

// Name returns the step identifier.
func (r *Runner) Name() bootstrap.StepName {
	return bootstrap.StepMigrate
}

// Policy returns the failure policy. Migration failures are tolerated.
func (r *Runner) Policy() bootstrap.FailurePolicy {
	return bootstrap.PolicyTolerate
}

// Run attempts the migration command, retrying up to MaxAttempts with a fixed
// delay. A failure whose output carries DuplicateTypeSignature is treated as
// benign: the unapplied count is consulted and the step succeeds either way,
// with a warning when migrations remain unapplied. Other failures exhaust the
// retries and are returned; the caller's tolerate policy keeps the deployment
// moving.
func (r *Runner) Run(ctx context.Context) (int, error) {
	attempts := 0

	operation := func() error {
		attempts++

		out, err := r.config.Commander.Manage(ctx, "migrate", "--noinput")
		if err == nil {
			if r.config.Logger != nil {
				r.config.Logger.Info(ctx, "migrations applied", "attempt", attempts)
			}
			return nil
		}

		if strings.Contains(string(out), DuplicateTypeSignature) {
			return backoff.Permanent(r.resolveDuplicateType(ctx, attempts))
		}

		if r.config.Logger != nil {
			r.config.Logger.Warn(ctx, "migration attempt failed",
				"attempt", attempts,
				"maxAttempts", r.config.MaxAttempts,
				"error", err)
		}
		if r.config.Collector != nil && attempts < r.config.MaxAttempts {
			r.config.Collector.IncMigrationRetries()
		}

		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(r.config.RetryDelay),
			uint64(r.config.MaxAttempts-1),
		),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		if r.config.Logger != nil {
			r.config.Logger.Error(ctx, "migrations failed after all attempts; continuing deployment",
				"attempts", attempts,
				"error", err)
		}
		return attempts, fmt.Errorf("migrate after %d attempts: %w", attempts, err)
	}

	return attempts, nil
}

// resolveDuplicateType decides what a duplicate-type conflict means by
// counting unapplied migrations. Zero unapplied means the conflict was
// cosmetic and the schema is actually current. A nonzero count, or a failure
// to count at all, is logged for manual intervention; the step still
// succeeds rather than blocking the release.
func (r *Runner) resolveDuplicateType(ctx context.Context, attempt int) error {
	unapplied, err := r.CountUnapplied(ctx)
	if err != nil {
		if r.config.Logger != nil {
			r.config.Logger.Warn(ctx, "duplicate type conflict detected but unapplied count unavailable; proceeding",
				"attempt", attempt,
				"error", err)
		}
		return nil
	}

	if r.config.Collector != nil {
		r.config.Collector.SetUnappliedMigrations(unapplied)
	}

	if unapplied == 0 {
		if r.config.Logger != nil {
			r.config.Logger.Info(ctx, "duplicate type conflict was cosmetic; schema is current",
				"attempt", attempt)
		}
		return nil
	}

	if r.config.Logger != nil {
		r.config.Logger.Warn(ctx, "duplicate type conflict with migrations still unapplied; manual intervention needed",
			"attempt", attempt,
			"unapplied", unapplied)
	}
	return nil
}

// CountUnapplied returns the number of migrations defined in source but not
// yet reflected in the live schema, parsed from the migration plan listing.
func (r *Runner) CountUnapplied(ctx context.Context) (int, error) {
	out, err := r.config.Commander.Manage(ctx, "showmigrations", "--plan")
	if err != nil {
		return 0, fmt.Errorf("list migration plan: %w", err)
	}

	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), unappliedMarker) {
			count++
		}
	}

	return count, nil
}
