package admin

import (
	"context"
	"strings"

	"github.com/getpup/deploy-bootstrap"
	"github.com/getpup/deploy-bootstrap/command"
)

// Config holds configuration for the admin Ensurer.
type Config struct {
	// Commander invokes the management CLI (required).
	Commander command.Commander

	// Logger is for observability (optional).
	Logger bootstrap.Logger
}

// Ensurer idempotently creates the privileged admin account. Credentials come
// from the framework's own environment variables; this step only triggers the
// command and tolerates every failure.
type Ensurer struct {
	config Config
}

// Compile-time check that Ensurer implements Step.
var _ bootstrap.Step = (*Ensurer)(nil)

// New creates a new Ensurer with the given configuration.
func New(cfg Config) *Ensurer {
	return &Ensurer{
		config: cfg,
	}
}

// Name returns the step identifier.
func (e *Ensurer) Name() bootstrap.StepName {
	return bootstrap.StepAdmin
}

// Policy returns the failure policy. Admin account failures are tolerated.
func (e *Ensurer) Policy() bootstrap.FailurePolicy {
	return bootstrap.PolicyTolerate
}

// Run invokes the non-interactive superuser creation command. An "already
// exists" rejection means the account is current and counts as success.
func (e *Ensurer) Run(ctx context.Context) (int, error) {
	out, err := e.config.Commander.Manage(ctx, "createsuperuser", "--noinput")
	if err == nil {
		if e.config.Logger != nil {
			e.config.Logger.Info(ctx, "admin account created")
		}
		return 1, nil
	}

	if strings.Contains(strings.ToLower(string(out)), "already") {
		if e.config.Logger != nil {
			e.config.Logger.Info(ctx, "admin account already present")
		}
		return 1, nil
	}

	if e.config.Logger != nil {
		e.config.Logger.Warn(ctx, "admin account step failed; continuing", "error", err)
	}
	return 1, err
}
