package static

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getpup/deploy-bootstrap"
	"github.com/getpup/deploy-bootstrap/command"
)

// Config holds configuration for the static asset Collector.
type Config struct {
	// Commander invokes the management CLI (required).
	Commander command.Commander

	// StaticRoot is the directory assets are collected into
	// (default: "staticfiles").
	StaticRoot string

	// VerifySubdir is a subdirectory expected to exist under StaticRoot after
	// collection (default: "admin").
	VerifySubdir string

	// Logger is for observability (optional).
	Logger bootstrap.Logger
}

// Collector gathers static files into the serving directory and verifies the
// result. Missing output is release-blocking: a deployment that cannot serve
// its assets must not start.
type Collector struct {
	config Config
}

// Compile-time check that Collector implements Step.
var _ bootstrap.Step = (*Collector)(nil)

// New creates a new Collector with the given configuration.
// Applies default values for StaticRoot and VerifySubdir if empty.
func New(cfg Config) *Collector {
	if cfg.StaticRoot == "" {
		cfg.StaticRoot = "staticfiles"
	}
	if cfg.VerifySubdir == "" {
		cfg.VerifySubdir = "admin"
	}

	return &Collector{
		config: cfg,
	}
}

// Name returns the step identifier.
func (c *Collector) Name() bootstrap.StepName {
	return bootstrap.StepStatic
}

// Policy returns the failure policy. Asset collection failures abort the
// deployment.
func (c *Collector) Policy() bootstrap.FailurePolicy {
	return bootstrap.PolicyFatal
}

// Run invokes the collection command, then checks that the expected output
// subdirectory exists.
func (c *Collector) Run(ctx context.Context) (int, error) {
	if _, err := c.config.Commander.Manage(ctx, "collectstatic", "--noinput"); err != nil {
		return 1, fmt.Errorf("collect static assets: %w", err)
	}

	if err := c.Verify(); err != nil {
		return 1, err
	}

	if c.config.Logger != nil {
		c.config.Logger.Info(ctx, "static assets collected", "root", c.config.StaticRoot)
	}
	return 1, nil
}

// Verify checks that the expected output subdirectory exists under the
// static root. Returns ErrStaticRootMissing when it does not.
func (c *Collector) Verify() error {
	if c.config.VerifySubdir == "" {
		return nil
	}

	dir := filepath.Join(c.config.StaticRoot, c.config.VerifySubdir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", bootstrap.ErrStaticRootMissing, dir)
	}
	return nil
}
