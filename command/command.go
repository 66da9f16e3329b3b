package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/getpup/deploy-bootstrap"
)

// Config configures the management CLI commander.
type Config struct {
	// Python is the interpreter used to run the management script
	// (default: "python").
	Python string

	// ManagePath is the path to the management script (default: "manage.py").
	ManagePath string

	// Dir is the working directory for invocations. Empty means the current
	// directory.
	Dir string

	// Env is extra environment entries appended to the inherited environment,
	// in "KEY=value" form.
	Env []string

	// Logger is an optional logger for observability.
	Logger bootstrap.Logger
}

// CLI is the os/exec implementation of Commander.
type CLI struct {
	config Config
}

// Compile-time check that CLI implements Commander.
var _ Commander = (*CLI)(nil)

// New creates a new CLI commander with the given configuration.
// It applies default values for Python and ManagePath if empty.
func New(cfg Config) *CLI {
	if cfg.Python == "" {
		cfg.Python = "python"
	}
	if cfg.ManagePath == "" {
		cfg.ManagePath = "manage.py"
	}

	return &CLI{
		config: cfg,
	}
}

// Manage runs a management command and returns its combined output.
// The output is returned even on failure so callers can inspect it.
func (c *CLI) Manage(ctx context.Context, args ...string) ([]byte, error) {
	argv := append([]string{c.config.ManagePath}, args...)
	out, err := c.run(ctx, c.config.Python, argv...)
	if err != nil {
		return out, fmt.Errorf("manage %v: %w", args, err)
	}
	return out, nil
}

// System runs an arbitrary executable and returns its combined output.
func (c *CLI) System(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := c.run(ctx, name, args...)
	if err != nil {
		return out, fmt.Errorf("%s %v: %w", name, args, err)
	}
	return out, nil
}

func (c *CLI) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = c.config.Dir
	if len(c.config.Env) > 0 {
		cmd.Env = append(os.Environ(), c.config.Env...)
	}

	if c.config.Logger != nil {
		c.config.Logger.Debug(ctx, "running command", "name", name, "args", args)
	}

	out, err := cmd.CombinedOutput()

	if err != nil && c.config.Logger != nil {
		c.config.Logger.Debug(ctx, "command failed", "name", name, "args", args, "error", err)
	}

	return out, err
}
