package media

import (
	"context"
	"os"
	"path/filepath"

	"github.com/getpup/deploy-bootstrap"
)

// Subdirs are the fixed subdirectories created under the media root.
var Subdirs = []string{"profiles", "uploads", "events"}

// Config holds configuration for the media Provisioner.
type Config struct {
	// VolumePath is the platform-provided persistent mount (default: "/data").
	// When it exists, media lives under it and survives restarts.
	VolumePath string

	// LocalPath is the ephemeral fallback root (default: "media").
	LocalPath string

	// Mode is the permission mode for created directories (default: 0o755).
	Mode os.FileMode

	// Logger is for observability (optional).
	Logger bootstrap.Logger
}

// Provisioner ensures a writable media directory tree exists, preferring a
// mounted persistent volume over ephemeral local storage.
type Provisioner struct {
	config Config
	root   string
}

// Compile-time check that Provisioner implements Step.
var _ bootstrap.Step = (*Provisioner)(nil)

// New creates a new Provisioner with the given configuration.
// Applies default values for VolumePath, LocalPath and Mode if zero.
func New(cfg Config) *Provisioner {
	if cfg.VolumePath == "" {
		cfg.VolumePath = "/data"
	}
	if cfg.LocalPath == "" {
		cfg.LocalPath = "media"
	}
	if cfg.Mode == 0 {
		cfg.Mode = 0o755
	}

	return &Provisioner{
		config: cfg,
	}
}

// Name returns the step identifier.
func (p *Provisioner) Name() bootstrap.StepName {
	return bootstrap.StepMedia
}

// Policy returns the failure policy. Directory creation is tolerated: the
// directories may already exist or permissions may differ across environments.
func (p *Provisioner) Policy() bootstrap.FailurePolicy {
	return bootstrap.PolicyTolerate
}

// Run selects the media root and creates it plus the fixed subdirectories.
// Each creation failure is logged and ignored; the step never errors.
func (p *Provisioner) Run(ctx context.Context) (int, error) {
	p.root = p.selectRoot(ctx)

	for _, sub := range Subdirs {
		dir := filepath.Join(p.root, sub)
		if err := os.MkdirAll(dir, p.config.Mode); err != nil {
			if p.config.Logger != nil {
				p.config.Logger.Warn(ctx, "could not create media directory", "dir", dir, "error", err)
			}
			continue
		}
		if p.config.Logger != nil {
			p.config.Logger.Debug(ctx, "media directory ready", "dir", dir)
		}
	}

	return 1, nil
}

// Root returns the media root chosen by the last Run. Empty before Run.
func (p *Provisioner) Root() string {
	return p.root
}

// selectRoot prefers the persistent volume when its mount point is a
// directory, falling back to ephemeral local storage.
func (p *Provisioner) selectRoot(ctx context.Context) string {
	info, err := os.Stat(p.config.VolumePath)
	if err == nil && info.IsDir() {
		root := filepath.Join(p.config.VolumePath, "media")
		if p.config.Logger != nil {
			p.config.Logger.Info(ctx, "using persistent media root", "root", root)
		}
		return root
	}

	if p.config.Logger != nil {
		p.config.Logger.Info(ctx, "volume not mounted, using local media root",
			"volume", p.config.VolumePath,
			"root", p.config.LocalPath)
	}
	return p.config.LocalPath
}
