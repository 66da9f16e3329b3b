package i18n

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getpup/deploy-bootstrap"
	"github.com/getpup/deploy-bootstrap/command"
)

// Config holds configuration for the translation Compiler.
type Config struct {
	// Commander invokes the management CLI and the fallback tool (required).
	Commander command.Commander

	// LocaleDir is the root of the per-locale catalog tree (default: "locale").
	// Layout: <LocaleDir>/<locale>/LC_MESSAGES/*.po with compiled .mo files
	// alongside.
	LocaleDir string

	// FallbackTool compiles a single catalog when the primary compiler fails
	// (default: "msgfmt").
	FallbackTool string

	// Logger is for observability (optional).
	Logger bootstrap.Logger
}

// Compiler ensures every locale has compiled message catalogs. Unlike the
// data-state steps, missing translations are a release-blocking defect:
// if both the primary compiler and the fallback fail, the deployment aborts.
type Compiler struct {
	config Config
}

// Compile-time check that Compiler implements Step.
var _ bootstrap.Step = (*Compiler)(nil)

// New creates a new Compiler with the given configuration.
// Applies default values for LocaleDir and FallbackTool if empty.
func New(cfg Config) *Compiler {
	if cfg.LocaleDir == "" {
		cfg.LocaleDir = "locale"
	}
	if cfg.FallbackTool == "" {
		cfg.FallbackTool = "msgfmt"
	}

	return &Compiler{
		config: cfg,
	}
}

// Name returns the step identifier.
func (c *Compiler) Name() bootstrap.StepName {
	return bootstrap.StepTranslations
}

// Policy returns the failure policy. Translation failures abort the deployment.
func (c *Compiler) Policy() bootstrap.FailurePolicy {
	return bootstrap.PolicyFatal
}

// Run checks whether compiled catalogs exist for every source catalog found.
// If any are missing it runs the primary compiler, then the fallback tool for
// whatever is still missing, and finally re-verifies. Still-missing catalogs
// return ErrCatalogsMissing.
func (c *Compiler) Run(ctx context.Context) (int, error) {
	missing, err := c.MissingCatalogs()
	if err != nil {
		return 1, err
	}
	if len(missing) == 0 {
		if c.config.Logger != nil {
			c.config.Logger.Info(ctx, "message catalogs already compiled", "localeDir", c.config.LocaleDir)
		}
		return 1, nil
	}

	if c.config.Logger != nil {
		c.config.Logger.Info(ctx, "compiling message catalogs", "missing", len(missing))
	}

	if _, err := c.config.Commander.Manage(ctx, "compilemessages"); err != nil {
		if c.config.Logger != nil {
			c.config.Logger.Warn(ctx, "primary catalog compiler failed, trying fallback", "error", err)
		}
		if err := c.compileFallback(ctx, missing); err != nil {
			return 1, err
		}
	}

	missing, err = c.MissingCatalogs()
	if err != nil {
		return 1, err
	}
	if len(missing) > 0 {
		return 1, fmt.Errorf("%w: %s", bootstrap.ErrCatalogsMissing, strings.Join(missing, ", "))
	}

	if c.config.Logger != nil {
		c.config.Logger.Info(ctx, "message catalogs compiled", "localeDir", c.config.LocaleDir)
	}
	return 1, nil
}

// compileFallback compiles each missing source catalog individually with the
// fallback tool. Any failure is fatal.
func (c *Compiler) compileFallback(ctx context.Context, sources []string) error {
	for _, po := range sources {
		mo := strings.TrimSuffix(po, filepath.Ext(po)) + ".mo"
		if _, err := c.config.Commander.System(ctx, c.config.FallbackTool, "-o", mo, po); err != nil {
			return fmt.Errorf("fallback compile %s: %w", po, err)
		}
	}
	return nil
}

// MissingCatalogs returns the source catalogs under the locale tree that have
// no compiled counterpart alongside them. A locale tree that does not exist
// yields an empty result: an application without translations has nothing to
// compile.
func (c *Compiler) MissingCatalogs() ([]string, error) {
	locales, err := os.ReadDir(c.config.LocaleDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read locale dir: %w", err)
	}

	var missing []string
	for _, locale := range locales {
		if !locale.IsDir() {
			continue
		}

		pattern := filepath.Join(c.config.LocaleDir, locale.Name(), "LC_MESSAGES", "*.po")
		sources, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("scan locale %s: %w", locale.Name(), err)
		}

		for _, po := range sources {
			mo := strings.TrimSuffix(po, filepath.Ext(po)) + ".mo"
			if _, err := os.Stat(mo); err != nil {
				missing = append(missing, po)
			}
		}
	}

	return missing, nil
}
