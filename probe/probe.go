package probe

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	// Drivers for the URL schemes the probe understands.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/getpup/deploy-bootstrap"
)

// Config holds configuration for the connectivity Prober.
type Config struct {
	// DatabaseURL is the database location, scheme-selected driver (required).
	// Supported schemes: postgres, postgresql, mysql, sqlite, sqlite3.
	DatabaseURL string

	// Timeout bounds the reachability check (default: 5s).
	Timeout time.Duration

	// Logger is for observability (optional).
	Logger bootstrap.Logger
}

// Prober performs a best-effort database reachability check.
// Failure is logged, not fatal: the migration step has its own retry budget.
type Prober struct {
	config Config
}

// Compile-time check that Prober implements Step.
var _ bootstrap.Step = (*Prober)(nil)

// New creates a new Prober with the given configuration.
// Applies a default Timeout if zero.
func New(cfg Config) *Prober {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &Prober{
		config: cfg,
	}
}

// Name returns the step identifier.
func (p *Prober) Name() bootstrap.StepName {
	return bootstrap.StepProbe
}

// Policy returns the failure policy. Probe failures are tolerated.
func (p *Prober) Policy() bootstrap.FailurePolicy {
	return bootstrap.PolicyTolerate
}

// Run opens a connection for the configured URL and pings it once within the
// timeout.
func (p *Prober) Run(ctx context.Context) (int, error) {
	driver, dsn, err := ParseURL(p.config.DatabaseURL)
	if err != nil {
		return 1, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return 1, fmt.Errorf("open %s database: %w", driver, err)
	}
	defer func() { _ = db.Close() }()

	pingCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		if p.config.Logger != nil {
			p.config.Logger.Warn(ctx, "database unreachable", "driver", driver, "error", err)
		}
		return 1, fmt.Errorf("ping %s database: %w", driver, err)
	}

	if p.config.Logger != nil {
		p.config.Logger.Info(ctx, "database reachable", "driver", driver)
	}
	return 1, nil
}

// ParseURL maps a database URL onto a registered driver name and its DSN.
// Postgres URLs pass through unchanged (lib/pq accepts URL form); MySQL URLs
// are converted to the driver's own DSN syntax; SQLite URLs reduce to a file
// path.
func ParseURL(raw string) (driver, dsn string, err error) {
	if raw == "" {
		return "", "", fmt.Errorf("database URL is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse database URL: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		return "postgres", raw, nil
	case "mysql":
		return "mysql", mysqlDSN(u), nil
	case "sqlite", "sqlite3":
		return "sqlite3", sqlitePath(u), nil
	default:
		return "", "", fmt.Errorf("unsupported database URL scheme %q", u.Scheme)
	}
}

// mysqlDSN converts a mysql:// URL into go-sql-driver DSN form:
// user:password@tcp(host:port)/dbname?params
func mysqlDSN(u *url.URL) string {
	var b strings.Builder

	if u.User != nil {
		b.WriteString(u.User.Username())
		if pass, ok := u.User.Password(); ok {
			b.WriteString(":")
			b.WriteString(pass)
		}
		b.WriteString("@")
	}

	host := u.Host
	if u.Port() == "" {
		host += ":3306"
	}
	fmt.Fprintf(&b, "tcp(%s)/%s", host, strings.TrimPrefix(u.Path, "/"))

	if u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}

	return b.String()
}

// sqlitePath extracts the file path from sqlite:///path/to/db.sqlite3 or
// sqlite3:relative/path forms.
func sqlitePath(u *url.URL) string {
	if u.Opaque != "" {
		return u.Opaque
	}
	if u.Host != "" {
		// sqlite://relative/path parses the first segment as a host.
		return u.Host + u.Path
	}
	return u.Path
}
