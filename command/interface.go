package command

import "context"

// Commander invokes the web framework's management CLI and auxiliary tools.
// This interface allows for mock implementations in tests.
type Commander interface {
	// Manage runs a management command (for example "migrate" or
	// "collectstatic") and returns its combined stdout/stderr. The returned
	// output is valid even when err is non-nil; callers inspect it for known
	// failure signatures.
	Manage(ctx context.Context, args ...string) ([]byte, error)

	// System runs an arbitrary executable resolved from PATH and returns its
	// combined stdout/stderr.
	System(ctx context.Context, name string, args ...string) ([]byte, error)
}
