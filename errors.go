package bootstrap

import "errors"

var (
	// ErrCatalogsMissing indicates compiled message catalogs are still absent
	// after both the primary compiler and the fallback ran. This is
	// release-blocking: the deployment must abort.
	ErrCatalogsMissing = errors.New("compiled message catalogs missing")

	// ErrStaticRootMissing indicates the expected static output directory was
	// not present after collection. Release-blocking.
	ErrStaticRootMissing = errors.New("static output directory missing")

	// ErrSequenceAborted indicates a fatal step failed and the remaining
	// steps were skipped.
	ErrSequenceAborted = errors.New("bootstrap sequence aborted")

	// ErrExecUnsupported indicates process-image replacement is not available
	// on this platform.
	ErrExecUnsupported = errors.New("process exec not supported on this platform")
)
