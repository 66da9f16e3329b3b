//go:build !unix

package execproc

import (
	"fmt"

	"github.com/getpup/deploy-bootstrap"
)

// Replace is unavailable off unix: there is no way to atomically swap the
// process image, and spawning a child would keep this process alive as an
// unintended supervisor.
func Replace(name string, args []string, env []string) error {
	return fmt.Errorf("%w: cannot exec %s", bootstrap.ErrExecUnsupported, name)
}
