//go:build unix

package execproc

import (
	"fmt"
	"os/exec"
	"syscall"
)

// Replace swaps the current process image for the named program. On success
// it never returns: the caller's process becomes the server process, ending
// any supervisory relationship.
func Replace(name string, args []string, env []string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("locate %s: %w", name, err)
	}

	argv := append([]string{name}, args...)
	if err := syscall.Exec(path, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
