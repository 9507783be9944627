//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another controller process is found.
var ErrAlreadyRunning = errors.New("another controller instance is running")

// EnsureSingleInstance fails when another process runs the same executable,
// because two control loops would fight over the relays.
func EnsureSingleInstance() error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("detect executable: %w", err)
	}

	return ensureSingleInstance(filepath.Base(executable), os.Getpid())
}

// ensureSingleInstance looks for processes named name other than self.
func ensureSingleInstance(name string, self int) error {
	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	for _, process := range processList {
		if process.Pid() == self || !sameExecutable(name, process.Executable()) {
			continue
		}

		return fmt.Errorf("%w: pid %d", ErrAlreadyRunning, process.Pid())
	}

	return nil
}

// commLength is the kernel limit on process names reported through /proc.
const commLength = 15

// sameExecutable compares an executable name with a possibly truncated process name.
func sameExecutable(name, candidate string) bool {
	if candidate == name {
		return true
	}

	return len(candidate) == commLength && strings.HasPrefix(name, candidate)
}
