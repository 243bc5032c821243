// Package launcher starts the Windows file browser on a translated path.
package launcher

import (
	"fmt"
	"os/exec"

	"github.com/tenagusami-ms/exp/internal/logging"
	"github.com/tenagusami-ms/exp/internal/types"
)

// Launcher invokes explorer.exe through WSL interop
type Launcher struct {
	explorerPath string
	logger       *logging.Logger
}

// New creates a new Launcher
func New(explorerPath string, logger *logging.Logger) *Launcher {
	return &Launcher{explorerPath: explorerPath, logger: logger}
}

// Open launches explorer.exe with target as its single argument.
//
// The launch is fire and forget: explorer.exe detaches into the existing
// Explorer session, so the child's exit code and output carry no signal and
// are not inspected.
func (l *Launcher) Open(target string) error {
	l.logger.Debug("Running: %s %q", l.explorerPath, target)

	cmd := exec.Command(l.explorerPath, target)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrLaunchFailed, l.explorerPath, err)
	}
	if err := cmd.Process.Release(); err != nil {
		l.logger.Debug("Failed to release explorer process: %v", err)
	}
	return nil
}
