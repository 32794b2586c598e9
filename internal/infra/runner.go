package infra

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// ExecRunner implements domain.CommandRunner using os/exec.
type ExecRunner struct{}

// NewCommandRunner creates a runner backed by the real system.
func NewCommandRunner() domain.CommandRunner {
	return &ExecRunner{}
}

// Output runs a command and returns its stdout.
func (r *ExecRunner) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("command %s failed: %w", name, err)
	}
	return string(out), nil
}

// Spawn starts a command detached from the current process. The spawned
// process gets its own session so it survives the manager exiting, and no
// stdio is attached.
func (r *ExecRunner) Spawn(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true, // Detach from terminal
	}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	return cmd.Start()
}

// Ensure ExecRunner implements domain.CommandRunner.
var _ domain.CommandRunner = (*ExecRunner)(nil)
