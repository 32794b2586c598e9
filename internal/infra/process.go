package infra

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// ProcessManagerImpl implements domain.ProcessManager using gopsutil.
type ProcessManagerImpl struct{}

// NewProcessManager creates a new process manager.
func NewProcessManager() domain.ProcessManager {
	return &ProcessManagerImpl{}
}

// IsProcessRunning reports whether a process with the exact name exists.
func (pm *ProcessManagerImpl) IsProcessRunning(name string) bool {
	procs, err := process.Processes()
	if err != nil {
		return false
	}

	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue // Process may have exited
		}
		if pname == name {
			return true
		}
	}

	return false
}

// FindByName returns PIDs of processes whose name matches exactly. The
// current process is excluded so that cleanup never kills the manager itself.
func (pm *ProcessManagerImpl) FindByName(name string) ([]int, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	currentPID := os.Getpid()

	var found []int
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue
		}
		if pname == name && int(p.Pid) != currentPID {
			found = append(found, int(p.Pid))
		}
	}

	return found, nil
}

// Kill terminates a process by PID.
func (pm *ProcessManagerImpl) Kill(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return p.Kill()
}

// Ensure ProcessManagerImpl implements domain.ProcessManager.
var _ domain.ProcessManager = (*ProcessManagerImpl)(nil)
