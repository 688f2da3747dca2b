package supervisor

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/plumstack/plum/pkg/log"
)

// Adopt re-attaches to a process that survived an agent restart. The caller
// is expected to have verified ownership via VerifyInstancePID first. An
// adopted child has no wait handle: liveness is probed with signal 0 and its
// eventual exit status is unknowable.
func Adopt(instanceID string, pid int) *Child {
	return &Child{
		InstanceID: instanceID,
		PID:        pid,
		StartedAt:  time.Now(),
		logger:     log.WithInstanceID(instanceID),
	}
}

// VerifyInstancePID reports whether pid is alive and carries
// PLUM_INSTANCE_ID=instanceID in its environment. The environment check
// prevents adopting an unrelated process that reused the pid.
func VerifyInstancePID(instanceID string, pid int) bool {
	if pid <= 0 || syscall.Kill(pid, 0) != nil {
		return false
	}
	environ, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "environ"))
	if err != nil {
		return false
	}
	key := []byte("PLUM_INSTANCE_ID=" + instanceID + "\x00")
	return bytes.Contains(environ, key)
}

// FindInstancePID scans /proc for a live process whose environment carries
// PLUM_INSTANCE_ID=instanceID. Returns 0 when none is found.
func FindInstancePID(instanceID string) int {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return 0
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}
		if VerifyInstancePID(instanceID, pid) {
			return pid
		}
	}
	return 0
}
