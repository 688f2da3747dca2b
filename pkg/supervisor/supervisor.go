package supervisor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/plumstack/plum/pkg/log"
)

// ExitInfo describes how a child terminated.
type ExitInfo struct {
	// Code is the exit code, or -1 when the child was killed by a signal
	// or its status is unknowable (adopted children).
	Code int

	// Signaled reports whether a signal terminated the child.
	Signaled bool
}

// Healthy reports whether the termination counts as a clean exit.
func (e ExitInfo) Healthy() bool {
	return !e.Signaled && e.Code == 0
}

// Child is one supervised process. The child runs in its own session, so its
// process group id equals its pid and signals sent to -pid reach the whole
// subtree.
//
// A Child is owned by the reconciler goroutine; its methods are not safe for
// concurrent use.
type Child struct {
	InstanceID string
	PID        int
	StartedAt  time.Time

	termSentAt time.Time

	// Owned children carry the exec handle and a wait goroutine; adopted
	// children (re-attached after an agent restart) have neither and are
	// probed via signal 0.
	cmd    *exec.Cmd
	doneCh chan struct{}
	exit   ExitInfo

	logger zerolog.Logger
}

// Spawn launches cmdLine inside appDir through a shell so the command may
// contain shell constructs. An empty cmdLine (after stripping leading
// whitespace and commas, which controllers have been seen to emit) runs
// ./start.sh. PLUM_INSTANCE_ID is always injected; extraEnv entries are
// appended verbatim.
func Spawn(instanceID, appDir, cmdLine string, extraEnv []string) (*Child, error) {
	cmdline := strings.TrimLeft(cmdLine, " \t\r\n,")
	if cmdline == "" {
		cmdline = "./start.sh"
	}

	cmd := exec.Command("/bin/sh", "-c", cmdline)
	cmd.Dir = appDir
	cmd.Env = append(os.Environ(), "PLUM_INSTANCE_ID="+instanceID)
	cmd.Env = append(cmd.Env, extraEnv...)
	// New session: the shell's pgid equals its pid, and kill(-pid)
	// reaches every descendant. Exec failure in the shell exits 127.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", instanceID, err)
	}

	c := &Child{
		InstanceID: instanceID,
		PID:        cmd.Process.Pid,
		StartedAt:  time.Now(),
		cmd:        cmd,
		doneCh:     make(chan struct{}),
		logger:     log.WithInstanceID(instanceID),
	}

	go func() {
		err := cmd.Wait()
		c.exit = classifyExit(err, cmd)
		close(c.doneCh)
	}()

	c.logger.Info().Int("pid", c.PID).Str("cmd", cmdline).Msg("spawned instance")
	return c, nil
}

// Alive reports whether the child has not yet terminated.
func (c *Child) Alive() bool {
	if c.cmd == nil {
		return syscall.Kill(c.PID, 0) == nil
	}
	select {
	case <-c.doneCh:
		return false
	default:
		return true
	}
}

// TryReap collects the child's exit status without blocking. The second
// return is false while the child is still running. For adopted children the
// exit status is unknowable and reported as code -1.
func (c *Child) TryReap() (ExitInfo, bool) {
	if c.cmd == nil {
		if syscall.Kill(c.PID, 0) == nil {
			return ExitInfo{}, false
		}
		return ExitInfo{Code: -1}, true
	}
	select {
	case <-c.doneCh:
		return c.exit, true
	default:
		return ExitInfo{}, false
	}
}

// SignalStop sends SIGTERM to the child's process group and records the send
// time. Repeated calls do not reset the clock: escalation only moves
// forward.
func (c *Child) SignalStop() {
	if !c.termSentAt.IsZero() {
		return
	}
	c.termSentAt = time.Now()
	if err := syscall.Kill(-c.PID, syscall.SIGTERM); err != nil && err != syscall.ESRCH {
		c.logger.Warn().Err(err).Int("pgid", c.PID).Msg("SIGTERM failed")
	}
}

// Kill sends SIGKILL to the child's process group.
func (c *Child) Kill() {
	if err := syscall.Kill(-c.PID, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		c.logger.Warn().Err(err).Int("pgid", c.PID).Msg("SIGKILL failed")
	}
}

// TermSentAt returns when SIGTERM was first sent, or the zero time.
func (c *Child) TermSentAt() time.Time {
	return c.termSentAt
}

// Stopping reports whether a termination signal has been issued.
func (c *Child) Stopping() bool {
	return !c.termSentAt.IsZero()
}

func classifyExit(err error, cmd *exec.Cmd) ExitInfo {
	if err == nil {
		return ExitInfo{Code: 0}
	}
	if cmd.ProcessState == nil {
		return ExitInfo{Code: -1}
	}
	if ws, ok := cmd.ProcessState.Sys().(syscall.WaitStatus); ok {
		if ws.Signaled() {
			return ExitInfo{Code: -1, Signaled: true}
		}
		return ExitInfo{Code: ws.ExitStatus()}
	}
	return ExitInfo{Code: -1}
}
