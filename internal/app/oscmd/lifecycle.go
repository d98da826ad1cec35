package oscmd

//go:generate mockgen -source=lifecycle.go -destination=lifecycle_mock.go -package=oscmd

import (
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"procsig/internal/app/errors"
	"procsig/internal/config/logger"
)

// Lifecycle handles process group configuration and termination
type Lifecycle interface {
	Configure(cmd *exec.Cmd)
	Terminate(cmd *exec.Cmd, done <-chan struct{}, timeout time.Duration) error
}

type lifecycle struct {
	log logger.Logger
}

// NewLifecycle creates a new Lifecycle instance
func NewLifecycle(log logger.Logger) Lifecycle {
	return &lifecycle{log: log.WithComponent("LIFECYCLE")}
}

// Configure sets up a process group for the command so that termination
// signals reach the whole tree
func (l *lifecycle) Configure(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// Terminate gracefully stops a process and its group. done must close when
// the process has been reaped; Terminate returns once that has happened.
func (l *lifecycle) Terminate(cmd *exec.Cmd, done <-chan struct{}, timeout time.Duration) error {
	if cmd.Process == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	default:
	}

	pid := cmd.Process.Pid
	l.log.Info().Msgf("Stopping process (PID: %d)", pid)

	if err := l.signalGroup(pid, syscall.SIGTERM); err != nil {
		l.log.Warn().Err(err).Msg("Failed to send SIGTERM to process group, trying direct signal")

		if directErr := cmd.Process.Signal(syscall.SIGTERM); directErr != nil {
			l.log.Error().Err(directErr).Msgf("Failed to send SIGTERM to process %d", pid)

			return l.forceKill(cmd, done, pid)
		}
	}

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		l.log.Warn().Msgf("Process %d did not stop gracefully, forcing kill", pid)
		return l.forceKill(cmd, done, pid)
	}
}

func (l *lifecycle) signalGroup(pid int, sig syscall.Signal) error {
	return syscall.Kill(-pid, sig)
}

func (l *lifecycle) forceKill(cmd *exec.Cmd, done <-chan struct{}, pid int) error {
	if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil {
		l.log.Warn().Err(err).Msg("Failed to SIGKILL process group, trying direct kill")

		if killErr := cmd.Process.Kill(); killErr != nil {
			return fmt.Errorf("%w: %v", errors.ErrFailedToTerminateProcess, killErr)
		}
	}

	<-done

	return nil
}
