package device

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SignalOperation = (*LocalSignalOperation)(nil)

// LocalSignalOperation signals processes of the local machine.
type LocalSignalOperation struct{}

// InterruptProcess sends an interrupt to pid. Windows cannot deliver an
// interrupt to another process, so the process is killed there.
func (s *LocalSignalOperation) InterruptProcess(ctx context.Context, pid int) error {
	if runtime.GOOS == "windows" {
		return s.KillProcess(ctx, pid)
	}
	return signalPID(pid, os.Interrupt)
}

// InterruptProcessByName interrupts every process running the executable.
func (s *LocalSignalOperation) InterruptProcessByName(ctx context.Context, name string) error {
	if runtime.GOOS == "windows" {
		return s.KillProcessByName(ctx, name)
	}
	return runSignalCommand(ctx, "pkill", "-INT", "-x", filepath.Base(name))
}

// KillProcess kills pid.
func (s *LocalSignalOperation) KillProcess(_ context.Context, pid int) error {
	return signalPID(pid, os.Kill)
}

// KillProcessByName kills every process running the executable.
func (s *LocalSignalOperation) KillProcessByName(ctx context.Context, name string) error {
	if runtime.GOOS == "windows" {
		return runSignalCommand(ctx, "taskkill", "/F", "/IM", filepath.Base(name))
	}
	return runSignalCommand(ctx, "pkill", "-KILL", "-x", filepath.Base(name))
}

func signalPID(pid int, sig os.Signal) error {
	proc, err := os.FindProcess(pid)
	if err == nil {
		err = proc.Signal(sig)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSignalFailed.Error()), "pid", pid)
	}
	return nil
}

func runSignalCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err == nil {
		return nil
	}
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrSignalFailed.Error()), "command", name)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
	}
	if msg := strings.TrimSpace(string(out)); msg != "" {
		wrapped = zerr.With(wrapped, "output", msg)
	}
	return wrapped
}
