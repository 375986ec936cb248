package ssh

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	sigInt  = 2
	sigKill = 9
)

var _ ports.SignalOperation = (*SignalOperation)(nil)

// SignalOperation signals remote processes by running kill commands.
type SignalOperation struct {
	pool   *Pool
	params domain.SSHParameters
}

// NewSignalOperation creates a signal operation for the device behind params.
func NewSignalOperation(pool *Pool, params domain.SSHParameters) *SignalOperation {
	return &SignalOperation{pool: pool, params: params}
}

// InterruptProcess sends SIGINT to pid.
func (s *SignalOperation) InterruptProcess(ctx context.Context, pid int) error {
	return s.run(ctx, fmt.Sprintf("kill -%d %d", sigInt, pid))
}

// InterruptProcessByName sends SIGINT to every process running the executable.
func (s *SignalOperation) InterruptProcessByName(ctx context.Context, name string) error {
	return s.run(ctx, byNameCommand(sigInt, name))
}

// KillProcess sends SIGKILL to pid.
func (s *SignalOperation) KillProcess(ctx context.Context, pid int) error {
	return s.run(ctx, fmt.Sprintf("kill -%d %d", sigKill, pid))
}

// KillProcessByName sends SIGKILL to every process running the executable.
func (s *SignalOperation) KillProcessByName(ctx context.Context, name string) error {
	return s.run(ctx, byNameCommand(sigKill, name))
}

func byNameCommand(sig int, name string) string {
	return fmt.Sprintf("pkill -%d -x %s", sig, ShellQuote(path.Base(name)))
}

func (s *SignalOperation) run(ctx context.Context, cmd string) error {
	conn, err := s.pool.Acquire(ctx, s.params)
	if err != nil {
		return err
	}
	defer s.pool.Release(conn)

	session, err := conn.NewSession()
	if err != nil {
		return zerr.Wrap(err, domain.ErrSSHConnectFailed.Error())
	}
	defer func() { _ = session.Close() }()

	var stderr bytes.Buffer
	session.SetStderr(&stderr)
	if err := session.Start(cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to send signal"), "command", cmd)
	}

	done := make(chan error, 1)
	go func() { done <- session.Wait() }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return zerr.With(zerr.New(msg), "command", cmd)
			}
			return zerr.With(zerr.Wrap(err, "failed to send signal"), "command", cmd)
		}
		return nil
	}
}
