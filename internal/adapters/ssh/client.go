// Package ssh runs processes on remote devices over pooled SSH connections.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/user"
	"path/filepath"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Client is an established transport to a remote host.
type Client interface {
	NewSession() (Session, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
	// Wait blocks until the transport is closed.
	Wait() error
	Close() error
}

// Session runs a single remote command.
type Session interface {
	SetStdin(r io.Reader)
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	Start(cmd string) error
	// Wait blocks until the command exits. A command that did not exit with
	// status zero is reported as *ExitError.
	Wait() error
	Close() error
}

// ExitError describes a remote command that exited unsuccessfully.
type ExitError struct {
	Code int
	// Signal is the name of the signal that ended the command, if any.
	Signal string
}

func (e *ExitError) Error() string {
	if e.Signal != "" {
		return fmt.Sprintf("remote command killed by signal %s", e.Signal)
	}
	return fmt.Sprintf("remote command exited with status %d", e.Code)
}

// DialFunc opens a new transport for params.
type DialFunc func(ctx context.Context, params domain.SSHParameters) (Client, error)

// Dial connects to the host of params using its key file or the running agent.
func Dial(ctx context.Context, params domain.SSHParameters) (Client, error) {
	auth, err := authMethods(params)
	if err != nil {
		return nil, err
	}

	name := params.User
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}

	cfg := &ssh.ClientConfig{
		User:            name,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback(),
		Timeout:         params.Timeout,
	}

	dialer := net.Dialer{Timeout: params.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", params.Address())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSSHConnectFailed.Error()), "host", params.String())
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, params.Address(), cfg)
	if err != nil {
		_ = conn.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSSHConnectFailed.Error()), "host", params.String())
	}
	return &sshClient{c: ssh.NewClient(c, chans, reqs)}, nil
}

func authMethods(params domain.SSHParameters) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod
	if params.KeyFile != "" {
		// #nosec G304 -- key file is configured by the user
		pem, err := os.ReadFile(params.KeyFile)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSSHKeyReadFailed.Error()), "key_file", params.KeyFile)
		}
		signer, err := ssh.ParsePrivateKey(pem)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSSHKeyReadFailed.Error()), "key_file", params.KeyFile)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}
	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		if conn, err := net.Dial("unix", sock); err == nil {
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		}
	}
	return methods, nil
}

func hostKeyCallback() ssh.HostKeyCallback {
	if home, err := os.UserHomeDir(); err == nil {
		if cb, err := knownhosts.New(filepath.Join(home, ".ssh", "known_hosts")); err == nil {
			return cb
		}
	}
	return ssh.InsecureIgnoreHostKey() //nolint:gosec // devices without known_hosts entries are common during bring-up
}

type sshClient struct {
	c *ssh.Client
}

func (s *sshClient) NewSession() (Session, error) {
	sess, err := s.c.NewSession()
	if err != nil {
		return nil, err
	}
	return &sshSession{Session: sess}, nil
}

func (s *sshClient) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return s.c.DialContext(ctx, network, addr)
}

func (s *sshClient) Wait() error { return s.c.Wait() }

func (s *sshClient) Close() error { return s.c.Close() }

type sshSession struct {
	*ssh.Session
}

func (s *sshSession) SetStdin(r io.Reader) { s.Stdin = r }

func (s *sshSession) SetStdout(w io.Writer) { s.Stdout = w }

func (s *sshSession) SetStderr(w io.Writer) { s.Stderr = w }

func (s *sshSession) Wait() error {
	err := s.Session.Wait()
	var exitErr *ssh.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitStatus(), Signal: exitErr.Signal()}
	}
	return err
}
