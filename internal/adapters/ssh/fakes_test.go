package ssh_test

import (
	"context"
	"io"
	"net"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/adapters/ssh"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

type fakeSession struct {
	mu       sync.Mutex
	cmd      string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	startErr error

	started chan struct{}
	exit    chan error
	closed  chan struct{}
	once    sync.Once
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		started: make(chan struct{}),
		exit:    make(chan error, 1),
		closed:  make(chan struct{}),
	}
}

func (s *fakeSession) SetStdin(r io.Reader) { s.stdin = r }
func (s *fakeSession) SetStdout(w io.Writer) { s.stdout = w }
func (s *fakeSession) SetStderr(w io.Writer) { s.stderr = w }

func (s *fakeSession) Start(cmd string) error {
	s.mu.Lock()
	s.cmd = cmd
	s.mu.Unlock()
	if s.startErr == nil {
		close(s.started)
	}
	return s.startErr
}

func (s *fakeSession) Wait() error {
	select {
	case err := <-s.exit:
		return err
	case <-s.closed:
		return io.EOF
	}
}

func (s *fakeSession) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}

func (s *fakeSession) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

type fakeClient struct {
	sessions chan *fakeSession
	next     func() *fakeSession
	closed   chan struct{}
	once     sync.Once
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		sessions: make(chan *fakeSession, 16),
		next:     newFakeSession,
		closed:   make(chan struct{}),
	}
}

func (c *fakeClient) NewSession() (ssh.Session, error) {
	s := c.next()
	c.sessions <- s
	return s, nil
}

func (c *fakeClient) DialContext(_ context.Context, _, _ string) (net.Conn, error) {
	local, remote := net.Pipe()
	go func() {
		<-c.closed
		_ = remote.Close()
	}()
	return local, nil
}

func (c *fakeClient) Wait() error {
	<-c.closed
	return nil
}

func (c *fakeClient) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeClient) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// dialer hands out fresh fake clients and records them.
type dialer struct {
	mu         sync.Mutex
	clients    []*fakeClient
	err        error
	gate       chan struct{}
	newSession func() *fakeSession
}

func (d *dialer) dial(ctx context.Context, _ domain.SSHParameters) (ssh.Client, error) {
	if d.gate != nil {
		select {
		case <-d.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	c := newFakeClient()
	if d.newSession != nil {
		c.next = d.newSession
	}
	d.clients = append(d.clients, c)
	return c, nil
}

func (d *dialer) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.clients)
}

func (d *dialer) client(i int) *fakeClient {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clients[i]
}
