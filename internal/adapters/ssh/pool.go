package ssh

import (
	"context"
	"net"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-co-op/gocron/v2"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

// idleTicksBeforeClose is the number of reaper ticks an unused connection survives.
const idleTicksBeforeClose = 2

// Connection is a shared, reference-counted transport.
type Connection struct {
	pool   *Pool
	key    uint64
	params domain.SSHParameters
	client Client
	done   chan struct{}

	// Guarded by pool.mu.
	refs      int
	idleTicks int
	stale     bool
	dead      bool

	closeOnce sync.Once
}

// Params returns the parameters the connection was opened with.
func (c *Connection) Params() domain.SSHParameters { return c.params }

// NewSession opens a command session on the connection.
func (c *Connection) NewSession() (Session, error) { return c.client.NewSession() }

// DialContext opens a tunnelled connection to addr as seen from the remote host.
func (c *Connection) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return c.client.DialContext(ctx, network, addr)
}

// Done is closed when the transport is gone.
func (c *Connection) Done() <-chan struct{} { return c.done }

func (c *Connection) close() {
	c.closeOnce.Do(func() { _ = c.client.Close() })
}

// Pool shares connections between processes using the same SSH parameters.
type Pool struct {
	dial   DialFunc
	logger ports.Logger

	mu     sync.Mutex
	conns  map[uint64][]*Connection
	closed bool

	scheduler gocron.Scheduler
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithDialer replaces the function used to open transports.
func WithDialer(dial DialFunc) PoolOption {
	return func(p *Pool) { p.dial = dial }
}

// NewPool creates a pool. Unused connections are closed once they stayed idle
// for two runs of a reaper job scheduled every sharingTimeout/2. A zero
// sharingTimeout disables the reaper.
func NewPool(logger ports.Logger, sharingTimeout time.Duration, opts ...PoolOption) (*Pool, error) {
	p := &Pool{
		dial:   Dial,
		logger: logger,
		conns:  make(map[uint64][]*Connection),
	}
	for _, opt := range opts {
		opt(p)
	}

	if sharingTimeout > 0 {
		s, err := gocron.NewScheduler()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to create connection reaper")
		}
		if _, err := s.NewJob(
			gocron.DurationJob(sharingTimeout/idleTicksBeforeClose),
			gocron.NewTask(p.reap),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			return nil, zerr.Wrap(err, "failed to schedule connection reaper")
		}
		s.Start()
		p.scheduler = s
	}
	return p, nil
}

func poolKey(params domain.SSHParameters) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(params.Host)
	_, _ = h.WriteString("\x00" + strconv.Itoa(params.Port))
	_, _ = h.WriteString("\x00" + params.User)
	_, _ = h.WriteString("\x00" + params.KeyFile)
	_, _ = h.WriteString("\x00" + params.Timeout.String())
	return h.Sum64()
}

// Acquire returns a shared connection for params, opening one when needed.
// Every successful Acquire must be paired with a Release.
func (p *Pool) Acquire(ctx context.Context, params domain.SSHParameters) (*Connection, error) {
	key := poolKey(params)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, domain.ErrPoolClosed
	}
	for _, c := range p.conns[key] {
		if !c.stale && !c.dead {
			c.refs++
			c.idleTicks = 0
			p.mu.Unlock()
			return c, nil
		}
	}
	p.mu.Unlock()

	client, err := p.dial(ctx, params)
	if err != nil {
		return nil, err
	}

	c := &Connection{
		pool:   p,
		key:    key,
		params: params,
		client: client,
		done:   make(chan struct{}),
		refs:   1,
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		c.close()
		return nil, domain.ErrPoolClosed
	}
	p.conns[key] = append(p.conns[key], c)
	p.mu.Unlock()

	go p.monitor(c)
	return c, nil
}

func (p *Pool) monitor(c *Connection) {
	_ = c.client.Wait()
	p.mu.Lock()
	c.dead = true
	p.removeLocked(c)
	p.mu.Unlock()
	close(c.done)
}

// Release gives a connection back. It stays open for reuse unless it was
// marked stale or its transport is gone.
func (p *Pool) Release(c *Connection) {
	if c == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if c.refs > 0 {
		c.refs--
	}
	if c.refs == 0 {
		c.idleTicks = 0
		if c.stale || c.dead || p.closed {
			p.removeLocked(c)
			c.close()
		}
	}
}

// ForceNewConnection makes the next Acquire for params open a new transport.
// Connections in use stay open until released.
func (p *Pool) ForceNewConnection(params domain.SSHParameters) {
	key := poolKey(params)

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range slices.Clone(p.conns[key]) {
		if c.refs == 0 {
			p.removeLocked(c)
			c.close()
		} else {
			c.stale = true
		}
	}
}

// DialContext opens a tunnelled connection through a pooled transport.
// The transport is released when the returned connection is closed.
func (p *Pool) DialContext(ctx context.Context, params domain.SSHParameters, network, addr string) (net.Conn, error) {
	c, err := p.Acquire(ctx, params)
	if err != nil {
		return nil, err
	}
	conn, err := c.DialContext(ctx, network, addr)
	if err != nil {
		p.Release(c)
		return nil, zerr.With(zerr.Wrap(err, "tunnel dial failed"), "addr", addr)
	}
	return &tunnelConn{Conn: conn, release: func() { p.Release(c) }}, nil
}

// Size returns the number of open connections.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, list := range p.conns {
		n += len(list)
	}
	return n
}

// Close shuts down the reaper and closes every connection.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	var all []*Connection
	for _, list := range p.conns {
		all = append(all, list...)
	}
	p.conns = make(map[uint64][]*Connection)
	p.mu.Unlock()

	for _, c := range all {
		c.close()
	}
	if p.scheduler != nil {
		return p.scheduler.Shutdown()
	}
	return nil
}

func (p *Pool) reap() {
	var victims []*Connection

	p.mu.Lock()
	for _, list := range p.conns {
		for _, c := range list {
			if c.refs > 0 {
				continue
			}
			c.idleTicks++
			if c.idleTicks >= idleTicksBeforeClose {
				victims = append(victims, c)
			}
		}
	}
	for _, c := range victims {
		p.removeLocked(c)
	}
	p.mu.Unlock()

	for _, c := range victims {
		if p.logger != nil {
			p.logger.Info("closing idle connection to " + c.params.String())
		}
		c.close()
	}
}

func (p *Pool) removeLocked(c *Connection) {
	list := p.conns[c.key]
	if i := slices.Index(list, c); i >= 0 {
		list = slices.Delete(list, i, i+1)
	}
	if len(list) == 0 {
		delete(p.conns, c.key)
	} else {
		p.conns[c.key] = list
	}
}

type tunnelConn struct {
	net.Conn
	once    sync.Once
	release func()
}

func (t *tunnelConn) Close() error {
	err := t.Conn.Close()
	t.once.Do(t.release)
	return err
}
