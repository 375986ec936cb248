package ssh_test

import (
	"context"
	"testing"
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/ssh"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var board = domain.SSHParameters{Host: "10.0.0.2", User: "root", Timeout: time.Second}

func newPool(t *testing.T, d *dialer) *ssh.Pool {
	t.Helper()
	p, err := ssh.NewPool(nil, 0, ssh.WithDialer(d.dial))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestPool_SharesConnections(t *testing.T) {
	d := &dialer{}
	p := newPool(t, d)

	a, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)
	b, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, d.count())

	other := board
	other.Port = 2222
	c, err := p.Acquire(context.Background(), other)
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, d.count())
	assert.Equal(t, 2, p.Size())
}

func TestPool_KeyCoversAllParameters(t *testing.T) {
	base := ssh.PoolKey(board)
	variants := []domain.SSHParameters{
		{Host: "10.0.0.3", User: "root", Timeout: time.Second},
		{Host: "10.0.0.2", User: "admin", Timeout: time.Second},
		{Host: "10.0.0.2", User: "root", Timeout: 2 * time.Second},
		{Host: "10.0.0.2", User: "root", Timeout: time.Second, KeyFile: "/k"},
		{Host: "10.0.0.2", User: "root", Timeout: time.Second, Port: 22},
	}
	for _, v := range variants {
		assert.NotEqual(t, base, ssh.PoolKey(v), v.String())
	}
	assert.Equal(t, base, ssh.PoolKey(board))
}

func TestPool_ReleaseKeepsConnectionUntilReaped(t *testing.T) {
	d := &dialer{}
	p := newPool(t, d)

	c, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)
	p.Release(c)
	assert.Equal(t, 1, p.Size())
	assert.False(t, d.client(0).isClosed())

	p.Reap()
	assert.Equal(t, 1, p.Size(), "one idle tick keeps the connection")

	p.Reap()
	assert.Zero(t, p.Size())
	assert.True(t, d.client(0).isClosed())
}

func TestPool_AcquireResetsIdleTicks(t *testing.T) {
	d := &dialer{}
	p := newPool(t, d)

	c, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)
	p.Release(c)
	p.Reap()

	c, err = p.Acquire(context.Background(), board)
	require.NoError(t, err)
	p.Reap()
	p.Reap()
	assert.Equal(t, 1, p.Size(), "connections in use are never reaped")

	p.Release(c)
	p.Reap()
	assert.Equal(t, 1, p.Size())
	assert.Equal(t, 1, d.count())
}

func TestPool_ForceNewConnection(t *testing.T) {
	d := &dialer{}
	p := newPool(t, d)

	inUse, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)

	p.ForceNewConnection(board)

	fresh, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)
	assert.NotSame(t, inUse, fresh)
	assert.Equal(t, 2, d.count())
	assert.False(t, d.client(0).isClosed(), "stale connection stays open while in use")

	p.Release(inUse)
	assert.True(t, d.client(0).isClosed())
	assert.Equal(t, 1, p.Size())
}

func TestPool_ForceNewConnectionClosesIdle(t *testing.T) {
	d := &dialer{}
	p := newPool(t, d)

	c, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)
	p.Release(c)

	p.ForceNewConnection(board)
	assert.True(t, d.client(0).isClosed())
	assert.Zero(t, p.Size())
}

func TestPool_DeadTransportIsDropped(t *testing.T) {
	d := &dialer{}
	p := newPool(t, d)

	c, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)

	_ = d.client(0).Close()
	<-c.Done()
	assert.Zero(t, p.Size())

	again, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)
	assert.NotSame(t, c, again)
	p.Release(c)
}

func TestPool_Closed(t *testing.T) {
	d := &dialer{}
	p := newPool(t, d)

	c, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.True(t, d.client(0).isClosed())

	_, err = p.Acquire(context.Background(), board)
	require.ErrorIs(t, err, domain.ErrPoolClosed)
	p.Release(c)
}

func TestPool_DialError(t *testing.T) {
	d := &dialer{err: domain.ErrSSHConnectFailed}
	p := newPool(t, d)

	_, err := p.Acquire(context.Background(), board)
	require.ErrorIs(t, err, domain.ErrSSHConnectFailed)
	assert.Zero(t, p.Size())
}

func TestPool_TunnelReleasesOnClose(t *testing.T) {
	d := &dialer{}
	p := newPool(t, d)

	conn, err := p.DialContext(context.Background(), board, "tcp", "127.0.0.1:5555")
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())

	p.Reap()
	p.Reap()
	assert.Zero(t, p.Size(), "released tunnel transport is reaped")
}

func TestPool_ScheduledReaper(t *testing.T) {
	d := &dialer{}
	p, err := ssh.NewPool(nil, 40*time.Millisecond, ssh.WithDialer(d.dial))
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	c, err := p.Acquire(context.Background(), board)
	require.NoError(t, err)
	p.Release(c)

	require.Eventually(t, func() bool { return p.Size() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, d.client(0).isClosed())
}
