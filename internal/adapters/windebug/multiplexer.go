// Package windebug collects debug output written by applications through the
// system debug channel and hands it to per-process consumers.
package windebug

import (
	"context"
	"os"
	"slices"
	"sync"
)

// MaxMessagesPerFlush bounds the number of messages delivered by one flush cycle.
const MaxMessagesPerFlush = 100

// Message is one line of debug output of a process.
type Message struct {
	PID  int
	Text string
}

// Listener produces debug output records until ctx is done.
type Listener interface {
	Listen(ctx context.Context, post func(Message)) error
}

// Multiplexer queues debug output per process and delivers it in bounded batches.
type Multiplexer struct {
	selfPID int

	mu      sync.Mutex
	pending map[int][]string
	order   []int
	ready   bool
	subs    map[int]*subscription
	err     error

	wake chan struct{}
}

// NewMultiplexer creates a multiplexer that drops output of the current process.
func NewMultiplexer() *Multiplexer {
	return newMultiplexer(os.Getpid())
}

func newMultiplexer(selfPID int) *Multiplexer {
	return &Multiplexer{
		selfPID: selfPID,
		pending: make(map[int][]string),
		subs:    make(map[int]*subscription),
		wake:    make(chan struct{}, 1),
	}
}

// Post queues a message. It is safe to call from any goroutine.
func (m *Multiplexer) Post(msg Message) {
	if msg.PID == m.selfPID {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pending[msg.PID]; !ok {
		m.order = append(m.order, msg.PID)
	}
	m.pending[msg.PID] = append(m.pending[msg.PID], msg.Text)
	if !m.ready {
		m.ready = true
		m.signal()
	}
}

type subscription struct {
	ch   chan string
	done chan struct{}
}

// Subscribe returns the channel receiving the debug output of pid.
// The returned function unsubscribes; pending deliveries to it are abandoned.
func (m *Multiplexer) Subscribe(pid int) (<-chan string, func()) {
	sub := &subscription{
		ch:   make(chan string, MaxMessagesPerFlush),
		done: make(chan struct{}),
	}

	m.mu.Lock()
	m.subs[pid] = sub
	m.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			m.mu.Lock()
			if m.subs[pid] == sub {
				delete(m.subs, pid)
			}
			m.mu.Unlock()
			close(sub.done)
		})
	}
}

// Run starts l and delivers its output until ctx is done.
// It returns the error of the listener, if any.
func (m *Multiplexer) Run(ctx context.Context, l Listener) error {
	errc := make(chan error, 1)
	go func() { errc <- l.Listen(ctx, m.Post) }()

	for {
		select {
		case <-ctx.Done():
			return m.setErr(<-errc)
		case err := <-errc:
			return m.setErr(err)
		case <-m.wake:
			m.Flush()
		}
	}
}

// Err returns the error the listener stopped with.
func (m *Multiplexer) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Multiplexer) setErr(err error) error {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
	return err
}

// Flush delivers at most MaxMessagesPerFlush queued messages and reports
// whether a backlog remains. When it does, the next cycle is already armed.
func (m *Multiplexer) Flush() (more bool) {
	type delivery struct {
		sub  *subscription
		text string
	}

	m.mu.Lock()
	var batch []delivery
	budget := MaxMessagesPerFlush
	for budget > 0 && len(m.order) > 0 {
		pid := m.order[0]
		queue := m.pending[pid]
		n := min(budget, len(queue))
		if sub, ok := m.subs[pid]; ok {
			for _, text := range queue[:n] {
				batch = append(batch, delivery{sub: sub, text: text})
			}
		}
		budget -= n
		if n == len(queue) {
			delete(m.pending, pid)
			m.order = slices.Delete(m.order, 0, 1)
		} else {
			m.pending[pid] = queue[n:]
		}
	}
	more = len(m.order) > 0
	if more {
		m.signal()
	} else {
		m.ready = false
	}
	m.mu.Unlock()

	for _, d := range batch {
		select {
		case d.sub.ch <- d.text:
		case <-d.sub.done:
		}
	}

	return more
}

// Pending returns the number of queued messages.
func (m *Multiplexer) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, q := range m.pending {
		n += len(q)
	}
	return n
}

func (m *Multiplexer) signal() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}
