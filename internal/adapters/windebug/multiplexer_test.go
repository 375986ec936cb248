package windebug_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"testing/synctest"

	"github.com/orca-repos/orca-sub012/internal/adapters/windebug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(ch <-chan string) []string {
	var out []string
	for {
		select {
		case s := <-ch:
			out = append(out, s)
		default:
			return out
		}
	}
}

func TestMultiplexer_FlushCap(t *testing.T) {
	m := windebug.NewMultiplexerForPID(1)
	ch, cancel := m.Subscribe(42)
	defer cancel()

	for i := range 250 {
		m.Post(windebug.Message{PID: 42, Text: strconv.Itoa(i)})
	}
	require.Equal(t, 250, m.Pending())

	assert.True(t, m.Flush())
	first := drain(ch)
	require.Len(t, first, windebug.MaxMessagesPerFlush)
	assert.Equal(t, "0", first[0])
	assert.Equal(t, "99", first[99])

	assert.True(t, m.Flush())
	assert.Len(t, drain(ch), windebug.MaxMessagesPerFlush)

	assert.False(t, m.Flush())
	last := drain(ch)
	require.Len(t, last, 50)
	assert.Equal(t, "249", last[49])
	assert.Zero(t, m.Pending())
}

func TestMultiplexer_DropsOwnOutput(t *testing.T) {
	m := windebug.NewMultiplexerForPID(7)
	m.Post(windebug.Message{PID: 7, Text: "self"})
	assert.Zero(t, m.Pending())
}

func TestMultiplexer_RoutesPerProcess(t *testing.T) {
	m := windebug.NewMultiplexerForPID(1)
	a, cancelA := m.Subscribe(10)
	defer cancelA()
	b, cancelB := m.Subscribe(20)
	defer cancelB()

	m.Post(windebug.Message{PID: 10, Text: "a1"})
	m.Post(windebug.Message{PID: 20, Text: "b1"})
	m.Post(windebug.Message{PID: 30, Text: "nobody"})
	m.Post(windebug.Message{PID: 10, Text: "a2"})

	assert.False(t, m.Flush())
	assert.Equal(t, []string{"a1", "a2"}, drain(a))
	assert.Equal(t, []string{"b1"}, drain(b))
}

func TestMultiplexer_UnsubscribeStopsDelivery(t *testing.T) {
	m := windebug.NewMultiplexerForPID(1)
	ch, cancel := m.Subscribe(10)
	cancel()
	cancel()

	m.Post(windebug.Message{PID: 10, Text: "late"})
	assert.False(t, m.Flush())
	assert.Empty(t, drain(ch))
}

type fakeListener struct {
	messages []windebug.Message
}

func (f *fakeListener) Listen(ctx context.Context, post func(windebug.Message)) error {
	for _, msg := range f.messages {
		post(msg)
	}
	<-ctx.Done()
	return nil
}

func TestMultiplexer_RunDeliversBacklogAcrossCycles(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m := windebug.NewMultiplexerForPID(1)
		ch, cancel := m.Subscribe(5)
		defer cancel()

		l := &fakeListener{}
		for i := range 150 {
			l.messages = append(l.messages, windebug.Message{PID: 5, Text: strconv.Itoa(i)})
		}

		ctx, stop := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() { done <- m.Run(ctx, l) }()

		var got []string
		for len(got) < 150 {
			got = append(got, <-ch)
			synctest.Wait()
		}
		assert.Equal(t, "149", got[149])
		assert.Zero(t, m.Pending())

		stop()
		require.NoError(t, <-done)
	})
}

type failingListener struct{ err error }

func (f failingListener) Listen(context.Context, func(windebug.Message)) error { return f.err }

func TestMultiplexer_RunRecordsListenerError(t *testing.T) {
	m := windebug.NewMultiplexerForPID(1)
	want := errors.New("no debug channel")

	err := m.Run(t.Context(), failingListener{err: want})
	require.ErrorIs(t, err, want)
	assert.ErrorIs(t, m.Err(), want)
}
