package telemetry_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flushes struct {
	mu  sync.Mutex
	got []string
}

func (f *flushes) add(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, string(data))
}

func (f *flushes) all() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.got...)
}

func TestBatchProcessor_FlushOnSize(t *testing.T) {
	var f flushes
	bp := telemetry.NewBatchProcessor(5, time.Hour, f.add)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("123"))
	require.NoError(t, err)
	assert.Empty(t, f.all())

	_, err = bp.Write([]byte("456"))
	require.NoError(t, err)
	assert.Equal(t, []string{"123456"}, f.all())
}

func TestBatchProcessor_FlushOnTime(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var f flushes
		bp := telemetry.NewBatchProcessor(100, 50*time.Millisecond, f.add)
		defer func() { _ = bp.Close() }()

		_, err := bp.Write([]byte("line"))
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, []string{"line"}, f.all())
	})
}

func TestBatchProcessor_Close(t *testing.T) {
	var f flushes
	bp := telemetry.NewBatchProcessor(100, time.Hour, f.add)

	_, err := bp.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, bp.Close())
	require.NoError(t, bp.Close())

	assert.Equal(t, []string{"tail"}, f.all())
	_, err = bp.Write([]byte("late"))
	require.Error(t, err)
}
