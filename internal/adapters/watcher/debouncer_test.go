package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type batches struct {
	mu  sync.Mutex
	got [][]string
}

func (b *batches) add(paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, paths)
}

func (b *batches) all() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func TestDebouncer_CoalescesSortedBatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/ws/b.proto")
		d.Add("/ws/a.proto")
		d.Add("/ws/b.proto")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/ws/a.proto", "/ws/b.proto"}}, b.all())
	})
}

func TestDebouncer_AddRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/ws/a.proto")
		time.Sleep(60 * time.Millisecond)
		d.Add("/ws/b.proto")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Len(t, b.all(), 1)
		assert.Len(t, b.all()[0], 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Flush()
		assert.Empty(t, b.all())

		d.Add("/ws/a.proto")
		d.Flush()
		assert.Equal(t, [][]string{{"/ws/a.proto"}}, b.all())

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.all(), 1)
	})
}
