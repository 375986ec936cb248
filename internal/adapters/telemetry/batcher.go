// Package telemetry records spans with OpenTelemetry and turns them into
// progress vertices and output window text.
package telemetry

import (
	"bytes"
	"sync"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultSizeLimit is the buffer size that forces a flush.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the longest time output stays buffered.
	DefaultTimeLimit = 50 * time.Millisecond
)

var errBatcherClosed = zerr.New("batch processor is closed")

// BatchProcessor buffers writes and hands them to a callback once the buffer
// is full or the time limit passed. It is safe for concurrent use.
type BatchProcessor struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte)

	mu     sync.Mutex
	buf    bytes.Buffer
	ticker *time.Ticker
	stop   chan struct{}
	closed bool
}

// NewBatchProcessor starts a processor. Non-positive limits use the defaults.
// Close stops its background flusher.
func NewBatchProcessor(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *BatchProcessor {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	bp := &BatchProcessor{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
		ticker:    time.NewTicker(timeLimit),
		stop:      make(chan struct{}),
	}
	go bp.loop()
	return bp
}

// Write buffers p and flushes when the size limit is reached.
func (bp *BatchProcessor) Write(p []byte) (int, error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if bp.closed {
		return 0, errBatcherClosed
	}
	n, _ := bp.buf.Write(p)
	if bp.buf.Len() >= bp.sizeLimit {
		bp.flushLocked()
		bp.ticker.Reset(bp.timeLimit)
	}
	return n, nil
}

// Flush hands buffered data to the callback right away.
func (bp *BatchProcessor) Flush() {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if !bp.closed {
		bp.flushLocked()
	}
}

// Close flushes what is left and stops the flusher.
func (bp *BatchProcessor) Close() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if bp.closed {
		return nil
	}
	bp.closed = true
	close(bp.stop)
	bp.flushLocked()
	return nil
}

func (bp *BatchProcessor) loop() {
	for {
		select {
		case <-bp.ticker.C:
			bp.Flush()
		case <-bp.stop:
			bp.ticker.Stop()
			return
		}
	}
}

// flushLocked calls the callback under the lock, which keeps batches in order.
func (bp *BatchProcessor) flushLocked() {
	if bp.buf.Len() == 0 {
		return
	}
	data := bytes.Clone(bp.buf.Bytes())
	bp.buf.Reset()
	if bp.onFlush != nil {
		bp.onFlush(data)
	}
}
