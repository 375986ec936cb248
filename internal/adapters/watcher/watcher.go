// Package watcher reports changes of workspace files to the generator runner.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

var skippedDirs = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const eventBuffer = 100

// Watcher watches a directory tree with fsnotify.
type Watcher struct {
	fs     *fsnotify.Watcher
	logger ports.Logger
	events chan ports.WatchEvent
}

// NewWatcher creates a watcher that logs file system errors to logger.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	return &Watcher{
		fs:     w,
		logger: logger,
		events: make(chan ports.WatchEvent, eventBuffer),
	}, nil
}

// Start watches root and every directory below it.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range dirsBelow(root) {
		if err := w.fs.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "dir", dir)
		}
	}
	go w.loop(ctx)
	return nil
}

// Stop releases the underlying watcher. Events ends afterwards.
func (w *Watcher) Stop() error {
	return w.fs.Close()
}

// Events yields changes until the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func dirsBelow(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil //nolint:nilerr // unreadable entries are not watched
			}
			if path != root && skippedDirs[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.events)
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-w.fs.Events:
			if !ok {
				return
			}
			ev, ok := convert(raw)
			if !ok {
				continue
			}
			select {
			case w.events <- ev:
			case <-ctx.Done():
				return
			}
			if ev.Operation == ports.OpCreate {
				w.addCreatedDir(raw.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, domain.ErrWatcherFailed.Error()))
		}
	}
}

func (w *Watcher) addCreatedDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skippedDirs[info.Name()] {
		return
	}
	for dir := range dirsBelow(path) {
		_ = w.fs.Add(dir)
	}
}

func convert(ev fsnotify.Event) (ports.WatchEvent, bool) {
	out := ports.WatchEvent{Path: ev.Name}
	switch {
	case ev.Has(fsnotify.Write):
		out.Operation = ports.OpWrite
	case ev.Has(fsnotify.Create):
		out.Operation = ports.OpCreate
	case ev.Has(fsnotify.Remove):
		out.Operation = ports.OpRemove
	case ev.Has(fsnotify.Rename):
		out.Operation = ports.OpRename
	default:
		return out, false
	}
	return out, true
}
