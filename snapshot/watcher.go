package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/statekeep/statekeep/observability"
)

const (
	EventRehydrate    observability.EventType = "snapshot.rehydrate"
	EventWatcherError observability.EventType = "snapshot.watcher.error"
)

// Watcher observes a snapshot file for writes from outside the process and
// hands each new snapshot to a callback, typically one that dispatches a
// rehydrate action. The callback runs on the watcher's goroutine; route it
// onto the event loop that owns the container.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	observer observability.Observer
	done     chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherObserver overrides the default NoopObserver.
func WithWatcherObserver(observer observability.Observer) WatcherOption {
	return func(w *Watcher) { w.observer = observer }
}

// NewWatcher watches path and invokes onChange with the file contents after
// each external write. The parent directory is watched rather than the file
// itself: atomic save-and-rename replaces the inode, which a direct file
// watch would lose.
func NewWatcher(path string, onChange func(data []byte), opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		observer: observability.NoopObserver{},
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop(onChange)

	return w, nil
}

func (w *Watcher) loop(onChange func(data []byte)) {
	ctx := context.Background()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			data, err := os.ReadFile(w.path)
			if err != nil {
				w.observer.OnEvent(ctx, observability.Event{
					Type:      EventWatcherError,
					Level:     observability.LevelWarning,
					Timestamp: time.Now(),
					Source:    "snapshot.watcher",
					Data:      map[string]any{"path": w.path, "error": err.Error()},
				})
				continue
			}

			w.observer.OnEvent(ctx, observability.Event{
				Type:      EventRehydrate,
				Level:     observability.LevelInfo,
				Timestamp: time.Now(),
				Source:    "snapshot.watcher",
				Data:      map[string]any{"path": w.path, "bytes": len(data)},
			})

			onChange(data)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.observer.OnEvent(ctx, observability.Event{
				Type:      EventWatcherError,
				Level:     observability.LevelWarning,
				Timestamp: time.Now(),
				Source:    "snapshot.watcher",
				Data:      map[string]any{"path": w.path, "error": err.Error()},
			})
		}
	}
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
