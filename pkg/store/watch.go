package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the stored list changes.
type Event struct {
	Key string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next
				// refresh picks up the change and the watcher goroutine
				// never stalls on a slow reader.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a refresh to keep clients in
				// sync even if the change cannot be classified.
				throttle.Enqueue(Event{Key: todosKey}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				// diskv writes the key through a temp file then renames, so
				// filter on the final name only.
				if filepath.Base(evt.Name) != todosKey {
					continue
				}
				throttle.Enqueue(Event{Key: todosKey}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a UI can redraw once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
