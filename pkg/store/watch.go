package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventJournalChanged indicates the stored journal document was written,
	// possibly by another process, and should be reloaded.
	EventJournalChanged EventType = iota

	// EventWatchError signals the watcher hit an error it could not classify;
	// callers should reload to stay in sync.
	EventWatchError
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Err  error
}

// ErrWatchUnsupported is returned by Watch for stores not created with Load.
var ErrWatchUnsupported = errors.New("store: watch requires a disk-backed store")

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid missing events. The channel is closed once ctx is
// done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, ErrWatchUnsupported
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				p.log.Warn("store: watcher close", "error", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)
	target := filepath.Join(filepath.Clean(p.basePath), Key)

	go func() {
		defer close(events)
		defer closeWatcher()

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-throttle.C():
				for _, ev := range throttle.Flush() {
					select {
					case events <- ev:
					default:
						// Consumer is behind; it will reload on the next event anyway.
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Debug("store: watcher error", "error", err)
				throttle.Enqueue(Event{Type: EventWatchError, Err: err})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.Enqueue(Event{Type: EventJournalChanged})
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a reader reloads once
// per burst of filesystem activity instead of on every single write. It is
// owned by the watcher goroutine.
type eventThrottle struct {
	timer   *time.Timer
	pending map[EventType]Event
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]Event),
	}
}

// C fires once the current burst has settled. It is nil while idle.
func (t *eventThrottle) C() <-chan time.Time {
	if t.timer == nil {
		return nil
	}
	return t.timer.C
}

func (t *eventThrottle) Enqueue(ev Event) {
	t.pending[ev.Type] = ev
	if t.timer == nil {
		t.timer = time.NewTimer(t.delay)
	}
}

func (t *eventThrottle) Flush() []Event {
	out := make([]Event, 0, len(t.pending))
	for _, ev := range t.pending {
		out = append(out, ev)
	}
	t.pending = make(map[EventType]Event)
	t.timer = nil
	return out
}

func (t *eventThrottle) Stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
