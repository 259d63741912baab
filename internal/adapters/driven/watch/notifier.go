// Package watch reports changes to the vault's data directory so that
// long-running front ends can refresh what they show.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/logger"
)

// DefaultDebounce is the quiet period that ends a burst of file events.
const DefaultDebounce = 250 * time.Millisecond

// Ensure Notifier implements the interface.
var _ driven.ChangeNotifier = (*Notifier)(nil)

// Notifier watches one directory with fsnotify and coalesces bursts of
// writes into single notifications.
type Notifier struct {
	dir      string
	debounce time.Duration
}

// New creates a notifier for dir. A non-positive debounce uses DefaultDebounce.
func New(dir string, debounce time.Duration) *Notifier {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Notifier{dir: dir, debounce: debounce}
}

// Watch starts watching. The returned channel has a buffer of one and drops
// notifications while one is already pending.
func (n *Notifier) Watch(ctx context.Context) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(n.dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", n.dir, err)
	}

	out := make(chan struct{}, 1)
	go n.run(ctx, w, out)
	return out, nil
}

func (n *Notifier) run(ctx context.Context, w *fsnotify.Watcher, out chan<- struct{}) {
	defer close(out)
	defer w.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("watch: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(n.debounce)
			} else {
				timer.Reset(n.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case out <- struct{}{}:
			default:
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// relevant ignores permission-only changes.
func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
