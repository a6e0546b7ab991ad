// Package watch provides runner logic for following external snapshot
// changes, re-rendering the entry list whenever another process writes the
// backing store.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"tableflip.dev/tracker/pkg/printers"
	"tableflip.dev/tracker/pkg/store"
)

// debounce coalesces rapid filesystem events so a burst of writes triggers a
// single re-render.
const debounce = 200 * time.Millisecond

// Watch tails the snapshot directory until ctx is cancelled.
type Watch struct {
	Adapter *store.DiskvAdapter
	Filter  store.Filter
	Log     zerolog.Logger
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Adapter == nil {
		return errors.New("can not watch, no persistence")
	}

	if err := os.MkdirAll(n.Adapter.BasePath(), 0o755); err != nil {
		return fmt.Errorf("ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(n.Adapter.BasePath()); err != nil {
		return fmt.Errorf("watch %s: %w", n.Adapter.BasePath(), err)
	}

	n.render()

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			n.Log.Warn().Err(err).Msg("watcher error")
		case <-pending:
			n.render()
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
					// A render is already queued; the refresh will pick up
					// this change too.
				}
			})
		}
	}
}

// render rebuilds a read-only store view from the snapshot and prints it.
func (n *Watch) render() {
	s := store.New(n.Adapter, n.Log)
	entries := s.GetEntries(n.Filter)

	fmt.Print("\033[H\033[2J")
	pp := printers.PrettyPrint{}
	pp.TitleWithCount("entries", len(entries))
	pp.Entries(entries, s.GetCategoryName)
}
