package config

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever config.json changes on disk and calls
// onChange with the new value. Editors tend to emit bursts of write events,
// so reloads are coalesced over a short quiet period. Watch returns once
// the watcher is running; it stops when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory, not the file: editors replace files by rename
	// and the watch would be lost with it.
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		pending := make(chan struct{}, 1)

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != s.Path() {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(100*time.Millisecond, func() {
					select {
					case pending <- struct{}{}:
					default:
					}
				})
			case <-pending:
				cfg, err := s.Load()
				if err != nil {
					continue
				}
				onChange(cfg)
			case <-watcher.Errors:
			}
		}
	}()

	return nil
}
