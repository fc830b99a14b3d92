package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay coalesces the burst of events editors produce on save.
var DebounceDelay = 150 * time.Millisecond

// Watch reloads the store whenever its file changes and then calls onChange
// with the new settings. Reload failures are passed to onErr and the old
// settings stay in effect. The parent directory is watched so that atomic
// rename-on-save is seen. Watch blocks until ctx is done.
func (st *Store) Watch(ctx context.Context, onChange func(Settings), onErr func(error)) error {
	if st.path == "" {
		<-ctx.Done()
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("settings watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(st.path)
	if err != nil {
		abs = st.path
	}
	dir, base := filepath.Dir(abs), filepath.Base(abs)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(DebounceDelay)
			} else {
				timer.Reset(DebounceDelay)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if onErr != nil {
				onErr(err)
			}
		case <-fire:
			fire = nil
			if err := st.Reload(); err != nil {
				if onErr != nil {
					onErr(err)
				}
				continue
			}
			if onChange != nil {
				onChange(st.Get())
			}
		}
	}
}
