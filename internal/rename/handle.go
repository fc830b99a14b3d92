package rename

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Handle is an opaque native window identifier.
type Handle uintptr

// WindowAPI is the slice of the OS window manager the native backend needs.
type WindowAPI interface {
	EnumerateWindows() ([]Handle, error)
	WindowTitle(h Handle) (string, error)
	SetWindowTitle(h Handle, title string) error
}

// HandleRenamer finds windows by enumerating them through a WindowAPI.
//
// Resolved handles are cached per editor window and reused without checking
// that the window still exists; call Forget when a window closes.
type HandleRenamer struct {
	api WindowAPI

	mu    sync.Mutex
	cache map[int64]Handle
}

func NewHandleRenamer(api WindowAPI) *HandleRenamer {
	return &HandleRenamer{api: api, cache: map[int64]Handle{}}
}

// Rename sets the text of the window for windowID. When nothing is cached
// the first top-level window whose title contains official is used. No
// match is not an error.
func (r *HandleRenamer) Rename(_ context.Context, windowID int64, official, desired string) error {
	h, ok := r.cached(windowID)
	if !ok {
		var err error
		h, ok, err = r.find(official)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		r.mu.Lock()
		r.cache[windowID] = h
		r.mu.Unlock()
	}
	if err := r.api.SetWindowTitle(h, desired); err != nil {
		return fmt.Errorf("set window title: %w", err)
	}
	return nil
}

func (r *HandleRenamer) cached(windowID int64) (Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.cache[windowID]
	return h, ok
}

func (r *HandleRenamer) find(official string) (Handle, bool, error) {
	handles, err := r.api.EnumerateWindows()
	if err != nil {
		return 0, false, fmt.Errorf("enumerate windows: %w", err)
	}
	for _, h := range handles {
		t, err := r.api.WindowTitle(h)
		if err != nil || t == "" {
			continue
		}
		if strings.Contains(t, official) {
			return h, true, nil
		}
	}
	return 0, false, nil
}

// Forget drops the cached handle for windowID.
func (r *HandleRenamer) Forget(windowID int64) {
	r.mu.Lock()
	delete(r.cache, windowID)
	r.mu.Unlock()
}

// CachedHandles reports the number of cached handles.
func (r *HandleRenamer) CachedHandles() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}
