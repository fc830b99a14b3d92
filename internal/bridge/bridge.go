// Package bridge decodes editor events sent as newline-delimited JSON and
// keeps a snapshot of the editor's windows for the listener.
//
// Each line is one object with a "type" field:
//
//	{"type":"paths","cache_path":"/home/u/.cache/sublime-text"}
//	{"type":"startup","windows":[{"id":1,"folders":["/src/x"],"active_view":{"id":4,"file_name":"/src/x/a.go"}}]}
//	{"type":"activated","view":{"id":4,"file_name":"/src/x/a.go","dirty":false},"window":{"id":1,"folders":["/src/x"]}}
//	{"type":"modified", ...}   {"type":"post_save", ...}
//	{"type":"window_closed","window":{"id":1}}
//	{"type":"refresh"}
package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"go.uber.org/zap"

	"wintitle/internal/listener"
	"wintitle/internal/title"
)

// Event types.
const (
	TypePaths        = "paths"
	TypeStartup      = "startup"
	TypeActivated    = "activated"
	TypeModified     = "modified"
	TypePostSave     = "post_save"
	TypeWindowClosed = "window_closed"
	TypeRefresh      = "refresh"
)

// maxLine bounds a single message; window snapshots with many folders can
// exceed bufio's 64K default.
const maxLine = 1 << 20

// Message is one decoded line.
type Message struct {
	Type         string          `json:"type"`
	CachePath    string          `json:"cache_path,omitempty"`
	PackagesPath string          `json:"packages_path,omitempty"`
	View         *title.Document `json:"view,omitempty"`
	Window       *title.Window   `json:"window,omitempty"`
	Windows      []WindowState   `json:"windows,omitempty"`
}

// WindowState is a window plus its active view, as sent on startup.
type WindowState struct {
	title.Window
	ActiveView *title.Document `json:"active_view,omitempty"`
}

// Handler receives decoded events. *listener.Listener implements it.
type Handler interface {
	OnActivated(ctx context.Context, v listener.View)
	OnModified(ctx context.Context, v listener.View)
	OnPostSave(ctx context.Context, v listener.View)
	OnWindowClosed(windowID int64)
	RefreshAll(ctx context.Context)
}

// Bridge tracks host paths and windows. It implements listener.Host.
type Bridge struct {
	log *zap.Logger

	mu           sync.RWMutex
	cachePath    string
	packagesPath string
	windows      map[int64]WindowState
}

func New(logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{log: logger, windows: map[int64]WindowState{}}
}

// CachePath is empty until a paths message arrives.
func (b *Bridge) CachePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cachePath
}

// PackagesPath is the editor's package directory, if reported.
func (b *Bridge) PackagesPath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.packagesPath
}

// ActiveViews returns the last known active view of each window, ordered by
// window id.
func (b *Bridge) ActiveViews() []listener.View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := make([]int64, 0, len(b.windows))
	for id, w := range b.windows {
		if w.ActiveView != nil {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]listener.View, 0, len(ids))
	for _, id := range ids {
		w := b.windows[id]
		win := w.Window
		out = append(out, listener.View{Doc: *w.ActiveView, Window: &win})
	}
	return out
}

// Serve reads messages from r until EOF or ctx is done. Malformed lines are
// logged and skipped. The reader goroutine outlives Serve on cancellation
// until r returns.
func (b *Bridge) Serve(ctx context.Context, r io.Reader, h Handler) error {
	lines := make(chan []byte)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLine)
		for sc.Scan() {
			line := append([]byte(nil), sc.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read events: %w", err)
			}
			return nil
		case line := <-lines:
			if len(line) == 0 {
				continue
			}
			var m Message
			if err := json.Unmarshal(line, &m); err != nil {
				b.log.Warn("bad event", zap.ByteString("line", line), zap.Error(err))
				continue
			}
			b.Dispatch(ctx, m, h)
		}
	}
}

// Dispatch applies one message to the snapshot and forwards it to h.
func (b *Bridge) Dispatch(ctx context.Context, m Message, h Handler) {
	switch m.Type {
	case TypePaths:
		b.mu.Lock()
		if m.CachePath != "" {
			b.cachePath = m.CachePath
		}
		if m.PackagesPath != "" {
			b.packagesPath = m.PackagesPath
		}
		b.mu.Unlock()
		b.log.Debug("host paths", zap.String("cache_path", m.CachePath), zap.String("packages_path", m.PackagesPath))
	case TypeStartup:
		b.mu.Lock()
		b.windows = make(map[int64]WindowState, len(m.Windows))
		for _, w := range m.Windows {
			b.windows[w.ID] = w
		}
		b.mu.Unlock()
		h.RefreshAll(ctx)
	case TypeRefresh:
		h.RefreshAll(ctx)
	case TypeActivated, TypeModified, TypePostSave:
		if m.View == nil {
			b.log.Warn("event without view", zap.String("type", m.Type))
			return
		}
		v := listener.View{Doc: *m.View, Window: m.Window}
		b.track(v)
		switch m.Type {
		case TypeActivated:
			h.OnActivated(ctx, v)
		case TypeModified:
			h.OnModified(ctx, v)
		default:
			h.OnPostSave(ctx, v)
		}
	case TypeWindowClosed:
		if m.Window == nil {
			return
		}
		b.mu.Lock()
		delete(b.windows, m.Window.ID)
		b.mu.Unlock()
		h.OnWindowClosed(m.Window.ID)
	default:
		b.log.Warn("unknown event type", zap.String("type", m.Type))
	}
}

func (b *Bridge) track(v listener.View) {
	if v.Window == nil {
		return
	}
	doc := v.Doc
	b.mu.Lock()
	b.windows[v.Window.ID] = WindowState{Window: *v.Window, ActiveView: &doc}
	b.mu.Unlock()
}
