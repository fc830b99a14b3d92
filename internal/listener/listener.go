// Package listener reacts to editor lifecycle events by recomputing the
// window title and handing it to a renamer.
package listener

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"wintitle/internal/config"
	"wintitle/internal/rename"
	"wintitle/internal/title"
)

// DefaultPollInterval is how often Start checks whether the editor is ready.
const DefaultPollInterval = time.Second

// View is a document together with the window that shows it. Window is nil
// for views that are not attached to a window.
type View struct {
	Doc    title.Document `json:"view"`
	Window *title.Window  `json:"window,omitempty"`
}

// Host answers questions about the running editor.
type Host interface {
	// CachePath is empty until the editor has finished loading.
	CachePath() string
	// ActiveViews returns the active view of every open window.
	ActiveViews() []View
}

// SettingsSource returns the settings to use for one computation.
type SettingsSource interface {
	Get() config.Settings
}

// Options configures a Listener.
type Options struct {
	Renamer  rename.Renamer
	Settings SettingsSource
	Host     Host
	Logger   *zap.Logger
	HomeDir  string

	PollInterval time.Duration
	// OnReady runs once, with the editor's cache path, before the listener
	// starts renaming. Errors are logged.
	OnReady func(cachePath string) error
	// RefreshOnReady retitles every open window as soon as the listener
	// becomes ready.
	RefreshOnReady bool
}

// Listener is not ready until the host reports a cache path; until then
// every event is dropped with a log line. Once ready it stays ready.
type Listener struct {
	opts Options
	log  *zap.Logger

	ready     atomic.Bool
	readyCh   chan struct{}
	startOnce sync.Once

	mu       sync.Mutex
	wasDirty map[int64]bool
}

func New(opts Options) *Listener {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Renamer == nil {
		opts.Renamer = rename.NopRenamer{}
	}
	return &Listener{
		opts:     opts,
		log:      opts.Logger,
		readyCh:  make(chan struct{}),
		wasDirty: map[int64]bool{},
	}
}

// Start launches the readiness poller. It returns immediately; the poller
// exits once the host is ready or ctx is done. Later calls are no-ops.
func (l *Listener) Start(ctx context.Context) {
	l.startOnce.Do(func() { go l.waitReady(ctx) })
}

// Ready is closed when the listener becomes ready.
func (l *Listener) Ready() <-chan struct{} { return l.readyCh }

// IsReady reports whether renames are being performed.
func (l *Listener) IsReady() bool { return l.ready.Load() }

func (l *Listener) waitReady(ctx context.Context) {
	ticker := time.NewTicker(l.opts.PollInterval)
	defer ticker.Stop()
	for {
		if path := l.opts.Host.CachePath(); path != "" {
			l.becomeReady(ctx, path)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (l *Listener) becomeReady(ctx context.Context, cachePath string) {
	if l.opts.OnReady != nil {
		if err := l.opts.OnReady(cachePath); err != nil {
			l.log.Error("ready hook failed", zap.String("cache_path", cachePath), zap.Error(err))
		}
	}
	l.ready.Store(true)
	close(l.readyCh)
	l.log.Info("editor ready", zap.String("cache_path", cachePath))
	if l.opts.RefreshOnReady {
		l.RefreshAll(ctx)
	}
}

// OnActivated handles a view gaining focus.
func (l *Listener) OnActivated(ctx context.Context, v View) { l.run(ctx, v) }

// OnPostSave handles a view being written to disk.
func (l *Listener) OnPostSave(ctx context.Context, v View) { l.run(ctx, v) }

// OnModified handles an edit. The title only changes when the dirty state
// flips, so other edits are ignored.
func (l *Listener) OnModified(ctx context.Context, v View) {
	l.mu.Lock()
	was, seen := l.wasDirty[v.Doc.ID]
	l.mu.Unlock()
	if seen && was == v.Doc.Dirty {
		return
	}
	l.run(ctx, v)
}

// OnWindowClosed drops cached renamer state for the window.
func (l *Listener) OnWindowClosed(windowID int64) {
	if f, ok := l.opts.Renamer.(rename.Forgetter); ok {
		f.Forget(windowID)
	}
}

// RefreshAll retitles the active view of every open window.
func (l *Listener) RefreshAll(ctx context.Context) {
	for _, v := range l.opts.Host.ActiveViews() {
		l.run(ctx, v)
	}
}

func (l *Listener) run(ctx context.Context, v View) {
	if !l.ready.Load() {
		l.log.Warn("editor not ready, skipping rename", zap.Int64("view", v.Doc.ID))
		return
	}
	s := l.opts.Settings.Get()
	titles := title.Compute(v.Doc, v.Window, s, l.opts.HomeDir)
	if v.Window != nil {
		if s.Debug {
			l.log.Debug("renaming window",
				zap.Int64("window", v.Window.ID),
				zap.String("official", titles.Official),
				zap.String("desired", titles.Desired))
		}
		if err := l.opts.Renamer.Rename(ctx, v.Window.ID, titles.Official, titles.Desired); err != nil {
			l.log.Warn("rename failed", zap.Int64("window", v.Window.ID), zap.Error(err))
		}
	}
	l.mu.Lock()
	l.wasDirty[v.Doc.ID] = v.Doc.Dirty
	l.mu.Unlock()
}
