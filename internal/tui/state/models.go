package state

import "wintitle/internal/pathdisplay"

// EditorMode represents the tuner's current input mode.
type EditorMode int

const (
    CMD EditorMode = iota
    INSERT
)

// DiffMode controls how official vs desired is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by status bar, diff, and editor.
type UIState struct {
    // Mode & View
    Mode     EditorMode
    View     DiffMode
    ShowHelp bool

    // Sample document knobs
    Dirty      bool
    HasProject bool
    PathMode   pathdisplay.Mode

    // Layout
    Width  int
    MinCol int

    // Edited is set once the template differs from the loaded settings.
    Edited bool

    // Notices and ephemeral messages
    Notice string
}
