package statusbar

import (
    "strings"

    "wintitle/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState) string {
    mode := "[CMD]"
    if s.Mode == state.INSERT {
        mode = "[INSERT]"
    }
    view := "Unified"
    if s.View == state.SideBySide {
        view = "Side-by-side"
    }
    dirty := "Clean"
    if s.Dirty {
        dirty = "Dirty"
    }
    project := "No project"
    if s.HasProject {
        project = "Project"
    }

    parts := []string{mode, view, dirty, project, "Path: " + string(s.PathMode)}
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
