package state

// ToggleMode switches between CMD and INSERT modes and sets a brief notice.
func ToggleMode(s UIState) UIState {
    if s.Mode == CMD {
        s.Mode = INSERT
        s.Notice = "[INSERT]"
    } else {
        s.Mode = CMD
        s.Notice = "[CMD]"
    }
    return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return s
}

// Resize updates width and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width int) UIState {
    s.Width = width
    threshold := 2*s.MinCol + 3
    if s.View == SideBySide && s.Width < threshold {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
    }
    return s
}

// ToggleDirty flips the sample document's dirty flag.
func ToggleDirty(s UIState) UIState {
    s.Dirty = !s.Dirty
    return s
}

// ToggleProject attaches or detaches the sample project.
func ToggleProject(s UIState) UIState {
    s.HasProject = !s.HasProject
    return s
}

// CyclePathMode steps full -> relative -> shortest.
func CyclePathMode(s UIState) UIState {
    s.PathMode = s.PathMode.Next()
    s.Notice = "path_display: " + string(s.PathMode)
    return s
}

// ToggleHelp shows or hides the key overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}
