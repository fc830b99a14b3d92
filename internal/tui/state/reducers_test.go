package state

import (
    "testing"

    "wintitle/internal/pathdisplay"
)

func TestToggleModeSetsNotice(t *testing.T) {
    s := UIState{Mode: CMD}
    s = ToggleMode(s)
    if s.Mode != INSERT || s.Notice == "" { t.Fatalf("expected INSERT mode and notice") }
    s = ToggleMode(s)
    if s.Mode != CMD || s.Notice == "" { t.Fatalf("expected CMD mode and notice") }
}

func TestToggleView(t *testing.T) {
    s := UIState{View: Unified}
    s = ToggleView(s)
    if s.View != SideBySide { t.Fatalf("expected SideBySide view") }
}

func TestResizeFallbackToUnified(t *testing.T) {
    s := UIState{View: SideBySide, MinCol: 20}
    s = Resize(s, 30) // threshold = 2*20+3 = 43; 30 < 43 => unified
    if s.View != Unified { t.Fatalf("expected Unified after resize fallback") }
    if s.Notice == "" { t.Fatalf("expected fallback notice to be set") }
}

func TestSampleToggles(t *testing.T) {
    s := UIState{}
    s = ToggleDirty(s)
    s = ToggleProject(s)
    if !s.Dirty || !s.HasProject { t.Fatalf("expected dirty and project set") }
    s = ToggleDirty(s)
    if s.Dirty { t.Fatalf("expected dirty cleared") }
}

func TestCyclePathMode(t *testing.T) {
    s := UIState{PathMode: pathdisplay.Full}
    s = CyclePathMode(s)
    if s.PathMode != pathdisplay.Relative { t.Fatalf("expected relative, got %s", s.PathMode) }
    s = CyclePathMode(CyclePathMode(s))
    if s.PathMode != pathdisplay.Full { t.Fatalf("expected full after full cycle, got %s", s.PathMode) }
    if s.Notice != "path_display: full" { t.Fatalf("unexpected notice %q", s.Notice) }
}

func TestToggleHelp(t *testing.T) {
    s := ToggleHelp(UIState{})
    if !s.ShowHelp { t.Fatalf("expected help shown") }
}
