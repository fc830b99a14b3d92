package diff

import (
    "strings"
    "testing"

    "wintitle/internal/tui/state"
)

func TestUnifiedSnapshot(t *testing.T) {
    v := NewDiffView(true)
    s := state.UIState{View: state.Unified}
    out := v.View(s, "a.go - Sublime Text", "a.go [proj]")
    if !strings.HasPrefix(out, "EDITOR vs CUSTOM (Unified)\n") {
        t.Fatalf("missing unified header: %q", out)
    }
    lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
    if len(lines) != 3 {
        t.Fatalf("expected header plus two lines, got %q", out)
    }
    if !strings.HasPrefix(lines[1], "- a.go ") || !strings.Contains(lines[1], "[") {
        t.Fatalf("expected marked deletion line, got %q", lines[1])
    }
    if !strings.HasPrefix(lines[2], "+ a.go ") || !strings.Contains(lines[2], "[proj]") {
        t.Fatalf("expected marked insertion line, got %q", lines[2])
    }
}

func TestSideBySideSnapshot(t *testing.T) {
    v := NewDiffView(true)
    s := state.UIState{View: state.SideBySide, Width: 60}
    out := v.View(s, "left", "right")
    if !strings.HasPrefix(out, "EDITOR │ CUSTOM\n") {
        t.Fatalf("missing sbs header")
    }
    if !strings.Contains(out, " │ ") {
        t.Fatalf("missing separator")
    }
}

func TestNoChanges(t *testing.T) {
    v := NewDiffView(true)
    if out := v.View(state.UIState{}, "same", "same"); out != "No changes\n" {
        t.Fatalf("unexpected output %q", out)
    }
}
