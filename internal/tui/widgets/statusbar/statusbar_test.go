package statusbar

import (
    "strings"
    "testing"

    "wintitle/internal/pathdisplay"
    "wintitle/internal/tui/state"
)

func TestView(t *testing.T) {
    s := state.UIState{Mode: state.INSERT, View: state.SideBySide, Dirty: true, PathMode: pathdisplay.Shortest, Notice: "saved"}
    out := NewStatusBar().View(s)
    for _, w := range []string{"[INSERT]", "Side-by-side", "Dirty", "No project", "Path: shortest", "saved"} {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in %q", w, out)
        }
    }
}
