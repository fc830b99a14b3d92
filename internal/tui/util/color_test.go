package util

import (
    "testing"

    "wintitle/internal/tui/state"
)

func TestNoColor(t *testing.T) {
    t.Setenv("NO_COLOR", "")
    if NoColor(false) {
        t.Fatalf("expected color when neither flag nor NO_COLOR is set")
    }
    if !NoColor(true) {
        t.Fatalf("explicit flag must disable color")
    }
    t.Setenv("NO_COLOR", "1")
    if !NoColor(false) {
        t.Fatalf("NO_COLOR must disable color")
    }
}

func TestChipCoversEveryKind(t *testing.T) {
    p := DefaultPalette()
    for _, k := range []state.TagKind{state.EDITED, state.DIRTY, state.PROJECT, state.UNKNOWN_TOKEN, state.PATH_MODE, state.LENGTH} {
        if bg, _, ok := p.Chip(k); !ok || bg == "" {
            t.Fatalf("no chip color for %v", k)
        }
    }
}
