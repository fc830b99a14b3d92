package helpoverlay

import (
    "fmt"
    "strings"

    "wintitle/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(s state.UIState) string {
    mode := "CMD"
    if s.Mode == state.INSERT {
        mode = "INSERT"
    }
    sections := []struct{
        title string
        keys  []string
    }{
        {"Template", []string{"i: edit template", "Esc/Enter: stop editing", "s: save to settings", "y: copy custom title"}},
        {"Sample", []string{"d: toggle dirty", "p: toggle project", "m: cycle path display"}},
        {"View", []string{"v: toggle unified/side-by-side", "?: this help", "q: quit"}},
        {"Tokens", []string{"{path} {file} {folder} {project}", "{is_dirty} {has_project}"}},
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
