package editor

import (
    "fmt"
    "strings"

    "wintitle/internal/tui/state"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View frames the template input with the current mode.
func (Editor) View(s state.UIState, input string) string {
    header := "[CMD]  press i to edit"
    if s.Mode == state.INSERT {
        header = "[INSERT]  Esc to finish"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Template  %s\n", header)
    fmt.Fprintf(&b, "%s\n", input)
    return b.String()
}
