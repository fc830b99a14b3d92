package diff

import (
    "strings"

    dmp "github.com/sergi/go-diff/diffmatchpatch"
    "github.com/charmbracelet/lipgloss"

    "wintitle/internal/tui/state"
    "wintitle/internal/tui/util"
)

type DiffView struct {
    noColor bool
}

func NewDiffView(noColor bool) DiffView { return DiffView{noColor: util.NoColor(noColor)} }

// View renders the editor's own title against the desired one. Titles are
// single lines, so the diff is character level: SideBySide puts them in two
// columns, Unified stacks them with -/+ markers.
func (v DiffView) View(s state.UIState, official, desired string) string {
    if official == desired {
        return "No changes\n"
    }
    spans := charDiff(official, desired)
    if s.View == state.SideBySide {
        return v.sideBySide(spans, s)
    }
    return v.unified(spans)
}

type span struct {
    op   dmp.Operation
    text string
}

func charDiff(a, b string) []span {
    d := dmp.New()
    diffs := d.DiffMain(a, b, false)
    diffs = d.DiffCleanupSemantic(diffs)
    out := make([]span, 0, len(diffs))
    for _, df := range diffs {
        out = append(out, span{op: df.Type, text: df.Text})
    }
    return out
}

func (v DiffView) styles() (del, add, delChar, addChar lipgloss.Style) {
    if v.noColor {
        plain := lipgloss.NewStyle()
        return plain, plain, plain, plain
    }
    del, add = util.DefaultPalette().TitleStyles()
    return del, add, del.Underline(true), add.Underline(true)
}

// side renders one side of the diff; keep is the op shown on that side.
func (v DiffView) side(spans []span, keep dmp.Operation) string {
    del, add, delChar, addChar := v.styles()
    line, char := del, delChar
    if keep == dmp.DiffInsert {
        line, char = add, addChar
    }
    var b strings.Builder
    for _, sp := range spans {
        switch sp.op {
        case keep:
            text := sp.text
            if v.noColor {
                text = "[" + text + "]"
            }
            b.WriteString(char.Render(text))
        case dmp.DiffEqual:
            b.WriteString(line.Render(sp.text))
        }
    }
    return b.String()
}

func (v DiffView) unified(spans []span) string {
    del, add, _, _ := v.styles()
    var b strings.Builder
    b.WriteString("EDITOR vs CUSTOM (Unified)\n")
    b.WriteString(del.Render("- ") + v.side(spans, dmp.DiffDelete) + "\n")
    b.WriteString(add.Render("+ ") + v.side(spans, dmp.DiffInsert) + "\n")
    return b.String()
}

func (v DiffView) sideBySide(spans []span, s state.UIState) string {
    const sep = " │ "
    colWidth := 40
    if s.Width > 0 {
        colWidth = (s.Width - len(sep)) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    left := lipgloss.NewStyle().Width(colWidth).Render(v.side(spans, dmp.DiffDelete))
    right := lipgloss.NewStyle().Width(colWidth).Render(v.side(spans, dmp.DiffInsert))
    var b strings.Builder
    b.WriteString("EDITOR │ CUSTOM\n")
    b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right))
    b.WriteString("\n")
    return b.String()
}
