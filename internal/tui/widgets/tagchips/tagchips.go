package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "wintitle/internal/tui/state"
    "wintitle/internal/tui/util"
)

// View renders preview tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    noColor = util.NoColor(noColor)

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t).Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.EDITED:
        return "Edited"
    case state.DIRTY:
        return "Dirty"
    case state.PROJECT:
        return "Project"
    case state.PATH_MODE:
        return "Path " + t.Label
    case state.UNKNOWN_TOKEN:
        return "Unknown {" + t.Label + "}"
    case state.LENGTH:
        return fmt.Sprintf("Len %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    bg, fg, ok := util.DefaultPalette().Chip(t.Kind)
    if !ok {
        return base
    }
    return base.Background(bg).Foreground(fg)
}
