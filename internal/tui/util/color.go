package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"

    "wintitle/internal/tui/state"
)

// NoColor reports whether the tuner should render plain text: --no-color
// was passed or NO_COLOR is set.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette colors the tuner. Official/Desired tint the editor title and the
// custom title (and their diff spans); the rest back the status chips.
type Palette struct {
    Official lipgloss.AdaptiveColor
    Desired  lipgloss.AdaptiveColor

    Edited       lipgloss.Color
    Dirty        lipgloss.Color
    Project      lipgloss.Color
    UnknownToken lipgloss.Color
    PathMode     lipgloss.Color
    Length       lipgloss.Color
}

func DefaultPalette() Palette {
    return Palette{
        Official:     lipgloss.AdaptiveColor{Light: "160", Dark: "203"},
        Desired:      lipgloss.AdaptiveColor{Light: "28", Dark: "114"},
        Edited:       lipgloss.Color("#3D6DFF"),
        Dirty:        lipgloss.Color("#F0AD4E"),
        Project:      lipgloss.Color("#2AA876"),
        UnknownToken: lipgloss.Color("#D9534F"),
        PathMode:     lipgloss.Color("#6C757D"),
        Length:       lipgloss.Color("#5A5A5A"),
    }
}

// TitleStyles returns the styles for the editor title and the custom title.
func (p Palette) TitleStyles() (official, desired lipgloss.Style) {
    return lipgloss.NewStyle().Foreground(p.Official), lipgloss.NewStyle().Foreground(p.Desired)
}

// Chip returns the background and foreground of a status chip. ok is false
// for kinds without a color.
func (p Palette) Chip(k state.TagKind) (bg, fg lipgloss.Color, ok bool) {
    white := lipgloss.Color("#FFFFFF")
    switch k {
    case state.EDITED:
        return p.Edited, white, true
    case state.DIRTY:
        // light background
        return p.Dirty, lipgloss.Color("#111111"), true
    case state.PROJECT:
        return p.Project, white, true
    case state.UNKNOWN_TOKEN:
        return p.UnknownToken, white, true
    case state.PATH_MODE:
        return p.PathMode, white, true
    case state.LENGTH:
        return p.Length, white, true
    }
    return "", "", false
}
