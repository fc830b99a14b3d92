package util

import (
    "unicode/utf8"

    "wintitle/internal/tmpl"
    "wintitle/internal/tui/state"
)

// ComputeTags calculates the status chips for the current preview given
// the template being edited and the desired title it renders to.
//
// The returned slice preserves a stable order:
//   Edited, Dirty, Project, Path mode, Unknown token(s), Length
//
// Unknown tokens are listed once each, in template order; they render
// verbatim in the title, which is usually a typo.
func ComputeTags(template, desired string, s state.UIState) []state.Tag {
    tags := make([]state.Tag, 0, 6)

    if s.Edited {
        tags = append(tags, state.Tag{Kind: state.EDITED})
    }
    if s.Dirty {
        tags = append(tags, state.Tag{Kind: state.DIRTY})
    }
    if s.HasProject {
        tags = append(tags, state.Tag{Kind: state.PROJECT})
    }
    tags = append(tags, state.Tag{Kind: state.PATH_MODE, Label: string(s.PathMode)})

    seen := map[string]bool{}
    for _, tok := range tmpl.Tokens(template) {
        if tmpl.Known(tok) || seen[tok] {
            continue
        }
        seen[tok] = true
        tags = append(tags, state.Tag{Kind: state.UNKNOWN_TOKEN, Label: tok})
    }

    tags = append(tags, state.Tag{Kind: state.LENGTH, Value: utf8.RuneCountInString(desired)})
    return tags
}
