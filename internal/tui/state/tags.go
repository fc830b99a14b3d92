package state

// TagKind enumerates the status chips shown under the preview.
type TagKind int

const (
    // Stable ordering for display: Edited, Dirty, Project, Path mode, Unknown token, Length
    EDITED TagKind = iota
    DIRTY
    PROJECT
    PATH_MODE
    UNKNOWN_TOKEN
    LENGTH
)

// Tag represents a single status chip. Value carries counters (LENGTH),
// Label carries text (PATH_MODE, UNKNOWN_TOKEN).
type Tag struct {
    Kind  TagKind
    Value int
    Label string
}
