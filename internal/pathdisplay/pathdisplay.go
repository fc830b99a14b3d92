// Package pathdisplay turns a document path into the string shown in a
// window title.
package pathdisplay

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Mode selects how a document path is displayed.
type Mode string

const (
	Full     Mode = "full"
	Relative Mode = "relative"
	Shortest Mode = "shortest"
)

// ParseMode maps a settings value to a Mode. Anything unrecognised is Full.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Relative:
		return Relative
	case Shortest:
		return Shortest
	default:
		return Full
	}
}

// Next cycles full -> relative -> shortest -> full.
func (m Mode) Next() Mode {
	switch m {
	case Full:
		return Relative
	case Relative:
		return Shortest
	default:
		return Full
	}
}

// Resolve returns the display form of filePath.
//
// An empty filePath yields untitled. Full collapses a homeDir prefix to "~".
// Relative is computed against projectRoot only when both paths live on the
// same volume; otherwise it degrades to the full form. Shortest picks the
// shorter of the two, preferring full on a tie.
func Resolve(filePath, projectRoot string, mode Mode, homeDir, untitled string) string {
	if filePath == "" {
		return untitled
	}
	full := collapseHome(filePath, homeDir)
	if mode != Relative && mode != Shortest {
		return full
	}

	rel := full
	if projectRoot != "" && sameVolume(filePath, projectRoot) {
		if volumeName(filePath) != "" {
			rel = volumeRel(projectRoot, filePath)
		} else if r, err := filepath.Rel(projectRoot, filePath); err == nil {
			rel = r
		}
	}
	if mode == Relative {
		return rel
	}
	if utf8.RuneCountInString(full) <= utf8.RuneCountInString(rel) {
		return full
	}
	return rel
}

func collapseHome(p, home string) string {
	if home != "" && strings.HasPrefix(p, home) {
		return "~" + p[len(home):]
	}
	return p
}

func sameVolume(a, b string) bool {
	return strings.EqualFold(volumeName(a), volumeName(b))
}

// volumeName extracts a drive ("C:") or UNC ("\\host\share") prefix from p.
// Paths are reported by the editor, which may run on a different OS than
// this process, so filepath.VolumeName is not enough.
func volumeName(p string) string {
	if len(p) >= 2 && p[1] == ':' && isLetter(p[0]) {
		return p[:2]
	}
	if len(p) >= 2 && isSlash(p[0]) && isSlash(p[1]) && (len(p) == 2 || !isSlash(p[2])) {
		// \\host\share
		rest := p[2:]
		n := 0
		for i := 0; i < len(rest); i++ {
			if isSlash(rest[i]) {
				n++
				if n == 2 {
					return p[:2+i]
				}
			}
		}
		return p
	}
	return ""
}

// volumeRel is filepath.Rel for drive and UNC paths, independent of the host
// separator. Components compare case-insensitively and the result uses the
// separator found in target.
func volumeRel(base, target string) string {
	tail := target[len(volumeName(target)):]
	sep := "\\"
	if i := strings.IndexAny(tail, `/\`); i >= 0 && tail[i] == '/' {
		sep = "/"
	}
	b := splitPath(base[len(volumeName(base)):])
	t := splitPath(tail)
	n := 0
	for n < len(b) && n < len(t) && strings.EqualFold(b[n], t[n]) {
		n++
	}
	parts := make([]string, 0, len(b)-n+len(t)-n)
	for range b[n:] {
		parts = append(parts, "..")
	}
	parts = append(parts, t[n:]...)
	if len(parts) == 0 {
		return "."
	}
	return strings.Join(parts, sep)
}

func splitPath(p string) []string {
	var out []string
	for _, c := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if c != "." {
			out = append(out, c)
		}
	}
	return out
}

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }
func isSlash(c byte) bool  { return c == '/' || c == '\\' }
