// Package title computes the editor's native window title and the title the
// user wants shown instead.
package title

import (
	"path/filepath"
	"strings"

	"wintitle/internal/config"
	"wintitle/internal/pathdisplay"
	"wintitle/internal/tmpl"
)

// EditorSuffix is appended by the editor to every window title.
const EditorSuffix = " - Sublime Text"

const (
	dirtyMarker        = " •"
	unregisteredSuffix = " (UNREGISTERED)"
)

// Document is the editor's view of an open buffer.
type Document struct {
	ID       int64  `json:"id"`
	Name     string `json:"name,omitempty"`      // set by plugins for scratch views
	FileName string `json:"file_name,omitempty"` // absolute path, empty when unsaved
	Dirty    bool   `json:"dirty"`
}

// Window is the editor window owning a document.
type Window struct {
	ID              int64    `json:"id"`
	Folders         []string `json:"folders,omitempty"`
	ProjectFileName string   `json:"project_file_name,omitempty"`
}

// Titles is the result of one computation.
type Titles struct {
	Official string
	Desired  string
	Project  string
}

// Project derives a short project name for w: the project file's name,
// otherwise the open folders' names, otherwise "".
func Project(w *Window) string {
	if w == nil {
		return ""
	}
	if w.ProjectFileName != "" {
		return folderName(w.ProjectFileName)
	}
	names := make([]string, 0, len(w.Folders))
	for _, f := range w.Folders {
		names = append(names, folderName(f))
	}
	return strings.Join(names, ", ")
}

func folderName(p string) string {
	base := baseName(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Official reproduces the title the editor itself would show. It is used to
// locate the live window by substring match, so it must track the editor's
// format exactly. The full path is deliberately not included.
func Official(doc Document, project string, s config.Settings) string {
	name := doc.Name
	if name == "" {
		name = doc.FileName
	}
	if name == "" {
		name = "untitled"
	}
	var b strings.Builder
	b.WriteString(baseName(name))
	if doc.Dirty {
		b.WriteString(dirtyMarker)
	}
	if project != "" {
		b.WriteString(" (" + project + ")")
	}
	b.WriteString(EditorSuffix)
	if s.Unregistered {
		b.WriteString(unregisteredSuffix)
	}
	return b.String()
}

// Desired renders the user's template for doc.
func Desired(doc Document, w *Window, project string, s config.Settings, home string) string {
	path := displayPath(doc, w, s, home)
	file := doc.Name
	if file == "" && doc.FileName != "" {
		file = baseName(doc.FileName)
	}
	if file == "" {
		file = s.UntitledLabel()
	}
	out := tmpl.Render(s.Template, tmpl.Fields{
		Path:       path,
		Project:    project,
		File:       file,
		Folder:     folderName(dirName(path)),
		HasProject: project != "",
		IsDirty:    doc.Dirty,
	}, s.Conditions())
	if s.Unregistered {
		out += unregisteredSuffix
	}
	return out
}

// displayPath prefers a plugin-assigned view name over the file path.
func displayPath(doc Document, w *Window, s config.Settings, home string) string {
	if doc.Name != "" {
		return doc.Name
	}
	root := ""
	if w != nil && len(w.Folders) > 0 {
		root = w.Folders[0]
	}
	return pathdisplay.Resolve(doc.FileName, root, s.Mode(), home, s.UntitledLabel())
}

// Compute returns both titles for doc. It has no side effects; callers
// record the dirty state afterwards.
func Compute(doc Document, w *Window, s config.Settings, home string) Titles {
	project := Project(w)
	return Titles{
		Official: Official(doc, project, s),
		Desired:  Desired(doc, w, project, s, home),
		Project:  project,
	}
}

// baseName and dirName accept both separators: the editor may report
// Windows paths to a process built for another OS.
func baseName(p string) string {
	p = strings.TrimRight(p, `/\`)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

func dirName(p string) string {
	i := strings.LastIndexAny(p, `/\`)
	if i < 0 {
		return ""
	}
	return p[:i]
}
