// Package tmpl renders window title templates.
//
// A template mixes literal text with placeholders such as {path} and
// {project}, plus conditional tokens ({has_project}, {is_dirty}) that are
// swapped for user-configured text before placeholders are filled.
package tmpl

import "strings"

// Condition names recognised in templates.
const (
	HasProject = "has_project"
	IsDirty    = "is_dirty"
)

// Fields are the values available to a template.
type Fields struct {
	Path       string
	Project    string
	File       string
	Folder     string
	HasProject bool
	IsDirty    bool
}

// Conditions maps "<condition>_true" / "<condition>_false" to replacement
// text. Missing keys render as the empty string.
type Conditions map[string]string

// Render expands template. Unknown placeholders are kept verbatim.
func Render(template string, f Fields, cond Conditions) string {
	out := replaceCondition(template, HasProject, f.HasProject, cond)
	out = replaceCondition(out, IsDirty, f.IsDirty, cond)
	return substitute(out, map[string]string{
		"path":    f.Path,
		"project": f.Project,
		"file":    f.File,
		"folder":  f.Folder,
	})
}

func replaceCondition(template, name string, value bool, cond Conditions) string {
	key := name + "_false"
	if value {
		key = name + "_true"
	}
	return strings.ReplaceAll(template, "{"+name+"}", cond[key])
}

// substitute makes a single pass over s so that field values containing
// braces are never expanded again.
func substitute(s string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(s))
	for {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.IndexByte(s[open+1:], '}')
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		end += open + 1
		name := s[open+1 : end]
		if v, ok := values[name]; ok {
			b.WriteString(s[:open])
			b.WriteString(v)
			s = s[end+1:]
			continue
		}
		// unknown token: emit the opening brace and rescan after it
		b.WriteString(s[:open+1])
		s = s[open+1:]
	}
}

// Tokens lists the placeholder names found in template, in order.
func Tokens(template string) []string {
	var out []string
	s := template
	for {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			return out
		}
		end := strings.IndexByte(s[open+1:], '}')
		if end < 0 {
			return out
		}
		name := s[open+1 : open+1+end]
		if name != "" && !strings.ContainsAny(name, "{ ") {
			out = append(out, name)
		}
		s = s[open+1:]
	}
}

// Known reports whether name is a placeholder or condition Render understands.
func Known(name string) bool {
	switch name {
	case "path", "project", "file", "folder", HasProject, IsDirty:
		return true
	}
	return false
}
