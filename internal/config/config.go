package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/jsonc"

	"wintitle/internal/pathdisplay"
	"wintitle/internal/tmpl"
)

// Settings mirrors the editor package's settings file. Only the keys used
// by this program are modeled; anything else in the file is ignored.
type Settings struct {
	Template        string `json:"template"`
	HasProjectTrue  string `json:"has_project_true"`
	HasProjectFalse string `json:"has_project_false"`
	IsDirtyTrue     string `json:"is_dirty_true"`
	IsDirtyFalse    string `json:"is_dirty_false"`
	PathDisplay     string `json:"path_display"` // full | relative | shortest
	Untitled        string `json:"untitled"`
	Debug           bool   `json:"debug"`
	Unregistered    bool   `json:"unregistered"`
}

// Defaults returns the settings shipped with the editor package.
func Defaults() Settings {
	return Settings{
		Template:        "{path}{is_dirty}{has_project}",
		HasProjectTrue:  " ({project})",
		HasProjectFalse: "",
		IsDirtyTrue:     " •",
		IsDirtyFalse:    "",
		PathDisplay:     string(pathdisplay.Shortest),
		Untitled:        "untitled",
	}
}

// Conditions exposes the true/false replacement text to the renderer.
func (s Settings) Conditions() tmpl.Conditions {
	return tmpl.Conditions{
		tmpl.HasProject + "_true":  s.HasProjectTrue,
		tmpl.HasProject + "_false": s.HasProjectFalse,
		tmpl.IsDirty + "_true":     s.IsDirtyTrue,
		tmpl.IsDirty + "_false":    s.IsDirtyFalse,
	}
}

// Mode is the parsed path_display value.
func (s Settings) Mode() pathdisplay.Mode { return pathdisplay.ParseMode(s.PathDisplay) }

// UntitledLabel falls back to "untitled" when the setting is blank.
func (s Settings) UntitledLabel() string {
	if s.Untitled == "" {
		return "untitled"
	}
	return s.Untitled
}

// Load reads a JSON-with-comments settings file. A missing file yields the
// defaults; keys absent from the file keep their default value.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &s); err != nil {
		return Defaults(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes s as indented JSON. Comments in an existing file are lost.
func Save(path string, s Settings) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

const defaultFile = `// wintitle settings. Changes are picked up while "wintitle run" is active.
{
  // Tokens: {path} {project} {file} {folder} {has_project} {is_dirty}
  "template": "{path}{is_dirty}{has_project}",

  // Replacement text for the conditional tokens. May use other tokens.
  "has_project_true": " ({project})",
  "has_project_false": "",
  "is_dirty_true": " •",
  "is_dirty_false": "",

  // full | relative | shortest
  "path_display": "shortest",

  "untitled": "untitled",
  "unregistered": false,
  "debug": false,
}
`

// WriteDefault creates a commented settings file at path. It refuses to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	return os.WriteFile(path, []byte(defaultFile), 0o644)
}

// DefaultPath is <user config dir>/wintitle/settings.jsonc.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "wintitle.jsonc"
	}
	return filepath.Join(dir, "wintitle", "settings.jsonc")
}

// Store holds the current settings and reloads them on demand.
type Store struct {
	mu   sync.RWMutex
	path string
	cur  Settings
}

// NewStore loads path once. A parse error is returned alongside a store
// holding the defaults so callers may carry on.
func NewStore(path string) (*Store, error) {
	s, err := Load(path)
	return &Store{path: path, cur: s}, err
}

// Path returns the settings file backing the store.
func (st *Store) Path() string { return st.path }

// Get returns a copy of the current settings.
func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.cur
}

// Reload re-reads the file. On error the previous settings are kept.
func (st *Store) Reload() error {
	s, err := Load(st.path)
	if err != nil {
		return err
	}
	st.mu.Lock()
	st.cur = s
	st.mu.Unlock()
	return nil
}
