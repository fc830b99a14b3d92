package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"wintitle/internal/pathdisplay"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.jsonc"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadJSONCOverridesSomeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.jsonc")
	data := `{
  // comment
  "template": "{file} - {project}",
  "is_dirty_true": "*",
  "has_project_true": "", /* block */
  "path_display": "relative",
  "debug": true,
  "some_future_key": [1, 2],
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "{file} - {project}", s.Template)
	assert.Equal(t, "*", s.IsDirtyTrue)
	assert.Equal(t, "", s.HasProjectTrue)
	assert.Equal(t, pathdisplay.Relative, s.Mode())
	assert.True(t, s.Debug)
	assert.Equal(t, "untitled", s.Untitled)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"template": 3}`), 0o644))
	s, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.jsonc")
	require.NoError(t, WriteDefault(path))
	require.Error(t, WriteDefault(path))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	want := Defaults()
	want.Template = "{path}"
	want.Unregistered = true
	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConditions(t *testing.T) {
	c := Defaults().Conditions()
	assert.Equal(t, " ({project})", c["has_project_true"])
	assert.Equal(t, " •", c["is_dirty_true"])
	assert.Equal(t, "", c["is_dirty_false"])
}

func TestUntitledLabel(t *testing.T) {
	s := Settings{}
	assert.Equal(t, "untitled", s.UntitledLabel())
	s.Untitled = "scratch"
	assert.Equal(t, "scratch", s.UntitledLabel())
}

func TestStoreReloadKeepsOldOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"template": "a"}`), 0o644))
	st, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "a", st.Get().Template)

	require.NoError(t, os.WriteFile(path, []byte(`{"template": `), 0o644))
	require.Error(t, st.Reload())
	assert.Equal(t, "a", st.Get().Template)
}

func TestWatchReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "s.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"template": "a"}`), 0o644))
	st, err := NewStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan Settings, 4)
	done := make(chan error, 1)
	go func() { done <- st.Watch(ctx, func(s Settings) { changed <- s }, nil) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"template": "b"}`), 0o644))

	select {
	case s := <-changed:
		assert.Equal(t, "b", s.Template)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	assert.Equal(t, "b", st.Get().Template)

	cancel()
	require.NoError(t, <-done)
}
