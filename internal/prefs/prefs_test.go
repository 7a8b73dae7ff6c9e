package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

func TestGetReturnsDefaultsWhenMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "prefs.json"))

	p := store.Get("user-1")
	assert.True(t, p.SidebarExpanded)
	assert.Equal(t, model.ThemeLight, p.Theme)
}

func TestSetAndGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	store := NewStore(path)

	require.NoError(t, store.Set("user-1", model.Preferences{SidebarExpanded: false, Theme: model.ThemeDark}))

	p := store.Get("user-1")
	assert.False(t, p.SidebarExpanded)
	assert.Equal(t, model.ThemeDark, p.Theme)

	// a fresh store over the same file sees the persisted values
	p = NewStore(path).Get("user-1")
	assert.Equal(t, model.ThemeDark, p.Theme)

	// other users keep the defaults
	p = store.Get("user-2")
	assert.Equal(t, model.ThemeLight, p.Theme)
}

func TestSetRejectsUnknownTheme(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "prefs.json"))

	err := store.Set("user-1", model.Preferences{Theme: "solarized"})
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

func TestGetSurvivesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p := NewStore(path).Get("user-1")
	assert.Equal(t, model.ThemeLight, p.Theme)
}
