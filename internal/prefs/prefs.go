// Package prefs persists per-user UI preferences (theme, sidebar state) in a
// small JSON file next to the server.
package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// ErrInvalidTheme is returned by Set for themes other than light and dark.
var ErrInvalidTheme = errors.New("invalid theme")

// Store keeps preferences keyed by user id. Reads of a user that was never
// saved return the defaults.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Get(userID string) model.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return model.DefaultPreferences()
	}
	p, ok := all[userID]
	if !ok {
		return model.DefaultPreferences()
	}
	if !model.ValidTheme(p.Theme) {
		p.Theme = model.ThemeLight
	}
	return p
}

func (s *Store) Set(userID string, p model.Preferences) error {
	if !model.ValidTheme(p.Theme) {
		return ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		all = map[string]model.Preferences{}
	}
	all[userID] = p
	return s.save(all)
}

func (s *Store) load() (map[string]model.Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	all := map[string]model.Preferences{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *Store) save(all map[string]model.Preferences) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
