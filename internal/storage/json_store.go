// Package storage persists the registry collections to a single JSON file.
// The file is human-readable (indented, camelCase keys) and holds one object
// with four arrays: cinemas, suppliers, films, rentals. Rental records carry
// only the cinemaId/filmId foreign keys; the object-level back-references are
// rebuilt by the registry after every load.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"cinema_rental/internal/model"
	"cinema_rental/internal/registry"
)

// State is the on-disk shape of the catalog.
type State struct {
	Cinemas   []*model.Cinema   `json:"cinemas"`
	Suppliers []*model.Supplier `json:"suppliers"`
	Films     []*model.Film     `json:"films"`
	Rentals   []*model.Rental   `json:"rentals"`
}

func emptyState() *State {
	return &State{
		Cinemas:   []*model.Cinema{},
		Suppliers: []*model.Supplier{},
		Films:     []*model.Film{},
		Rentals:   []*model.Rental{},
	}
}

// Store reads and writes the catalog state at a fixed file path.
type Store struct {
	path string
}

// New constructs a Store for the given file path. The path's directory is
// created lazily on the first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns data/data.json under the current working directory,
// creating the data directory if it is missing.
func DefaultPath() string {
	dir := "data"
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "data.json")
}

// Load reads the state file. A missing file or a file with only whitespace
// yields four empty collections rather than an error, so a fresh install
// starts with an empty catalog.
func (s *Store) Load() (*State, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyState(), nil
		}
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return emptyState(), nil
	}
	state := emptyState()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Save rewrites the complete state file, creating the parent directory when
// needed. The previous contents are always replaced wholesale.
func (s *Store) Save(state *State) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// LoadInto loads the state file and replaces the registry collections with
// it; the registry rebinds the rental back-references as part of the swap.
func (s *Store) LoadInto(r *registry.Registry) error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	r.ReplaceAll(state.Cinemas, state.Suppliers, state.Films, state.Rentals)
	return nil
}

// SaveFrom snapshots the registry collections and writes them out.
func (s *Store) SaveFrom(r *registry.Registry) error {
	return s.Save(&State{
		Cinemas:   r.Cinemas(),
		Suppliers: r.Suppliers(),
		Films:     r.Films(),
		Rentals:   r.Rentals(),
	})
}
