// Package store persists one expense document per user as a JSON file.
//
// Loads fail soft: a missing, empty, or malformed file is reset to the
// empty skeleton and written back before being returned. Saves replace
// the whole document. Concurrent writers to the same user file are not
// supported.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"spendlog/internal/model"
)

// Store reads and writes per-user expense documents under a data
// directory. The file for user u is <dir>/<u>.json.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created on first
// save or reset.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the backing file path for a user.
func (s *Store) Path(user string) string {
	return filepath.Join(s.dir, user+".json")
}

// Load reads the user's document. If the file does not exist, does not
// parse, or lacks either top-level mapping, the document is reset to
// the skeleton and persisted immediately. No partial repair is
// attempted.
func (s *Store) Load(user string) (*model.Document, error) {
	data, err := os.ReadFile(s.Path(user))
	if err != nil {
		if os.IsNotExist(err) {
			return s.reset(user)
		}
		return nil, fmt.Errorf("reading %s: %w", s.Path(user), err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return s.reset(user)
	}
	if !doc.Valid() {
		return s.reset(user)
	}
	return &doc, nil
}

// Save writes the whole document, replacing any previous contents.
func (s *Store) Save(user string, doc *model.Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if err := os.WriteFile(s.Path(user), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path(user), err)
	}
	return nil
}

func (s *Store) reset(user string) (*model.Document, error) {
	doc := model.NewDocument()
	if err := s.Save(user, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
