// Package store persists the project document as a single JSON file.
// A missing or unreadable file falls back to a default empty document so
// the dashboard never crashes on startup.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ldevries/atelier/internal/model"
)

// ErrCorrupt wraps decode failures so callers can warn and continue with
// the default document instead of aborting.
var ErrCorrupt = errors.New("document is corrupt")

// Store binds document persistence to one file path. The mutex serializes
// the read-modify-write cycle when the TUI saves while a refresh is running.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// DefaultDocument returns the empty starting document: no tasks, payments,
// or contacts, week 1 of a six-week plan.
func DefaultDocument() *model.Document {
	return &model.Document{
		SchemaVersion: model.SchemaVersion,
		Project: model.Project{
			Name:        "New Project",
			CurrentWeek: 1,
			TotalWeeks:  6,
			Currency:    "R",
		},
		Tasks:    []model.Task{},
		Payments: []model.Payment{},
		Contacts: []model.Contact{},
	}
}

// LoadResult carries the loaded document plus non-fatal schema warnings.
type LoadResult struct {
	Doc      *model.Document
	Warnings []string
}

// Load reads the document from disk. A missing file yields the default
// document with no error. An unreadable or unparsable file yields the
// default document plus an ErrCorrupt-wrapped error the caller should
// surface as a warning. Schema violations are reported as warnings only.
func (s *Store) Load() (LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{Doc: DefaultDocument()}, nil
		}
		return LoadResult{Doc: DefaultDocument()},
			fmt.Errorf("%w: reading %s: %v", ErrCorrupt, s.path, err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return LoadResult{Doc: DefaultDocument()},
			fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, s.path, err)
	}

	result := LoadResult{Doc: &doc}
	result.Warnings = validateSchema(data)

	normalize(result.Doc)
	return result, nil
}

// Save serializes the whole document and atomically replaces the file via
// a temp file in the same directory. Any failure surfaces to the operator;
// there is no retry.
func (s *Store) Save(doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".atelier-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("syncing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Export copies the raw document bytes verbatim to dst, an identity
// transform of the persisted state.
func (s *Store) Export(dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// normalize fills defaults for fields older documents may omit.
func normalize(doc *model.Document) {
	if doc.SchemaVersion == 0 {
		doc.SchemaVersion = model.SchemaVersion
	}
	if doc.Project.CurrentWeek < 1 {
		doc.Project.CurrentWeek = 1
	}
	if doc.Project.TotalWeeks < 1 {
		doc.Project.TotalWeeks = 6
	}
	if doc.Project.Currency == "" {
		doc.Project.Currency = "R"
	}
	if doc.Tasks == nil {
		doc.Tasks = []model.Task{}
	}
	if doc.Payments == nil {
		doc.Payments = []model.Payment{}
	}
	if doc.Contacts == nil {
		doc.Contacts = []model.Contact{}
	}
}
