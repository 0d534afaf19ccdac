// Package store owns the durable record of per-project time entries. The
// record itself is a plain mapping; persistence goes through an injected
// Backend so the JSON file and sqlite variants stay interchangeable.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidName rejects empty, blank or duplicate project names.
	ErrInvalidName = errors.New("invalid project name")
	// ErrNotFound indicates the named project is absent from the record.
	ErrNotFound = errors.New("project not found")
)

// Backend loads and saves the full record. Save replaces the stored content
// in one piece; Load on missing storage returns an empty record, not an
// error. Malformed entries (negative hours, unparseable timestamps) are
// skipped during Load rather than failing the whole read.
type Backend interface {
	Load() (Record, error)
	Save(Record) error
	Close() error
}

// Store keeps the in-memory record and persists it through a Backend.
type Store struct {
	backend Backend
	record  Record
}

// Open loads the record from the backend. On a load failure the returned
// store starts from an empty record and the error is reported alongside it
// so the caller can warn and continue.
func Open(backend Backend) (*Store, error) {
	record, err := backend.Load()
	if record == nil {
		record = Record{}
	}
	store := &Store{backend: backend, record: record}
	if err != nil {
		return store, fmt.Errorf("load record: %w", err)
	}
	return store, nil
}

// Record exposes the live record. Callers mutate it only through Store
// methods.
func (s *Store) Record() Record {
	return s.record
}

// Projects returns all stored project names in sorted order.
func (s *Store) Projects() []string {
	return s.record.Projects()
}

// Has reports whether the named project exists in the record.
func (s *Store) Has(name string) bool {
	_, ok := s.record[name]
	return ok
}

// Create adds a new project with an empty time log. The name must be
// non-blank and not already present.
func (s *Store) Create(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: blank", ErrInvalidName)
	}
	if s.Has(name) {
		return fmt.Errorf("%w: %q already exists", ErrInvalidName, name)
	}
	s.record[name] = TimeLog{}
	return nil
}

// AddEntry appends one time entry to the named project's log.
func (s *Store) AddEntry(name string, at time.Time, hours float64) {
	s.record.AddEntry(name, at, hours)
}

// TotalHours returns the project's accumulated hours, rounded to 0.1.
func (s *Store) TotalHours(name string) float64 {
	return s.record.TotalHours(name)
}

// MostRecent returns the most recently touched project name, or "" when the
// record is empty.
func (s *Store) MostRecent() string {
	return s.record.MostRecent()
}

// Save writes the full record through the backend.
func (s *Store) Save() error {
	if err := s.backend.Save(s.record); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
