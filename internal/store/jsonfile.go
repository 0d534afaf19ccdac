package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// JSONFile persists the record as a single JSON document mapping project
// names to {timestamp: hours} objects, rewritten in full on every save.
// This matches the layout of the legacy projects_data.json files.
type JSONFile struct {
	path string
}

// NewJSONFile creates a backend writing to the given path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load reads the record. A missing file is an empty record. Entries with
// unparseable timestamps or negative hours are dropped; logs are sorted
// chronologically after decoding since JSON objects carry no order.
func (f *JSONFile) Load() (Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("read %s: %w", f.path, err)
	}

	var raw map[string]map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("parse %s: %w", f.path, err)
	}

	record := Record{}
	for project, entries := range raw {
		log := TimeLog{}
		for stamp, hours := range entries {
			at, err := parseEntryTime(stamp)
			if err != nil || hours < 0 {
				continue
			}
			log = append(log, TimeEntry{At: at, Hours: RoundHours(hours)})
		}
		sort.Slice(log, func(i, j int) bool { return log[i].At.Before(log[j].At) })
		record[project] = log
	}
	return record, nil
}

// Save serializes the record and replaces the file via a temp file and
// rename, so the old content only disappears once the new content is fully
// written.
func (f *JSONFile) Save(record Record) error {
	raw := make(map[string]map[string]float64, len(record))
	for project, log := range record {
		entries := make(map[string]float64, len(log))
		for _, entry := range log {
			entries[entry.At.Format(EntryTimeLayout)] = entry.Hours
		}
		raw[project] = entries
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *JSONFile) Close() error {
	return nil
}

func parseEntryTime(stamp string) (time.Time, error) {
	at, err := time.Parse(EntryTimeLayout, stamp)
	if err == nil {
		return at, nil
	}
	return time.Parse(time.RFC3339, stamp)
}
