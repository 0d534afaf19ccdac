package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFileLoadMissing(t *testing.T) {
	backend := NewJSONFile(filepath.Join(t.TempDir(), "projects_data.json"))
	record, err := backend.Load()
	require.NoError(t, err)
	assert.Empty(t, record)
}

func TestJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects_data.json")
	backend := NewJSONFile(path)

	record := Record{}
	record.AddEntry("alpha", at(t, "2024-03-01T09:15:00"), 0.5)
	record.AddEntry("alpha", at(t, "2024-03-02T18:30:01"), 1.2)
	record.AddEntry("beta", at(t, "2024-03-03T07:00:59"), 0.1)
	record["gamma"] = TimeLog{}

	require.NoError(t, backend.Save(record))

	loaded, err := backend.Load()
	require.NoError(t, err)

	assert.ElementsMatch(t, record.Projects(), loaded.Projects())
	for _, name := range record.Projects() {
		assert.Equal(t, record.TotalHours(name), loaded.TotalHours(name), name)
		assert.ElementsMatch(t, record[name], loaded[name], name)
	}
	assert.Equal(t, record.MostRecent(), loaded.MostRecent())
}

func TestJSONFileSaveCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "projects_data.json")
	backend := NewJSONFile(path)

	require.NoError(t, backend.Save(Record{"alpha": TimeLog{}}))

	loaded, err := backend.Load()
	require.NoError(t, err)
	assert.True(t, loaded != nil && len(loaded) == 1)
}

func TestJSONFileSkipsMalformedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects_data.json")
	raw := `{
  "alpha": {
    "2024-03-01T09:00:00": 0.5,
    "not-a-timestamp": 1.0,
    "2024-03-02T09:00:00": -2.0
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	loaded, err := NewJSONFile(path).Load()
	require.NoError(t, err)
	require.Len(t, loaded["alpha"], 1)
	assert.Equal(t, 0.5, loaded["alpha"][0].Hours)
}

func TestJSONFileLoadCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	record, err := NewJSONFile(path).Load()
	require.Error(t, err)
	assert.Empty(t, record, "corrupt storage degrades to an empty record")
}

func TestJSONFileEntriesSortedChronologically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects_data.json")
	backend := NewJSONFile(path)

	record := Record{}
	record.AddEntry("alpha", at(t, "2024-03-05T09:00:00"), 0.2)
	record.AddEntry("alpha", at(t, "2024-03-01T09:00:00"), 0.1)
	require.NoError(t, backend.Save(record))

	loaded, err := backend.Load()
	require.NoError(t, err)
	require.Len(t, loaded["alpha"], 2)
	assert.True(t, loaded["alpha"][0].At.Before(loaded["alpha"][1].At))
}

func TestJSONFileAcceptsRFC3339Timestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects_data.json")
	raw := `{"alpha": {"2024-03-01T09:00:00+02:00": 0.4}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	loaded, err := NewJSONFile(path).Load()
	require.NoError(t, err)
	require.Len(t, loaded["alpha"], 1)
	assert.Equal(t, 0.4, loaded["alpha"][0].Hours)
	assert.False(t, loaded["alpha"][0].At.Equal(time.Time{}))
}
