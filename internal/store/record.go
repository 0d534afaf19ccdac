package store

import (
	"math"
	"sort"
	"time"
)

// EntryTimeLayout is the timestamp format used in the persisted record,
// second-precision ISO-8601 without a zone offset.
const EntryTimeLayout = "2006-01-02T15:04:05"

// TimeEntry is one committed chunk of work: when it was committed and how
// many hours it carried, rounded to one decimal place.
type TimeEntry struct {
	At    time.Time
	Hours float64
}

// TimeLog is the chronological sequence of entries for one project. Order is
// not required for correctness; totals sum over all entries regardless.
type TimeLog []TimeEntry

// Record maps project names to their time logs.
type Record map[string]TimeLog

// RoundHours rounds an hour value to one decimal place, the unit of storage.
func RoundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}

// AddEntry appends one entry to a project's log. Every call appends a new
// entry, even for identical timestamps; nothing is merged or deduplicated.
func (r Record) AddEntry(project string, at time.Time, hours float64) {
	r[project] = append(r[project], TimeEntry{At: at, Hours: RoundHours(hours)})
}

// TotalHours sums all entry hours for a project, rounded to one decimal
// place. A project with no entries totals zero.
func (r Record) TotalHours(project string) float64 {
	var total float64
	for _, entry := range r[project] {
		total += entry.Hours
	}
	return RoundHours(total)
}

// MostRecent returns the project holding the single latest entry timestamp
// across the whole record. When no entries exist anywhere it falls back to
// the lexicographically smallest project name, and to "" on an empty record.
func (r Record) MostRecent() string {
	var recent string
	var recentAt time.Time
	for project, log := range r {
		for _, entry := range log {
			if entry.At.After(recentAt) {
				recentAt = entry.At
				recent = project
			}
		}
	}
	if recent != "" {
		return recent
	}
	names := r.Projects()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// Projects returns all project names in sorted order.
func (r Record) Projects() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
