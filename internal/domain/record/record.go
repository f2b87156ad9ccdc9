// Package record holds the persistence-shape primitives shared by every
// stored entity: identifier/timestamp metadata and the append-only history
// actions. Timestamps are ISO-8601 strings so the serialized JSON stays
// byte-compatible with the persisted collections.
package record

import "time"

// Meta is embedded by every stored entity.
type Meta struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RecordID returns the entity identifier.
func (m *Meta) RecordID() string {
	return m.ID
}

// StampCreated assigns the identifier and sets both timestamps.
func (m *Meta) StampCreated(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now.Format(time.RFC3339)
	m.UpdatedAt = m.CreatedAt
}

// StampUpdated refreshes the update timestamp.
func (m *Meta) StampUpdated(now time.Time) {
	m.UpdatedAt = now.Format(time.RFC3339)
}

// HistoryAction labels one row in an append-only history sub-collection.
type HistoryAction string

const (
	HistoryCreated  HistoryAction = "created"
	HistoryUpdated  HistoryAction = "updated"
	HistoryRefilled HistoryAction = "refilled"
)

// ParseTimestamp accepts the date shapes found in persisted data: plain
// dates and full ISO-8601 timestamps. Anything else reports false, which
// callers treat as "never matches" rather than an error.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
