package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	got, ok := ParseTimestamp("2024-06-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseTimestamp("2024-06-15T09:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, 9, got.Hour())

	_, ok = ParseTimestamp("")
	assert.False(t, ok)
	_, ok = ParseTimestamp("15/06/2024")
	assert.False(t, ok)
	_, ok = ParseTimestamp("soon")
	assert.False(t, ok)
}

func TestMetaStamping(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	var m Meta

	m.StampCreated("rec-1", now)
	assert.Equal(t, "rec-1", m.RecordID())
	assert.Equal(t, "2024-06-15T09:00:00Z", m.CreatedAt)
	assert.Equal(t, m.CreatedAt, m.UpdatedAt)

	m.StampUpdated(now.Add(time.Hour))
	assert.Equal(t, "2024-06-15T10:00:00Z", m.UpdatedAt)
	assert.Equal(t, "2024-06-15T09:00:00Z", m.CreatedAt)
}
