package absence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAbsencePeriod(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"no end date", "2024-01-01", "", "Since 01/01"},
		{"end already passed uses end date", "2024-01-01", "2020-01-01", "Until 01/01"},
		{"future end renders range", "2024-01-01", "2099-01-01", "01/01 - 01/01"},
		{"range with distinct days", "2024-06-10", "2024-06-20", "10/06 - 20/06"},
		{"unparseable start", "garbage", "2024-06-20", ""},
		{"unparseable end treated as open", "2024-06-10", "garbage", "Since 10/06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAbsencePeriod(tt.start, tt.end, now))
		})
	}
}
