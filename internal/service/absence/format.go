package absence

import (
	"time"

	"github.com/stafftrack/hr-core-go/internal/domain/record"
)

const dayMonth = "02/01"

// FormatAbsencePeriod renders an absence interval for display:
//
//	"Since DD/MM"       no end date
//	"Until DD/MM"       end date already passed relative to now
//	"DD/MM - DD/MM"     end date still ahead
//
// The already-past branch keeps historical context readable and must use
// the end date, not the start.
func FormatAbsencePeriod(startDate, endDate string, now time.Time) string {
	start, ok := record.ParseTimestamp(startDate)
	if !ok {
		return ""
	}

	if endDate == "" {
		return "Since " + start.Format(dayMonth)
	}

	end, ok := record.ParseTimestamp(endDate)
	if !ok {
		return "Since " + start.Format(dayMonth)
	}

	if end.Before(now) {
		return "Until " + end.Format(dayMonth)
	}

	return start.Format(dayMonth) + " - " + end.Format(dayMonth)
}
