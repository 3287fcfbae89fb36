package domain

import (
	"fmt"
	"time"
)

// TimeRange represents a half-open time window [Start, End).
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains returns true if t falls within the range.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.Start) && t.Before(tr.End)
}

// ProjectTotal is the summed duration of a project's sessions within a window.
type ProjectTotal struct {
	ProjectID   int64  `json:"project_id"`
	ProjectName string `json:"project_name"`
	Seconds     int64  `json:"seconds"`
}

// Formatted renders the total as zero-padded HH:MM:SS.
func (pt ProjectTotal) Formatted() string {
	return FormatSeconds(pt.Seconds)
}

// Report is a per-project time breakdown for a window, ordered by
// descending total, plus a grand total.
type Report struct {
	Range        TimeRange      `json:"range"`
	Totals       []ProjectTotal `json:"totals"`
	TotalSeconds int64          `json:"total_seconds"`
}

// IsEmpty returns true if no time was tracked in the window.
func (r *Report) IsEmpty() bool {
	return len(r.Totals) == 0
}

// TotalFormatted renders the grand total as zero-padded HH:MM:SS.
func (r *Report) TotalFormatted() string {
	return FormatSeconds(r.TotalSeconds)
}

// FormatSeconds formats a second count as zero-padded HH:MM:SS.
// Hours are unbounded and may exceed 24.
func FormatSeconds(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// FormatDuration formats a duration as zero-padded HH:MM:SS, truncating
// sub-second precision.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int64(d.Seconds()))
}

// DayRange returns the time range for the local day containing t.
func DayRange(t time.Time) TimeRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return TimeRange{
		Start: start,
		End:   start.Add(24 * time.Hour),
	}
}

// WeekRange returns the time range for the local week containing t.
// Weeks start on Monday at 00:00.
func WeekRange(t time.Time) TimeRange {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -daysSinceMonday)
	return TimeRange{
		Start: monday,
		End:   monday.AddDate(0, 0, 7),
	}
}
