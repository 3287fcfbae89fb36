package domain

import "time"

// TrackingState describes whether the store has an open session.
type TrackingState string

const (
	StateIdle     TrackingState = "idle"
	StateTracking TrackingState = "tracking"
)

// Status is the current tracking state, recomputed on demand from the open
// session row rather than held as live process state.
type Status struct {
	State       TrackingState `json:"state"`
	SessionID   int64         `json:"session_id,omitempty"`
	ProjectID   int64         `json:"project_id,omitempty"`
	ProjectName string        `json:"project_name,omitempty"`
	StartTime   time.Time     `json:"start_time,omitempty"`
	Elapsed     time.Duration `json:"elapsed,omitempty"`
}

// Idle returns a status with no open session.
func Idle() *Status {
	return &Status{State: StateIdle}
}

// Tracking returns a status for an open session, with elapsed time
// measured up to now.
func Tracking(projectName string, session Session, now time.Time) *Status {
	return &Status{
		State:       StateTracking,
		SessionID:   session.ID,
		ProjectID:   session.ProjectID,
		ProjectName: projectName,
		StartTime:   session.StartTime,
		Elapsed:     session.DurationAt(now),
	}
}

// IsTracking returns true if a session is currently open.
func (s *Status) IsTracking() bool {
	return s.State == StateTracking
}

// ElapsedFormatted renders the elapsed time as zero-padded HH:MM:SS.
func (s *Status) ElapsedFormatted() string {
	return FormatDuration(s.Elapsed)
}
