package domain

import (
	"time"
)

// Session represents one contiguous start-to-stop interval of tracking
// against a project. A session with no end time is open; at most one open
// session exists in the store at any time.
type Session struct {
	ID        int64
	ProjectID int64
	StartTime time.Time
	EndTime   *time.Time
}

// NewSession creates a new open Session for the given project.
func NewSession(projectID int64, startTime time.Time) Session {
	return Session{
		ProjectID: projectID,
		StartTime: startTime,
	}
}

// IsOpen returns true if the session is still being tracked (no end time).
func (s Session) IsOpen() bool {
	return s.EndTime == nil
}

// Stop sets the end time for the session.
func (s Session) Stop(endTime time.Time) Session {
	s.EndTime = &endTime
	return s
}

// Duration returns the duration of the session.
// If the session is still open, it returns the elapsed time up to now.
func (s Session) Duration() time.Duration {
	if s.EndTime == nil {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// DurationAt returns the duration of the session, counting an open session
// up to the given reference time.
func (s Session) DurationAt(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	d := end.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// IsValid checks if the session has valid data.
func (s Session) IsValid() bool {
	if s.ProjectID <= 0 {
		return false
	}
	if s.StartTime.IsZero() {
		return false
	}
	if s.EndTime != nil && s.EndTime.Before(s.StartTime) {
		return false
	}
	return true
}
