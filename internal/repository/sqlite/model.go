package sqlite

import "time"

// Project represents a row in the projects table.
type Project struct {
	ID        int64
	Name      string
	Summary   string
	CreatedAt time.Time
}

// Session represents a row in the sessions table.
// EndTime is a pointer to allow NULL for the open session.
type Session struct {
	ID        int64
	ProjectID int64
	StartTime time.Time
	EndTime   *time.Time
}
