package domain

import "time"

// Project represents a named bucket of tracked work in the domain model.
// This is a pure domain model without database-specific concerns.
type Project struct {
	ID        int64
	Name      string
	Summary   string
	CreatedAt time.Time
}

// NewProject creates a new Project with the given name and summary.
func NewProject(name, summary string) Project {
	return Project{
		Name:    name,
		Summary: summary,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.Name != ""
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}
