package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanSession scans a single session from a database row
func ScanSession(scanner Scanner) (*Session, error) {
	session := &Session{}
	var endTime sql.NullTime

	err := scanner.Scan(
		&session.ID,
		&session.ProjectID,
		&session.StartTime,
		&endTime,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		session.EndTime = &endTime.Time
	}

	return session, nil
}

// ScanSessions scans multiple sessions from database rows
func ScanSessions(rows Rows) ([]*Session, error) {
	var sessions []*Session
	for rows.Next() {
		session, err := ScanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	var summary sql.NullString

	err := scanner.Scan(&project.ID, &project.Name, &summary, &project.CreatedAt)
	if err != nil {
		return nil, err
	}

	if summary.Valid {
		project.Summary = summary.String
	}

	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}
