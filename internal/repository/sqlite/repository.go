package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"timetracker/internal/errors"
	"timetracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible session search parameters.
// StartTime/EndTime bound the session start time as [StartTime, EndTime).
type SearchOptions struct {
	StartTime *time.Time
	EndTime   *time.Time
	ProjectID *int64
	OpenOnly  bool
}

// Repository defines the interface for database operations
type Repository interface {
	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	GetProjectByName(ctx context.Context, name string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id int64) error

	// Session operations
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, id int64) (*Session, error)
	ListSessions(ctx context.Context) ([]*Session, error)
	SearchSessions(ctx context.Context, opts SearchOptions) ([]*Session, error)
	UpdateSession(ctx context.Context, session *Session) error
	DeleteSession(ctx context.Context, id int64) error

	// Tracking operations
	GetOpenSession(ctx context.Context) (*Session, error)
	StartSession(ctx context.Context, projectID int64, startTime time.Time) (started *Session, stopped *Session, err error)

	// Config operations
	GetConfigValue(ctx context.Context, key string) (string, error)
	SetConfigValue(ctx context.Context, key, value string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Cascade deletes on sessions depend on foreign keys being enforced
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateProject creates a new project. A name collision with an existing
// project surfaces as a duplicate error.
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `INSERT INTO projects (name, summary) VALUES (?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, project.Name, project.Summary)
	if err != nil {
		if IsUniqueConstraintError(err) {
			return errors.NewDuplicateNameError("project", project.Name)
		}
		return err
	}

	project.ID = id
	return nil
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id int64) (*Project, error) {
	query := `
	SELECT id, name, summary, created_at
	FROM projects
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanProject, "project", fmt.Sprintf("%d", id), id)
}

// GetProjectByName retrieves a project by its unique name
func (r *SQLiteRepository) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	query := `
	SELECT id, name, summary, created_at
	FROM projects
	WHERE name = ?`

	return QuerySingle(ctx, r.db, query, ScanProject, "project", name, name)
}

// ListProjects retrieves all projects ordered by name
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `
	SELECT id, name, summary, created_at
	FROM projects
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// UpdateProject updates an existing project's name and summary
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `UPDATE projects SET name = ?, summary = ? WHERE id = ?`

	err := ExecuteWithRowsAffected(ctx, r.db, query, "project", fmt.Sprintf("%d", project.ID), project.Name, project.Summary, project.ID)
	if err != nil && IsUniqueConstraintError(err) {
		return errors.NewDuplicateNameError("project", project.Name)
	}
	return err
}

// DeleteProject deletes a project by ID. Its sessions are removed by the
// ON DELETE CASCADE foreign key.
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", fmt.Sprintf("%d", id), id)
}

// CreateSession creates a new session
func (r *SQLiteRepository) CreateSession(ctx context.Context, session *Session) error {
	query := `
	INSERT INTO sessions (project_id, start_time, end_time)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, session.ProjectID, FormatTimeForDB(session.StartTime), FormatTimePtrForDB(session.EndTime))
	if err != nil {
		return err
	}

	session.ID = id
	return nil
}

// GetSession retrieves a session by ID
func (r *SQLiteRepository) GetSession(ctx context.Context, id int64) (*Session, error) {
	query := `
	SELECT id, project_id, start_time, end_time
	FROM sessions
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanSession, "session", fmt.Sprintf("%d", id), id)
}

// ListSessions retrieves all sessions ordered by start time
func (r *SQLiteRepository) ListSessions(ctx context.Context) ([]*Session, error) {
	query := `
	SELECT id, project_id, start_time, end_time
	FROM sessions
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions")
}

// SearchSessions searches for sessions based on the provided options
func (r *SQLiteRepository) SearchSessions(ctx context.Context, opts SearchOptions) ([]*Session, error) {
	var conditions []string
	var args []interface{}

	if opts.StartTime != nil {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, FormatTimePtrForDB(opts.StartTime))
	}
	if opts.EndTime != nil {
		conditions = append(conditions, "start_time < ?")
		args = append(args, FormatTimePtrForDB(opts.EndTime))
	}
	if opts.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *opts.ProjectID)
	}
	if opts.OpenOnly {
		conditions = append(conditions, "end_time IS NULL")
	}

	query := `
	SELECT id, project_id, start_time, end_time
	FROM sessions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time ASC"

	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions", args...)
}

// UpdateSession updates an existing session
func (r *SQLiteRepository) UpdateSession(ctx context.Context, session *Session) error {
	query := `
	UPDATE sessions
	SET project_id = ?, start_time = ?, end_time = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "session", fmt.Sprintf("%d", session.ID), session.ProjectID, FormatTimeForDB(session.StartTime), FormatTimePtrForDB(session.EndTime), session.ID)
}

// DeleteSession deletes a session by ID
func (r *SQLiteRepository) DeleteSession(ctx context.Context, id int64) error {
	query := `DELETE FROM sessions WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "session", fmt.Sprintf("%d", id), id)
}

// GetOpenSession retrieves the currently open session, or a not found error
// if nothing is being tracked.
func (r *SQLiteRepository) GetOpenSession(ctx context.Context) (*Session, error) {
	query := `
	SELECT id, project_id, start_time, end_time
	FROM sessions
	WHERE end_time IS NULL
	ORDER BY start_time DESC
	LIMIT 1`

	return QuerySingle(ctx, r.db, query, ScanSession, "open session", "")
}

// StartSession atomically closes any open session and opens a new one for
// the given project. Both writes commit in a single transaction so the
// store never holds two open sessions, and the previous session's end time
// equals the new session's start time.
func (r *SQLiteRepository) StartSession(ctx context.Context, projectID int64, startTime time.Time) (*Session, *Session, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	// Capture the open session before closing it so the caller can report
	// what was stopped.
	row := tx.QueryRowContext(ctx, `
	SELECT id, project_id, start_time, end_time
	FROM sessions
	WHERE end_time IS NULL
	ORDER BY start_time DESC
	LIMIT 1`)

	stopped, err := ScanSession(row)
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, HandleDatabaseError("scan open session", err)
	}

	end := FormatTimeForDB(startTime)
	if _, err := tx.ExecContext(ctx, `UPDATE sessions SET end_time = ? WHERE end_time IS NULL`, end); err != nil {
		return nil, nil, HandleDatabaseError("close open sessions", err)
	}

	result, err := tx.ExecContext(ctx, `INSERT INTO sessions (project_id, start_time) VALUES (?, ?)`, projectID, FormatTimeForDB(startTime))
	if err != nil {
		return nil, nil, HandleDatabaseError("insert session", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, nil, HandleDatabaseError("get last insert ID", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, HandleDatabaseError("commit transaction", err)
	}

	if stopped != nil {
		closedAt := startTime
		stopped.EndTime = &closedAt
	}

	started := &Session{
		ID:        id,
		ProjectID: projectID,
		StartTime: startTime,
	}
	return started, stopped, nil
}

// GetConfigValue retrieves a value from the config table
func (r *SQLiteRepository) GetConfigValue(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", errors.NewNotFoundError("config value", key)
	}
	if err != nil {
		return "", HandleDatabaseError("query config", err)
	}
	return value, nil
}

// SetConfigValue stores a value in the config table, replacing any existing value
func (r *SQLiteRepository) SetConfigValue(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO config (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return HandleDatabaseError("set config value", err)
	}
	return nil
}
