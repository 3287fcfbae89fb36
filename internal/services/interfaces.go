package services

import (
	"context"
	"time"

	"timetracker/internal/domain"
	"timetracker/internal/repository/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// ProjectSummary pairs a project with its all-time tracked total.
type ProjectSummary struct {
	Project      *domain.Project `json:"project"`
	TotalSeconds int64           `json:"total_seconds"`
	SessionCount int             `json:"session_count"`
	IsTracking   bool            `json:"is_tracking"`
}

// TotalFormatted renders the all-time total as zero-padded HH:MM:SS.
func (ps *ProjectSummary) TotalFormatted() string {
	return domain.FormatSeconds(ps.TotalSeconds)
}

// StopResult describes a session that was just closed.
type StopResult struct {
	ProjectName string `json:"project_name"`
	Seconds     int64  `json:"seconds"`
}

// DurationFormatted renders the closed session's duration as HH:MM:SS.
func (sr *StopResult) DurationFormatted() string {
	return domain.FormatSeconds(sr.Seconds)
}

// StartResult describes the outcome of starting tracking. Stopped is the
// session that was closed by the switch, nil if nothing was being tracked.
type StartResult struct {
	Project *domain.Project `json:"project"`
	Session *domain.Session `json:"session"`
	Stopped *StopResult     `json:"stopped,omitempty"`
}

// ExportResult describes a completed CSV export.
type ExportResult struct {
	Path         string `json:"path"`
	ProjectCount int    `json:"project_count"`
	TotalSeconds int64  `json:"total_seconds"`
}

// ProjectService handles project lifecycle operations.
// Project references ("ref") accept a numeric ID or a project name.
type ProjectService interface {
	Create(ctx context.Context, name, summary string) (*domain.Project, error)
	List(ctx context.Context) ([]*ProjectSummary, error)
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	Update(ctx context.Context, id int64, name, summary string) (*domain.Project, error)
	Delete(ctx context.Context, ref string) (*domain.Project, error)
}

// TrackerService owns the open-session invariant: at most one session is
// open across the store at any time.
type TrackerService interface {
	Start(ctx context.Context, ref string) (*StartResult, error)
	StartLast(ctx context.Context) (*StartResult, error)
	Stop(ctx context.Context) (*StopResult, error)
	Status(ctx context.Context) (*domain.Status, error)
}

// ReportService handles read-side aggregation. It never mutates the store.
type ReportService interface {
	TotalsForRange(ctx context.Context, start, end time.Time) (*domain.Report, error)
	Today(ctx context.Context) (*domain.Report, error)
	ThisWeek(ctx context.Context) (*domain.Report, error)
	AllTime(ctx context.Context) (*domain.Report, error)
	ExportCSV(ctx context.Context, path string) (*ExportResult, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Projects ProjectService
	Tracker  TrackerService
	Reports  ReportService
}

// NewServiceContainer creates all services wired to the given repository.
func NewServiceContainer(repo sqlite.Repository) *ServiceContainer {
	projects := NewProjectService(repo)
	return &ServiceContainer{
		Projects: projects,
		Tracker:  NewTrackerService(repo, projects),
		Reports:  NewReportService(repo),
	}
}
