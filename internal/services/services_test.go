package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetracker/internal/errors"
	"timetracker/internal/repository/sqlite"
)

func setupServices(t *testing.T) (*ServiceContainer, *sqlite.SQLiteRepository) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "projects.db")
	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() { repo.Close() })
	return NewServiceContainer(repo), repo
}

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()

	original := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = original })
}

func TestProjectServiceCreate(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		projectName string
		summary     string
		wantErr     bool
		errType     errors.ErrorType
	}{
		{
			name:        "valid project",
			projectName: "website",
			summary:     "Client website redesign",
			wantErr:     false,
		},
		{
			name:        "name is trimmed",
			projectName: "  api  ",
			summary:     "",
			wantErr:     false,
		},
		{
			name:        "empty name rejected",
			projectName: "   ",
			summary:     "",
			wantErr:     true,
			errType:     errors.ErrorTypeValidation,
		},
		{
			name:        "duplicate name rejected",
			projectName: "website",
			summary:     "",
			wantErr:     true,
			errType:     errors.ErrorTypeDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, err := services.Projects.Create(ctx, tt.projectName, tt.summary)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, tt.errType))
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, project.ID)
			assert.Equal(t, strings.TrimSpace(tt.projectName), project.Name)
		})
	}
}

func TestProjectServiceResolve(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	created, err := services.Projects.Create(ctx, "backend", "API work")
	require.NoError(t, err)

	byName, err := services.Projects.Resolve(ctx, "backend")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := services.Projects.Resolve(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	_, err = services.Projects.Resolve(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = services.Projects.Resolve(ctx, "  ")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestProjectServiceUpdate(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	created, err := services.Projects.Create(ctx, "oldname", "before")
	require.NoError(t, err)

	updated, err := services.Projects.Update(ctx, created.ID, "newname", "after")
	require.NoError(t, err)
	assert.Equal(t, "newname", updated.Name)
	assert.Equal(t, "after", updated.Summary)

	resolved, err := services.Projects.Resolve(ctx, "newname")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)

	_, err = services.Projects.Resolve(ctx, "oldname")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestProjectServiceDeleteRemovesSessions(t *testing.T) {
	services, repo := setupServices(t)
	ctx := context.Background()

	project, err := services.Projects.Create(ctx, "doomed", "")
	require.NoError(t, err)

	_, err = services.Tracker.Start(ctx, "doomed")
	require.NoError(t, err)
	_, err = services.Tracker.Stop(ctx)
	require.NoError(t, err)

	deleted, err := services.Projects.Delete(ctx, "doomed")
	require.NoError(t, err)
	assert.Equal(t, project.ID, deleted.ID)

	sessions, err := repo.SearchSessions(ctx, sqlite.SearchOptions{ProjectID: &project.ID})
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestTrackerStartStop(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	_, err := services.Projects.Create(ctx, "website", "")
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	fixedClock(t, start)

	result, err := services.Tracker.Start(ctx, "website")
	require.NoError(t, err)
	assert.Equal(t, "website", result.Project.Name)
	assert.True(t, result.Session.IsOpen())
	assert.Nil(t, result.Stopped)

	fixedClock(t, start.Add(30*time.Minute+30*time.Second))

	stopped, err := services.Tracker.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, "website", stopped.ProjectName)
	assert.Equal(t, int64(1830), stopped.Seconds)
	assert.Equal(t, "00:30:30", stopped.DurationFormatted())
}

func TestTrackerStopWhenIdle(t *testing.T) {
	services, _ := setupServices(t)

	_, err := services.Tracker.Stop(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotTracking))
}

func TestTrackerStartSwitchesProjects(t *testing.T) {
	services, repo := setupServices(t)
	ctx := context.Background()

	_, err := services.Projects.Create(ctx, "first", "")
	require.NoError(t, err)
	_, err = services.Projects.Create(ctx, "second", "")
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	fixedClock(t, start)

	_, err = services.Tracker.Start(ctx, "first")
	require.NoError(t, err)

	switchAt := start.Add(15 * time.Minute)
	fixedClock(t, switchAt)

	result, err := services.Tracker.Start(ctx, "second")
	require.NoError(t, err)
	require.NotNil(t, result.Stopped)
	assert.Equal(t, "first", result.Stopped.ProjectName)
	assert.Equal(t, int64(900), result.Stopped.Seconds)

	// Exactly one open session remains, and it belongs to the new project
	open, err := repo.GetOpenSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, open.ID)
	assert.Equal(t, switchAt.Unix(), open.StartTime.Unix())
}

func TestTrackerStartLast(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	_, err := services.Tracker.StartLast(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = services.Projects.Create(ctx, "resumable", "")
	require.NoError(t, err)
	_, err = services.Tracker.Start(ctx, "resumable")
	require.NoError(t, err)
	_, err = services.Tracker.Stop(ctx)
	require.NoError(t, err)

	resumed, err := services.Tracker.StartLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, "resumable", resumed.Project.Name)
	assert.True(t, resumed.Session.IsOpen())
}

func TestTrackerStatus(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	status, err := services.Tracker.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsTracking())

	_, err = services.Projects.Create(ctx, "active", "")
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	fixedClock(t, start)
	_, err = services.Tracker.Start(ctx, "active")
	require.NoError(t, err)

	fixedClock(t, start.Add(45*time.Minute+30*time.Second))
	status, err = services.Tracker.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsTracking())
	assert.Equal(t, "active", status.ProjectName)
	assert.Equal(t, "00:45:30", status.ElapsedFormatted())
}

func trackSession(t *testing.T, services *ServiceContainer, project string, start time.Time, d time.Duration) {
	t.Helper()

	ctx := context.Background()
	fixedClock(t, start)
	_, err := services.Tracker.Start(ctx, project)
	require.NoError(t, err)
	fixedClock(t, start.Add(d))
	_, err = services.Tracker.Stop(ctx)
	require.NoError(t, err)
}

func TestReportTotalsForRange(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	_, err := services.Projects.Create(ctx, "website", "")
	require.NoError(t, err)
	_, err = services.Projects.Create(ctx, "api", "")
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	trackSession(t, services, "website", day.Add(9*time.Hour), 30*time.Minute+30*time.Second)
	trackSession(t, services, "api", day.Add(11*time.Hour), 15*time.Minute)
	// Session on the next day must not count toward the first
	trackSession(t, services, "website", day.Add(25*time.Hour), time.Hour)

	report, err := services.Reports.TotalsForRange(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)

	require.Len(t, report.Totals, 2)
	assert.Equal(t, "website", report.Totals[0].ProjectName)
	assert.Equal(t, "00:30:30", report.Totals[0].Formatted())
	assert.Equal(t, "api", report.Totals[1].ProjectName)
	assert.Equal(t, "00:15:00", report.Totals[1].Formatted())
	assert.Equal(t, int64(2730), report.TotalSeconds)
	assert.Equal(t, "00:45:30", report.TotalFormatted())
}

func TestReportGrandTotalIsSumOfProjects(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	names := []string{"one", "two", "three"}
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	for i, name := range names {
		_, err := services.Projects.Create(ctx, name, "")
		require.NoError(t, err)
		trackSession(t, services, name, base.Add(time.Duration(i)*2*time.Hour), time.Duration(i+1)*17*time.Minute)
	}

	report, err := services.Reports.AllTime(ctx)
	require.NoError(t, err)

	var sum int64
	for _, total := range report.Totals {
		sum += total.Seconds
	}
	assert.Equal(t, sum, report.TotalSeconds)
	require.Len(t, report.Totals, 3)
	// Ordered by descending total
	assert.Equal(t, "three", report.Totals[0].ProjectName)
	assert.Equal(t, "one", report.Totals[2].ProjectName)
}

func TestReportOpenSessionCountsElapsed(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	_, err := services.Projects.Create(ctx, "ongoing", "")
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	fixedClock(t, start)
	_, err = services.Tracker.Start(ctx, "ongoing")
	require.NoError(t, err)

	fixedClock(t, start.Add(10*time.Minute))
	report, err := services.Reports.Today(ctx)
	require.NoError(t, err)

	require.Len(t, report.Totals, 1)
	assert.Equal(t, int64(600), report.Totals[0].Seconds)
}

func TestReportEmptyWindow(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	_, err := services.Projects.Create(ctx, "untracked", "")
	require.NoError(t, err)

	report, err := services.Reports.Today(ctx)
	require.NoError(t, err)
	assert.True(t, report.IsEmpty())
	assert.Equal(t, "00:00:00", report.TotalFormatted())
}

func TestExportCSV(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	_, err := services.Projects.Create(ctx, "website", "")
	require.NoError(t, err)
	_, err = services.Projects.Create(ctx, "idle-project", "")
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	trackSession(t, services, "website", start, 30*time.Minute+30*time.Second)

	path := filepath.Join(t.TempDir(), "export.csv")
	result, err := services.Reports.ExportCSV(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 2, result.ProjectCount)
	assert.Equal(t, int64(1830), result.TotalSeconds)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Project,Total Time (HH:MM:SS),Total Seconds", lines[0])
	assert.Contains(t, lines, "website,00:30:30,1830")
	assert.Contains(t, lines, "idle-project,00:00:00,0")
	assert.Equal(t, "TOTAL,00:30:30,1830", lines[3])

	// No temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestExportCSVOverwritesAtomically(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	_, err := services.Projects.Create(ctx, "solo", "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	_, err = services.Reports.ExportCSV(ctx, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "solo,00:00:00,0")
}
