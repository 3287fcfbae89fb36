package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"timetracker/internal/domain"
	"timetracker/internal/logging"
	"timetracker/internal/repository/sqlite"
)

type reportServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewReportService creates a new report service.
func NewReportService(repo sqlite.Repository) ReportService {
	return &reportServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// TotalsForRange aggregates tracked time per project for [start, end).
// Sessions are bucketed by start time, so a session belongs to exactly one
// day and one week. An open session contributes its elapsed time up to now.
func (s *reportServiceImpl) TotalsForRange(ctx context.Context, start, end time.Time) (*domain.Report, error) {
	opts := sqlite.SearchOptions{StartTime: &start, EndTime: &end}
	return s.buildReport(ctx, domain.TimeRange{Start: start, End: end}, opts)
}

func (s *reportServiceImpl) Today(ctx context.Context) (*domain.Report, error) {
	r := domain.DayRange(timeNow())
	return s.TotalsForRange(ctx, r.Start, r.End)
}

func (s *reportServiceImpl) ThisWeek(ctx context.Context) (*domain.Report, error) {
	r := domain.WeekRange(timeNow())
	return s.TotalsForRange(ctx, r.Start, r.End)
}

func (s *reportServiceImpl) AllTime(ctx context.Context) (*domain.Report, error) {
	return s.buildReport(ctx, domain.TimeRange{}, sqlite.SearchOptions{})
}

func (s *reportServiceImpl) buildReport(ctx context.Context, tr domain.TimeRange, opts sqlite.SearchOptions) (*domain.Report, error) {
	dbSessions, err := s.repo.SearchSessions(ctx, opts)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	seconds := make(map[int64]int64)
	for _, dbSession := range dbSessions {
		session := s.mapper.Session.FromDatabase(*dbSession)
		seconds[session.ProjectID] += int64(session.DurationAt(now).Seconds())
	}

	names, err := s.projectNames(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{Range: tr}
	for projectID, total := range seconds {
		report.Totals = append(report.Totals, domain.ProjectTotal{
			ProjectID:   projectID,
			ProjectName: names[projectID],
			Seconds:     total,
		})
		report.TotalSeconds += total
	}

	// Descending by total, ties broken by name for stable output.
	sort.Slice(report.Totals, func(i, j int) bool {
		if report.Totals[i].Seconds != report.Totals[j].Seconds {
			return report.Totals[i].Seconds > report.Totals[j].Seconds
		}
		return report.Totals[i].ProjectName < report.Totals[j].ProjectName
	})

	return report, nil
}

func (s *reportServiceImpl) projectNames(ctx context.Context) (map[int64]string, error) {
	dbProjects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(dbProjects))
	for _, dbProject := range dbProjects {
		names[dbProject.ID] = dbProject.Name
	}
	return names, nil
}

// ExportCSV writes all-time per-project totals to path. Every project
// appears, including those with no tracked time. The file is written to a
// temporary sibling and renamed into place, so readers never observe a
// partial export.
func (s *reportServiceImpl) ExportCSV(ctx context.Context, path string) (*ExportResult, error) {
	dbProjects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	dbSessions, err := s.repo.SearchSessions(ctx, sqlite.SearchOptions{})
	if err != nil {
		return nil, err
	}

	now := timeNow()
	seconds := make(map[int64]int64)
	for _, dbSession := range dbSessions {
		session := s.mapper.Session.FromDatabase(*dbSession)
		seconds[session.ProjectID] += int64(session.DurationAt(now).Seconds())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ttrack-export-*.csv")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary export file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()

	writer := csv.NewWriter(tmp)
	if err := writer.Write([]string{"Project", "Total Time (HH:MM:SS)", "Total Seconds"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	var grandTotal int64
	for _, dbProject := range dbProjects {
		total := seconds[dbProject.ID]
		grandTotal += total
		record := []string{
			dbProject.Name,
			domain.FormatSeconds(total),
			strconv.FormatInt(total, 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	totalRecord := []string{"TOTAL", domain.FormatSeconds(grandTotal), strconv.FormatInt(grandTotal, 10)}
	if err := writer.Write(totalRecord); err != nil {
		return nil, fmt.Errorf("failed to write CSV total row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary export file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return nil, fmt.Errorf("failed to finalize export file: %w", err)
	}

	logging.Debugf("exported %d projects to %s", len(dbProjects), path)
	return &ExportResult{
		Path:         path,
		ProjectCount: len(dbProjects),
		TotalSeconds: grandTotal,
	}, nil
}
