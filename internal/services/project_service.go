package services

import (
	"context"
	"strconv"
	"strings"

	"timetracker/internal/domain"
	"timetracker/internal/errors"
	"timetracker/internal/logging"
	"timetracker/internal/repository/sqlite"
	"timetracker/internal/validation"
)

type projectServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.ProjectValidator
}

// NewProjectService creates a new project service backed by the repository.
func NewProjectService(repo sqlite.Repository) ProjectService {
	return &projectServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewProjectValidator(),
	}
}

func (s *projectServiceImpl) Create(ctx context.Context, name, summary string) (*domain.Project, error) {
	cleanName, err := s.validator.GetValidProjectName(name)
	if err != nil {
		return nil, errors.NewValidationError(validation.UserMessage(err), err)
	}
	if err := s.validator.ValidateSummary(summary); err != nil {
		return nil, errors.NewValidationError(validation.UserMessage(err), err)
	}

	project := domain.NewProject(cleanName, summary)
	dbProject := s.mapper.Project.ToDatabase(project)

	if err := s.repo.CreateProject(ctx, &dbProject); err != nil {
		return nil, err
	}
	project.ID = dbProject.ID

	logging.Debugf("created project %d (%s)", project.ID, cleanName)
	return &project, nil
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*ProjectSummary, error) {
	dbProjects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	dbSessions, err := s.repo.SearchSessions(ctx, sqlite.SearchOptions{})
	if err != nil {
		return nil, err
	}

	now := timeNow()
	totals := make(map[int64]int64)
	counts := make(map[int64]int)
	open := make(map[int64]bool)
	for _, dbSession := range dbSessions {
		session := s.mapper.Session.FromDatabase(*dbSession)
		totals[session.ProjectID] += int64(session.DurationAt(now).Seconds())
		counts[session.ProjectID]++
		if session.IsOpen() {
			open[session.ProjectID] = true
		}
	}

	summaries := make([]*ProjectSummary, 0, len(dbProjects))
	for _, dbProject := range dbProjects {
		project := s.mapper.Project.FromDatabase(*dbProject)
		summaries = append(summaries, &ProjectSummary{
			Project:      &project,
			TotalSeconds: totals[project.ID],
			SessionCount: counts[project.ID],
			IsTracking:   open[project.ID],
		})
	}
	return summaries, nil
}

// Resolve looks up a project by numeric ID or by name. A numeric reference
// is tried as an ID first, then as a name if no project has that ID.
func (s *projectServiceImpl) Resolve(ctx context.Context, ref string) (*domain.Project, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return nil, errors.NewInvalidInputError("project", ref, "project name or ID is required")
	}

	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil && id > 0 {
		dbProject, err := s.repo.GetProject(ctx, id)
		if err == nil {
			project := s.mapper.Project.FromDatabase(*dbProject)
			return &project, nil
		}
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, err
		}
	}

	dbProject, err := s.repo.GetProjectByName(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	project := s.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

func (s *projectServiceImpl) Update(ctx context.Context, id int64, name, summary string) (*domain.Project, error) {
	if err := s.validator.ValidateProjectID(id); err != nil {
		return nil, errors.NewValidationError(validation.UserMessage(err), err)
	}

	dbProject, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project := s.mapper.Project.FromDatabase(*dbProject)

	if name != "" {
		cleanName, err := s.validator.GetValidProjectName(name)
		if err != nil {
			return nil, errors.NewValidationError(validation.UserMessage(err), err)
		}
		project.Name = cleanName
	}
	if summary != "" {
		if err := s.validator.ValidateSummary(summary); err != nil {
			return nil, errors.NewValidationError(validation.UserMessage(err), err)
		}
		project.Summary = summary
	}

	updated := s.mapper.Project.ToDatabase(project)
	if err := s.repo.UpdateProject(ctx, &updated); err != nil {
		return nil, err
	}

	logging.Debugf("updated project %d", id)
	return &project, nil
}

// Delete removes the project and, via the schema's cascade, all of its
// sessions. The deleted project is returned so callers can report it.
func (s *projectServiceImpl) Delete(ctx context.Context, ref string) (*domain.Project, error) {
	project, err := s.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteProject(ctx, project.ID); err != nil {
		return nil, err
	}

	logging.Debugf("deleted project %d (%s)", project.ID, project.Name)
	return project, nil
}
