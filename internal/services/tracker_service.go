package services

import (
	"context"
	"strconv"

	"timetracker/internal/domain"
	"timetracker/internal/errors"
	"timetracker/internal/logging"
	"timetracker/internal/repository/sqlite"
)

// currentProjectKey is the config key holding the last started project ID.
const currentProjectKey = "current_project_id"

type trackerServiceImpl struct {
	repo     sqlite.Repository
	projects ProjectService
	mapper   *domain.Mapper
}

// NewTrackerService creates a new tracker service.
func NewTrackerService(repo sqlite.Repository, projects ProjectService) TrackerService {
	return &trackerServiceImpl{
		repo:     repo,
		projects: projects,
		mapper:   domain.NewMapper(),
	}
}

// Start begins tracking the referenced project. Any open session is closed
// at the new session's start time, so no instant is ever counted twice.
func (s *trackerServiceImpl) Start(ctx context.Context, ref string) (*StartResult, error) {
	project, err := s.projects.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.startProject(ctx, project)
}

// StartLast resumes tracking the most recently started project, as
// remembered in the config table.
func (s *trackerServiceImpl) StartLast(ctx context.Context) (*StartResult, error) {
	value, err := s.repo.GetConfigValue(ctx, currentProjectKey)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewNotFoundError("last tracked project", "none recorded")
		}
		return nil, err
	}

	id, parseErr := strconv.ParseInt(value, 10, 64)
	if parseErr != nil {
		return nil, errors.NewInvalidInputError(currentProjectKey, value, "stored project ID is not numeric")
	}

	dbProject, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project := s.mapper.Project.FromDatabase(*dbProject)
	return s.startProject(ctx, &project)
}

func (s *trackerServiceImpl) startProject(ctx context.Context, project *domain.Project) (*StartResult, error) {
	now := timeNow()

	dbStarted, dbStopped, err := s.repo.StartSession(ctx, project.ID, now)
	if err != nil {
		return nil, err
	}

	started := s.mapper.Session.FromDatabase(*dbStarted)
	result := &StartResult{
		Project: project,
		Session: &started,
	}

	if dbStopped != nil {
		stopped := s.mapper.Session.FromDatabase(*dbStopped)
		stoppedProject, err := s.repo.GetProject(ctx, stopped.ProjectID)
		if err != nil {
			return nil, err
		}
		result.Stopped = &StopResult{
			ProjectName: stoppedProject.Name,
			Seconds:     int64(stopped.Duration().Seconds()),
		}
		logging.Debugf("switched from project %d after %s", stopped.ProjectID, result.Stopped.DurationFormatted())
	}

	if err := s.repo.SetConfigValue(ctx, currentProjectKey, strconv.FormatInt(project.ID, 10)); err != nil {
		return nil, err
	}

	logging.Debugf("started session %d for project %d", started.ID, project.ID)
	return result, nil
}

// Stop closes the open session. Returns a not-tracking error when no
// session is open.
func (s *trackerServiceImpl) Stop(ctx context.Context) (*StopResult, error) {
	dbSession, err := s.repo.GetOpenSession(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewNotTrackingError()
		}
		return nil, err
	}

	session := s.mapper.Session.FromDatabase(*dbSession)
	closed := session.Stop(timeNow())

	updated := s.mapper.Session.ToDatabase(closed)
	if err := s.repo.UpdateSession(ctx, &updated); err != nil {
		return nil, err
	}

	dbProject, err := s.repo.GetProject(ctx, closed.ProjectID)
	if err != nil {
		return nil, err
	}

	logging.Debugf("stopped session %d for project %d", closed.ID, closed.ProjectID)
	return &StopResult{
		ProjectName: dbProject.Name,
		Seconds:     int64(closed.Duration().Seconds()),
	}, nil
}

// Status reports the current tracking state without mutating anything.
func (s *trackerServiceImpl) Status(ctx context.Context) (*domain.Status, error) {
	dbSession, err := s.repo.GetOpenSession(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return domain.Idle(), nil
		}
		return nil, err
	}

	session := s.mapper.Session.FromDatabase(*dbSession)
	dbProject, err := s.repo.GetProject(ctx, session.ProjectID)
	if err != nil {
		return nil, err
	}

	return domain.Tracking(dbProject.Name, session, timeNow()), nil
}
