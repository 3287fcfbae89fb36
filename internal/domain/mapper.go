package domain

import (
	"timetracker/internal/repository/sqlite"
)

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(domainProject Project) sqlite.Project {
	return sqlite.Project{
		ID:        domainProject.ID,
		Name:      domainProject.Name,
		Summary:   domainProject.Summary,
		CreatedAt: domainProject.CreatedAt,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:        dbProject.ID,
		Name:      dbProject.Name,
		Summary:   dbProject.Summary,
		CreatedAt: dbProject.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []*Project {
	domainProjects := make([]*Project, len(dbProjects))
	for i, project := range dbProjects {
		domainProject := m.FromDatabase(*project)
		domainProjects[i] = &domainProject
	}
	return domainProjects
}

// SessionMapper handles conversion between domain and database Session models.
type SessionMapper struct{}

// NewSessionMapper creates a new SessionMapper instance.
func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// ToDatabase converts a domain Session to a database Session.
func (m *SessionMapper) ToDatabase(domainSession Session) sqlite.Session {
	return sqlite.Session{
		ID:        domainSession.ID,
		ProjectID: domainSession.ProjectID,
		StartTime: domainSession.StartTime,
		EndTime:   domainSession.EndTime,
	}
}

// FromDatabase converts a database Session to a domain Session.
func (m *SessionMapper) FromDatabase(dbSession sqlite.Session) Session {
	return Session{
		ID:        dbSession.ID,
		ProjectID: dbSession.ProjectID,
		StartTime: dbSession.StartTime,
		EndTime:   dbSession.EndTime,
	}
}

// FromDatabaseSlice converts a slice of database Sessions to domain Sessions.
func (m *SessionMapper) FromDatabaseSlice(dbSessions []*sqlite.Session) []*Session {
	domainSessions := make([]*Session, len(dbSessions))
	for i, session := range dbSessions {
		domainSession := m.FromDatabase(*session)
		domainSessions[i] = &domainSession
	}
	return domainSessions
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Project *ProjectMapper
	Session *SessionMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Project: NewProjectMapper(),
		Session: NewSessionMapper(),
	}
}
