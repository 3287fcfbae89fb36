package cli

import (
	"fmt"
	"os"

	"timetracker/internal/config"
	"timetracker/internal/repository/sqlite"
	"timetracker/internal/services"
)

// App holds the wired services every command handler works against.
type App struct {
	services *services.ServiceContainer
	config   *config.Config
}

// NewApp creates a CLI application around already-constructed services.
func NewApp(container *services.ServiceContainer, cfg *config.Config) *App {
	return &App{
		services: container,
		config:   cfg,
	}
}

// NewAppFromConfig creates the production application: it ensures the data
// directory exists, opens the SQLite store and wires the services. The
// returned cleanup closes the store.
func NewAppFromConfig(cfg *config.Config) (*App, func() error, error) {
	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory %s: %w", cfg.Database.Dir, err)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := NewApp(services.NewServiceContainer(repo), cfg)
	return app, repo.Close, nil
}
