package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"timetracker/internal/domain"
	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// ExportCommand handles the export command
type ExportCommand struct {
	reports      services.ReportService
	errorHandler *ErrorHandler
	defaultFile  string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		reports:      app.services.Reports,
		errorHandler: NewErrorHandler(),
		defaultFile:  app.config.Export.DefaultFilename,
	}
}

// Execute runs the export command. An optional argument names the output
// file; otherwise the configured default in the current directory is used.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "export", "usage: ttrack export [file]")
	}

	path := c.defaultFile
	if len(args) == 1 && args[0] != "" {
		path = args[0]
	}
	path = filepath.Clean(path)

	result, err := c.reports.ExportCSV(ctx, path)
	if err != nil {
		return c.errorHandler.Handle("export report", err)
	}

	fmt.Printf("Exported %d projects (%s total) to %s\n",
		result.ProjectCount,
		domain.FormatSeconds(result.TotalSeconds),
		result.Path,
	)
	return nil
}
