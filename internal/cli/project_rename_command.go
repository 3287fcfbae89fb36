package cli

import (
	"context"
	"fmt"

	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// ProjectRenameCommand handles the project rename command
type ProjectRenameCommand struct {
	projects     services.ProjectService
	errorHandler *ErrorHandler
}

// NewProjectRenameCommand creates a new project rename command handler
func NewProjectRenameCommand(app *App) *ProjectRenameCommand {
	return &ProjectRenameCommand{
		projects:     app.services.Projects,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the project rename command
func (c *ProjectRenameCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "project rename", "usage: ttrack project rename <name or ID> <new name>")
	}

	project, err := c.projects.Resolve(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("rename project", err)
	}

	oldName := project.Name
	renamed, err := c.projects.Update(ctx, project.ID, args[1], "")
	if err != nil {
		return c.errorHandler.Handle("rename project", err)
	}

	fmt.Printf("Renamed project '%s' to '%s'\n", oldName, renamed.Name)
	return nil
}
