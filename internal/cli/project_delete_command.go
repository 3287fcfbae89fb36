package cli

import (
	"context"
	"fmt"

	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// ProjectDeleteCommand handles the project delete command
type ProjectDeleteCommand struct {
	projects     services.ProjectService
	errorHandler *ErrorHandler
}

// NewProjectDeleteCommand creates a new project delete command handler
func NewProjectDeleteCommand(app *App) *ProjectDeleteCommand {
	return &ProjectDeleteCommand{
		projects:     app.services.Projects,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the project delete command. Deleting a project also removes
// all of its recorded sessions.
func (c *ProjectDeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "project delete", "usage: ttrack project delete <name or ID>")
	}

	project, err := c.projects.Delete(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("delete project", err)
	}

	fmt.Printf("Deleted project '%s' and all its sessions\n", project.Name)
	return nil
}
