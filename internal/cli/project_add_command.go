package cli

import (
	"context"
	"fmt"
	"strings"

	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// ProjectAddCommand handles the project add command
type ProjectAddCommand struct {
	projects     services.ProjectService
	errorHandler *ErrorHandler
}

// NewProjectAddCommand creates a new project add command handler
func NewProjectAddCommand(app *App) *ProjectAddCommand {
	return &ProjectAddCommand{
		projects:     app.services.Projects,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the project add command. The first argument is the project
// name; any remaining arguments become the summary.
func (c *ProjectAddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "project add", "usage: ttrack project add <name> [summary]")
	}

	name := args[0]
	summary := strings.Join(args[1:], " ")

	project, err := c.projects.Create(ctx, name, summary)
	if err != nil {
		return c.errorHandler.Handle("add project", err)
	}

	fmt.Printf("Created project '%s' (ID %d)\n", project.Name, project.ID)
	return nil
}
