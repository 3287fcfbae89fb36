package cli

import (
	"context"
	"fmt"

	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// ProjectListCommand handles the project list command
type ProjectListCommand struct {
	projects     services.ProjectService
	errorHandler *ErrorHandler
}

// NewProjectListCommand creates a new project list command handler
func NewProjectListCommand(app *App) *ProjectListCommand {
	return &ProjectListCommand{
		projects:     app.services.Projects,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the project list command
func (c *ProjectListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "project list", "usage: ttrack project list")
	}

	summaries, err := c.projects.List(ctx)
	if err != nil {
		return c.errorHandler.Handle("list projects", err)
	}

	if len(summaries) == 0 {
		fmt.Println("No projects yet. Create one with: ttrack project add <name>")
		return nil
	}

	fmt.Printf("%-5s %-25s %-10s %s\n", "ID", "NAME", "TRACKED", "SUMMARY")
	for _, summary := range summaries {
		marker := ""
		if summary.IsTracking {
			marker = " *"
		}
		fmt.Printf("%-5d %-25s %-10s %s%s\n",
			summary.Project.ID,
			summary.Project.Name,
			summary.TotalFormatted(),
			summary.Project.Summary,
			marker,
		)
	}
	return nil
}
