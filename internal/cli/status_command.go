package cli

import (
	"context"
	"fmt"

	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// StatusCommand handles the status command
type StatusCommand struct {
	tracker      services.TrackerService
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		tracker:      app.services.Tracker,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "status", "usage: ttrack status")
	}

	status, err := c.tracker.Status(ctx)
	if err != nil {
		return c.errorHandler.Handle("get status", err)
	}

	if !status.IsTracking() {
		fmt.Println("Nothing is being tracked")
		return nil
	}

	fmt.Printf("Tracking '%s' for %s (since %s)\n",
		status.ProjectName,
		status.ElapsedFormatted(),
		status.StartTime.Local().Format("2006-01-02 15:04:05"),
	)
	return nil
}
