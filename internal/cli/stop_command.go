package cli

import (
	"context"
	"fmt"

	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// StopCommand handles the stop command
type StopCommand struct {
	tracker      services.TrackerService
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		tracker:      app.services.Tracker,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "stop", "usage: ttrack stop")
	}

	result, err := c.tracker.Stop(ctx)
	if err != nil {
		if c.errorHandler.IsNotTrackingError(err) {
			fmt.Println("Nothing is being tracked")
			return nil
		}
		return c.errorHandler.Handle("stop tracking", err)
	}

	fmt.Printf("Stopped '%s' after %s\n", result.ProjectName, result.DurationFormatted())
	return nil
}
