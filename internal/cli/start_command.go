package cli

import (
	"context"
	"fmt"
	"strings"

	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// StartCommand handles the start command
type StartCommand struct {
	tracker      services.TrackerService
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		tracker:      app.services.Tracker,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command. With no arguments it resumes the most
// recently tracked project. Starting while another session is open closes
// that session at the moment of the switch.
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	var result *services.StartResult
	var err error

	if len(args) == 0 {
		result, err = c.tracker.StartLast(ctx)
		if err != nil && c.errorHandler.IsNotFoundError(err) {
			return errors.NewInvalidInputError("command", "start", "no previous project to resume; usage: ttrack start <name or ID>")
		}
	} else {
		result, err = c.tracker.Start(ctx, strings.Join(args, " "))
	}
	if err != nil {
		return c.errorHandler.Handle("start tracking", err)
	}

	if result.Stopped != nil {
		fmt.Printf("Stopped '%s' after %s\n", result.Stopped.ProjectName, result.Stopped.DurationFormatted())
	}
	fmt.Printf("Started tracking '%s'\n", result.Project.Name)
	return nil
}
