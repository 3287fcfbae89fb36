package cli

import (
	"context"
	"fmt"

	"timetracker/internal/domain"
	"timetracker/internal/errors"
	"timetracker/internal/services"
)

// ReportCommand handles the report command
type ReportCommand struct {
	reports      services.ReportService
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		reports:      app.services.Reports,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the report command. The window argument is one of "today",
// "week" or "total"; the default is "today".
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	window := "today"
	if len(args) == 1 {
		window = args[0]
	} else if len(args) > 1 {
		return errors.NewInvalidInputError("command", "report", "usage: ttrack report [today|week|total]")
	}

	var report *domain.Report
	var heading string
	var err error

	switch window {
	case "today":
		heading = "Time tracked today"
		report, err = c.reports.Today(ctx)
	case "week":
		heading = "Time tracked this week"
		report, err = c.reports.ThisWeek(ctx)
	case "total":
		heading = "Time tracked all time"
		report, err = c.reports.AllTime(ctx)
	default:
		return errors.NewInvalidInputError("window", window, "must be one of: today, week, total")
	}
	if err != nil {
		return c.errorHandler.Handle("build report", err)
	}

	fmt.Println(heading)
	if report.IsEmpty() {
		fmt.Println("  no time tracked")
		return nil
	}

	for _, total := range report.Totals {
		fmt.Printf("  %-25s %s\n", total.ProjectName, total.Formatted())
	}
	fmt.Printf("  %-25s %s\n", "TOTAL", report.TotalFormatted())
	return nil
}
