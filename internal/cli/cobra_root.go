package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"timetracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "ttrack",
		Short: "A command-line time tracker for personal projects",
		Long: `ttrack records the time you spend on personal projects.

At most one project is tracked at a time: starting a project while another
is being tracked stops the first one at the moment of the switch, so no
second of your day is ever counted twice.

EXAMPLES:
  ttrack project add website "Client site"   # Register a project
  ttrack project list                        # List projects with totals
  ttrack start website                       # Begin tracking
  ttrack start                               # Resume the last project
  ttrack status                              # What is being tracked now
  ttrack stop                                # Stop tracking
  ttrack report today                        # Today's per-project totals
  ttrack report week                         # This week's totals (from Monday)
  ttrack export report.csv                   # All-time totals as CSV

CONFIGURATION:
  Settings come from defaults, then ~/.timetracker/config.yaml, then
  environment variables:

    TTRACK_DB_DIR              Data directory (default: ~/.timetracker)
    TTRACK_DB_FILENAME         Database filename (default: projects.db)
    TTRACK_DB_QUERY_TIMEOUT    Query timeout (default: 10s)
    TTRACK_DB_WRITE_TIMEOUT    Write timeout (default: 5s)
    TTRACK_EXPORT_FILENAME     Default export filename (default: time_report.csv)
    TTRACK_APP_TIMEOUT         Command timeout (default: 60s)
    TTRACK_CONFIG              Config file location
    TTRACK_DEBUG               Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlagOverrides()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.Duration("app-timeout", 0, "Command timeout (overrides TTRACK_APP_TIMEOUT)")
}

// applyFlagOverrides updates the configuration with values from global flags
// before any command runs.
func (r *RootCommand) applyFlagOverrides() error {
	if r.config == nil {
		return nil
	}
	if timeout, _ := r.cmd.PersistentFlags().GetDuration("app-timeout"); timeout > 0 {
		r.config.Application.Timeout = timeout
	}
	return nil
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addSubcommands() {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	projectAddCmd := &cobra.Command{
		Use:   "add <name> [summary]",
		Short: "Create a new project",
		Long:  "Create a new project. Names are unique; everything after the name becomes the summary.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			if summary, _ := cmd.Flags().GetString("summary"); summary != "" {
				args = append([]string{args[0]}, summary)
			}
			return NewProjectAddCommand(r.app).Execute(ctx, args)
		},
	}
	projectAddCmd.Flags().StringP("summary", "s", "", "Project summary")

	projectListCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with their all-time totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewProjectListCommand(r.app).Execute(ctx, args)
		},
	}

	projectDeleteCmd := &cobra.Command{
		Use:   "delete <name or ID>",
		Short: "Delete a project and all its sessions",
		Long:  "Delete a project. All of its recorded sessions are removed with it. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewProjectDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	projectRenameCmd := &cobra.Command{
		Use:   "rename <name or ID> <new name>",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewProjectRenameCommand(r.app).Execute(ctx, args)
		},
	}

	projectCmd.AddCommand(projectAddCmd, projectListCmd, projectDeleteCmd, projectRenameCmd)

	startCmd := &cobra.Command{
		Use:   "start [name or ID]",
		Short: "Start tracking a project",
		Long: `Start tracking time for a project, referenced by name or ID.

If another project is being tracked it is stopped at the moment of the
switch. With no argument, the most recently tracked project is resumed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStartCommand(r.app).Execute(ctx, args)
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStopCommand(r.app).Execute(ctx, args)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show what is being tracked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStatusCommand(r.app).Execute(ctx, args)
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report [today|week|total]",
		Short: "Show per-project time totals",
		Long: `Show per-project time totals for a window, largest first.

Windows:
  today  - since local midnight (default)
  week   - since Monday local midnight
  total  - everything ever recorded`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewReportCommand(r.app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all-time totals to a CSV file",
		Long: `Write all-time per-project totals to a CSV file.

The file is written atomically; an interrupted export never leaves a
partial file behind.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			if output, _ := cmd.Flags().GetString("output"); output != "" {
				args = []string{output}
			}
			return NewExportCommand(r.app).Execute(ctx, args)
		},
	}
	exportCmd.Flags().StringP("output", "o", "", "Output file path")

	r.cmd.AddCommand(
		projectCmd,
		startCmd,
		stopCmd,
		statusCmd,
		reportCmd,
		exportCmd,
	)
}

func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}
