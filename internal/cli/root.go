// Package cli wires the timecard engine to a cobra command surface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"timebot/internal/config"
	"timebot/internal/remote"
	"timebot/internal/store"
	"timebot/internal/submission"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	store    *store.TimecardStore
	workflow *submission.Workflow
	service  remote.Service
	config   *config.Config
	errors   *ErrorHandler
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(timecards *store.TimecardStore, workflow *submission.Workflow, service remote.Service, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		store:    timecards,
		workflow: workflow,
		service:  service,
		config:   cfg,
		errors:   NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "timebot",
		Short: "Log work hours and track weekly timecards",
		Long: `Timebot is a command-line client for the Timebot time-tracking service.

Employees log work hours against calendar dates, review the current week's
timecard with its regular/overtime split, and submit it for approval. Entries
are cached locally so previously fetched data stays available offline; the
cache refreshes at most once per calendar day unless a refresh is forced.

EXAMPLES:
  timebot submit --start 09:00 --end 17:30     # Log today's hours
  timebot list                                 # List cached time entries
  timebot week                                 # Current week summary with overtime split
  timebot card submit                          # Submit the current week's timecard
  timebot sync                                 # Force a refresh from the service

CONFIGURATION:
  TIMEBOT_API_BASE_URL     Remote service base URL (default: http://localhost:8080/api/v1)
  TIMEBOT_API_TOKEN        Bearer token for the remote service
  TIMEBOT_CACHE_DIR        Local cache directory (default: ~/.timebot)
  TIMEBOT_POLICY_OVERTIME_THRESHOLD
                           Weekly overtime threshold in hours (default: 40)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with the given context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addSubcommands registers all subcommands on the root
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		NewSubmitCommand(r).Command(),
		NewListCommand(r).Command(),
		NewWeekCommand(r).Command(),
		NewCardCommand(r).Command(),
		NewUpdateCommand(r).Command(),
		NewDeleteCommand(r).Command(),
		NewSyncCommand(r).Command(),
		NewStatsCommand(r).Command(),
		NewLogoutCommand(r).Command(),
	)
}
