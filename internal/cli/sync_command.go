package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timebot/internal/store"
)

// SyncCommand handles the sync command
type SyncCommand struct {
	root *RootCommand
}

// NewSyncCommand creates a new sync command handler
func NewSyncCommand(root *RootCommand) *SyncCommand {
	return &SyncCommand{root: root}
}

// Command builds the cobra command for forcing a cache refresh
func (c *SyncCommand) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Force a refresh of entries and the current week's timecard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.sync(cmd)
		},
	}
}

// sync bypasses the daily staleness policy and refreshes everything
func (c *SyncCommand) sync(cmd *cobra.Command) error {
	if !c.root.store.FetchTimeEntries(cmd.Context(), store.FetchParams{ForceRefresh: true}) {
		return c.root.errors.StoreFailure("refresh time entries", c.root.store.Err())
	}

	if !c.root.store.FetchCurrentWeekTimecard(cmd.Context()) {
		return c.root.errors.StoreFailure("refresh current week timecard", c.root.store.Err())
	}

	fmt.Printf("Synced %d entries.\n", len(c.root.store.Entries()))
	return nil
}
