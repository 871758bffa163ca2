package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timebot/internal/store"
	"timebot/internal/timecalc"
)

// ListCommand handles the list command
type ListCommand struct {
	root *RootCommand
}

// NewListCommand creates a new list command handler
func NewListCommand(root *RootCommand) *ListCommand {
	return &ListCommand{root: root}
}

// Command builds the cobra command for listing entries
func (c *ListCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached time entries, newest first",
		Long: `List the cached time entries.

The cache refreshes from the service at most once per calendar day; pass
--refresh to force a refresh. Cached entries remain available offline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.list(cmd)
		},
	}

	flags := cmd.Flags()
	flags.Bool("refresh", false, "Force a refresh from the remote service")
	flags.String("from", "", "Only fetch entries from this date (YYYY-MM-DD)")
	flags.String("to", "", "Only fetch entries up to this date (YYYY-MM-DD)")
	flags.String("status", "", "Filter by status (pending, approved, rejected)")

	return cmd
}

// list fetches (subject to the staleness policy) and prints entries
func (c *ListCommand) list(cmd *cobra.Command) error {
	flags := cmd.Flags()
	refresh, _ := flags.GetBool("refresh")
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	status, _ := flags.GetString("status")

	ok := c.root.store.FetchTimeEntries(cmd.Context(), store.FetchParams{
		StartDate:    from,
		EndDate:      to,
		ForceRefresh: refresh,
	})
	if !ok && len(c.root.store.Entries()) == 0 {
		return c.root.errors.StoreFailure("fetch time entries", c.root.store.Err())
	}
	if !ok {
		// Serve the stale cache; the engine does not flag staleness
		fmt.Printf("warning: %s (showing cached data)\n", c.root.store.Err())
	}

	entries := c.root.store.Entries()
	if len(entries) == 0 {
		fmt.Println("No time entries found.")
		return nil
	}

	for _, entry := range entries {
		if status != "" && string(entry.Status) != status {
			continue
		}
		label := entry.Project
		if label == "" {
			label = entry.Description
		}
		fmt.Printf("%-6d %s  %s - %s  %-9s %-9s %s\n",
			entry.ID,
			entry.Date,
			entry.StartTime,
			entry.EndTime,
			timecalc.FormatHours(entry.Hours()),
			entry.Status,
			label,
		)
	}
	return nil
}
