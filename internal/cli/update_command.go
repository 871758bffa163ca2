package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timebot/internal/domain"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	root *RootCommand
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(root *RootCommand) *UpdateCommand {
	return &UpdateCommand{root: root}
}

// Command builds the cobra command for updating an entry
func (c *UpdateCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a time entry",
		Long: `Update a cached time entry by id.

Fields not passed as flags keep their cached values. The change is committed
locally only after the service confirms it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.update(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.String("date", "", "Entry date (YYYY-MM-DD)")
	flags.String("start", "", "Start time (HH:mm)")
	flags.String("end", "", "End time (HH:mm)")
	flags.String("project", "", "Project label")
	flags.String("note", "", "Free-text description")

	return cmd
}

// update merges flag values over the cached entry and commits the change
func (c *UpdateCommand) update(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id: %s", args[0])
	}

	var current *domain.TimeEntry
	for _, entry := range c.root.store.Entries() {
		if entry.ID == id {
			found := entry
			current = &found
			break
		}
	}
	if current == nil {
		return fmt.Errorf("no cached entry with id %d; run 'timebot list' first", id)
	}

	data := domain.EntryData{
		Date:        current.Date,
		StartTime:   current.StartTime,
		EndTime:     current.EndTime,
		Project:     current.Project,
		Description: current.Description,
	}

	flags := cmd.Flags()
	if date, _ := flags.GetString("date"); date != "" {
		data.Date = date
	}
	if start, _ := flags.GetString("start"); start != "" {
		data.StartTime = start
	}
	if end, _ := flags.GetString("end"); end != "" {
		data.EndTime = end
	}
	if project, _ := flags.GetString("project"); project != "" {
		data.Project = project
	}
	if note, _ := flags.GetString("note"); note != "" {
		data.Description = note
	}

	if !c.root.store.UpdateTimeEntry(cmd.Context(), id, data) {
		return c.root.errors.StoreFailure("update time entry", c.root.store.Err())
	}

	fmt.Printf("Updated entry %d.\n", id)
	return nil
}
