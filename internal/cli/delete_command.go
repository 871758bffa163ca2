package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	root *RootCommand
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(root *RootCommand) *DeleteCommand {
	return &DeleteCommand{root: root}
}

// Command builds the cobra command for deleting an entry
func (c *DeleteCommand) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.delete(cmd, args)
		},
	}
}

// delete removes an entry, committing locally only after confirmation
func (c *DeleteCommand) delete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id: %s", args[0])
	}

	if !c.root.store.DeleteTimeEntry(cmd.Context(), id) {
		return c.root.errors.StoreFailure("delete time entry", c.root.store.Err())
	}

	fmt.Printf("Deleted entry %d.\n", id)
	return nil
}
