package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	root *RootCommand
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(root *RootCommand) *LogoutCommand {
	return &LogoutCommand{root: root}
}

// Command builds the cobra command for clearing local state
func (c *LogoutCommand) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear all cached entries, the timecard, and the saved snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.logout(cmd)
		},
	}
}

// logout wipes the in-memory cache and the persisted snapshot
func (c *LogoutCommand) logout(cmd *cobra.Command) error {
	if err := c.root.store.Reset(cmd.Context()); err != nil {
		return c.root.errors.Handle("clear cached data", err)
	}

	fmt.Println("Cleared cached timecard data.")
	return nil
}
