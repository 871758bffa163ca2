package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timebot/internal/timecalc"
	"timebot/internal/week"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	root *RootCommand
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(root *RootCommand) *StatsCommand {
	return &StatsCommand{root: root}
}

// Command builds the cobra command for entry statistics
func (c *StatsCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate hour statistics for a date range",
		Long: `Show aggregate hour statistics for a date range.

Without flags the current calendar week is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.stats(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("from", "", "Range start date (YYYY-MM-DD)")
	flags.String("to", "", "Range end date (YYYY-MM-DD)")

	return cmd
}

// stats fetches aggregate statistics from the service and prints them
func (c *StatsCommand) stats(cmd *cobra.Command) error {
	flags := cmd.Flags()
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	if from == "" && to == "" {
		from, to = week.Range(timeNow())
	}

	stats, err := c.root.service.GetEntryStats(cmd.Context(), from, to)
	if err != nil {
		return c.root.errors.Handle("fetch entry statistics", err)
	}
	if stats == nil {
		fmt.Println("No statistics available for that range.")
		return nil
	}

	fmt.Printf("Statistics %s to %s\n", from, to)
	fmt.Printf("  Entries:       %d\n", stats.TotalEntries)
	fmt.Printf("  Total:         %s\n", timecalc.FormatHours(stats.TotalHours))
	fmt.Printf("  Regular:       %s\n", timecalc.FormatHours(stats.RegularHours))
	fmt.Printf("  Overtime:      %s\n", timecalc.FormatHours(stats.OvertimeHours))
	fmt.Printf("  Daily average: %s\n", timecalc.FormatHours(stats.AverageHoursPerDay))
	return nil
}
