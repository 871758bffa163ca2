package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timebot/internal/domain"
	"timebot/internal/timecalc"
	"timebot/internal/week"
)

// WeekCommand handles the week command
type WeekCommand struct {
	root *RootCommand
}

// NewWeekCommand creates a new week command handler
func NewWeekCommand(root *RootCommand) *WeekCommand {
	return &WeekCommand{root: root}
}

// Command builds the cobra command for the weekly summary
func (c *WeekCommand) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show the current week's hours with the overtime split",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.summary(cmd)
		},
	}
}

// summary prints per-day totals and the regular/overtime split for the week
func (c *WeekCommand) summary(cmd *cobra.Command) error {
	entries := c.root.store.CurrentWeekEntries()
	if len(entries) == 0 {
		// Nothing cached for this week yet; try the service once
		c.root.store.FetchTimeEntries(cmd.Context(), currentWeekFetchParams())
		entries = c.root.store.CurrentWeekEntries()
	}

	card := c.root.store.CurrentWeekTimecard()
	var start, end string
	if card != nil {
		start, end = card.StartDate, card.EndDate
	} else {
		start, end = week.Range(timeNow())
	}

	fmt.Printf("Week %s to %s\n", start, end)

	for _, day := range week.Days(start, end) {
		dayEntries := domain.FilterInRange(entries, day, day)
		if len(dayEntries) == 0 {
			continue
		}
		fmt.Printf("  %s  %s\n", day, timecalc.FormatHours(domain.SumHours(dayEntries)))
	}

	total := domain.SumHours(entries)
	split := week.SplitOvertime(total, c.root.config.Policy.OvertimeThreshold)

	fmt.Printf("Total:    %s\n", timecalc.FormatHours(total))
	fmt.Printf("Regular:  %s\n", timecalc.FormatHours(split.Regular))
	fmt.Printf("Overtime: %s\n", timecalc.FormatHours(split.Overtime))

	if card != nil {
		fmt.Printf("Timecard: #%d (%s)\n", card.ID, card.Status)
	}
	return nil
}
