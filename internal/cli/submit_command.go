package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timebot/internal/timecalc"
)

// SubmitCommand handles the submit command
type SubmitCommand struct {
	root *RootCommand
}

// NewSubmitCommand creates a new submit command handler
func NewSubmitCommand(root *RootCommand) *SubmitCommand {
	return &SubmitCommand{root: root}
}

// Command builds the cobra command for logging hours
func (c *SubmitCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Log work hours for a date",
		Long: `Log a work interval for a calendar date.

The date defaults to today and the times default to the configured standard
shift. End times at or before the start time are treated as an overnight
shift ending the next day; an end time equal to the start time is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.submit(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("date", "", "Entry date (YYYY-MM-DD, default today)")
	flags.String("start", "", "Start time (HH:mm)")
	flags.String("end", "", "End time (HH:mm)")
	flags.String("project", "", "Project label")
	flags.String("note", "", "Free-text description")

	return cmd
}

// submit applies flag overrides to the form and runs the submission workflow
func (c *SubmitCommand) submit(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if date, _ := flags.GetString("date"); date != "" {
		c.root.workflow.SetDate(date)
	}
	if start, _ := flags.GetString("start"); start != "" {
		c.root.workflow.SetStartTime(start)
	}
	if end, _ := flags.GetString("end"); end != "" {
		c.root.workflow.SetEndTime(end)
	}
	if project, _ := flags.GetString("project"); project != "" {
		c.root.workflow.SetProject(project)
	}
	if note, _ := flags.GetString("note"); note != "" {
		c.root.workflow.SetDescription(note)
	}

	form := c.root.workflow.Form()
	hours := c.root.workflow.CalculatedHours()

	if !c.root.workflow.Submit(cmd.Context(), nil) {
		return c.root.errors.StoreFailure("submit time entry", c.root.store.Err())
	}

	fmt.Printf("Logged %s on %s (%s - %s)\n", timecalc.FormatHours(hours), form.Date, form.StartTime, form.EndTime)
	return nil
}
