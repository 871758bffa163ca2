package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timebot/internal/timecalc"
)

// CardCommand handles the card command and its subcommands
type CardCommand struct {
	root *RootCommand
}

// NewCardCommand creates a new card command handler
func NewCardCommand(root *RootCommand) *CardCommand {
	return &CardCommand{root: root}
}

// Command builds the cobra command for timecard operations
func (c *CardCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Show or submit the current week's timecard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.show(cmd)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "submit",
			Short: "Submit the current week's timecard for approval",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.submit(cmd)
			},
		},
		&cobra.Command{
			Use:   "email [id]",
			Short: "Email a timecard to its owner",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.email(cmd, args)
			},
		},
	)

	return cmd
}

// show fetches and prints the current week's timecard
func (c *CardCommand) show(cmd *cobra.Command) error {
	if !c.root.store.FetchCurrentWeekTimecard(cmd.Context()) {
		if c.root.store.CurrentWeekTimecard() == nil {
			return c.root.errors.StoreFailure("fetch current week timecard", c.root.store.Err())
		}
		fmt.Printf("warning: %s (showing cached data)\n", c.root.store.Err())
	}

	card := c.root.store.CurrentWeekTimecard()
	if card == nil {
		fmt.Println("No timecard for the current week.")
		return nil
	}

	fmt.Printf("Timecard #%d  %s to %s  (%s)\n", card.ID, card.StartDate, card.EndDate, card.Status)
	fmt.Printf("  Total:    %s\n", timecalc.FormatHours(card.TotalHours()))
	fmt.Printf("  Regular:  %s\n", timecalc.FormatHours(card.RegularHours()))
	fmt.Printf("  Overtime: %s\n", timecalc.FormatHours(card.OvertimeHours()))
	if card.SubmittedAt != "" {
		fmt.Printf("  Submitted: %s\n", card.SubmittedAt)
	}
	if card.ApprovedAt != "" {
		fmt.Printf("  Approved:  %s\n", card.ApprovedAt)
	}
	return nil
}

// submit guards the timecard contract and submits it for approval
func (c *CardCommand) submit(cmd *cobra.Command) error {
	card := c.root.store.CurrentWeekTimecard()
	if card == nil {
		if !c.root.store.FetchCurrentWeekTimecard(cmd.Context()) {
			return c.root.errors.StoreFailure("fetch current week timecard", c.root.store.Err())
		}
		card = c.root.store.CurrentWeekTimecard()
	}
	if card == nil {
		return fmt.Errorf("no timecard exists for the current week")
	}

	// The engine does not re-validate the card's state; guard it here
	if !card.IsSubmittable() {
		return fmt.Errorf("timecard #%d is already %s", card.ID, card.Status)
	}

	if !c.root.store.SubmitTimecard(cmd.Context(), card.ID) {
		return c.root.errors.StoreFailure("submit timecard", c.root.store.Err())
	}

	fmt.Printf("Submitted timecard #%d (%s to %s) for approval.\n", card.ID, card.StartDate, card.EndDate)
	return nil
}

// email asks the service to email a timecard; defaults to the current card
func (c *CardCommand) email(cmd *cobra.Command, args []string) error {
	var id int64
	if len(args) > 0 {
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timecard id: %s", args[0])
		}
		id = parsed
	} else {
		card := c.root.store.CurrentWeekTimecard()
		if card == nil {
			return fmt.Errorf("no timecard exists for the current week")
		}
		id = card.ID
	}

	if err := c.root.service.EmailTimecard(cmd.Context(), id); err != nil {
		return c.root.errors.Handle("email timecard", err)
	}

	fmt.Printf("Emailed timecard #%d.\n", id)
	return nil
}
