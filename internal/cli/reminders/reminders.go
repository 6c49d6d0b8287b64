package reminders

import (
	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/constants"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/reminders"
	"github.com/julianstephens/dashlit/internal/utils"
)

type ReminderCmd struct {
	Add    ReminderAddCmd    `cmd:"" help:"Schedule a reminder."`
	List   ReminderListCmd   `cmd:"" help:"List reminders." default:"1"`
	Delete ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
	Poll   ReminderPollCmd   `cmd:"" help:"Fire any reminders that are due."`
}

type ReminderAddCmd struct {
	Text string `arg:"" help:"What to be reminded about."`
	At   string `required:"" help:"When: 'YYYY-MM-DD HH:MM', RFC3339, or 'HH:MM' for today."`
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	b := ctx.Board()
	loc := b.Location()
	dueAt, err := utils.ParseDueTime(c.At, ctx.Now().In(loc), loc)
	if err != nil {
		return &apperrors.ValidationError{Reason: err.Error()}
	}

	r, err := b.AddReminder(c.Text, dueAt)
	if err != nil {
		return err
	}
	ctx.Printf("Reminder set: %q at %s\n", r.Text, r.DueAt.In(loc).Format(constants.DateTimeFormat))
	return nil
}

type ReminderListCmd struct {
	Pending bool `help:"Only show reminders that have not fired yet."`
}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	b := ctx.Board()
	list, err := b.Reminders()
	if err != nil {
		return err
	}
	if c.Pending {
		list = reminders.Pending(list)
	}
	if len(list) == 0 {
		ctx.Println("No reminders.")
		return nil
	}

	loc := b.Location()
	for _, r := range list {
		state := "pending"
		if r.Triggered {
			state = "fired"
		}
		ctx.Printf("%s  %s  %-8s %s\n", r.ID[:min(8, len(r.ID))], r.DueAt.In(loc).Format(constants.DateTimeFormat), state, r.Text)
	}
	return nil
}

type ReminderDeleteCmd struct {
	ID string `arg:"" help:"Reminder ID or ID prefix."`
}

func (c *ReminderDeleteCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	removed, err := ctx.Board().DeleteReminder(c.ID)
	if err != nil {
		return err
	}
	if removed {
		ctx.Println("Reminder deleted.")
	} else {
		ctx.Printf("No reminder matching %q; nothing to delete.\n", c.ID)
	}
	return nil
}

type ReminderPollCmd struct{}

func (c *ReminderPollCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	fired, err := ctx.Board().PollReminders()
	if err != nil {
		return err
	}
	if len(fired) == 0 {
		ctx.Println("No reminders due.")
	}
	return nil
}
