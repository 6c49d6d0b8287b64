package settings

import (
	"fmt"

	"github.com/julianstephens/dashlit/internal/cli"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Sound         *bool   `help:"Ring the terminal bell on notifications." negatable:""`
	Notifications *bool   `help:"Enable or disable notifications." negatable:""`
	WorkMinutes   *int    `help:"Length of a Pomodoro work session in minutes."`
	BreakMinutes  *int    `help:"Length of a Pomodoro break in minutes."`
	PollInterval  *int    `help:"Seconds between reminder polls in 'dashlit watch'."`
	Timezone      *string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	b := ctx.Board()
	if c.List || !c.hasChanges() {
		printSettings(ctx, b.Settings())
		if !c.List {
			ctx.Println("\nNo changes specified. Use flags to update settings.")
		}
		return nil
	}

	updated, err := b.UpdateSettings(c.apply)
	if err != nil {
		return err
	}
	ctx.Println("Settings updated successfully.")
	printSettings(ctx, updated)
	return nil
}

func (c *SettingsCmd) hasChanges() bool {
	return c.Sound != nil || c.Notifications != nil || c.WorkMinutes != nil ||
		c.BreakMinutes != nil || c.PollInterval != nil || c.Timezone != nil
}

func (c *SettingsCmd) apply(s *models.Settings) error {
	if c.Sound != nil {
		s.SoundEnabled = *c.Sound
	}
	if c.Notifications != nil {
		s.NotificationsEnabled = *c.Notifications
	}
	if c.WorkMinutes != nil {
		if *c.WorkMinutes < 1 || *c.WorkMinutes > 120 {
			return apperrors.NewValidation("work-minutes", "must be between 1 and 120")
		}
		s.WorkMinutes = *c.WorkMinutes
	}
	if c.BreakMinutes != nil {
		if *c.BreakMinutes < 1 || *c.BreakMinutes > 60 {
			return apperrors.NewValidation("break-minutes", "must be between 1 and 60")
		}
		s.BreakMinutes = *c.BreakMinutes
	}
	if c.PollInterval != nil {
		if *c.PollInterval < 1 {
			return apperrors.NewValidation("poll-interval", "must be at least 1 second")
		}
		s.PollIntervalSec = *c.PollInterval
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return apperrors.NewValidation("timezone", fmt.Sprintf("unknown timezone %q", *c.Timezone))
		}
		s.Timezone = *c.Timezone
	}
	return nil
}

func printSettings(ctx *cli.Context, s models.Settings) {
	ctx.Println("Current Settings:")
	ctx.Printf("  Sound Enabled:         %v\n", s.SoundEnabled)
	ctx.Printf("  Notifications Enabled: %v\n", s.NotificationsEnabled)
	ctx.Printf("  Work Minutes:          %d\n", s.WorkMinutes)
	ctx.Printf("  Break Minutes:         %d\n", s.BreakMinutes)
	ctx.Printf("  Poll Interval:         %ds\n", s.PollIntervalSec)
	ctx.Printf("  Timezone:              %s\n", s.Timezone)
}
