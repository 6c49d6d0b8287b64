package habits

import (
	"fmt"

	"github.com/julianstephens/dashlit/internal/cli"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with their streaks." default:"1"`
	Done   HabitDoneCmd   `cmd:"" help:"Toggle today's completion of a habit."`
	Rename HabitRenameCmd `cmd:"" help:"Rename a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	h, err := ctx.Board().AddHabit(c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("Added habit: %s\n", h.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Board().Habits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		ctx.Println("No habits yet. Add one with 'dashlit habit add <name>'.")
		return nil
	}

	for _, h := range habits {
		mark := "○"
		if h.CompletedToday {
			mark = "✓"
		}
		ctx.Printf("%s %-24s 🔥 %s  (%s)\n", mark, h.Name, streakLabel(h.Streak), shortID(h.ID))
	}
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	h, err := ctx.Board().ToggleHabit(c.Habit)
	if err != nil {
		return err
	}
	if h.CompletedToday {
		ctx.Printf("✓ %s done for today (streak: %s)\n", h.Name, streakLabel(h.Streak))
	} else {
		ctx.Printf("Unchecked %s for today (streak: %s)\n", h.Name, streakLabel(h.Streak))
	}
	return nil
}

type HabitRenameCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Name  string `arg:"" help:"New name."`
}

func (c *HabitRenameCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	h, err := ctx.Board().RenameHabit(c.Habit, c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("Habit renamed to: %s\n", h.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	removed, err := ctx.Board().DeleteHabit(c.Habit)
	if err != nil {
		return err
	}
	if removed {
		ctx.Printf("Deleted habit: %s\n", c.Habit)
	} else {
		ctx.Printf("No habit matching %q; nothing to delete.\n", c.Habit)
	}
	return nil
}

func streakLabel(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
