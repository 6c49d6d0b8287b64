package logs

import (
	"fmt"

	"github.com/julianstephens/dashlit/internal/activity"
	"github.com/julianstephens/dashlit/internal/cli"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
)

type LogCmd struct {
	List   LogListCmd   `cmd:"" help:"Show the activity log, newest first." default:"1"`
	Export LogExportCmd `cmd:"" help:"Write the activity log to dashlit-logs-YYYY-MM-DD.txt."`
	Clear  LogClearCmd  `cmd:"" help:"Clear the activity log."`
}

type LogListCmd struct {
	Category string `help:"Only show one category: todo, habit, reminder, note, timer or system." short:"c"`
	Limit    int    `help:"Maximum number of entries to show (0 for all)." default:"20" short:"n"`
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	var category models.ActivityCategory
	if c.Category != "" {
		parsed, ok := activity.ParseCategory(c.Category)
		if !ok {
			return apperrors.NewValidation("category", fmt.Sprintf("unknown category %q", c.Category))
		}
		category = parsed
	}

	b := ctx.Board()
	entries, err := b.Logs(category)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Println("No activity logged.")
		return nil
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	loc := b.Location()
	for _, e := range entries {
		ctx.Println(activity.FormatLine(e, loc))
	}
	return nil
}

type LogExportCmd struct {
	Dir string `help:"Directory to write the export into." default:"." type:"existingdir"`
}

func (c *LogExportCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	path, err := ctx.Board().ExportLogs(c.Dir)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Logs exported to %s\n", path)
	return nil
}

type LogClearCmd struct{}

func (c *LogClearCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	if err := ctx.Board().ClearLogs(); err != nil {
		return err
	}
	ctx.Println("Activity log cleared.")
	return nil
}
