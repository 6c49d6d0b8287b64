package timer

import (
	"github.com/julianstephens/dashlit/internal/board"
	"github.com/julianstephens/dashlit/internal/cli"
)

type TimerCmd struct {
	Start  TimerStartCmd  `cmd:"" help:"Start or resume the Pomodoro timer."`
	Pause  TimerPauseCmd  `cmd:"" help:"Pause the timer."`
	Reset  TimerResetCmd  `cmd:"" help:"Reset the current session to its full length."`
	Status TimerStatusCmd `cmd:"" help:"Show the timer." default:"1"`
}

type TimerStartCmd struct{}

func (c *TimerStartCmd) Run(ctx *cli.Context) error {
	return run(ctx, (*board.Service).StartTimer)
}

type TimerPauseCmd struct{}

func (c *TimerPauseCmd) Run(ctx *cli.Context) error {
	return run(ctx, (*board.Service).PauseTimer)
}

type TimerResetCmd struct{}

func (c *TimerResetCmd) Run(ctx *cli.Context) error {
	return run(ctx, (*board.Service).ResetTimer)
}

type TimerStatusCmd struct{}

func (c *TimerStatusCmd) Run(ctx *cli.Context) error {
	return run(ctx, (*board.Service).Timer)
}

func run(ctx *cli.Context, op func(*board.Service) (board.TimerStatus, error)) error {
	defer ctx.ReportWarnings()

	status, err := op(ctx.Board())
	if err != nil {
		return err
	}
	ctx.Printf("⏱  %s\n", status)
	return nil
}
