package system

import (
	"github.com/julianstephens/dashlit/internal/cli"
)

// NotifyCmd sends a one-off notification through the configured sinks.
type NotifyCmd struct {
	Title string `help:"Notification title." required:""`
	Body  string `help:"Notification body."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	return ctx.Sink().Send(c.Title, c.Body)
}
