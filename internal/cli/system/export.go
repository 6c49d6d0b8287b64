package system

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/dashlit/internal/cli"
)

type ExportCmd struct {
	Format string `help:"Output format." enum:"json,yaml" default:"json" short:"f"`
	Output string `help:"Write to this file instead of stdout." short:"o" type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	var w io.Writer = ctx.Stdout()
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := ctx.Board().Export(w, c.Format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	ctx.ReportWarnings()

	if c.Output != "" {
		ctx.Printf("✓ Board exported to %s\n", c.Output)
	}
	return nil
}
