package system

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/storage"
)

type DebugCmd struct {
	DBPath      DebugDBPathCmd      `cmd:"" help:"Show database path."`
	Collections DebugCollectionsCmd `cmd:"" help:"List stored collections with revisions."`
	Dump        DebugDumpCmd        `cmd:"" help:"Dump a stored collection as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugCollectionsCmd struct{}

func (cmd *DebugCollectionsCmd) Run(ctx *cli.Context) error {
	infos, err := ctx.Store.ListCollections()
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(infos) == 0 {
		ctx.Println("No collections stored.")
		return nil
	}
	for _, info := range infos {
		ctx.Printf("%-14s rev %-4d %6d bytes  updated %s\n", info.Key, info.Revision, info.Size, info.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Collection key (habits, reminders, todos, notes, timer, activityLogs) or 'settings'."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	if cmd.Key == constants.KeySettings {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		return printJSON(ctx, settings)
	}

	var value any
	if err := ctx.Store.GetCollection(cmd.Key, &value); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no collection stored under %q", cmd.Key)
		}
		return fmt.Errorf("failed to get collection: %w", err)
	}
	return printJSON(ctx, value)
}

func printJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}
