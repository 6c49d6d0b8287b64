package notes

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/notes"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Create an empty note."`
	List   NoteListCmd   `cmd:"" help:"List notes, most recently edited first." default:"1"`
	Show   NoteShowCmd   `cmd:"" help:"Show a note."`
	Edit   NoteEditCmd   `cmd:"" help:"Replace a note's title or Markdown body."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a note."`
}

type NoteAddCmd struct {
	Title string `arg:"" help:"Note title."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	n, err := ctx.Board().AddNote(c.Title)
	if err != nil {
		return err
	}
	ctx.Printf("Created note %s: %s\n", n.ID[:8], n.Title)
	return nil
}

type NoteListCmd struct{}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	b := ctx.Board()
	list, err := b.Notes()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		ctx.Println("No notes yet.")
		return nil
	}

	loc := b.Location()
	for _, n := range list {
		ctx.Printf("%s  %s  %s\n", n.ID[:8], n.UpdatedAt.In(loc).Format("Jan 2 15:04"), n.Title)
		ctx.Printf("    %s\n", notes.Preview(n))
	}
	return nil
}

type NoteShowCmd struct {
	Note string `arg:"" help:"Note title or ID."`
	HTML bool   `help:"Print the stored HTML instead of plain text."`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	n, err := ctx.Board().Note(c.Note)
	if err != nil {
		return err
	}
	ctx.Println(n.Title)
	if c.HTML {
		ctx.Println(n.Content)
		return nil
	}
	ctx.Println(notes.PlainText(n.Content))
	return nil
}

type NoteEditCmd struct {
	Note  string `arg:"" help:"Note title or ID."`
	Title string `help:"New title (default: keep the current title)."`
	Body  string `help:"New Markdown body."`
	File  string `help:"Read the Markdown body from a file, or '-' for stdin."`
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	if c.Body != "" && c.File != "" {
		return errors.New("use either --body or --file, not both")
	}
	if c.Title == "" && c.Body == "" && c.File == "" {
		return errors.New("nothing to change: pass --title, --body or --file")
	}

	b := ctx.Board()
	current, err := b.Note(c.Note)
	if err != nil {
		return err
	}

	title := current.Title
	if c.Title != "" {
		title = c.Title
	}
	if c.Body == "" && c.File == "" {
		n, err := b.RenameNote(current.ID, title)
		if err != nil {
			return err
		}
		ctx.Printf("Saved note: %s\n", n.Title)
		return nil
	}

	body := c.Body
	switch {
	case c.File == "-":
		data, err := io.ReadAll(ctx.Stdin())
		if err != nil {
			return fmt.Errorf("failed to read note body: %w", err)
		}
		body = string(data)
	case c.File != "":
		data, err := os.ReadFile(c.File)
		if err != nil {
			return fmt.Errorf("failed to read note body: %w", err)
		}
		body = string(data)
	}

	n, err := b.UpdateNote(current.ID, title, body)
	if err != nil {
		return err
	}
	ctx.Printf("Saved note: %s\n", n.Title)
	return nil
}

type NoteDeleteCmd struct {
	Note string `arg:"" help:"Note title or ID."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	removed, err := ctx.Board().DeleteNote(c.Note)
	if err != nil {
		return err
	}
	if removed {
		ctx.Println("Note deleted.")
	} else {
		ctx.Printf("No note matching %q; nothing to delete.\n", c.Note)
	}
	return nil
}
