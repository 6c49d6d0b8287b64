package todos

import (
	"strings"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/todos"
)

type TodoCmd struct {
	Add     TodoAddCmd     `cmd:"" help:"Add a task."`
	List    TodoListCmd    `cmd:"" help:"List tasks." default:"1"`
	Done    TodoDoneCmd    `cmd:"" help:"Toggle a task between open and completed."`
	Comment TodoCommentCmd `cmd:"" help:"Set or clear a task's comment."`
	Delete  TodoDeleteCmd  `cmd:"" help:"Delete a task."`
}

type TodoAddCmd struct {
	Text []string `arg:"" help:"Task text."`
}

func (c *TodoAddCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	t, err := ctx.Board().AddTodo(strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	ctx.Printf("Added task %s: %s\n", t.ID[:8], t.Text)
	return nil
}

type TodoListCmd struct {
	Open bool `help:"Only show open tasks."`
}

func (c *TodoListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Board().Todos()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		ctx.Println("No tasks yet.")
		return nil
	}

	for _, t := range list {
		if c.Open && t.Completed {
			continue
		}
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		ctx.Printf("%s %s  %s\n", box, t.ID[:8], t.Text)
		if t.Comment != "" {
			ctx.Printf("      💬 %s\n", t.Comment)
		}
	}

	completed, total := todos.Summary(list)
	ctx.Printf("\n%d/%d completed\n", completed, total)
	return nil
}

type TodoDoneCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TodoDoneCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	t, progress, err := ctx.Board().ToggleTodo(c.ID)
	if err != nil {
		return err
	}
	if t.Completed {
		ctx.Printf("✓ Completed: %s\n", t.Text)
	} else {
		ctx.Printf("Reopened: %s\n", t.Text)
	}
	if progress != "" {
		ctx.Println(progress)
	}
	return nil
}

type TodoCommentCmd struct {
	ID      string `arg:"" help:"Task ID or ID prefix."`
	Comment string `arg:"" optional:"" help:"Comment text; omit to clear."`
}

func (c *TodoCommentCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	t, err := ctx.Board().CommentTodo(c.ID, c.Comment)
	if err != nil {
		return err
	}
	if t.Comment == "" {
		ctx.Printf("Comment cleared on: %s\n", t.Text)
	} else {
		ctx.Printf("Comment saved on: %s\n", t.Text)
	}
	return nil
}

type TodoDeleteCmd struct {
	ID string `arg:"" help:"Task ID or ID prefix."`
}

func (c *TodoDeleteCmd) Run(ctx *cli.Context) error {
	defer ctx.ReportWarnings()

	removed, err := ctx.Board().DeleteTodo(c.ID)
	if err != nil {
		return err
	}
	if removed {
		ctx.Println("Task deleted.")
	} else {
		ctx.Printf("No task matching %q; nothing to delete.\n", c.ID)
	}
	return nil
}
