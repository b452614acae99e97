package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/Petemir/2do-txt/internal/service"
)

// Inputter asks for a line of text.
type Inputter interface {
	Input(ctx context.Context, message, def string) (string, error)
}

// TaskDialog asks for a task and appends it to the active list.
type TaskDialog struct {
	input Inputter
	store service.TaskStore
}

// NewTaskDialog creates a TaskDialog.
func NewTaskDialog(input Inputter, store service.TaskStore) *TaskDialog {
	return &TaskDialog{input: input, store: store}
}

// OpenCreateTaskPrompt implements service.TaskDialog.
// A blank answer adds nothing.
func (d *TaskDialog) OpenCreateTaskPrompt(ctx context.Context) error {
	path, err := d.store.ActiveList(ctx)
	if err != nil {
		return err
	}

	text, err := d.input.Input(ctx, "Create task", "")
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if err := d.store.AddTask(ctx, path, text); err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}
