// Package picker chooses the path of a new task list.
package picker

import (
	"context"
	"strings"

	"github.com/Petemir/2do-txt/internal/service"
)

// Inputter asks for a line of text pre-filled with a default.
type Inputter interface {
	Input(ctx context.Context, message, def string) (string, error)
}

// Dialog asks for the file name in the terminal, pre-filled with a name
// that does not collide with an existing file. Overwrite confirmation is
// left to the caller.
type Dialog struct {
	fs    service.Filesystem
	input Inputter
}

// NewDialog creates a Dialog picker.
func NewDialog(fs service.Filesystem, input Inputter) *Dialog {
	return &Dialog{fs: fs, input: input}
}

// PickPath implements service.PathPicker.
func (d *Dialog) PickPath(ctx context.Context, suggested string) (service.Selection, error) {
	unique, err := d.fs.GetUniqueFilePath(ctx, suggested)
	if err != nil {
		return service.Selection{}, err
	}

	name, err := d.input.Input(ctx, "File name", unique)
	if err != nil {
		return service.Selection{}, err
	}
	return service.Selection{Path: strings.TrimSpace(name)}, nil
}
