// Package example provides the bundled example task list.
package example

import (
	"context"
	_ "embed"
)

//go:embed todo.txt
var todoTxt string

// Bundled returns the embedded example document.
type Bundled struct{}

// Fetch returns the example todo.txt content verbatim.
func (Bundled) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return todoTxt, nil
}
