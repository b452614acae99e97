// Package filecreate creates new todo.txt files: it resolves overwrite
// conflicts, persists the file, activates it and optionally syncs it to
// cloud storage.
package filecreate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Petemir/2do-txt/internal/service"
)

// Request describes one file creation.
type Request struct {
	Path            string
	SeedExample     bool
	PromptFirstTask bool

	// TargetCloud is the provider to upload a copy to; empty for none.
	TargetCloud service.CloudStorageID

	// OverwriteConfirmed skips the existence check. Set when a native
	// save dialog already asked about replacing the file.
	OverwriteConfirmed bool
}

// Deps holds the collaborators of an Orchestrator.
type Deps struct {
	Filesystem service.Filesystem
	Store      service.TaskStore
	Cloud      service.CloudStorage
	Confirmer  service.Confirmer
	TaskDialog service.TaskDialog
	Examples   service.ExampleSource
}

// Orchestrator runs file creations.
type Orchestrator struct {
	deps Deps
}

// New creates an Orchestrator.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{deps: deps}
}

// Outcome reports what CreateFile did.
type Outcome int

const (
	// Skipped means the request had no path.
	Skipped Outcome = iota
	// Cancelled means the user declined to replace an existing file.
	Cancelled
	// Created means the file was written and activated.
	Created
)

// ReplaceMessage is the confirmation shown for an existing file.
func ReplaceMessage(path string) string {
	return fmt.Sprintf("%s already exists. Do you want to replace it?", path)
}

// CreateFile creates the file described by req.
// An empty path and a declined overwrite are not errors.
func (o *Orchestrator) CreateFile(ctx context.Context, req Request) (Outcome, error) {
	if req.Path == "" {
		return Skipped, nil
	}

	if !req.OverwriteConfirmed {
		exists, err := o.deps.Filesystem.IsFile(ctx, req.Path)
		if err != nil {
			return Skipped, err
		}
		if exists {
			choice, err := o.deps.Confirmer.Ask(ctx, service.Confirmation{
				Message: ReplaceMessage(req.Path),
				Options: []service.Option{
					{Label: "Cancel", Choice: service.ChoiceCancel},
					{Label: "Replace", Choice: service.ChoiceReplace},
				},
			})
			if err != nil {
				return Skipped, err
			}
			switch choice {
			case service.ChoiceReplace:
				slog.Debug("replacing existing file", "path", req.Path)
			default:
				return Cancelled, nil
			}
		}
	}

	content := ""
	if req.SeedExample {
		text, err := o.deps.Examples.Fetch(ctx)
		if err != nil {
			return Skipped, fmt.Errorf("failed to load example file: %w", err)
		}
		content = text
	}

	if err := o.deps.Store.SaveFile(ctx, req.Path, content); err != nil {
		return Skipped, err
	}
	if err := o.deps.Store.AddFilePath(ctx, req.Path); err != nil {
		return Skipped, err
	}
	if err := o.deps.Store.SetActiveList(ctx, req.Path); err != nil {
		return Skipped, err
	}

	if req.PromptFirstTask {
		if err := o.deps.TaskDialog.OpenCreateTaskPrompt(ctx); err != nil {
			return Created, err
		}
	}

	if req.TargetCloud != "" && o.deps.Cloud.Status(req.TargetCloud) == service.Connected {
		err := o.deps.Cloud.Upload(ctx, service.UploadRequest{
			Path:     req.Path,
			Content:  "",
			Provider: req.TargetCloud,
			Archive:  false,
		})
		if err != nil {
			return Created, fmt.Errorf("failed to upload to %s: %w", req.TargetCloud, err)
		}
	}

	return Created, nil
}
