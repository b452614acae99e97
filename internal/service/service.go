// Package service defines the collaborator interfaces used by commands.
package service

import "context"

// Filesystem answers questions about files on disk.
type Filesystem interface {
	// IsFile reports whether path names an existing regular file.
	IsFile(ctx context.Context, path string) (bool, error)

	// GetUniqueFilePath returns a non-colliding variant of suggested
	// (todo.txt, todo_1.txt, todo_2.txt, ...).
	GetUniqueFilePath(ctx context.Context, suggested string) (string, error)
}

// TaskStore persists todo.txt files and tracks the known and active ones.
type TaskStore interface {
	// SaveFile writes content to path, replacing any existing file.
	SaveFile(ctx context.Context, path, content string) error

	// AddFilePath registers path as a known task list.
	AddFilePath(ctx context.Context, path string) error

	// SetActiveList marks path as the active task list.
	SetActiveList(ctx context.Context, path string) error

	// ActiveList returns the active task list path.
	// Returns ErrNoActiveList if none is set.
	ActiveList(ctx context.Context) (string, error)

	// FilePaths returns the known task list paths in registration order.
	FilePaths(ctx context.Context) ([]string, error)

	// CloseFile forgets path. If it was active, the next known file
	// becomes active.
	CloseFile(ctx context.Context, path string) error

	// ReadFile returns the content of path.
	ReadFile(ctx context.Context, path string) (string, error)

	// OpenTasks returns the incomplete tasks of path in file order.
	OpenTasks(ctx context.Context, path string) ([]Task, error)

	// AddTask appends a task line to path.
	AddTask(ctx context.Context, path, text string) error

	// CompleteTask marks the task on the given line as completed.
	CompleteTask(ctx context.Context, path string, line int) error

	// DeleteTask removes the given line.
	DeleteTask(ctx context.Context, path string, line int) error
}

// CloudStorage uploads files to connected cloud storage providers.
type CloudStorage interface {
	// Status returns the connection status of a provider.
	Status(id CloudStorageID) ConnectionStatus

	// Clients returns every provider with its status.
	Clients() []CloudClient

	// Upload sends a file to the provider named in req.
	Upload(ctx context.Context, req UploadRequest) error
}

// Confirmer asks the user to pick one of a confirmation's options.
type Confirmer interface {
	Ask(ctx context.Context, c Confirmation) (Choice, error)
}

// TaskDialog opens the task-creation prompt.
type TaskDialog interface {
	OpenCreateTaskPrompt(ctx context.Context) error
}

// NotificationPermission checks and requests permission to show
// due-task notifications.
type NotificationPermission interface {
	CheckPermission(ctx context.Context) (PermissionStatus, error)
	RequestPermission(ctx context.Context) (PermissionStatus, error)
}

// ExampleSource provides the example document for seeded files.
type ExampleSource interface {
	Fetch(ctx context.Context) (string, error)
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// PathPicker chooses the path of a new task list.
// An empty Selection.Path means the user dismissed the picker.
type PathPicker interface {
	PickPath(ctx context.Context, suggested string) (Selection, error)
}

// Services bundles the collaborators available to commands.
type Services struct {
	Filesystem    Filesystem
	Store         TaskStore
	Cloud         CloudStorage
	Confirmer     Confirmer
	TaskDialog    TaskDialog
	Notifications NotificationPermission
	Notifier      Notifier
	Picker        PathPicker
	Examples      ExampleSource
}
