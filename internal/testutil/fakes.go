package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/todotxt"
)

// FakeFS is an in-memory service.Filesystem.
type FakeFS struct {
	Files map[string]bool
	Calls *Calls

	// Error injection for testing
	IsFileErr error
	UniqueErr error
}

// NewFakeFS creates a FakeFS that reports the given paths as existing.
func NewFakeFS(calls *Calls, existing ...string) *FakeFS {
	f := &FakeFS{Files: make(map[string]bool), Calls: calls}
	for _, p := range existing {
		f.Files[p] = true
	}
	return f
}

// IsFile implements service.Filesystem.
func (f *FakeFS) IsFile(ctx context.Context, path string) (bool, error) {
	f.Calls.Record("IsFile %s", path)
	if f.IsFileErr != nil {
		return false, f.IsFileErr
	}
	return f.Files[path], nil
}

// GetUniqueFilePath implements service.Filesystem.
func (f *FakeFS) GetUniqueFilePath(ctx context.Context, suggested string) (string, error) {
	f.Calls.Record("GetUniqueFilePath %s", suggested)
	if f.UniqueErr != nil {
		return "", f.UniqueErr
	}
	ext := filepath.Ext(suggested)
	base := strings.TrimSuffix(suggested, ext)
	candidate := suggested
	for i := 1; f.Files[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
	}
	return candidate, nil
}

// FakeStore is an in-memory service.TaskStore.
type FakeStore struct {
	mu     sync.Mutex
	files  map[string]string
	paths  []string
	active string
	Calls  *Calls

	// Error injection for testing
	SaveFileErr      error
	AddFilePathErr   error
	SetActiveListErr error
	ActiveListErr    error
	ReadFileErr      error
	AddTaskErr       error
	CompleteTaskErr  error
	DeleteTaskErr    error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore(calls *Calls) *FakeStore {
	return &FakeStore{files: make(map[string]string), Calls: calls}
}

// AddFile registers path with content, like a file opened earlier.
// The first file added becomes active.
func (f *FakeStore) AddFile(path, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = content
	if !slices.Contains(f.paths, path) {
		f.paths = append(f.paths, path)
	}
	if f.active == "" {
		f.active = path
	}
}

// Content returns the stored content of path.
func (f *FakeStore) Content(path string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.files[path]
	return c, ok
}

// Active returns the active list without recording a call.
func (f *FakeStore) Active() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Paths returns the registered paths without recording a call.
func (f *FakeStore) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.paths)
}

// SaveFile implements service.TaskStore.
func (f *FakeStore) SaveFile(ctx context.Context, path, content string) error {
	f.Calls.Record("SaveFile %s", path)
	if f.SaveFileErr != nil {
		return f.SaveFileErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = content
	return nil
}

// AddFilePath implements service.TaskStore.
func (f *FakeStore) AddFilePath(ctx context.Context, path string) error {
	f.Calls.Record("AddFilePath %s", path)
	if f.AddFilePathErr != nil {
		return f.AddFilePathErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if !slices.Contains(f.paths, path) {
		f.paths = append(f.paths, path)
	}
	return nil
}

// SetActiveList implements service.TaskStore.
func (f *FakeStore) SetActiveList(ctx context.Context, path string) error {
	f.Calls.Record("SetActiveList %s", path)
	if f.SetActiveListErr != nil {
		return f.SetActiveListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = path
	return nil
}

// ActiveList implements service.TaskStore.
func (f *FakeStore) ActiveList(ctx context.Context) (string, error) {
	if f.ActiveListErr != nil {
		return "", f.ActiveListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == "" {
		return "", service.ErrNoActiveList
	}
	return f.active, nil
}

// FilePaths implements service.TaskStore.
func (f *FakeStore) FilePaths(ctx context.Context) ([]string, error) {
	return f.Paths(), nil
}

// CloseFile implements service.TaskStore.
func (f *FakeStore) CloseFile(ctx context.Context, path string) error {
	f.Calls.Record("CloseFile %s", path)
	f.mu.Lock()
	defer f.mu.Unlock()
	i := slices.Index(f.paths, path)
	if i < 0 {
		return fmt.Errorf("file %w: %s", service.ErrNotFound, path)
	}
	f.paths = slices.Delete(f.paths, i, i+1)
	if f.active == path {
		f.active = ""
		if len(f.paths) > 0 {
			f.active = f.paths[0]
		}
	}
	return nil
}

// ReadFile implements service.TaskStore.
func (f *FakeStore) ReadFile(ctx context.Context, path string) (string, error) {
	if f.ReadFileErr != nil {
		return "", f.ReadFileErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("file %w: %s", service.ErrNotFound, path)
	}
	return c, nil
}

// OpenTasks implements service.TaskStore.
func (f *FakeStore) OpenTasks(ctx context.Context, path string) ([]service.Task, error) {
	lines, err := f.lines(path)
	if err != nil {
		return nil, err
	}
	var tasks []service.Task
	for i, line := range lines {
		if todotxt.IsBlank(line) || todotxt.Parse(line).Completed {
			continue
		}
		tasks = append(tasks, service.Task{Line: i + 1, Raw: line})
	}
	return tasks, nil
}

// AddTask implements service.TaskStore.
func (f *FakeStore) AddTask(ctx context.Context, path, text string) error {
	f.Calls.Record("AddTask %s %s", path, text)
	if f.AddTaskErr != nil {
		return f.AddTaskErr
	}
	lines, err := f.lines(path)
	if err != nil {
		return err
	}
	f.setLines(path, append(lines, text))
	return nil
}

// CompleteTask implements service.TaskStore.
func (f *FakeStore) CompleteTask(ctx context.Context, path string, line int) error {
	f.Calls.Record("CompleteTask %s %d", path, line)
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	lines, err := f.lines(path)
	if err != nil {
		return err
	}
	if line < 1 || line > len(lines) {
		return fmt.Errorf("task %w: line %d", service.ErrNotFound, line)
	}
	lines[line-1] = "x " + lines[line-1]
	f.setLines(path, lines)
	return nil
}

// DeleteTask implements service.TaskStore.
func (f *FakeStore) DeleteTask(ctx context.Context, path string, line int) error {
	f.Calls.Record("DeleteTask %s %d", path, line)
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	lines, err := f.lines(path)
	if err != nil {
		return err
	}
	if line < 1 || line > len(lines) {
		return fmt.Errorf("task %w: line %d", service.ErrNotFound, line)
	}
	f.setLines(path, slices.Delete(lines, line-1, line))
	return nil
}

func (f *FakeStore) lines(path string) ([]string, error) {
	content, err := f.ReadFile(context.Background(), path)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

func (f *FakeStore) setLines(path string, lines []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	f.files[path] = content
}

// FakeCloud is an in-memory service.CloudStorage.
type FakeCloud struct {
	mu       sync.Mutex
	statuses map[service.CloudStorageID]service.ConnectionStatus
	uploads  []service.UploadRequest
	Calls    *Calls

	UploadErr error
}

// NewFakeCloud creates a FakeCloud with the given providers connected.
func NewFakeCloud(calls *Calls, connected ...service.CloudStorageID) *FakeCloud {
	f := &FakeCloud{
		statuses: make(map[service.CloudStorageID]service.ConnectionStatus),
		Calls:    calls,
	}
	for _, id := range connected {
		f.statuses[id] = service.Connected
	}
	return f
}

// Status implements service.CloudStorage.
func (f *FakeCloud) Status(id service.CloudStorageID) service.ConnectionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.statuses[id]; ok {
		return s
	}
	return service.Disconnected
}

// Clients implements service.CloudStorage.
func (f *FakeCloud) Clients() []service.CloudClient {
	var clients []service.CloudClient
	for _, id := range service.CloudStorageIDs {
		clients = append(clients, service.CloudClient{ID: id, Status: f.Status(id)})
	}
	return clients
}

// Upload implements service.CloudStorage.
func (f *FakeCloud) Upload(ctx context.Context, req service.UploadRequest) error {
	f.Calls.Record("Upload %s %s", req.Provider, req.Path)
	if f.UploadErr != nil {
		return f.UploadErr
	}
	if f.Status(req.Provider) != service.Connected {
		return fmt.Errorf("%s: %w", req.Provider, service.ErrNotConnected)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, req)
	return nil
}

// Uploads returns the successful uploads in order.
func (f *FakeCloud) Uploads() []service.UploadRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.uploads)
}

// FakeConfirmer answers every confirmation with Answer.
type FakeConfirmer struct {
	Answer service.Choice
	Err    error
	Calls  *Calls

	mu    sync.Mutex
	asked []service.Confirmation
}

// Ask implements service.Confirmer.
func (f *FakeConfirmer) Ask(ctx context.Context, c service.Confirmation) (service.Choice, error) {
	f.Calls.Record("Ask %s", c.Message)
	f.mu.Lock()
	f.asked = append(f.asked, c)
	f.mu.Unlock()
	if f.Err != nil {
		return service.ChoiceCancel, f.Err
	}
	return f.Answer, nil
}

// Asked returns the confirmations shown so far.
func (f *FakeConfirmer) Asked() []service.Confirmation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.asked)
}

// FakeTaskDialog records task prompt openings.
type FakeTaskDialog struct {
	Err   error
	Calls *Calls
}

// OpenCreateTaskPrompt implements service.TaskDialog.
func (f *FakeTaskDialog) OpenCreateTaskPrompt(ctx context.Context) error {
	f.Calls.Record("OpenCreateTaskPrompt")
	return f.Err
}

// FakePermission is a scripted service.NotificationPermission.
type FakePermission struct {
	Status    service.PermissionStatus
	RequestTo service.PermissionStatus
	Err       error
	Requests  int
}

// CheckPermission implements service.NotificationPermission.
func (f *FakePermission) CheckPermission(ctx context.Context) (service.PermissionStatus, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if f.Status == "" {
		return service.PermissionPrompt, nil
	}
	return f.Status, nil
}

// RequestPermission implements service.NotificationPermission.
func (f *FakePermission) RequestPermission(ctx context.Context) (service.PermissionStatus, error) {
	f.Requests++
	if f.Err != nil {
		return "", f.Err
	}
	f.Status = f.RequestTo
	return f.RequestTo, nil
}

// Notification is a notification shown by FakeNotifier.
type Notification struct {
	Title   string
	Message string
}

// FakeNotifier records notifications.
type FakeNotifier struct {
	Sent []Notification
	Err  error
}

// Notify implements service.Notifier.
func (f *FakeNotifier) Notify(ctx context.Context, title, message string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, Notification{Title: title, Message: message})
	return nil
}

// FakePicker returns a fixed Selection.
type FakePicker struct {
	Selection service.Selection
	Err       error
	Suggested string
}

// PickPath implements service.PathPicker.
func (f *FakePicker) PickPath(ctx context.Context, suggested string) (service.Selection, error) {
	f.Suggested = suggested
	return f.Selection, f.Err
}

// FakeExamples returns fixed example content.
type FakeExamples struct {
	Content string
	Err     error
	Calls   *Calls
}

// Fetch implements service.ExampleSource.
func (f *FakeExamples) Fetch(ctx context.Context) (string, error) {
	f.Calls.Record("Fetch")
	return f.Content, f.Err
}

// Fakes bundles one fake per collaborator, sharing a Calls log.
type Fakes struct {
	Calls         *Calls
	FS            *FakeFS
	Store         *FakeStore
	Cloud         *FakeCloud
	Confirmer     *FakeConfirmer
	TaskDialog    *FakeTaskDialog
	Notifications *FakePermission
	Notifier      *FakeNotifier
	Picker        *FakePicker
	Examples      *FakeExamples
}

// NewFakes creates a fresh set of fakes.
func NewFakes() *Fakes {
	calls := &Calls{}
	return &Fakes{
		Calls:         calls,
		FS:            NewFakeFS(calls),
		Store:         NewFakeStore(calls),
		Cloud:         NewFakeCloud(calls),
		Confirmer:     &FakeConfirmer{Calls: calls},
		TaskDialog:    &FakeTaskDialog{Calls: calls},
		Notifications: &FakePermission{},
		Notifier:      &FakeNotifier{},
		Picker:        &FakePicker{},
		Examples:      &FakeExamples{Calls: calls},
	}
}

// Services returns the fakes as a service.Services.
func (f *Fakes) Services() *service.Services {
	return &service.Services{
		Filesystem:    f.FS,
		Store:         f.Store,
		Cloud:         f.Cloud,
		Confirmer:     f.Confirmer,
		TaskDialog:    f.TaskDialog,
		Notifications: f.Notifications,
		Notifier:      f.Notifier,
		Picker:        f.Picker,
		Examples:      f.Examples,
	}
}
