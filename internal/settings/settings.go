// Package settings persists user preferences and the list of known
// todo.txt files in a YAML file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Petemir/2do-txt/internal/service"
)

// Settings is the on-disk representation of settings.yaml.
type Settings struct {
	CreateCreationDate   bool                     `yaml:"create_creation_date"`
	CreateCompletionDate bool                     `yaml:"create_completion_date"`
	ShowNotifications    bool                     `yaml:"show_notifications"`
	Permission           service.PermissionStatus `yaml:"notification_permission"`
	CloudTarget          string                   `yaml:"cloud_target"` // provider name or "none"
	TodoFilePaths        []string                 `yaml:"todo_file_paths,omitempty"`
	ActiveList           string                   `yaml:"active_list,omitempty"`
}

// NoCloudTarget disables syncing new files.
const NoCloudTarget = "none"

// Target returns the default cloud target for new files.
func (s Settings) Target() (service.CloudStorageID, bool) {
	id, err := service.ParseCloudStorageID(s.CloudTarget)
	if err != nil {
		return "", false
	}
	return id, true
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		CreateCreationDate:   true,
		CreateCompletionDate: true,
		CloudTarget:          string(service.Dropbox),
		Permission:           service.PermissionPrompt,
	}
}

// File reads and writes settings at a fixed path.
// It is safe for concurrent use.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a File backed by path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the settings file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the settings. A missing file yields Defaults.
func (f *File) Load() (Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Update loads the settings, applies fn and saves the result.
// Nothing is written if fn returns an error.
func (f *File) Update(fn func(s *Settings) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, err := f.load()
	if err != nil {
		return err
	}
	if err := fn(&s); err != nil {
		return err
	}
	return f.save(s)
}

func (f *File) load() (Settings, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", filepath.Base(f.path), err)
	}
	return s, nil
}

// save writes the settings using a temp file and rename so a failed
// write never leaves a truncated file behind.
func (f *File) save(s Settings) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings.yaml.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return fmt.Errorf("failed to set settings permissions: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
