// Package service defines the collaborator interfaces used by commands.
package service

import (
	"fmt"
	"strings"
)

// CloudStorageID names a cloud storage provider.
type CloudStorageID string

// Supported cloud storage providers.
const (
	Dropbox     CloudStorageID = "Dropbox"
	GoogleDrive CloudStorageID = "GoogleDrive"
)

// CloudStorageIDs lists every supported provider in display order.
var CloudStorageIDs = []CloudStorageID{Dropbox, GoogleDrive}

// ParseCloudStorageID resolves a provider name (case-insensitive).
func ParseCloudStorageID(name string) (CloudStorageID, error) {
	name = strings.TrimSpace(name)
	for _, id := range CloudStorageIDs {
		if strings.EqualFold(string(id), name) {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown cloud storage: %s", name)
}

// Slug returns the lower-case form used in file names.
func (id CloudStorageID) Slug() string {
	return strings.ToLower(string(id))
}

// ConnectionStatus is the connection state of a cloud storage client.
type ConnectionStatus string

const (
	Connected    ConnectionStatus = "connected"
	Disconnected ConnectionStatus = "disconnected"
)

// CloudClient describes one provider and its status.
type CloudClient struct {
	ID     CloudStorageID
	Status ConnectionStatus
}

// UploadRequest describes a single upload.
// Archive adds Content to the list's remote archive file instead of
// replacing the remote copy of Path.
type UploadRequest struct {
	Path     string
	Content  string
	Provider CloudStorageID
	Archive  bool
}

// Choice is the outcome of a confirmation prompt.
type Choice int

const (
	// ChoiceCancel is the zero value so that an unanswered prompt cancels.
	ChoiceCancel Choice = iota
	ChoiceReplace
)

func (c Choice) String() string {
	switch c {
	case ChoiceReplace:
		return "replace"
	default:
		return "cancel"
	}
}

// Option is one labeled answer of a confirmation prompt.
type Option struct {
	Label  string
	Choice Choice
}

// Confirmation is a yes/no style question with labeled options.
type Confirmation struct {
	Message string
	Options []Option
}

// PermissionStatus is the state of the notification permission.
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
	PermissionPrompt  PermissionStatus = "prompt"
)

// Task represents a single todo.txt line.
type Task struct {
	Line int // 1-based line number in the file
	Raw  string
}

// Selection is a path chosen by a PathPicker.
type Selection struct {
	Path string

	// OverwriteConfirmed is true when the picker already asked the user
	// about replacing an existing file.
	OverwriteConfirmed bool
}
