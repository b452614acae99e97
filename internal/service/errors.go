package service

import "errors"

var (
	// ErrNoActiveList is returned when no task list is active.
	ErrNoActiveList = errors.New("no active task list")

	// ErrNotFound is returned when a file or task does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotConnected is returned when uploading to a disconnected provider.
	ErrNotConnected = errors.New("cloud storage not connected")
)
