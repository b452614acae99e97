// Package notify shows due-task notifications and tracks the permission
// to show them.
package notify

import (
	"context"
	"log/slog"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
)

// Asker asks a yes/no question.
type Asker interface {
	YesNo(ctx context.Context, message string, def bool) (bool, error)
}

// Permission stores the user's answer in the settings file. Granting sends
// a first notification; if the desktop cannot show it the permission is
// denied.
type Permission struct {
	file     *settings.File
	asker    Asker
	notifier service.Notifier
}

// NewPermission creates a Permission.
func NewPermission(file *settings.File, asker Asker, notifier service.Notifier) *Permission {
	return &Permission{file: file, asker: asker, notifier: notifier}
}

// CheckPermission implements service.NotificationPermission.
func (p *Permission) CheckPermission(ctx context.Context) (service.PermissionStatus, error) {
	s, err := p.file.Load()
	if err != nil {
		return "", err
	}
	if s.Permission == "" {
		return service.PermissionPrompt, nil
	}
	return s.Permission, nil
}

// RequestPermission implements service.NotificationPermission.
func (p *Permission) RequestPermission(ctx context.Context) (service.PermissionStatus, error) {
	ok, err := p.asker.YesNo(ctx, "Allow 2do to show notifications for due tasks?", true)
	if err != nil {
		return "", err
	}

	status := service.PermissionDenied
	if ok {
		status = service.PermissionGranted
		if err := p.notifier.Notify(ctx, "2do", "Notifications for due tasks are on"); err != nil {
			slog.Debug("notifier unavailable", "error", err)
			status = service.PermissionDenied
		}
	}

	err = p.file.Update(func(s *settings.Settings) error {
		s.Permission = status
		return nil
	})
	if err != nil {
		return "", err
	}
	return status, nil
}
