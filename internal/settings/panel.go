package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Petemir/2do-txt/internal/service"
)

// Panel implements the settings operations on top of a settings file.
type Panel struct {
	file  *File
	perms service.NotificationPermission
}

// NewPanel creates a Panel. perms may be nil if notifications are never toggled.
func NewPanel(file *File, perms service.NotificationPermission) *Panel {
	return &Panel{file: file, perms: perms}
}

// Current returns the stored settings.
func (p *Panel) Current() (Settings, error) {
	return p.file.Load()
}

// ToggleCreationDate flips create_creation_date and returns the new value.
func (p *Panel) ToggleCreationDate() (bool, error) {
	var v bool
	err := p.file.Update(func(s *Settings) error {
		s.CreateCreationDate = !s.CreateCreationDate
		v = s.CreateCreationDate
		return nil
	})
	return v, err
}

// ToggleCompletionDate flips create_completion_date and returns the new value.
func (p *Panel) ToggleCompletionDate() (bool, error) {
	var v bool
	err := p.file.Update(func(s *Settings) error {
		s.CreateCompletionDate = !s.CreateCompletionDate
		v = s.CreateCompletionDate
		return nil
	})
	return v, err
}

// ToggleNotifications flips show_notifications. Turning notifications on
// without a granted permission requests it first, and notifications stay
// off unless the request is granted.
func (p *Panel) ToggleNotifications(ctx context.Context) (bool, error) {
	current, err := p.file.Load()
	if err != nil {
		return false, err
	}
	if p.perms == nil {
		return false, fmt.Errorf("notification permission unavailable")
	}

	state, err := p.perms.CheckPermission(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check notification permission: %w", err)
	}

	show := !current.ShowNotifications
	if !current.ShowNotifications && state != service.PermissionGranted {
		resp, err := p.perms.RequestPermission(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to request notification permission: %w", err)
		}
		slog.Debug("notification permission requested", "status", resp)
		show = resp == service.PermissionGranted
	}

	err = p.file.Update(func(s *Settings) error {
		s.ShowNotifications = show
		return nil
	})
	return show, err
}

// SetCloudTarget sets the provider new files sync to, or "none".
func (p *Panel) SetCloudTarget(name string) (string, error) {
	target := NoCloudTarget
	if !strings.EqualFold(strings.TrimSpace(name), NoCloudTarget) {
		id, err := service.ParseCloudStorageID(name)
		if err != nil {
			return "", err
		}
		target = string(id)
	}
	err := p.file.Update(func(s *Settings) error {
		s.CloudTarget = target
		return nil
	})
	return target, err
}
