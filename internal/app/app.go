// Package app wires the production collaborators together.
package app

import (
	"context"

	"github.com/Petemir/2do-txt/internal/cloud"
	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/example"
	"github.com/Petemir/2do-txt/internal/fsys"
	"github.com/Petemir/2do-txt/internal/notify"
	"github.com/Petemir/2do-txt/internal/picker"
	"github.com/Petemir/2do-txt/internal/prompt"
	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
	"github.com/Petemir/2do-txt/internal/store"
)

// PickerFactory builds the platform's path picker.
type PickerFactory func(fs service.Filesystem, p *prompt.Prompter) service.PathPicker

// DialogPicker is the default PickerFactory: a terminal prompt.
func DialogPicker(fs service.Filesystem, p *prompt.Prompter) service.PathPicker {
	return picker.NewDialog(fs, p)
}

// NewServices creates the production collaborators for cfg.
func NewServices(ctx context.Context, cfg *config.Config, pickerFactory PickerFactory) (*service.Services, error) {
	if pickerFactory == nil {
		pickerFactory = DialogPicker
	}

	sf := settings.NewFile(cfg.SettingsPath())
	fs := fsys.OS{}
	st := store.New(sf)
	p := prompt.New()
	n := notify.Desktop{}

	return &service.Services{
		Filesystem:    fs,
		Store:         st,
		Cloud:         cloud.NewDefault(cfg),
		Confirmer:     p,
		TaskDialog:    prompt.NewTaskDialog(p, st),
		Notifications: notify.NewPermission(sf, p, n),
		Notifier:      n,
		Picker:        pickerFactory(fs, p),
		Examples:      example.Bundled{},
	}, nil
}
