//go:build desktop

package main

import (
	"github.com/Petemir/2do-txt/internal/picker/desktop"
	"github.com/Petemir/2do-txt/internal/prompt"
	"github.com/Petemir/2do-txt/internal/service"
)

func init() {
	pickerFactory = func(fs service.Filesystem, _ *prompt.Prompter) service.PathPicker {
		return desktop.New(fs)
	}
}
