//go:build desktop

// Package desktop provides the native save-file dialog used by desktop builds.
package desktop

import (
	"context"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/Petemir/2do-txt/internal/service"
)

// AppID identifies the application to the desktop environment.
const AppID = "io.github.petemir.2do"

// Picker shows a native save dialog.
type Picker struct {
	fs service.Filesystem
}

// New creates a Picker.
func New(fs service.Filesystem) *Picker {
	return &Picker{fs: fs}
}

// PickPath implements service.PathPicker. It must be called from the main
// goroutine and runs the GUI event loop until the dialog closes.
func (p *Picker) PickPath(ctx context.Context, suggested string) (service.Selection, error) {
	unique, err := p.fs.GetUniqueFilePath(ctx, suggested)
	if err != nil {
		return service.Selection{}, err
	}
	abs, err := filepath.Abs(unique)
	if err != nil {
		return service.Selection{}, err
	}

	a := app.NewWithID(AppID)
	w := a.NewWindow("2do")
	w.Resize(fyne.NewSize(720, 520))

	var path string
	var pickErr error
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			pickErr = err
			return
		}
		if wc == nil {
			return
		}
		path = wc.URI().Path()
		pickErr = wc.Close()
	}, w)
	d.SetFileName(filepath.Base(abs))
	if dir, err := storage.ListerForURI(storage.NewFileURI(filepath.Dir(abs))); err == nil {
		d.SetLocation(dir)
	}
	d.SetOnClosed(a.Quit)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.Quit()
		case <-done:
		}
	}()

	w.Show()
	d.Show()
	a.Run()

	if pickErr != nil {
		return service.Selection{}, pickErr
	}
	return Selection(path), nil
}
