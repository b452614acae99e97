package desktop

import "github.com/Petemir/2do-txt/internal/service"

// Selection maps the path returned by the save dialog. An empty path means
// the dialog was dismissed. The dialog asks about replacing an existing
// file itself, so a chosen path counts as confirmed.
func Selection(path string) service.Selection {
	return service.Selection{Path: path, OverwriteConfirmed: path != ""}
}
