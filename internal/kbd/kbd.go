// Package kbd renders keyboard hints. Hints are only shown on interactive
// terminals; piped or redirected output has no keyboard to hint at.
package kbd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var keyStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)

type fder interface {
	Fd() uintptr
}

// Interactive reports whether w is a terminal.
func Interactive(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Key renders a single key, or "" if w is not interactive.
func Key(w io.Writer, key string) string {
	if !Interactive(w) {
		return ""
	}
	return keyStyle.Render(key)
}

// Binding is a key and what it does.
type Binding struct {
	Key  string
	Help string
}

// Line renders bindings on one line, or "" if w is not interactive.
func Line(w io.Writer, bindings ...Binding) string {
	if !Interactive(w) || len(bindings) == 0 {
		return ""
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = Key(w, b.Key) + " " + b.Help
	}
	return strings.Join(parts, "  ")
}
