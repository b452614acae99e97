// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/todotxt"
)

var (
	priorityColors = map[string]*color.Color{
		"A": color.New(color.FgRed, color.Bold),
		"B": color.New(color.FgYellow),
		"C": color.New(color.FgGreen),
	}
	activeColor = color.New(color.FgCyan)
	labelColor  = color.New(color.Bold)
	onColor     = color.New(color.FgGreen)
	offColor    = color.New(color.FgHiBlack)
)

// FormatTask formats a task line.
// Format: "{N:>4}  {LINE}\n" (4-wide right-aligned number, two spaces, line)
func FormatTask(w io.Writer, num int, task service.Task) {
	line := normalizeLine(task.Raw)
	if c, ok := priorityColors[todotxt.Parse(task.Raw).Priority]; ok {
		line = c.Sprint(line)
	}
	fmt.Fprintf(w, "%4d  %s\n", num, line)
}

// FormatFileName formats a known task list path for the files command.
func FormatFileName(w io.Writer, path string, active bool) {
	if active {
		fmt.Fprintf(w, "%s %s\n", path, activeColor.Sprint("[active]"))
		return
	}
	fmt.Fprintln(w, path)
}

// FormatSetting formats one "label: value" settings line.
func FormatSetting(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprintf("%-18s", label+":"), value)
}

// OnOff formats a boolean setting.
func OnOff(v bool) string {
	if v {
		return onColor.Sprint("on")
	}
	return offColor.Sprint("off")
}

// normalizeLine normalizes a task line for display.
// Whitespace-only lines become "(untitled)".
func normalizeLine(line string) string {
	line = strings.ReplaceAll(line, "\r", " ")
	if strings.TrimSpace(line) == "" {
		return "(untitled)"
	}
	return line
}
