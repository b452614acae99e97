// Package todotxt handles the parts of the todo.txt line format the CLI
// needs: completion markers, priorities and dates.
package todotxt

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the todo.txt date format.
const DateLayout = "2006-01-02"

var (
	priorityRe = regexp.MustCompile(`^\(([A-Z])\) `)
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} `)
	dueRe      = regexp.MustCompile(`(?:^|\s)due:(\d{4}-\d{2}-\d{2})(?:\s|$)`)
)

// Task is a parsed todo.txt line.
type Task struct {
	Completed      bool
	Priority       string // "A".."Z" or empty
	CompletionDate string
	CreationDate   string
	Body           string
}

// Parse parses a single line.
func Parse(line string) Task {
	var t Task
	rest := line

	if strings.HasPrefix(rest, "x ") {
		t.Completed = true
		rest = rest[2:]
		if dateRe.MatchString(rest) {
			t.CompletionDate = rest[:10]
			rest = rest[11:]
		}
	}

	if m := priorityRe.FindStringSubmatch(rest); m != nil {
		t.Priority = m[1]
		rest = rest[len(m[0]):]
	}

	if dateRe.MatchString(rest) {
		t.CreationDate = rest[:10]
		rest = rest[11:]
	}

	t.Body = rest
	return t
}

// String formats the task back into a line.
func (t Task) String() string {
	var b strings.Builder
	if t.Completed {
		b.WriteString("x ")
		if t.CompletionDate != "" {
			b.WriteString(t.CompletionDate)
			b.WriteByte(' ')
		}
	}
	if t.Priority != "" {
		b.WriteString("(" + t.Priority + ") ")
	}
	if t.CreationDate != "" {
		b.WriteString(t.CreationDate)
		b.WriteByte(' ')
	}
	b.WriteString(t.Body)
	return b.String()
}

// DueDate returns the value of the due: tag.
func (t Task) DueDate() (time.Time, bool) {
	m := dueRe.FindStringSubmatch(t.Body)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// NewLine builds the line for a new task. If created is non-zero it is
// written as the creation date, unless text already carries one.
func NewLine(text string, created time.Time) string {
	t := Parse(strings.TrimSpace(text))
	t.Completed = false
	t.CompletionDate = ""
	if t.CreationDate == "" && !created.IsZero() {
		t.CreationDate = created.Format(DateLayout)
	}
	return t.String()
}

// Complete marks a line as completed. If done is non-zero it is written as
// the completion date. The priority is kept as a pri: tag, the usual
// todo.txt convention.
func Complete(line string, done time.Time) string {
	t := Parse(line)
	if t.Completed {
		return line
	}
	t.Completed = true
	if !done.IsZero() {
		t.CompletionDate = done.Format(DateLayout)
		// A completion date is only valid together with a creation date.
		if t.CreationDate == "" {
			t.CompletionDate = ""
		}
	}
	if t.Priority != "" {
		t.Body += " pri:" + t.Priority
		t.Priority = ""
	}
	return t.String()
}

// IsBlank reports whether a line carries no task.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
