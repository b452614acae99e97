package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/Petemir/2do-txt/internal/service"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, 1, service.Task{Line: 3, Raw: "(A) Call mom"})
	FormatTask(&buf, 12, service.Task{Line: 4, Raw: "   "})
	FormatTask(&buf, 123, service.Task{Line: 5, Raw: "a\rb"})

	assert.Equal(t, "   1  (A) Call mom\n  12  (untitled)\n 123  a b\n", buf.String())
}

func TestFormatFileName(t *testing.T) {
	var buf bytes.Buffer
	FormatFileName(&buf, "/a/todo.txt", true)
	FormatFileName(&buf, "/b/todo.txt", false)

	assert.Equal(t, "/a/todo.txt [active]\n/b/todo.txt\n", buf.String())
}

func TestFormatSetting(t *testing.T) {
	var buf bytes.Buffer
	FormatSetting(&buf, "creation date", OnOff(true))
	FormatSetting(&buf, "notifications", OnOff(false))

	assert.Equal(t, "creation date:     on\nnotifications:     off\n", buf.String())
}
