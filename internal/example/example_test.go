package example

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petemir/2do-txt/internal/todotxt"
)

func TestFetch(t *testing.T) {
	content, err := Bundled{}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, todoTxt, content)

	var open int
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		if !todotxt.IsBlank(line) && !todotxt.Parse(line).Completed {
			open++
		}
	}
	assert.Positive(t, open)
}

func TestFetch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Bundled{}.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
