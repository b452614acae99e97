package prompt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petemir/2do-txt/internal/prompt"
	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/testutil"
)

var replaceConfirmation = service.Confirmation{
	Message: "todo.txt already exists. Do you want to replace it?",
	Options: []service.Option{
		{Label: "Cancel", Choice: service.ChoiceCancel},
		{Label: "Replace", Choice: service.ChoiceReplace},
	},
}

func TestAuto(t *testing.T) {
	ctx := context.Background()

	got, err := prompt.Auto{Answer: service.ChoiceReplace}.Ask(ctx, replaceConfirmation)
	require.NoError(t, err)
	assert.Equal(t, service.ChoiceReplace, got)

	cancelOnly := service.Confirmation{
		Message: "x",
		Options: []service.Option{{Label: "Cancel", Choice: service.ChoiceCancel}},
	}
	got, err = prompt.Auto{Answer: service.ChoiceReplace}.Ask(ctx, cancelOnly)
	require.NoError(t, err)
	assert.Equal(t, service.ChoiceCancel, got)
}

func TestPrompter_NoOptionsCancels(t *testing.T) {
	got, err := prompt.New().Ask(context.Background(), service.Confirmation{Message: "?"})
	require.NoError(t, err)
	assert.Equal(t, service.ChoiceCancel, got)
}

func TestPrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := prompt.New()

	_, err := p.Ask(ctx, replaceConfirmation)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.Input(ctx, "File name", "todo.txt")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.YesNo(ctx, "Allow?", true)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChoiceString(t *testing.T) {
	assert.Equal(t, "cancel", service.ChoiceCancel.String())
	assert.Equal(t, "replace", service.ChoiceReplace.String())
}

type fakeInput struct {
	answer  string
	err     error
	message string
}

func (f *fakeInput) Input(ctx context.Context, message, def string) (string, error) {
	f.message = message
	return f.answer, f.err
}

func TestTaskDialog_AddsTaskToActiveList(t *testing.T) {
	store := testutil.NewFakeStore(nil)
	store.AddFile("/lists/todo.txt", "")
	input := &fakeInput{answer: "  Buy milk  "}

	err := prompt.NewTaskDialog(input, store).OpenCreateTaskPrompt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Create task", input.message)

	content, _ := store.Content("/lists/todo.txt")
	assert.Equal(t, "Buy milk\n", content)
}

func TestTaskDialog_BlankAnswerAddsNothing(t *testing.T) {
	store := testutil.NewFakeStore(nil)
	store.AddFile("/lists/todo.txt", "")

	err := prompt.NewTaskDialog(&fakeInput{answer: "   "}, store).OpenCreateTaskPrompt(context.Background())
	require.NoError(t, err)

	content, _ := store.Content("/lists/todo.txt")
	assert.Equal(t, "", content)
}

func TestTaskDialog_NoActiveList(t *testing.T) {
	input := &fakeInput{answer: "Buy milk"}

	err := prompt.NewTaskDialog(input, testutil.NewFakeStore(nil)).OpenCreateTaskPrompt(context.Background())
	assert.ErrorIs(t, err, service.ErrNoActiveList)
	assert.Empty(t, input.message)
}
