package filecreate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petemir/2do-txt/internal/filecreate"
	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/testutil"
)

func newOrchestrator(f *testutil.Fakes) *filecreate.Orchestrator {
	return filecreate.New(filecreate.Deps{
		Filesystem: f.FS,
		Store:      f.Store,
		Cloud:      f.Cloud,
		Confirmer:  f.Confirmer,
		TaskDialog: f.TaskDialog,
		Examples:   f.Examples,
	})
}

func TestCreateFile_NewFile(t *testing.T) {
	f := testutil.NewFakes()

	outcome, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{Path: "todo.txt"})
	require.NoError(t, err)
	assert.Equal(t, filecreate.Created, outcome)

	assert.Equal(t, []string{
		"IsFile todo.txt",
		"SaveFile todo.txt",
		"AddFilePath todo.txt",
		"SetActiveList todo.txt",
	}, f.Calls.List())

	content, ok := f.Store.Content("todo.txt")
	require.True(t, ok)
	assert.Equal(t, "", content)
	assert.Equal(t, "todo.txt", f.Store.Active())
	assert.Empty(t, f.Confirmer.Asked())
	assert.Empty(t, f.Cloud.Uploads())
}

func TestCreateFile_EmptyPathHasNoSideEffects(t *testing.T) {
	f := testutil.NewFakes()
	f.Cloud = testutil.NewFakeCloud(f.Calls, service.Dropbox)

	outcome, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
		Path:            "",
		SeedExample:     true,
		PromptFirstTask: true,
		TargetCloud:     service.Dropbox,
	})
	require.NoError(t, err)
	assert.Equal(t, filecreate.Skipped, outcome)
	assert.Empty(t, f.Calls.List())
	assert.Empty(t, f.Cloud.Uploads())
}

func TestCreateFile_ExistingFileCancel(t *testing.T) {
	f := testutil.NewFakes()
	f.FS.Files["todo.txt"] = true
	f.Confirmer.Answer = service.ChoiceCancel
	f.Cloud = testutil.NewFakeCloud(f.Calls, service.Dropbox)

	outcome, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
		Path:            "todo.txt",
		SeedExample:     true,
		PromptFirstTask: true,
		TargetCloud:     service.Dropbox,
	})
	require.NoError(t, err)
	assert.Equal(t, filecreate.Cancelled, outcome)

	assert.Equal(t, []string{
		"IsFile todo.txt",
		"Ask " + filecreate.ReplaceMessage("todo.txt"),
	}, f.Calls.List())
	assert.Empty(t, f.Cloud.Uploads())
	assert.Empty(t, f.Store.Active())
}

func TestCreateFile_ExistingFileReplace(t *testing.T) {
	f := testutil.NewFakes()
	f.FS.Files["todo.txt"] = true
	f.Store.AddFile("todo.txt", "old task\n")
	f.Confirmer.Answer = service.ChoiceReplace

	outcome, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{Path: "todo.txt"})
	require.NoError(t, err)
	assert.Equal(t, filecreate.Created, outcome)

	asked := f.Confirmer.Asked()
	require.Len(t, asked, 1)
	assert.Equal(t, "todo.txt already exists. Do you want to replace it?", asked[0].Message)
	assert.Equal(t, []service.Option{
		{Label: "Cancel", Choice: service.ChoiceCancel},
		{Label: "Replace", Choice: service.ChoiceReplace},
	}, asked[0].Options)

	assert.Less(t, f.Calls.Index("Ask "+filecreate.ReplaceMessage("todo.txt")), f.Calls.Index("SaveFile todo.txt"))
	content, _ := f.Store.Content("todo.txt")
	assert.Equal(t, "", content)
}

func TestCreateFile_MissingFileNeverAsks(t *testing.T) {
	for _, path := range []string{"todo.txt", "/tmp/a/todo.txt", "lists/work.txt"} {
		t.Run(path, func(t *testing.T) {
			f := testutil.NewFakes()
			f.Confirmer.Err = errors.New("must not be called")

			_, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{Path: path})
			require.NoError(t, err)
			assert.Empty(t, f.Confirmer.Asked())
		})
	}
}

func TestCreateFile_SeedExample(t *testing.T) {
	f := testutil.NewFakes()
	f.Examples.Content = "(A) Call mom +family\r\nx 2024-01-02 Pay rent\n"

	_, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
		Path:        "todo.txt",
		SeedExample: true,
	})
	require.NoError(t, err)

	content, _ := f.Store.Content("todo.txt")
	assert.Equal(t, "(A) Call mom +family\r\nx 2024-01-02 Pay rent\n", content)
}

func TestCreateFile_ExampleErrorStopsBeforeSave(t *testing.T) {
	f := testutil.NewFakes()
	f.Examples.Err = errors.New("read failed")

	_, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
		Path:        "todo.txt",
		SeedExample: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, f.Examples.Err)
	assert.Equal(t, -1, f.Calls.Index("SaveFile todo.txt"))
}

func TestCreateFile_PromptFirstTask(t *testing.T) {
	f := testutil.NewFakes()

	_, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
		Path:            "todo.txt",
		PromptFirstTask: true,
	})
	require.NoError(t, err)
	assert.Greater(t, f.Calls.Index("OpenCreateTaskPrompt"), f.Calls.Index("SetActiveList todo.txt"))
}

func TestCreateFile_UploadToConnectedProvider(t *testing.T) {
	f := testutil.NewFakes()
	f.Cloud = testutil.NewFakeCloud(f.Calls, service.GoogleDrive)
	f.Examples.Content = "seeded\n"

	_, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
		Path:        "todo.txt",
		SeedExample: true,
		TargetCloud: service.GoogleDrive,
	})
	require.NoError(t, err)

	uploads := f.Cloud.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, service.UploadRequest{
		Path:     "todo.txt",
		Content:  "",
		Provider: service.GoogleDrive,
		Archive:  false,
	}, uploads[0])
	assert.Greater(t, f.Calls.Index("Upload GoogleDrive todo.txt"), f.Calls.Index("SaveFile todo.txt"))
}

func TestCreateFile_DisconnectedProviderNeverUploads(t *testing.T) {
	f := testutil.NewFakes()
	f.Cloud = testutil.NewFakeCloud(f.Calls, service.GoogleDrive)

	_, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
		Path:        "todo.txt",
		TargetCloud: service.Dropbox,
	})
	require.NoError(t, err)
	assert.Equal(t, -1, f.Calls.Index("Upload Dropbox todo.txt"))
	assert.Empty(t, f.Cloud.Uploads())
}

func TestCreateFile_OverwriteConfirmedSkipsCheck(t *testing.T) {
	f := testutil.NewFakes()
	f.FS.Files["todo.txt"] = true
	f.Cloud = testutil.NewFakeCloud(f.Calls, service.Dropbox)

	outcome, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
		Path:               "todo.txt",
		TargetCloud:        service.Dropbox,
		OverwriteConfirmed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, filecreate.Created, outcome)
	assert.Equal(t, -1, f.Calls.Index("IsFile todo.txt"))
	assert.Empty(t, f.Confirmer.Asked())
	assert.Len(t, f.Cloud.Uploads(), 1)
}

func TestCreateFile_ErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		setup   func(f *testutil.Fakes)
		outcome filecreate.Outcome
	}{
		{"is file", func(f *testutil.Fakes) { f.FS.IsFileErr = boom }, filecreate.Skipped},
		{"confirm", func(f *testutil.Fakes) {
			f.FS.Files["todo.txt"] = true
			f.Confirmer.Err = boom
		}, filecreate.Skipped},
		{"save", func(f *testutil.Fakes) { f.Store.SaveFileErr = boom }, filecreate.Skipped},
		{"register", func(f *testutil.Fakes) { f.Store.AddFilePathErr = boom }, filecreate.Skipped},
		{"activate", func(f *testutil.Fakes) { f.Store.SetActiveListErr = boom }, filecreate.Skipped},
		{"task dialog", func(f *testutil.Fakes) { f.TaskDialog.Err = boom }, filecreate.Created},
		{"upload", func(f *testutil.Fakes) { f.Cloud.UploadErr = boom }, filecreate.Created},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testutil.NewFakes()
			f.Cloud = testutil.NewFakeCloud(f.Calls, service.Dropbox)
			tt.setup(f)

			outcome, err := newOrchestrator(f).CreateFile(context.Background(), filecreate.Request{
				Path:            "todo.txt",
				PromptFirstTask: true,
				TargetCloud:     service.Dropbox,
			})
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, tt.outcome, outcome)
		})
	}
}
