package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/settings"
	"github.com/Petemir/2do-txt/internal/testutil"
)

func TestPanel_ToggleDates(t *testing.T) {
	p := settings.NewPanel(newFile(t), nil)

	v, err := p.ToggleCreationDate()
	require.NoError(t, err)
	assert.False(t, v)

	v, err = p.ToggleCompletionDate()
	require.NoError(t, err)
	assert.False(t, v)

	v, err = p.ToggleCreationDate()
	require.NoError(t, err)
	assert.True(t, v)

	st, err := p.Current()
	require.NoError(t, err)
	assert.True(t, st.CreateCreationDate)
	assert.False(t, st.CreateCompletionDate)
}

func TestPanel_ToggleNotifications(t *testing.T) {
	tests := []struct {
		name      string
		initially bool
		status    service.PermissionStatus
		requestTo service.PermissionStatus
		want      bool
		requests  int
	}{
		{"off, granted", false, service.PermissionGranted, "", true, 0},
		{"off, prompt, request granted", false, service.PermissionPrompt, service.PermissionGranted, true, 1},
		{"off, prompt, request denied", false, service.PermissionPrompt, service.PermissionDenied, false, 1},
		{"off, denied, request denied", false, service.PermissionDenied, service.PermissionDenied, false, 1},
		{"on, granted", true, service.PermissionGranted, "", false, 0},
		{"on, denied", true, service.PermissionDenied, "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFile(t)
			require.NoError(t, f.Update(func(s *settings.Settings) error {
				s.ShowNotifications = tt.initially
				return nil
			}))
			perms := &testutil.FakePermission{Status: tt.status, RequestTo: tt.requestTo}

			got, err := settings.NewPanel(f, perms).ToggleNotifications(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.requests, perms.Requests)

			st, err := f.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.ShowNotifications)
		})
	}
}

func TestPanel_ToggleNotificationsError(t *testing.T) {
	perms := &testutil.FakePermission{Err: assert.AnError}

	_, err := settings.NewPanel(newFile(t), perms).ToggleNotifications(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPanel_SetCloudTarget(t *testing.T) {
	p := settings.NewPanel(newFile(t), nil)

	got, err := p.SetCloudTarget("googledrive")
	require.NoError(t, err)
	assert.Equal(t, "GoogleDrive", got)

	got, err = p.SetCloudTarget("None")
	require.NoError(t, err)
	assert.Equal(t, settings.NoCloudTarget, got)

	_, err = p.SetCloudTarget("ftp")
	assert.EqualError(t, err, "unknown cloud storage: ftp")

	st, err := p.Current()
	require.NoError(t, err)
	assert.Equal(t, settings.NoCloudTarget, st.CloudTarget)
}
