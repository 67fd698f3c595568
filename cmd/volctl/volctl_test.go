package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/volctl/internal/backend"
	"github.com/jmylchreest/volctl/internal/config"
	"github.com/jmylchreest/volctl/internal/control"
	"github.com/jmylchreest/volctl/internal/core"
	"github.com/jmylchreest/volctl/internal/model"
)

// setupTest wires the package globals the command helpers rely on and
// returns a controller over a fake backend.
func setupTest(t *testing.T, sessions ...model.Session) (*control.Controller, *backend.Fake) {
	t.Helper()

	cfg = config.DefaultConfig()
	logger = slog.New(slog.DiscardHandler)

	fake := backend.NewFake(sessions...)
	return control.New(fake, logger), fake
}

func TestSetVolume_ToZero(t *testing.T) {
	controller, fake := setupTest(t,
		model.Session{ProcessName: "Discord.exe", Volume: 0.8})

	var buf bytes.Buffer
	err := setVolume(context.Background(), controller, &buf, "discord.exe", "0", false, nil)
	require.NoError(t, err)

	assert.Equal(t, "Volume of Discord.exe set to 0%\n", buf.String())

	sessions, err := fake.Sessions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sessions[0].Volume)
}

func TestSetVolume_NotFoundOnEmptySnapshot(t *testing.T) {
	controller, _ := setupTest(t)

	var buf bytes.Buffer
	err := setVolume(context.Background(), controller, &buf, "Discord.exe", "50", false, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Empty(t, buf.String())
}

func TestSetVolume_RejectsOutOfRange(t *testing.T) {
	controller, fake := setupTest(t,
		model.Session{ProcessName: "Discord.exe", Volume: 0.8})

	var buf bytes.Buffer
	err := setVolume(context.Background(), controller, &buf, "Discord.exe", "150", false, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidVolume)

	// Invalid input is rejected before any session is touched.
	assert.Zero(t, fake.SetVolumeCalls)
}

func TestSetVolume_AllMatches(t *testing.T) {
	controller, fake := setupTest(t,
		model.Session{ProcessName: "firefox", Volume: 0.9},
		model.Session{ProcessName: "firefox", Volume: 0.2},
		model.Session{ProcessName: "mpv", Volume: 0.7})

	var buf bytes.Buffer
	err := setVolume(context.Background(), controller, &buf, "FIREFOX", "50", true, nil)
	require.NoError(t, err)

	sessions, err := fake.Sessions(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sessions[0].Volume, 1e-9)
	assert.InDelta(t, 0.5, sessions[1].Volume, 1e-9)
	assert.InDelta(t, 0.7, sessions[2].Volume, 1e-9)
	assert.Equal(t, 2, fake.SetVolumeCalls)
}

func TestSetVolume_FirstMatchByDefault(t *testing.T) {
	controller, fake := setupTest(t,
		model.Session{ProcessName: "firefox", Volume: 0.9},
		model.Session{ProcessName: "firefox", Volume: 0.2})

	var buf bytes.Buffer
	err := setVolume(context.Background(), controller, &buf, "firefox", "50", false, nil)
	require.NoError(t, err)

	sessions, err := fake.Sessions(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sessions[0].Volume, 1e-9)
	assert.InDelta(t, 0.2, sessions[1].Volume, 1e-9)
}

func TestToggleMute_PrintsNewState(t *testing.T) {
	controller, fake := setupTest(t,
		model.Session{ProcessName: "Discord.exe", Muted: false})

	var buf bytes.Buffer
	err := toggleMute(context.Background(), controller, &buf, "discord.exe", false)
	require.NoError(t, err)

	assert.Equal(t, "Discord.exe is now muted\n", buf.String())

	sessions, err := fake.Sessions(context.Background())
	require.NoError(t, err)
	assert.True(t, sessions[0].Muted)
}

func TestToggleMute_TwiceRestoresState(t *testing.T) {
	controller, fake := setupTest(t,
		model.Session{ProcessName: "Discord.exe", Muted: false})

	ctx := context.Background()
	var buf bytes.Buffer
	require.NoError(t, toggleMute(ctx, controller, &buf, "Discord.exe", false))
	require.NoError(t, toggleMute(ctx, controller, &buf, "Discord.exe", false))

	sessions, err := fake.Sessions(ctx)
	require.NoError(t, err)
	assert.False(t, sessions[0].Muted)
}

func TestToggleMute_NotFound(t *testing.T) {
	controller, _ := setupTest(t,
		model.Session{ProcessName: "firefox"})

	var buf bytes.Buffer
	err := toggleMute(context.Background(), controller, &buf, "spotify", false)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestGetVolume_PrintsState(t *testing.T) {
	controller, _ := setupTest(t,
		model.Session{ProcessName: "firefox", Volume: 0.5, Muted: true})

	var buf bytes.Buffer
	err := getVolume(context.Background(), controller, &buf, "firefox", false)
	require.NoError(t, err)

	assert.Equal(t, "firefox: 50% (muted)\n", buf.String())
}

func TestListSessions_Plain(t *testing.T) {
	controller, _ := setupTest(t,
		model.Session{ProcessName: "firefox", Volume: 0.5},
		model.Session{ProcessName: model.SystemSoundsName, Volume: 1.0, SystemSounds: true})

	var buf bytes.Buffer
	err := listSessions(context.Background(), controller, &buf, "", "")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "firefox: 50%")
	assert.Contains(t, buf.String(), "System Sounds: 100%")
}

func TestListSessions_JSON(t *testing.T) {
	controller, _ := setupTest(t,
		model.Session{ProcessName: "firefox", Volume: 0.5})

	var buf bytes.Buffer
	err := listSessions(context.Background(), controller, &buf, "json", "")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"process_name": "firefox"`)
}

func TestListSessions_BackendUnavailable(t *testing.T) {
	controller, fake := setupTest(t)
	fake.Unavailable = true

	var buf bytes.Buffer
	err := listSessions(context.Background(), controller, &buf, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrUnavailable)
}

func TestMatchTargets_SystemSoundsByName(t *testing.T) {
	sessions := []model.Session{
		{Key: "s0", ProcessName: "firefox"},
		{Key: "s1", ProcessName: model.SystemSoundsName, SystemSounds: true},
	}

	targets, err := matchTargets("system sounds", sessions, false)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.True(t, targets[0].SystemSounds)
}
