package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/volctl/internal/model"
)

func testSessions() []model.Session {
	return []model.Session{
		{Key: "s0", ProcessName: "Discord.exe", Volume: 0.8},
		{Key: "s1", ProcessName: "firefox", Volume: 0.5},
		{Key: "s2", ProcessName: "firefox", Volume: 0.3},
		{Key: "s3", ProcessName: model.SystemSoundsName, Volume: 1.0, SystemSounds: true},
	}
}

func TestFind_CaseInsensitive(t *testing.T) {
	sessions := testSessions()

	lower, err := Find("discord.exe", sessions)
	require.NoError(t, err)

	upper, err := Find("DISCORD.EXE", sessions)
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, "s0", lower.Key)
}

func TestFind_ExactNotSubstring(t *testing.T) {
	_, err := Find("fire", testSessions())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFind_FirstMatchWins(t *testing.T) {
	s, err := Find("firefox", testSessions())
	require.NoError(t, err)
	assert.Equal(t, "s1", s.Key)
}

func TestFind_SystemSounds(t *testing.T) {
	s, err := Find("system sounds", testSessions())
	require.NoError(t, err)
	assert.True(t, s.SystemSounds)
}

func TestFind_NotFound(t *testing.T) {
	_, err := Find("spotify", testSessions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFind_EmptySnapshot(t *testing.T) {
	_, err := Find("Discord.exe", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAll_ReturnsEveryMatch(t *testing.T) {
	matches, err := FindAll("FIREFOX", testSessions())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "s1", matches[0].Key)
	assert.Equal(t, "s2", matches[1].Key)
}

func TestFindAll_NotFound(t *testing.T) {
	_, err := FindAll("spotify", testSessions())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupByIndex(t *testing.T) {
	sessions := testSessions()

	s := LookupByIndex(sessions, 1)
	require.NotNil(t, s)
	assert.Equal(t, "s0", s.Key)

	s = LookupByIndex(sessions, 4)
	require.NotNil(t, s)
	assert.Equal(t, "s3", s.Key)

	assert.Nil(t, LookupByIndex(sessions, 0))
	assert.Nil(t, LookupByIndex(sessions, 5))
	assert.Nil(t, LookupByIndex(nil, 1))
}
