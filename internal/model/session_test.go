package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_DisplayName(t *testing.T) {
	s := Session{ProcessName: "firefox"}
	assert.Equal(t, "firefox", s.DisplayName())

	s = Session{ProcessName: ""}
	assert.Equal(t, "N/A", s.DisplayName())

	s = Session{ProcessName: "   "}
	assert.Equal(t, "N/A", s.DisplayName())

	s = Session{ProcessName: SystemSoundsName, SystemSounds: true}
	assert.Equal(t, "System Sounds", s.DisplayName())
}

func TestSession_MuteLabel(t *testing.T) {
	s := Session{Muted: true}
	assert.Equal(t, "muted", s.MuteLabel())

	s.Muted = false
	assert.Equal(t, "unmuted", s.MuteLabel())
}

func TestSession_String(t *testing.T) {
	s := Session{ProcessName: "mpv", Volume: 0.5, Muted: true}
	assert.Equal(t, "mpv (volume=0.50 muted=true)", s.String())
}
