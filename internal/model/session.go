// Package model defines the core data structures for volctl.
package model

import (
	"fmt"
	"strings"
)

// SystemSoundsName is the display name for the OS notification/UI sound
// stream. It is matchable by name like any application session.
const SystemSoundsName = "System Sounds"

// Session represents one live audio session as reported by the audio
// backend. Sessions are ephemeral: a fresh snapshot is taken on every
// invocation and nothing survives across runs. Key identifies the session
// to the backend for the lifetime of one snapshot only.
type Session struct {
	// Key is the backend-assigned handle (a D-Bus object path for the
	// PulseAudio backend). Opaque to everything except the backend.
	Key string `json:"-" yaml:"-"`

	// ProcessName is the name of the process owning the session, e.g.
	// "firefox" or "Discord.exe". For the system-sounds pseudo-session
	// this is SystemSoundsName.
	ProcessName string `json:"process_name" yaml:"process_name"`

	// Volume is the session volume scalar in [0.0, 1.0].
	Volume float64 `json:"volume" yaml:"volume"`

	// Muted reports whether the session is muted.
	Muted bool `json:"muted" yaml:"muted"`

	// SystemSounds marks the OS notification/UI sound pseudo-session.
	SystemSounds bool `json:"system_sounds,omitempty" yaml:"system_sounds,omitempty"`

	// Corked reports a stream that exists but is currently paused by its
	// application. Informational only; corked sessions are still
	// matchable and controllable.
	Corked bool `json:"corked,omitempty" yaml:"corked,omitempty"`
}

// DisplayName returns the name shown to the user. Falls back to "N/A"
// when the backend reported an empty process name.
func (s *Session) DisplayName() string {
	if strings.TrimSpace(s.ProcessName) == "" {
		return "N/A"
	}
	return s.ProcessName
}

// MuteLabel returns "muted" or "unmuted" for display.
func (s *Session) MuteLabel() string {
	if s.Muted {
		return "muted"
	}
	return "unmuted"
}

// String implements fmt.Stringer for debug logging.
func (s *Session) String() string {
	return fmt.Sprintf("%s (volume=%.2f muted=%t)", s.DisplayName(), s.Volume, s.Muted)
}
