// Package backend defines the narrow capability interface over the OS
// audio-session API. Command code never talks to the audio subsystem
// directly; it depends on this interface so tests can substitute Fake.
package backend

import (
	"context"
	"errors"

	"github.com/jmylchreest/volctl/internal/model"
)

// ErrUnavailable indicates the OS audio subsystem could not be reached
// (no server, no endpoint, permission denied). Fatal; never retried.
var ErrUnavailable = errors.New("audio backend unavailable")

// Backend is the capability surface this tool needs from the OS audio
// subsystem. Each invocation constructs one Backend, uses it for a single
// straight-line command, and closes it on exit.
type Backend interface {
	// Sessions returns a fresh snapshot of all live audio sessions,
	// including the system-sounds pseudo-session when present. Never
	// cached across calls.
	Sessions(ctx context.Context) ([]model.Session, error)

	// SetVolume sets the volume of the session identified by key to a
	// scalar in [0.0, 1.0]. Takes effect immediately.
	SetVolume(ctx context.Context, key string, volume float64) error

	// SetMute sets the mute flag of the session identified by key.
	// Takes effect immediately.
	SetMute(ctx context.Context, key string, muted bool) error

	// Close releases the backend connection.
	Close() error
}
