// Package control implements the volume controller: the thin mutation
// layer between matched sessions and the audio backend.
package control

import (
	"context"
	"log/slog"

	"github.com/jmylchreest/volctl/internal/backend"
	"github.com/jmylchreest/volctl/internal/core"
	"github.com/jmylchreest/volctl/internal/model"
)

// Controller mediates volume and mute mutations on live sessions. All
// mutations hit the backend immediately; there is no staging step.
type Controller struct {
	backend backend.Backend
	logger  *slog.Logger
}

// New creates a Controller over the given backend.
func New(b backend.Backend, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{backend: b, logger: logger}
}

// Sessions returns a fresh snapshot from the backend.
func (c *Controller) Sessions(ctx context.Context) ([]model.Session, error) {
	return c.backend.Sessions(ctx)
}

// SetVolume parses raw user input per the normalization rules, applies
// the resulting scalar to the session, and returns it. Returns
// core.ErrInvalidVolume without touching the backend when the input is
// rejected.
func (c *Controller) SetVolume(ctx context.Context, s *model.Session, raw string) (float64, error) {
	v, err := core.ParseVolume(raw)
	if err != nil {
		return 0, err
	}
	if err := c.ApplyVolume(ctx, s, v); err != nil {
		return 0, err
	}
	return v, nil
}

// ApplyVolume applies a pre-normalized scalar to the session and updates
// the snapshot copy so callers see the new state.
func (c *Controller) ApplyVolume(ctx context.Context, s *model.Session, v float64) error {
	if err := c.backend.SetVolume(ctx, s.Key, v); err != nil {
		return err
	}
	c.logger.Debug("volume applied", "session", s.DisplayName(), "volume", v)
	s.Volume = v
	return nil
}

// ToggleMute flips the session's mute flag exactly once and returns the
// new state. Two consecutive calls restore the original state.
func (c *Controller) ToggleMute(ctx context.Context, s *model.Session) (bool, error) {
	next := !s.Muted
	if err := c.backend.SetMute(ctx, s.Key, next); err != nil {
		return s.Muted, err
	}
	c.logger.Debug("mute toggled", "session", s.DisplayName(), "muted", next)
	s.Muted = next
	return next, nil
}
