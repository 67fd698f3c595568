package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmylchreest/volctl/internal/model"
)

// Fake is an in-memory Backend for tests. It behaves like a live audio
// subsystem: Sessions returns an independent snapshot each call, and
// mutations are visible in the next snapshot.
type Fake struct {
	mu       sync.Mutex
	sessions []model.Session

	// Unavailable makes every call fail with ErrUnavailable.
	Unavailable bool

	// SetVolumeCalls and SetMuteCalls count mutations for assertions.
	SetVolumeCalls int
	SetMuteCalls   int
}

// NewFake creates a Fake seeded with the given sessions. Keys default to
// "fake/N" when empty.
func NewFake(sessions ...model.Session) *Fake {
	for i := range sessions {
		if sessions[i].Key == "" {
			sessions[i].Key = fmt.Sprintf("fake/%d", i)
		}
	}
	return &Fake{sessions: sessions}
}

// Sessions returns a copy of the current session state.
func (f *Fake) Sessions(ctx context.Context) ([]model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return nil, ErrUnavailable
	}
	snapshot := make([]model.Session, len(f.sessions))
	copy(snapshot, f.sessions)
	return snapshot, nil
}

// SetVolume updates the stored volume for key.
func (f *Fake) SetVolume(ctx context.Context, key string, volume float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return ErrUnavailable
	}
	f.SetVolumeCalls++
	for i := range f.sessions {
		if f.sessions[i].Key == key {
			f.sessions[i].Volume = volume
			return nil
		}
	}
	return fmt.Errorf("fake backend: no session with key %q", key)
}

// SetMute updates the stored mute flag for key.
func (f *Fake) SetMute(ctx context.Context, key string, muted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return ErrUnavailable
	}
	f.SetMuteCalls++
	for i := range f.sessions {
		if f.sessions[i].Key == key {
			f.sessions[i].Muted = muted
			return nil
		}
	}
	return fmt.Errorf("fake backend: no session with key %q", key)
}

// Close is a no-op.
func (f *Fake) Close() error { return nil }
