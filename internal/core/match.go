package core

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/volctl/internal/model"
)

// Find returns the session whose process name equals name
// case-insensitively. Matching is exact, never substring or fuzzy.
//
// When several sessions share a process name (two instances of the same
// executable), the first match in enumeration order wins. That is a
// documented policy, not an accident; use FindAll to reach every
// instance.
//
// Returns ErrNotFound when nothing matches.
func Find(name string, sessions []model.Session) (*model.Session, error) {
	for i := range sessions {
		if strings.EqualFold(sessions[i].ProcessName, name) {
			return &sessions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// FindAll returns every session matching name case-insensitively, in
// enumeration order. Returns ErrNotFound when nothing matches.
func FindAll(name string, sessions []model.Session) ([]model.Session, error) {
	var matched []model.Session
	for _, s := range sessions {
		if strings.EqualFold(s.ProcessName, name) {
			matched = append(matched, s)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return matched, nil
}

// LookupByIndex finds a session by its 1-based position in the snapshot.
// Returns nil if the index is out of bounds.
func LookupByIndex(sessions []model.Session, index int) *model.Session {
	idx := index - 1
	if idx < 0 || idx >= len(sessions) {
		return nil
	}
	return &sessions[idx]
}
