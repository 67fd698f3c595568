package main

import (
	"github.com/jmylchreest/volctl/internal/core"
	"github.com/jmylchreest/volctl/internal/model"
)

// matchTargets resolves the sessions a command operates on. Default
// policy is first match in enumeration order; all switches to every
// case-insensitive match.
func matchTargets(name string, sessions []model.Session, all bool) ([]model.Session, error) {
	if all {
		return core.FindAll(name, sessions)
	}
	s, err := core.Find(name, sessions)
	if err != nil {
		return nil, err
	}
	return []model.Session{*s}, nil
}
