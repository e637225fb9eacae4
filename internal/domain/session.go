package domain

import (
	"fmt"
	"time"
)

type Session struct {
	ID        string
	Patient   PatientProfile
	Message   string
	CreatedAt time.Time
}

// Mode is the top-level state of an intake flow.
type Mode string

const (
	ModeIdle         Mode = "idle"
	ModeProfileEntry Mode = "profile_entry"
	ModeActive       Mode = "active"
)

func (m Mode) CanTransition(to Mode) bool {
	switch m {
	case ModeIdle:
		return to == ModeProfileEntry
	case ModeProfileEntry:
		return to == ModeActive || to == ModeIdle
	case ModeActive:
		return to == ModeIdle
	default:
		return false
	}
}

func (m Mode) Transition(to Mode) (Mode, error) {
	if !m.CanTransition(to) {
		return m, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m, to)
	}

	return to, nil
}
