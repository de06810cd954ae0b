// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a registered chat user, tracked for liveness.
// Names are unique among registered participants at any instant.
type Participant struct {
	ID       uuid.UUID
	Name     string
	LastSeen time.Time
}

// Stale reports whether the participant has been silent long enough
// to be evicted by the sweep.
func (p Participant) Stale(now time.Time, threshold time.Duration) bool {
	return now.Sub(p.LastSeen) >= threshold
}
