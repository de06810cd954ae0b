// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Broadcast is the reserved recipient meaning "visible to every participant".
const Broadcast = "Todos"

// ClockLayout is the wall-clock format stamped on every stored message.
const ClockLayout = "15:04:05"

type Kind string

const (
	KindMessage Kind = "message"
	KindPrivate Kind = "private_message"
	KindStatus  Kind = "status"
)

// Message represents an immutable chat event.
// At is the insertion instant and drives store ordering;
// Time is the human-readable clock shown to clients.
type Message struct {
	ID   uuid.UUID
	From string
	To   string
	Text string
	Kind Kind
	Time string
	At   time.Time
}

// NewStatusMessage builds a registry-generated join/leave notice.
func NewStatusMessage(name, text string, at time.Time) Message {
	return Message{
		ID:   uuid.New(),
		From: name,
		To:   Broadcast,
		Text: text,
		Kind: KindStatus,
		Time: at.Format(ClockLayout),
		At:   at,
	}
}
