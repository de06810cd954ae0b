package domain

import "github.com/samber/lo"

// Visible reports whether a single message may be shown to viewer:
// broadcasts, messages addressed to the viewer, and the viewer's own
// messages (including private ones they sent).
func (m Message) Visible(viewer string) bool {
	return m.To == Broadcast || m.To == viewer || m.From == viewer
}

// VisibleTo filters an already-fetched message list down to what viewer
// may see, preserving the original order. Pure: no store access.
func VisibleTo(messages []Message, viewer string) []Message {
	return lo.Filter(messages, func(m Message, _ int) bool {
		return m.Visible(viewer)
	})
}
