package analyser

import (
	"github.com/streamlens/streamlens/internal/core/domain"
)

// Attribute assigns messages to the highlight whose time window contains
// them. Both inputs must already be sorted by time; the walk is a two-pointer
// merge that advances the highlight pointer once a message's time reaches the
// end of the current window. The window is a strict open interval, so messages
// posted exactly at the boundary seconds belong to no highlight.
func Attribute(highlights []*domain.Highlight, messages []domain.Message) {
	if len(highlights) == 0 {
		return
	}

	idx := 0

	for _, msg := range messages {
		current := highlights[idx]

		if current.Start < msg.Time && msg.Time < current.End() {
			current.Messages = append(current.Messages, msg)
		}

		if msg.Time >= current.End() {
			idx++
		}

		if idx == len(highlights) {
			break
		}
	}
}
