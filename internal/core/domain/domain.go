package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Author identifies the sender of a chat message.
type Author struct {
	ID   string
	Name string
}

// Message is a single refined chat message. Time is the offset in whole
// seconds from the start of the stream. Messages are immutable once read and
// arrive ordered by Time.
type Message struct {
	ID     string
	Text   string
	Time   int
	Author Author
}

// Intensity is one level of the highlight severity scale. Constant is the
// multiplier applied to the average frequency delta; Color is the ANSI display
// attribute used when rendering.
type Intensity struct {
	Level    string
	Constant float64
	Color    string
}

// Highlight is a detected interval of elevated chat activity. It is created by
// the detector with timing fields only and enriched in place by the later
// pipeline stages.
type Highlight struct {
	StreamID  string
	Start     int
	Duration  int
	Delta     float64
	Intensity *Intensity
	Messages  []Message
	Keywords  []string
	Contexts  map[string]struct{}
}

// End returns the first second past the highlight interval.
func (h *Highlight) End() int {
	return h.Start + h.Duration
}

// URL returns the deep link to the highlight's start second. The format is
// part of the public contract.
func (h *Highlight) URL() string {
	return fmt.Sprintf("https://youtu.be/%s?t=%d", h.StreamID, h.Start)
}

// ContextList returns the guessed contexts in sorted order.
func (h *Highlight) ContextList() []string {
	list := make([]string, 0, len(h.Contexts))
	for ctx := range h.Contexts {
		list = append(list, ctx)
	}

	sort.Strings(list)

	return list
}

// String renders the canonical one-line display form of the highlight.
func (h *Highlight) String() string {
	level := "unknown"
	if h.Intensity != nil {
		level = h.Intensity.Level
	}

	return fmt.Sprintf("[%s] %s: %s (%d messages, %s intensity, %.3f diff, %ds duration)",
		formatHMS(h.Start),
		strings.Join(h.ContextList(), "/"),
		strings.Join(h.Keywords, ", "),
		len(h.Messages),
		level,
		h.Delta,
		h.Duration,
	)
}

func formatHMS(seconds int) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// Trigger is a single phrase pattern indicating a reaction. Exact triggers
// must equal the whole normalized keyword; inexact triggers match as a
// substring.
type Trigger struct {
	Phrase  string
	IsExact bool
}

// Context is a named reaction category with the phrase patterns that indicate
// it. ReactionTo is unique across a merged context set.
type Context struct {
	ReactionTo string
	Triggers   []Trigger
}

// ContextNone is the sentinel context assigned when no trigger matched any of
// a highlight's keywords.
const ContextNone = "None"
