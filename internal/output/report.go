// Package output renders highlight reports for terminals and machine
// consumers.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/streamlens/streamlens/internal/core/domain"
)

const separatorLine = "─────────────────────────────────────────────\n"

// Report is a finished analysis ready for rendering.
type Report struct {
	StreamID   string
	RunID      string
	Highlights []*domain.Highlight
}

// TopByDelta returns up to n highlights ordered by frequency delta
// descending. n <= 0 returns all of them. The input slice is not modified.
func TopByDelta(highlights []*domain.Highlight, n int) []*domain.Highlight {
	ranked := make([]*domain.Highlight, len(highlights))
	copy(ranked, highlights)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Delta > ranked[j].Delta
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// Select keeps the n highlights with the largest frequency deltas but
// returns them in stream order, ready for the report body.
func Select(highlights []*domain.Highlight, n int) []*domain.Highlight {
	picked := TopByDelta(highlights, n)

	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Start < picked[j].Start
	})

	return picked
}

// RenderText writes the human-readable report: a header, the highlights in
// stream order, and a ranked section by frequency delta.
func RenderText(w io.Writer, rep Report) error {
	sb := &strings.Builder{}

	sb.WriteString(separatorLine)
	fmt.Fprintf(sb, "Stream %s • %d highlights (run %s)\n", rep.StreamID, len(rep.Highlights), rep.RunID)
	sb.WriteString(separatorLine)

	for _, h := range rep.Highlights {
		sb.WriteString(h.String())
		sb.WriteByte('\n')
		fmt.Fprintf(sb, "    %s\n", h.URL())
	}

	if len(rep.Highlights) > 1 {
		sb.WriteString("\nRanked by frequency delta:\n")

		for i, h := range TopByDelta(rep.Highlights, 0) {
			fmt.Fprintf(sb, "%2d. %s\n", i+1, h.String())
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

type jsonHighlight struct {
	Start        int      `json:"start"`
	Duration     int      `json:"duration"`
	Delta        float64  `json:"delta"`
	Intensity    string   `json:"intensity"`
	Keywords     []string `json:"keywords"`
	Contexts     []string `json:"contexts"`
	MessageCount int      `json:"message_count"`
	URL          string   `json:"url"`
}

type jsonReport struct {
	StreamID   string          `json:"stream_id"`
	RunID      string          `json:"run_id"`
	Highlights []jsonHighlight `json:"highlights"`
}

// RenderJSON writes the report as indented JSON in stream order.
func RenderJSON(w io.Writer, rep Report) error {
	out := jsonReport{
		StreamID:   rep.StreamID,
		RunID:      rep.RunID,
		Highlights: make([]jsonHighlight, 0, len(rep.Highlights)),
	}

	for _, h := range rep.Highlights {
		level := ""
		if h.Intensity != nil {
			level = h.Intensity.Level
		}

		out.Highlights = append(out.Highlights, jsonHighlight{
			Start:        h.Start,
			Duration:     h.Duration,
			Delta:        h.Delta,
			Intensity:    level,
			Keywords:     h.Keywords,
			Contexts:     h.ContextList(),
			MessageCount: len(h.Messages),
			URL:          h.URL(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
