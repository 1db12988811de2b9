// Package ingest reads chat export files and refines them into the
// ordered, deduplicated message lists the analyser expects.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/araddon/dateparse"

	"github.com/streamlens/streamlens/internal/core/domain"
	cerrors "github.com/streamlens/streamlens/internal/core/errors"
)

type rawAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rawMessage struct {
	ID     string          `json:"message_id"`
	Text   string          `json:"message"`
	Time   json.RawMessage `json:"time"`
	Author rawAuthor       `json:"author"`
}

// ReadFile reads and refines a chat export.
func ReadFile(path string) ([]domain.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chat export: %w", err)
	}

	return Parse(data)
}

// Parse decodes a chat export and returns refined messages. Timestamps are
// accepted either as plain integer offsets from stream start or as wall-clock
// strings in any common format, which are rebased to offsets from the
// earliest message.
func Parse(data []byte) ([]domain.Message, error) {
	var raw []rawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode chat export: %w", err)
	}

	if len(raw) == 0 {
		return nil, cerrors.ErrEmptyMessages
	}

	messages := make([]domain.Message, 0, len(raw))

	wallClock := false

	for _, r := range raw {
		t, wall, err := parseTime(r.Time)
		if err != nil {
			return nil, fmt.Errorf("message %q: %w", r.ID, err)
		}

		wallClock = wallClock || wall

		messages = append(messages, domain.Message{
			ID:   r.ID,
			Text: r.Text,
			Time: t,
			Author: domain.Author{
				ID:   r.Author.ID,
				Name: r.Author.Name,
			},
		})
	}

	if wallClock {
		rebase(messages)
	}

	return Refine(messages), nil
}

// Refine sorts messages by time and drops records repeating an already seen
// message id, keeping the first occurrence.
func Refine(messages []domain.Message) []domain.Message {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Time < messages[j].Time
	})

	seen := make(map[string]struct{}, len(messages))
	refined := messages[:0]

	for _, msg := range messages {
		if _, ok := seen[msg.ID]; ok {
			continue
		}

		seen[msg.ID] = struct{}{}
		refined = append(refined, msg)
	}

	return refined
}

func parseTime(raw json.RawMessage) (int, bool, error) {
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		sec, err := num.Int64()
		if err != nil {
			return 0, false, fmt.Errorf("parse time %s: %w", num, err)
		}

		if sec < 0 {
			return 0, false, fmt.Errorf("%w: %d", cerrors.ErrNegativeTime, sec)
		}

		return int(sec), false, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false, fmt.Errorf("parse time %s: %w", raw, err)
	}

	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		if sec < 0 {
			return 0, false, fmt.Errorf("%w: %d", cerrors.ErrNegativeTime, sec)
		}

		return int(sec), false, nil
	}

	ts, err := dateparse.ParseAny(s)
	if err != nil {
		return 0, false, fmt.Errorf("parse time %q: %w", s, err)
	}

	return int(ts.Unix()), true, nil
}

func rebase(messages []domain.Message) {
	min := messages[0].Time
	for _, msg := range messages[1:] {
		if msg.Time < min {
			min = msg.Time
		}
	}

	for i := range messages {
		messages[i].Time -= min
	}
}
