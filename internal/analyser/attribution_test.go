package analyser

import (
	"testing"

	"github.com/streamlens/streamlens/internal/core/domain"
)

func msgAt(id string, time int) domain.Message {
	return domain.Message{ID: id, Text: id, Time: time}
}

func TestAttribute(t *testing.T) {
	tests := []struct {
		name       string
		highlights []*domain.Highlight
		messages   []domain.Message
		want       [][]string
	}{
		{
			name:       "boundary seconds excluded",
			highlights: []*domain.Highlight{hl(10, 5)},
			messages: []domain.Message{
				msgAt("before", 9),
				msgAt("atStart", 10),
				msgAt("inside1", 11),
				msgAt("inside2", 14),
				msgAt("atEnd", 15),
			},
			want: [][]string{{"inside1", "inside2"}},
		},
		{
			name:       "messages between highlights belong to none",
			highlights: []*domain.Highlight{hl(0, 3), hl(10, 3)},
			messages: []domain.Message{
				msgAt("a", 1),
				msgAt("gap", 6),
				msgAt("b", 11),
				msgAt("late", 40),
			},
			want: [][]string{{"a"}, {"b"}},
		},
		{
			name:       "no highlights",
			highlights: nil,
			messages:   []domain.Message{msgAt("a", 1)},
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Attribute(tt.highlights, tt.messages)

			for i, h := range tt.highlights {
				if len(h.Messages) != len(tt.want[i]) {
					t.Fatalf("highlight %d got %d messages, want %d", i, len(h.Messages), len(tt.want[i]))
				}

				for j, msg := range h.Messages {
					if msg.ID != tt.want[i][j] {
						t.Errorf("highlight %d message %d = %q, want %q", i, j, msg.ID, tt.want[i][j])
					}
				}
			}
		})
	}
}
