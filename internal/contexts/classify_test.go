package contexts

import (
	"reflect"
	"testing"

	"github.com/streamlens/streamlens/internal/core/domain"
)

func TestClassify(t *testing.T) {
	lexicon := []domain.Context{
		{
			ReactionTo: "funny",
			Triggers: []domain.Trigger{
				{Phrase: "lol", IsExact: false},
				{Phrase: "haha", IsExact: true},
			},
		},
		{
			ReactionTo: "scary",
			Triggers: []domain.Trigger{
				{Phrase: "omg", IsExact: true},
			},
		},
		{
			ReactionTo: "emote spam",
			Triggers: []domain.Trigger{
				{Phrase: ":LUL:", IsExact: true},
			},
		},
	}

	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "substring trigger matches inside a keyword",
			keywords: []string{"lololol"},
			want:     []string{"funny"},
		},
		{
			name:     "exact trigger needs the whole keyword",
			keywords: []string{"hahaha"},
			want:     []string{"None"},
		},
		{
			name:     "keyword folded before matching",
			keywords: []string{"OMG"},
			want:     []string{"scary"},
		},
		{
			name:     "emote keyword compared verbatim",
			keywords: []string{":LUL:"},
			want:     []string{"emote spam"},
		},
		{
			name:     "lowercased emote does not match",
			keywords: []string{":lul:"},
			want:     []string{"None"},
		},
		{
			name:     "multiple keywords collect multiple contexts",
			keywords: []string{"lol", "omg"},
			want:     []string{"funny", "scary"},
		},
		{
			name:     "no keywords falls back to None",
			keywords: nil,
			want:     []string{"None"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &domain.Highlight{Keywords: tt.keywords}

			Classify([]*domain.Highlight{h}, lexicon)

			if got := h.ContextList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("contexts = %v, want %v", got, tt.want)
			}
		})
	}
}
