package contexts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/streamlens/streamlens/internal/core/domain"
)

// Classify guesses the reaction category of each highlight by looking its
// keywords up in the context lexicon. An exact trigger must equal the whole
// normalized keyword; an inexact trigger matches as a substring. A highlight
// whose keywords match nothing gets the None sentinel so an empty set never
// escapes this stage.
func Classify(highlights []*domain.Highlight, contexts []domain.Context) {
	for _, h := range highlights {
		if h.Contexts == nil {
			h.Contexts = make(map[string]struct{})
		}

		for _, keyword := range h.Keywords {
			normalized := normalizeKeyword(keyword)

			for _, ctx := range contexts {
				for _, trigger := range ctx.Triggers {
					if matches(trigger, normalized) {
						h.Contexts[ctx.ReactionTo] = struct{}{}
					}
				}
			}
		}

		if len(h.Contexts) == 0 {
			h.Contexts[domain.ContextNone] = struct{}{}
		}
	}
}

func matches(trigger domain.Trigger, keyword string) bool {
	if trigger.IsExact {
		return trigger.Phrase == keyword
	}

	return strings.Contains(keyword, trigger.Phrase)
}

// normalizeKeyword folds a keyword to lower case for matching. Emote tokens
// are compared verbatim because their labels are case-sensitive identifiers.
func normalizeKeyword(keyword string) string {
	if isEmoteToken(keyword) {
		return keyword
	}

	return cases.Lower(language.Und).String(keyword)
}

func isEmoteToken(keyword string) bool {
	return len(keyword) > 2 && strings.HasPrefix(keyword, ":") && strings.HasSuffix(keyword, ":")
}
