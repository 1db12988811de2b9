// Package contexts loads reaction lexicons and guesses what each highlight
// was a reaction to.
package contexts

import (
	"encoding/json"
	"fmt"

	"github.com/streamlens/streamlens/internal/core/domain"
	cerrors "github.com/streamlens/streamlens/internal/core/errors"
)

// rawContext mirrors one record of a context source document. ReactionTo is a
// pointer so a missing key can be told apart from an empty value.
type rawContext struct {
	ReactionTo *string      `json:"reaction_to"`
	Triggers   []rawTrigger `json:"triggers"`
}

type rawTrigger struct {
	Phrase  string `json:"phrase"`
	IsExact bool   `json:"is_exact"`
}

// Parse decodes one or more context source documents, concatenates their
// records and merges them into a validated context set.
//
// Without autofix, a record missing its reaction_to key fails with
// ErrMalformedContext and two records sharing a reaction_to fail with
// ErrDuplicateContext. With autofix, malformed records are skipped and
// duplicate records have their trigger lists concatenated; if autofix skips
// every record, ErrAllContextsCorrupt is returned instead of an empty,
// misleadingly successful set.
func Parse(docs [][]byte, autofix bool) ([]domain.Context, error) {
	var records []rawContext

	for i, doc := range docs {
		var part []rawContext
		if err := json.Unmarshal(doc, &part); err != nil {
			return nil, fmt.Errorf("context source %d: %w", i, err)
		}

		records = append(records, part...)
	}

	var (
		merged  []domain.Context
		index   = make(map[string]int)
		skipped int
	)

	for _, rec := range records {
		if rec.ReactionTo == nil || *rec.ReactionTo == "" {
			if !autofix {
				return nil, fmt.Errorf("%w: missing reaction_to", cerrors.ErrMalformedContext)
			}

			skipped++

			continue
		}

		triggers := make([]domain.Trigger, 0, len(rec.Triggers))
		for _, t := range rec.Triggers {
			triggers = append(triggers, domain.Trigger{Phrase: t.Phrase, IsExact: t.IsExact})
		}

		if at, dup := index[*rec.ReactionTo]; dup {
			if !autofix {
				return nil, fmt.Errorf("%w: %s", cerrors.ErrDuplicateContext, *rec.ReactionTo)
			}

			merged[at].Triggers = append(merged[at].Triggers, triggers...)

			continue
		}

		index[*rec.ReactionTo] = len(merged)
		merged = append(merged, domain.Context{ReactionTo: *rec.ReactionTo, Triggers: triggers})
	}

	if autofix && skipped > 0 && len(merged) == 0 {
		return nil, cerrors.ErrAllContextsCorrupt
	}

	return merged, nil
}
