package keyphrase

import (
	"sort"
	"strings"
)

// candidate is one n-gram with its occurrence count, text already joined with
// single spaces.
type candidate struct {
	text      string
	frequency int
}

// topNgrams computes the frequency distribution of all contiguous n-grams of
// the given size over the token stream and returns the limit most frequent
// ones. Ties keep first-seen order, so the distribution is deterministic for
// a given stream.
func topNgrams(tokens []string, size, limit int) []candidate {
	if size <= 0 || len(tokens) < size {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(tokens))

	for i := 0; i+size <= len(tokens); i++ {
		gram := strings.Join(tokens[i:i+size], " ")

		if _, seen := counts[gram]; !seen {
			order = append(order, gram)
		}

		counts[gram]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}

	out := make([]candidate, len(order))
	for i, gram := range order {
		out[i] = candidate{text: gram, frequency: counts[gram]}
	}

	return out
}
