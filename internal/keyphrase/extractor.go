package keyphrase

import (
	"sort"
	"strings"

	"github.com/streamlens/streamlens/internal/core/domain"
)

// Extraction defaults, matching the tuning of the lexicon shipped with the
// analyser.
const (
	DefaultMaxNgramSize  = 7
	DefaultMinNgramSize  = 1
	DefaultMaxKeyphrases = 5
	DefaultMinKeyphrases = 2
	DefaultPerSize       = 20
)

// DefaultStoppers are the message-count cutoffs that shrink the keyphrase
// budget for low-volume highlights.
var DefaultStoppers = []int{100, 40, 10}

// Fix is a cosmetic text replacement applied to candidate phrases, used to
// merge tokenizer split artifacts back into their canonical form.
type Fix struct {
	Old string
	New string
}

// Options tunes the extractor. Zero fields fall back to the package defaults.
type Options struct {
	MaxNgramSize         int
	MinNgramSize         int
	MaxKeyphrases        int
	MinKeyphrases        int
	PerSize              int
	Stoppers             []int
	ReplaceByWeightScore bool
	StopPhrases          []string
	Fixes                []Fix
	ExtraStopTerms       []string
}

// Keyphrase is one accepted candidate with its n-gram statistics. Score is
// the weighted score frequency*size used for the final ranking.
type Keyphrase struct {
	Text      string
	Frequency int
	Size      int
	Score     int
}

// Extractor finds the most representative phrases in a highlight's messages
// by sweeping n-gram sizes from largest to smallest. It is read-only after
// construction and safe for concurrent use; all per-extraction state is local
// to Extract.
type Extractor struct {
	opts        Options
	stopTerms   map[string]struct{}
	punctuation map[rune]struct{}
}

// New builds an extractor from the given options.
func New(opts Options) *Extractor {
	if opts.MaxNgramSize == 0 {
		opts.MaxNgramSize = DefaultMaxNgramSize
	}

	if opts.MinNgramSize == 0 {
		opts.MinNgramSize = DefaultMinNgramSize
	}

	if opts.MaxKeyphrases == 0 {
		opts.MaxKeyphrases = DefaultMaxKeyphrases
	}

	if opts.MinKeyphrases == 0 {
		opts.MinKeyphrases = DefaultMinKeyphrases
	}

	if opts.PerSize == 0 {
		opts.PerSize = DefaultPerSize
	}

	if opts.Stoppers == nil {
		opts.Stoppers = DefaultStoppers
	}

	stops := defaultStopTerms()
	for _, term := range opts.ExtraStopTerms {
		stops[term] = struct{}{}
	}

	return &Extractor{
		opts:        opts,
		stopTerms:   stops,
		punctuation: defaultPunctuationSet(),
	}
}

// Extract returns the accepted keyphrases of one highlight, ranked by
// weighted score descending. An empty result means the highlight carried no
// signal worth keeping.
func (e *Extractor) Extract(messages []domain.Message) []Keyphrase {
	tokens := tokenizeChat(messages, e.punctuation)
	budget := keyphraseBudget(e.opts.MaxKeyphrases, e.opts.MinKeyphrases, len(messages), e.opts.Stoppers)

	var accepted []Keyphrase

	for size := e.opts.MaxNgramSize; size >= e.opts.MinNgramSize; size-- {
		for _, cand := range topNgrams(tokens, size, e.opts.PerSize) {
			phrase := e.applyFixes(cand.text)
			score := cand.frequency * size

			if phrase == "" || cand.frequency <= 1 {
				continue
			}

			if strings.Contains(phrase, phraseBoundary) {
				continue
			}

			if size == 1 {
				if _, stop := e.stopTerms[phrase]; stop {
					continue
				}
			}

			if size > 1 && e.containsStopPhrase(phrase) {
				continue
			}

			if isPunctuation(phrase, e.punctuation) {
				// Punctuation terms are deduplicated by identity only; a
				// shorter punctuation run is not a substring match of a
				// longer one in any meaningful sense.
				if containsExact(accepted, phrase) {
					continue
				}
			} else {
				var skip bool
				accepted, skip = dedupAgainstLarger(accepted, phrase, score, e.opts.ReplaceByWeightScore)
				if skip {
					continue
				}
			}

			accepted = append(accepted, Keyphrase{
				Text:      phrase,
				Frequency: cand.frequency,
				Size:      size,
				Score:     score,
			})

			if len(accepted) == budget || size == e.opts.MinNgramSize {
				return rankByScore(accepted)
			}
		}
	}

	return rankByScore(accepted)
}

// applyFixes runs the configured cosmetic replacements over a candidate.
func (e *Extractor) applyFixes(phrase string) string {
	for _, fix := range e.opts.Fixes {
		phrase = strings.ReplaceAll(phrase, fix.Old, fix.New)
	}

	return phrase
}

func (e *Extractor) containsStopPhrase(phrase string) bool {
	for _, stop := range e.opts.StopPhrases {
		if stop != "" && strings.Contains(phrase, stop) {
			return true
		}
	}

	return false
}

// keyphraseBudget computes the adaptive result count: one is subtracted from
// the configured maximum for every stopper threshold the message count falls
// below, floored at the configured minimum.
func keyphraseBudget(maxCount, minCount, messageCount int, stoppers []int) int {
	sorted := make([]int, len(stoppers))
	copy(sorted, stoppers)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for _, stopper := range sorted {
		if messageCount < stopper {
			maxCount--
		}
	}

	if maxCount < minCount {
		maxCount = minCount
	}

	return maxCount
}

// dedupAgainstLarger rejects a candidate that is a substring of an already
// accepted, larger phrase: the larger n-gram is assumed to encode more
// context. With replace-by-weight-score enabled, a candidate whose weighted
// score beats the accepted phrase evicts it instead.
func dedupAgainstLarger(accepted []Keyphrase, phrase string, score int, replaceByWeight bool) ([]Keyphrase, bool) {
	for i, seen := range accepted {
		if !strings.Contains(seen.Text, phrase) {
			continue
		}

		if !replaceByWeight {
			return accepted, true
		}

		if score > seen.Score {
			return append(accepted[:i], accepted[i+1:]...), false
		}

		return accepted, true
	}

	return accepted, false
}

func containsExact(accepted []Keyphrase, phrase string) bool {
	for _, seen := range accepted {
		if seen.Text == phrase {
			return true
		}
	}

	return false
}

// rankByScore orders accepted candidates by weighted score descending,
// keeping acceptance order among ties.
func rankByScore(accepted []Keyphrase) []Keyphrase {
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Score > accepted[j].Score
	})

	return accepted
}
