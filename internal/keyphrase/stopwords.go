package keyphrase

import (
	_ "embed"
	"strings"
)

//go:embed data/monogram_stop_words.txt
var defaultStopWordData string

//go:embed data/monogram_stop_punctuations.txt
var defaultStopPunctuationData string

// asciiPunctuation mirrors the tokenizer's notion of punctuation characters.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// defaultStopTerms returns the built-in monogram stop list: common filler
// words plus punctuation-only terms that carry no signal on their own.
func defaultStopTerms() map[string]struct{} {
	stops := make(map[string]struct{})

	for _, line := range strings.Split(defaultStopWordData, "\n") {
		if term := strings.TrimSpace(line); term != "" {
			stops[term] = struct{}{}
		}
	}

	for _, line := range strings.Split(defaultStopPunctuationData, "\n") {
		if term := strings.TrimSpace(line); term != "" {
			stops[term] = struct{}{}
		}
	}

	return stops
}

// defaultPunctuationSet returns the rune set used to recognize punctuation
// tokens.
func defaultPunctuationSet() map[rune]struct{} {
	set := make(map[rune]struct{}, len(asciiPunctuation))
	for _, r := range asciiPunctuation {
		set[r] = struct{}{}
	}

	return set
}
