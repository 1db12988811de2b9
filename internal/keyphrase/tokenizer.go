package keyphrase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/streamlens/streamlens/internal/core/domain"
)

// phraseBoundary separates the tokens of consecutive messages so n-grams never
// span two messages.
const phraseBoundary = "%phrase_end%"

// emoteSpan matches a colon-delimited emote token such as ":wave:". Emote
// spans are kept as single atomic tokens and are never case-folded.
var emoteSpan = regexp.MustCompile(`:[^:\s]+:`)

// foldCase lowercases with full unicode folding. A cases.Caser is stateful,
// so one is built per call rather than shared across goroutines.
func foldCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// tokenizeMessage splits one chat message into tokens. Emote spans survive
// verbatim; the text around them is case-folded and split into word and
// punctuation tokens.
func tokenizeMessage(text string) []string {
	var tokens []string

	for {
		loc := emoteSpan.FindStringIndex(text)
		if loc == nil {
			return append(tokens, tokenizeWords(text)...)
		}

		tokens = append(tokens, tokenizeWords(text[:loc[0]])...)
		tokens = append(tokens, text[loc[0]:loc[1]])
		text = text[loc[1]:]
	}
}

// tokenizeWords is the generic tokenizer: runs of letters, marks and digits
// become word tokens, every other printable rune becomes a one-rune
// punctuation token. Words are folded to lower case.
func tokenizeWords(text string) []string {
	var (
		tokens []string
		word   strings.Builder
	)

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, foldCase(word.String()))
			word.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '\'':
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}

	flush()

	return tokens
}

// mergePunctuation joins runs of consecutive punctuation tokens into one
// token, so "!!?" counts as a single term rather than three.
func mergePunctuation(tokens []string, punctuation map[rune]struct{}) []string {
	out := make([]string, 0, len(tokens))
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			out = append(out, run.String())
			run.Reset()
		}
	}

	for _, tok := range tokens {
		if isPunctuation(tok, punctuation) {
			run.WriteString(tok)
			continue
		}

		flush()

		out = append(out, tok)
	}

	flush()

	return out
}

// isPunctuation reports whether every rune of the token is in the punctuation
// set.
func isPunctuation(token string, punctuation map[rune]struct{}) bool {
	if token == "" {
		return false
	}

	for _, r := range token {
		if _, ok := punctuation[r]; !ok {
			return false
		}
	}

	return true
}

// tokenizeChat flattens the messages of one highlight into a single token
// stream with a boundary token after every message.
func tokenizeChat(messages []domain.Message, punctuation map[rune]struct{}) []string {
	var tokens []string

	for _, msg := range messages {
		tokens = append(tokens, mergePunctuation(tokenizeMessage(msg.Text), punctuation)...)
		tokens = append(tokens, phraseBoundary)
	}

	return tokens
}
