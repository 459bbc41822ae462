package summarizer

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"article-digest/internal/utils/text"
)

// defaultSentenceCount is the number of sentences an extractive summary keeps.
const defaultSentenceCount = 7

// stopWords are high-frequency function words excluded from sentence scoring.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "had": {}, "has": {},
	"have": {}, "he": {}, "her": {}, "his": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "its": {}, "not": {}, "of": {},
	"on": {}, "or": {}, "our": {}, "she": {}, "that": {}, "the": {},
	"their": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"to": {}, "was": {}, "we": {}, "were": {}, "which": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// Extractive selects the most informative sentences from a text without
// calling any external API. Sentences are scored by the corpus frequency of
// their content words, with a bonus for capitalized tokens (a cheap proxy
// for named entities), and the top N are returned in original document order.
type Extractive struct {
	// SentenceCount is the number of sentences to keep. Zero means the default (7).
	SentenceCount int
}

// NewExtractive creates an extractive summarizer keeping the default number
// of sentences.
func NewExtractive() *Extractive {
	return &Extractive{SentenceCount: defaultSentenceCount}
}

// Summarize returns the top-scored sentences of input joined by a space,
// preserving their original order. Inputs with fewer sentences than the
// configured count are returned whole. The error result is always nil; the
// signature matches the Summarizer interface.
func (e *Extractive) Summarize(_ context.Context, input string) (string, error) {
	count := e.SentenceCount
	if count <= 0 {
		count = defaultSentenceCount
	}

	sentences := text.SplitSentences(input)
	if len(sentences) <= count {
		return strings.Join(sentences, " "), nil
	}

	freq := wordFrequencies(sentences)

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		ranked[i] = scored{index: i, score: scoreSentence(s, freq)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	top := ranked[:count]
	sort.Slice(top, func(i, j int) bool {
		return top[i].index < top[j].index
	})

	picked := make([]string, len(top))
	for i, s := range top {
		picked[i] = sentences[s.index]
	}
	return strings.Join(picked, " "), nil
}

// wordFrequencies counts content-word occurrences across all sentences.
func wordFrequencies(sentences []string) map[string]int {
	freq := make(map[string]int)
	for _, s := range sentences {
		for _, w := range tokenize(s) {
			lower := strings.ToLower(w)
			if _, stop := stopWords[lower]; stop {
				continue
			}
			freq[lower]++
		}
	}
	return freq
}

// scoreSentence scores a sentence by the total frequency of its content
// words, normalized by token count so long sentences don't dominate.
// Capitalized tokens past the first position earn a bonus.
func scoreSentence(sentence string, freq map[string]int) float64 {
	tokens := tokenize(sentence)
	if len(tokens) == 0 {
		return 0
	}

	var score float64
	for i, w := range tokens {
		lower := strings.ToLower(w)
		if _, stop := stopWords[lower]; stop {
			continue
		}
		score += float64(freq[lower])
		if i > 0 && isCapitalized(w) {
			score += 2
		}
	}
	return score / float64(len(tokens))
}

// tokenize splits a sentence into word tokens on non-letter, non-digit runes.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isCapitalized(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}
