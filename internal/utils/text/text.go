// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for character counting, sentence
// splitting and chunking used by the summarization pipeline.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This correctly handles multi-byte characters by counting runes instead of bytes.
func CountRunes(text string) int {
	return len([]rune(text))
}

// sentenceTerminators are the characters that end a sentence.
const sentenceTerminators = ".!?"

// SplitSentences splits text into sentences on terminator punctuation
// followed by whitespace. Whitespace around sentences is trimmed and empty
// sentences are dropped. Abbreviation handling is deliberately naive; the
// extractive ranker tolerates occasional over-splitting.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if strings.ContainsRune(sentenceTerminators, r) {
			// Sentence boundary: terminator at end of text or followed by whitespace.
			if i == len(runes)-1 || isSpace(runes[i+1]) {
				if s := strings.TrimSpace(b.String()); s != "" {
					sentences = append(sentences, s)
				}
				b.Reset()
			}
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// ChunkRunes splits text into consecutive chunks of at most size runes.
// An empty input yields no chunks; size must be positive.
func ChunkRunes(text string, size int) []string {
	if size <= 0 || text == "" {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
