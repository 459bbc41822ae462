// Package resilience groups fault-tolerance building blocks used when calling
// external collaborators (article pages, AI summarization APIs): circuit
// breakers and retry with exponential backoff.
package resilience
