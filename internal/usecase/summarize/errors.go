// Package summarize implements the article summarization use case:
// fetch the article, run the summarization pipeline, and record the result
// in the user's history.
package summarize

import "errors"

// Sentinel errors shared with the infrastructure adapters. The fetcher and
// summarizer implementations wrap these so callers can classify failures
// without depending on adapter internals.
var (
	// ErrInvalidURL indicates the URL is malformed or uses a forbidden scheme/target.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrTimeout indicates the article fetch exceeded its deadline.
	ErrTimeout = errors.New("fetch timeout")

	// ErrTooManyRedirects indicates the redirect limit was exceeded during fetch.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response exceeded the configured size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrUnreadableContent indicates content extraction found no readable article.
	ErrUnreadableContent = errors.New("unreadable content")

	// ErrEmptyArticle indicates the fetched article had no text content.
	ErrEmptyArticle = errors.New("article content is empty")

	// ErrSummarizeFailed indicates the summarization pipeline failed entirely.
	ErrSummarizeFailed = errors.New("summarization failed")
)
