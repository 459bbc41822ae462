package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"article-digest/internal/resilience/circuitbreaker"
	"article-digest/internal/usecase/summarize"
)

// ArticleFetcher fetches a web page and extracts the readable article from it
// using the Mozilla Readability algorithm, plus the page's images via a
// goquery pass over the raw HTML.
//
// Features:
//   - SSRF prevention via URL validation
//   - Circuit breaker for fault tolerance
//   - Size limiting to prevent memory exhaustion
//   - Timeout protection against slow servers
//   - Redirect validation for security
//
// Thread safety: ArticleFetcher is safe for concurrent use.
type ArticleFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         Config
}

// NewArticleFetcher creates a new ArticleFetcher with the given configuration.
func NewArticleFetcher(config Config) *ArticleFetcher {
	fetcher := &ArticleFetcher{
		circuitBreaker: circuitbreaker.New(circuitbreaker.ArticleFetchConfig()),
		config:         config,
	}

	// Each redirect target is re-validated for SSRF before it is followed.
	client := &http.Client{
		Timeout: config.Timeout + 5*time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= fetcher.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", summarize.ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.URL.String(), fetcher.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}

	fetcher.client = client
	return fetcher
}

// Fetch downloads the page at urlStr and extracts the article from it.
//
// The fetch process:
//  1. Validates the URL for security (SSRF prevention)
//  2. Executes the HTTP request through the circuit breaker
//  3. Enforces the size limit while reading the response
//  4. Extracts title and text with the Readability algorithm
//  5. Collects image URLs from the raw HTML
func (f *ArticleFetcher) Fetch(ctx context.Context, urlStr string) (*summarize.Article, error) {
	if err := validateURL(urlStr, f.config.DenyPrivateIPs); err != nil {
		return nil, err
	}

	result, err := f.circuitBreaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, urlStr)
	})
	if err != nil {
		return nil, err
	}

	return result.(*summarize.Article), nil
}

func (f *ArticleFetcher) doFetch(ctx context.Context, urlStr string) (*summarize.Article, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", summarize.ErrInvalidURL, err)
	}

	req.Header.Set("User-Agent", "ArticleDigestBot/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: request exceeded %v", summarize.ErrTimeout, f.config.Timeout)
		}
		// Unwrap redirect validation errors so the sentinel survives.
		if urlErr, ok := err.(*url.Error); ok && urlErr.Err != nil {
			return nil, urlErr.Err
		}
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	// Read with a one-byte margin so an oversized body is distinguishable
	// from one that is exactly at the limit.
	limitedReader := io.LimitReader(resp.Body, f.config.MaxBodySize+1)
	htmlBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		return nil, fmt.Errorf("%w: response size exceeds limit %d bytes",
			summarize.ErrBodyTooLarge, f.config.MaxBodySize)
	}

	// The final URL may differ from the requested one after redirects;
	// relative image links resolve against it.
	finalURL, err := url.Parse(urlStr)
	if err != nil {
		finalURL = nil
	}
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), finalURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", summarize.ErrUnreadableContent, err)
	}

	text := article.TextContent
	if text == "" {
		if article.Content == "" {
			return nil, fmt.Errorf("%w: no readable content found", summarize.ErrUnreadableContent)
		}
		slog.Debug("using article Content instead of TextContent",
			slog.String("url", urlStr),
			slog.Int("content_length", len(article.Content)))
		text = article.Content
	}

	images := extractImages(htmlBytes, finalURL, f.config.MaxImages)

	return &summarize.Article{
		Title:  article.Title,
		Text:   text,
		Images: images,
	}, nil
}

// extractImages collects image URLs from the page: the og:image meta tag
// first, then <img src> elements in document order. Relative URLs are
// resolved against base, duplicates are dropped, and the result is capped
// at max entries.
func extractImages(htmlBytes []byte, base *url.URL, max int) []string {
	if max <= 0 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		slog.Debug("image extraction failed", slog.Any("error", err))
		return nil
	}

	images := make([]string, 0, max)
	seen := make(map[string]struct{})

	add := func(raw string) {
		raw = strings.TrimSpace(raw)
		if raw == "" || len(images) >= max {
			return
		}
		resolved := raw
		if base != nil {
			if u, err := url.Parse(raw); err == nil {
				resolved = base.ResolveReference(u).String()
			}
		}
		if !strings.HasPrefix(resolved, "http://") && !strings.HasPrefix(resolved, "https://") {
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		images = append(images, resolved)
	}

	doc.Find(`meta[property="og:image"]`).Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			add(content)
		}
	})
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok {
			add(src)
		}
	})

	return images
}
