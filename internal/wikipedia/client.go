// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikipedia looks up articles through the MediaWiki action API.
//
// Resolve maps free text to the best-matching article title and Extract
// fetches an article's plain-text introduction. Both collapse every failure
// (network error, non-200 status, malformed body, missing page) into an
// absence signal after logging the detail; they never return errors.
package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pdiddy/wikibot/internal/httputil"
	"github.com/pdiddy/wikibot/pkg/types"
)

var (
	// ErrNoMatch means the search returned no article title.
	ErrNoMatch = errors.New("no matching article")

	// ErrNoExtract means the article exists (or was guessed) but has no
	// introductory extract.
	ErrNoExtract = errors.New("no article extract")
)

// Client queries one MediaWiki installation.
type Client struct {
	http   *http.Client
	cfg    types.WikipediaConfig
	logger *slog.Logger
}

// NewClient returns a client for the API at cfg.APIURL. Zero config fields
// take the package defaults. A nil httpClient gets one with cfg.Timeout, and
// a nil logger uses slog.Default().
func NewClient(httpClient *http.Client, cfg types.WikipediaConfig, logger *slog.Logger) *Client {
	cfg = types.Config{Wikipedia: cfg}.WithDefaults().Wikipedia
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:   httpClient,
		cfg:    cfg,
		logger: logger.With("component", "wikipedia"),
	}
}

// ArticleURL returns the citation link for title on this client's wiki.
func (c *Client) ArticleURL(title string) string {
	return ArticleURL(c.cfg.ArticleURL, title)
}

// requestURL builds an API URL from params. format=json and origin=* are
// always added.
func (c *Client) requestURL(params url.Values) string {
	params.Set("format", "json")
	params.Set("origin", "*")
	return c.cfg.APIURL + "?" + params.Encode()
}

// getJSON issues a GET for reqURL and decodes the JSON body into v.
func (c *Client) getJSON(ctx context.Context, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.RateLimitRetries, c.logger)
	if err != nil {
		return fmt.Errorf("Wikipedia API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Wikipedia API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing Wikipedia response: %w", err)
	}
	return nil
}
