// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// Resolve returns the title of the single article that best matches query.
// ok is false when the search finds nothing or fails for any reason; the
// failure is logged, not returned.
func (c *Client) Resolve(ctx context.Context, query string) (title string, ok bool) {
	title, err := c.resolve(ctx, query)
	switch {
	case errors.Is(err, ErrNoMatch):
		c.logger.Info("no article matches query", "query", query)
		return "", false
	case err != nil:
		c.logger.Warn("article search failed",
			"query", query,
			"url", c.searchURL(query),
			"error", err,
		)
		return "", false
	}
	return title, true
}

func (c *Client) resolve(ctx context.Context, query string) (string, error) {
	var raw []json.RawMessage
	if err := c.getJSON(ctx, c.searchURL(query), &raw); err != nil {
		return "", err
	}

	// opensearch format is [query, [titles], [descriptions], [urls]].
	if len(raw) < 2 {
		return "", fmt.Errorf("parsing Wikipedia response: opensearch array has %d elements", len(raw))
	}
	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return "", fmt.Errorf("parsing Wikipedia response: titles: %w", err)
	}
	if len(titles) == 0 || titles[0] == "" {
		return "", ErrNoMatch
	}
	return titles[0], nil
}

func (c *Client) searchURL(query string) string {
	return c.requestURL(url.Values{
		"action":    {"opensearch"},
		"search":    {query},
		"limit":     {"1"},
		"namespace": {"0"},
	})
}
