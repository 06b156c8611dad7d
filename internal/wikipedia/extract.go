// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
)

// Extract returns the plain-text introduction of the article named title.
// The API follows redirects and normalizes case itself, so title needs no
// validation. ok is false when the page is missing, has an empty extract, or
// the request fails; the failure is logged, not returned.
func (c *Client) Extract(ctx context.Context, title string) (extract string, ok bool) {
	extract, err := c.extract(ctx, title)
	switch {
	case errors.Is(err, ErrNoExtract):
		c.logger.Info("article has no extract", "title", title)
		return "", false
	case err != nil:
		c.logger.Warn("extract fetch failed",
			"title", title,
			"url", c.extractURL(title),
			"error", err,
		)
		return "", false
	}
	return extract, true
}

func (c *Client) extract(ctx context.Context, title string) (string, error) {
	var qr queryResponse
	if err := c.getJSON(ctx, c.extractURL(title), &qr); err != nil {
		return "", err
	}
	if qr.Query == nil {
		return "", fmt.Errorf("parsing Wikipedia response: missing query object")
	}
	if len(qr.Query.Pages) == 0 {
		return "", ErrNoExtract
	}

	// One title yields one page; sort the opaque ids so the choice is stable
	// if the API ever returns more.
	ids := make([]string, 0, len(qr.Query.Pages))
	for id := range qr.Query.Pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	page := qr.Query.Pages[ids[0]]
	if page.Missing != nil || page.Extract == "" {
		return "", ErrNoExtract
	}
	return page.Extract, nil
}

func (c *Client) extractURL(title string) string {
	return c.requestURL(url.Values{
		"action":      {"query"},
		"prop":        {"extracts"},
		"exintro":     {"true"},
		"explaintext": {"true"},
		"titles":      {title},
	})
}

// MediaWiki query JSON structures.
type queryResponse struct {
	Query *queryBody `json:"query"`
}

type queryBody struct {
	Pages map[string]queryPage `json:"pages"`
}

type queryPage struct {
	PageID  int     `json:"pageid"`
	Title   string  `json:"title"`
	Extract string  `json:"extract"`
	Missing *string `json:"missing"`
}
