// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikipedia

import (
	"net/url"
	"strings"
)

// ArticleURL returns base followed by title with spaces turned into
// underscores and then percent-encoded the way encodeURIComponent does it.
func ArticleURL(base, title string) string {
	return base + EncodeTitle(title)
}

// EncodeTitle converts an article title to its URL path form.
func EncodeTitle(title string) string {
	s := strings.ReplaceAll(title, " ", "_")

	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isUnreserved(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[ch>>4])
		b.WriteByte(hex[ch&0x0f])
	}
	return b.String()
}

// TitleFromURL recovers the article title from a link built by ArticleURL.
// ok is false when uri does not start with base or does not decode.
func TitleFromURL(base, uri string) (title string, ok bool) {
	encoded, found := strings.CutPrefix(uri, base)
	if !found {
		return "", false
	}
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		return "", false
	}
	return strings.ReplaceAll(decoded, "_", " "), true
}

// isUnreserved reports whether encodeURIComponent leaves ch as is.
func isUnreserved(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	switch ch {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
