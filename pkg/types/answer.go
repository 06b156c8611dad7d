// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for wikibot: the answer
// returned by the pipeline, its citations, chat transcript messages, and
// configuration.
package types

// Source is a citation record pairing a display title with the canonical
// Wikipedia article URL.
type Source struct {
	// URI is the full article URL, e.g. "https://en.wikipedia.org/wiki/Paris".
	URI string `json:"uri" yaml:"uri"`

	// Title is the article title as returned by the search API.
	Title string `json:"title" yaml:"title"`
}

// FactualAnswer is the only value the answer pipeline produces. Answer is
// never empty; Sources holds at most one entry.
type FactualAnswer struct {
	// Answer is markdown text: either a summary with a heading or a fallback
	// message explaining why no summary is available.
	Answer string `json:"answer" yaml:"answer"`

	// Sources lists the articles the answer was drawn from.
	Sources []Source `json:"sources" yaml:"sources"`
}

// HasSources reports whether the answer cites at least one article.
func (a FactualAnswer) HasSources() bool {
	return len(a.Sources) > 0
}

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry in a chat transcript.
type ChatMessage struct {
	ID      string   `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Sender  Sender   `json:"sender" yaml:"sender"`
	Sources []Source `json:"sources,omitempty" yaml:"sources,omitempty"`
}
