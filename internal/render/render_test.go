// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wikibot/pkg/types"
)

var paris = types.FactualAnswer{
	Answer:  "### Paris\n\nParis is the capital of France.",
	Sources: []types.Source{{Title: "Paris", URI: "https://en.wikipedia.org/wiki/Paris"}},
}

var miss = types.FactualAnswer{
	Answer: "I'm sorry, I couldn't find a relevant Wikipedia article for your question.",
}

func TestAnswerText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AnswerText(&buf, paris))

	out := buf.String()
	assert.Contains(t, out, "Paris is the capital of France.")
	assert.NotContains(t, out, "###")
	assert.Contains(t, out, "Sources:")
	assert.Contains(t, out, "https://en.wikipedia.org/wiki/Paris")
}

func TestAnswerTextWithoutSources(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AnswerText(&buf, miss))
	assert.Contains(t, buf.String(), miss.Answer)
	assert.NotContains(t, buf.String(), "Sources:")
}

func TestAnswerJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Answer(&buf, paris, FormatJSON))

	var got types.FactualAnswer
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, paris, got)
}

func TestAnswerJSONEmptySourcesIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AnswerJSON(&buf, miss))
	assert.Contains(t, buf.String(), `"sources": []`)
}

func TestAnswerYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Answer(&buf, paris, FormatYAML))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "answer:"), out)
	assert.Contains(t, out, "sources:")

	var got types.FactualAnswer
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, paris, got)
}

func TestAnswerUnknownFormat(t *testing.T) {
	err := Answer(&bytes.Buffer{}, paris, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestTranscript(t *testing.T) {
	msgs := []types.ChatMessage{
		{ID: "greeting", Text: "Hello!", Sender: types.SenderBot},
		{ID: "u1", Text: "capital of France", Sender: types.SenderUser},
		{ID: "b1", Text: paris.Answer, Sender: types.SenderBot, Sources: paris.Sources},
	}
	var buf bytes.Buffer
	require.NoError(t, Transcript(&buf, msgs))

	out := buf.String()
	assert.Contains(t, out, "You")
	assert.Contains(t, out, "WikiBot")
	assert.Contains(t, out, "capital of France")
	assert.Contains(t, out, "https://en.wikipedia.org/wiki/Paris")
}

func TestMarkdownText(t *testing.T) {
	assert.Equal(t, "plain", markdownText("plain"))
	assert.Equal(t, "#hashtag", markdownText("#hashtag"))
	assert.Contains(t, markdownText("### Title\n\nBody"), "Title")
	assert.NotContains(t, markdownText("### Title\n\nBody"), "###")
}
