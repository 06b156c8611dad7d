// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes answers and chat messages for terminals and machines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wikibot/pkg/types"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Color palette
const (
	colorPrimary = "#7D56F4"
	colorUser    = "#04B575"
	colorInfo    = "#626262"
	colorLink    = "#5FAFFF"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	botStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorUser))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo))

	linkStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(colorLink))
)

// Answer writes fa to w in the requested format.
func Answer(w io.Writer, fa types.FactualAnswer, format Format) error {
	switch format {
	case FormatText, "":
		return AnswerText(w, fa)
	case FormatJSON:
		return AnswerJSON(w, fa)
	case FormatYAML:
		return AnswerYAML(w, fa)
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

// AnswerText writes the answer body followed by a numbered source list.
// A leading markdown heading is shown as a styled title line.
func AnswerText(w io.Writer, fa types.FactualAnswer) error {
	if _, err := fmt.Fprintln(w, markdownText(fa.Answer)); err != nil {
		return err
	}
	if !fa.HasSources() {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\n"+infoStyle.Render("Sources:")); err != nil {
		return err
	}
	for i, s := range fa.Sources {
		if _, err := fmt.Fprintf(w, "  %d. %s  %s\n", i+1, s.Title, linkStyle.Render(s.URI)); err != nil {
			return err
		}
	}
	return nil
}

// AnswerJSON writes fa as indented JSON.
func AnswerJSON(w io.Writer, fa types.FactualAnswer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(normalize(fa))
}

// AnswerYAML writes fa as YAML.
func AnswerYAML(w io.Writer, fa types.FactualAnswer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(fa)); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// Message writes one transcript entry prefixed with its sender.
func Message(w io.Writer, m types.ChatMessage) error {
	label := botStyle.Render("WikiBot")
	if m.Sender == types.SenderUser {
		label = userStyle.Render("You")
	}
	if _, err := fmt.Fprintf(w, "%s\n", label); err != nil {
		return err
	}
	return AnswerText(w, types.FactualAnswer{Answer: m.Text, Sources: m.Sources})
}

// Transcript writes every message separated by blank lines.
func Transcript(w io.Writer, msgs []types.ChatMessage) error {
	for i, m := range msgs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := Message(w, m); err != nil {
			return err
		}
	}
	return nil
}

// markdownText styles heading lines ("# ..." to "###### ...") and leaves
// everything else untouched.
func markdownText(md string) string {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, "#")
		if trimmed != line && strings.HasPrefix(trimmed, " ") && len(line)-len(trimmed) <= 6 {
			lines[i] = headingStyle.Render(strings.TrimSpace(trimmed))
		}
	}
	return strings.Join(lines, "\n")
}

// normalize guarantees sources encode as a list, never null.
func normalize(fa types.FactualAnswer) types.FactualAnswer {
	if fa.Sources == nil {
		fa.Sources = []types.Source{}
	}
	return fa
}
