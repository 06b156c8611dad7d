// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer turns a free-text question into a short, cited answer drawn
// from Wikipedia.
//
// The pipeline runs strictly in sequence: resolve the question to one
// article title, fetch that article's introduction, keep its first few
// sentences, and cite the article. Every failure, including a panic in a
// collaborator, ends in a FactualAnswer carrying an explanatory message and no
// sources. Answer never returns an error.
package answer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/pdiddy/wikibot/internal/summarize"
	"github.com/pdiddy/wikibot/internal/wikipedia"
	"github.com/pdiddy/wikibot/pkg/types"
)

// Fallback messages shown in place of a summary.
const (
	MsgNoMatch  = "I'm sorry, I couldn't find a relevant Wikipedia article for your question."
	MsgDegraded = "I'm sorry, I encountered an error while trying to answer your question. Please try again later."
)

// NoContentMessage is the answer when title resolved but its extract did not.
func NoContentMessage(title string) string {
	return fmt.Sprintf(`I found an article titled "%s", but I couldn't retrieve its content.`, title)
}

// Resolver maps a question to a single article title.
type Resolver interface {
	Resolve(ctx context.Context, query string) (title string, ok bool)
}

// Fetcher returns an article's plain-text introduction.
type Fetcher interface {
	Extract(ctx context.Context, title string) (extract string, ok bool)
}

// Outcome names the terminal state that produced an answer.
type Outcome string

const (
	OutcomeAnswered  Outcome = "answered"
	OutcomeNoMatch   Outcome = "no_match"
	OutcomeNoContent Outcome = "no_content"
	OutcomeDegraded  Outcome = "degraded"
)

// Pipeline answers questions. Its fields are read-only once Answer is in
// use, so one Pipeline may serve concurrent callers.
type Pipeline struct {
	Resolver Resolver
	Fetcher  Fetcher

	// ArticleURL prefixes citation links (default types.DefaultArticleURL).
	ArticleURL string

	// Sentences is how many extract sentences the answer keeps (default 3).
	Sentences int

	// Logger receives outcome and diagnostic records (default slog.Default()).
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *Metrics
}

// Answer runs the pipeline for question and always returns a non-empty answer.
func (p *Pipeline) Answer(ctx context.Context, question string) (ans types.FactualAnswer) {
	logger := p.logger()
	start := time.Now()
	outcome := OutcomeDegraded

	defer func() {
		if r := recover(); r != nil {
			logger.Error("answer pipeline panicked",
				"question", question,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			ans = fallback(MsgDegraded)
			outcome = OutcomeDegraded
		}
		elapsed := time.Since(start)
		p.Metrics.Observe(outcome, elapsed)
		logger.Info("question answered",
			"question", question,
			"outcome", string(outcome),
			"sources", len(ans.Sources),
			"duration", elapsed,
		)
	}()

	ans, outcome = p.run(ctx, question)
	return ans
}

func (p *Pipeline) run(ctx context.Context, question string) (types.FactualAnswer, Outcome) {
	title, ok := p.Resolver.Resolve(ctx, question)
	if !ok {
		return fallback(MsgNoMatch), OutcomeNoMatch
	}

	extract, ok := p.Fetcher.Extract(ctx, title)
	if !ok {
		return fallback(NoContentMessage(title)), OutcomeNoContent
	}

	summary := summarize.Sentences(extract, p.sentences())

	return types.FactualAnswer{
		Answer: fmt.Sprintf("### %s\n\n%s", title, summary),
		Sources: []types.Source{{
			Title: title,
			URI:   wikipedia.ArticleURL(p.articleURL(), title),
		}},
	}, OutcomeAnswered
}

func fallback(msg string) types.FactualAnswer {
	return types.FactualAnswer{Answer: msg, Sources: []types.Source{}}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Pipeline) sentences() int {
	if p.Sentences > 0 {
		return p.Sentences
	}
	return summarize.DefaultSentences
}

func (p *Pipeline) articleURL() string {
	if p.ArticleURL != "" {
		return p.ArticleURL
	}
	return types.DefaultArticleURL
}
