// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wikibot/internal/answer"
	"github.com/pdiddy/wikibot/internal/secrets"
	"github.com/pdiddy/wikibot/internal/wikipedia"
	"github.com/pdiddy/wikibot/pkg/types"
)

// setDefaults registers every config key so environment variables are seen
// by Unmarshal even when no config file sets them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("wikipedia.api_url", types.DefaultAPIURL)
	v.SetDefault("wikipedia.article_url", types.DefaultArticleURL)
	v.SetDefault("wikipedia.timeout", types.DefaultTimeout)
	v.SetDefault("wikipedia.user_agent", types.DefaultUserAgent)
	v.SetDefault("wikipedia.api_token", "")
	v.SetDefault("wikipedia.rate_limit_retries", 0)
	v.SetDefault("summary.sentences", types.DefaultSentences)
	v.SetDefault("server.addr", types.DefaultAddr)
	v.SetDefault("server.shutdown_timeout", types.DefaultShutdownTimeout)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// loadConfig unmarshals viper's merged settings and applies command-line
// overrides for flags the user actually set.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Lookup("sentences") != nil && flags.Changed("sentences") {
		cfg.Summary.Sentences, _ = flags.GetInt("sentences")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}

	return cfg.WithDefaults(), nil
}

// applySecrets fills credentials the config left empty from .secrets/.
func applySecrets(cfg types.Config, s secrets.Secrets) types.Config {
	if cfg.Wikipedia.APIToken == "" {
		cfg.Wikipedia.APIToken = s.Get(secrets.WikimediaAPIToken)
	}
	if contact := s.Get(secrets.WikimediaContact); contact != "" {
		cfg.Wikipedia.UserAgent = fmt.Sprintf("%s (%s)", cfg.Wikipedia.UserAgent, contact)
	}
	return cfg
}

// newPipeline wires the Wikipedia client into an answer pipeline.
func newPipeline(cfg types.Config, logger *slog.Logger, metrics *answer.Metrics) *answer.Pipeline {
	client := wikipedia.NewClient(nil, cfg.Wikipedia, logger)
	return &answer.Pipeline{
		Resolver:   client,
		Fetcher:    client,
		ArticleURL: cfg.Wikipedia.ArticleURL,
		Sentences:  cfg.Summary.Sentences,
		Logger:     logger,
		Metrics:    metrics,
	}
}
