// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wikibot/0.1"). Wikimedia rejects requests without one.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// WikipediaConfig holds settings for the Wikipedia API client.
type WikipediaConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIURL is the MediaWiki action API endpoint.
	APIURL string `json:"api_url" yaml:"api_url" mapstructure:"api_url"`

	// ArticleURL is the prefix for citation links; the encoded title is
	// appended to it.
	ArticleURL string `json:"article_url" yaml:"article_url" mapstructure:"article_url"`

	// APIToken is an optional Wikimedia personal API token sent as a bearer
	// token for higher rate limits.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty" mapstructure:"api_token"`

	// RateLimitRetries is the number of times an HTTP 429 is retried.
	// Zero disables retries.
	RateLimitRetries int `json:"rate_limit_retries" yaml:"rate_limit_retries" mapstructure:"rate_limit_retries"`
}

// SummaryConfig holds settings for extract summarization.
type SummaryConfig struct {
	// Sentences is the maximum number of sentences kept (default 3).
	Sentences int `json:"sentences" yaml:"sentences" mapstructure:"sentences"`
}

// ServerConfig holds settings for the HTTP service.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LogConfig selects log level and output format.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings.
type Config struct {
	Wikipedia WikipediaConfig `json:"wikipedia" yaml:"wikipedia" mapstructure:"wikipedia"`
	Summary   SummaryConfig   `json:"summary" yaml:"summary" mapstructure:"summary"`
	Server    ServerConfig    `json:"server" yaml:"server" mapstructure:"server"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

const (
	DefaultAPIURL          = "https://en.wikipedia.org/w/api.php"
	DefaultArticleURL      = "https://en.wikipedia.org/wiki/"
	DefaultUserAgent       = "wikibot/0.1"
	DefaultTimeout         = 30 * time.Second
	DefaultSentences       = 3
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
)

// WithDefaults returns a copy of c with zero fields filled in.
func (c Config) WithDefaults() Config {
	if c.Wikipedia.APIURL == "" {
		c.Wikipedia.APIURL = DefaultAPIURL
	}
	if c.Wikipedia.ArticleURL == "" {
		c.Wikipedia.ArticleURL = DefaultArticleURL
	}
	if c.Wikipedia.UserAgent == "" {
		c.Wikipedia.UserAgent = DefaultUserAgent
	}
	if c.Wikipedia.Timeout <= 0 {
		c.Wikipedia.Timeout = DefaultTimeout
	}
	if c.Wikipedia.RateLimitRetries < 0 {
		c.Wikipedia.RateLimitRetries = 0
	}
	if c.Summary.Sentences <= 0 {
		c.Summary.Sentences = DefaultSentences
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	return c
}
