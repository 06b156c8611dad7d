// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/pdiddy/wikibot/internal/answer"
	"github.com/pdiddy/wikibot/internal/chat"
	"github.com/pdiddy/wikibot/internal/logger"
	"github.com/pdiddy/wikibot/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the answer pipeline over HTTP",
	Long: `Serve exposes the answer pipeline and in-memory chat sessions as a JSON
API, with /health for probes and /metrics for Prometheus.

Routes:
  POST   /api/answer                 {"question": "..."}
  POST   /api/sessions
  GET    /api/sessions/:id
  DELETE /api/sessions/:id
  POST   /api/sessions/:id/messages  {"text": "..."}
  DELETE /api/sessions/:id/messages`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().Int("sentences", 0, "sentences to keep from each article (default from config, 3)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if logger.ParseLevel(appConfig.Log.Level) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	p := newPipeline(appConfig, appLogger, answer.NewMetrics(reg))
	router := server.NewRouter(server.Deps{
		Answerer: p,
		Sessions: chat.NewStore(),
		Gatherer: reg,
		Logger:   appLogger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, appConfig.Server, router, appLogger)
}
