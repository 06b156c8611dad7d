// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikibot/internal/render"
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Answer one factual question",
	Long: `Ask looks up the Wikipedia article that best matches the question,
summarizes its introduction, and prints the answer with a link to the
article. Failures produce an explanatory answer rather than an error.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("format", "text", "output format: text, json, or yaml")
	askCmd.Flags().Int("sentences", 0, "sentences to keep from the article (default from config, 3)")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("provide a question, e.g. wikibot ask capital of France")
	}
	format, _ := cmd.Flags().GetString("format")

	p := newPipeline(appConfig, appLogger, nil)
	fa := p.Answer(cmd.Context(), question)
	return render.Answer(cmd.OutOrStdout(), fa, render.Format(format))
}
