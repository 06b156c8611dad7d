// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikibot/internal/chat"
	"github.com/pdiddy/wikibot/internal/render"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Chat reads one question per line and replies with a Wikipedia summary.
The transcript lives only for the session.

Commands:
  /clear    reset the transcript to the greeting
  /history  print the transcript
  /quit     leave (Ctrl-D also works)`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().Int("sentences", 0, "sentences to keep from each article (default from config, 3)")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	p := newPipeline(appConfig, appLogger, nil)
	return chatLoop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), chat.NewSession(), p)
}

// chatLoop drives one session from in until EOF or /quit.
func chatLoop(ctx context.Context, in io.Reader, out io.Writer, s *chat.Session, a chat.Answerer) error {
	if err := render.Transcript(out, s.Messages()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			s.Clear()
			fmt.Fprintln(out, "Chat history cleared.")
			continue
		case "/history":
			if err := render.Transcript(out, s.Messages()); err != nil {
				return err
			}
			continue
		}

		reply, err := s.Ask(ctx, a, line)
		if errors.Is(err, chat.ErrEmptyMessage) {
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err := render.Message(out, reply); err != nil {
			return err
		}
	}
}
