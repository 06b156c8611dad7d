// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chat keeps in-memory chat transcripts on top of the answer
// pipeline. Transcripts live only as long as the process; nothing is
// written to disk.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pdiddy/wikibot/pkg/types"
)

// GreetingID is the fixed ID of the first bot message in every transcript.
const GreetingID = "greeting"

// Greeting opens every transcript and is all that remains after Clear.
const Greeting = "Hello! I'm WikiBot. I can answer your factual questions by finding and summarizing information from Wikipedia. What would you like to know?"

var (
	// ErrEmptyMessage is returned when the user text is blank.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrSessionNotFound is returned for an unknown session ID.
	ErrSessionNotFound = errors.New("session not found")
)

// Answerer produces the bot reply for a question. *answer.Pipeline
// satisfies it.
type Answerer interface {
	Answer(ctx context.Context, question string) types.FactualAnswer
}

// Session is one chat transcript. It is safe for concurrent use.
type Session struct {
	id string

	mu       sync.Mutex
	messages []types.ChatMessage
}

// NewSession returns a session with a fresh ID holding only the greeting.
func NewSession() *Session {
	return &Session{
		id:       uuid.NewString(),
		messages: []types.ChatMessage{greeting()},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Ask records text as a user message, asks a for a reply, records the reply
// and returns it. Surrounding whitespace is trimmed; blank text returns
// ErrEmptyMessage and leaves the transcript untouched. The session lock is not
// held while a is answering.
func (s *Session) Ask(ctx context.Context, a Answerer, text string) (types.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.ChatMessage{}, ErrEmptyMessage
	}

	s.append(types.ChatMessage{
		ID:     uuid.NewString(),
		Text:   text,
		Sender: types.SenderUser,
	})

	fa := a.Answer(ctx, text)
	reply := types.ChatMessage{
		ID:      uuid.NewString(),
		Text:    fa.Answer,
		Sender:  types.SenderBot,
		Sources: fa.Sources,
	}
	s.append(reply)
	return reply, nil
}

// Clear drops everything but the greeting.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []types.ChatMessage{greeting()}
}

// Snapshot is the serializable view of a session.
type Snapshot struct {
	ID       string              `json:"id" yaml:"id"`
	Messages []types.ChatMessage `json:"messages" yaml:"messages"`
}

// Snapshot returns the session ID with a copy of its transcript.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{ID: s.id, Messages: s.Messages()}
}

func (s *Session) append(m types.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

func greeting() types.ChatMessage {
	return types.ChatMessage{ID: GreetingID, Text: Greeting, Sender: types.SenderBot}
}
