// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/wikibot/internal/chat"
)

type answerRequest struct {
	Question string `json:"question"`
}

type messageRequest struct {
	Text string `json:"text"`
}

// AnswerHandler answers one question without a session.
func AnswerHandler(a chat.Answerer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req answerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		question := strings.TrimSpace(req.Question)
		if question == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
			return
		}
		c.JSON(http.StatusOK, a.Answer(c.Request.Context(), question))
	}
}

// CreateSessionHandler starts a transcript holding only the greeting.
func CreateSessionHandler(st *chat.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := st.Create()
		c.JSON(http.StatusCreated, s.Snapshot())
	}
}

// GetSessionHandler returns a transcript.
func GetSessionHandler(st *chat.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, st)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.Snapshot())
	}
}

// DeleteSessionHandler discards a transcript.
func DeleteSessionHandler(st *chat.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := st.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// SendMessageHandler asks a question inside a session and returns the bot reply.
func SendMessageHandler(st *chat.Store, a chat.Answerer) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, st)
		if !ok {
			return
		}
		var req messageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		reply, err := s.Ask(c.Request.Context(), a, req.Text)
		if errors.Is(err, chat.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, reply)
	}
}

// ClearSessionHandler resets a transcript to the greeting.
func ClearSessionHandler(st *chat.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, st)
		if !ok {
			return
		}
		s.Clear()
		c.JSON(http.StatusOK, s.Snapshot())
	}
}

func lookupSession(c *gin.Context, st *chat.Store) (*chat.Session, bool) {
	s, err := st.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return s, true
}
