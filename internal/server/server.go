// Package server exposes the chat pipeline over HTTP. It owns session
// identity and history persistence; the pipeline stays pure.
package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storebot/internal/catalog"
	"storebot/internal/logger"
	"storebot/internal/session"
)

// Assistant is the one pipeline surface the serving layer depends on.
type Assistant interface {
	ProcessMessage(ctx context.Context, userText string, history []*schema.Message) (string, []*schema.Message)
}

// Server wires the assistant, session store and catalog into a router.
type Server struct {
	assistant Assistant
	sessions  session.Store
	catalog   *catalog.Catalog
}

// New creates the HTTP server wiring.
func New(assistant Assistant, sessions session.Store, c *catalog.Catalog) *Server {
	return &Server{assistant: assistant, sessions: sessions, catalog: c}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.POST("/chat", s.handleChat)
		api.GET("/chat/:id/history", s.handleHistory)
		api.GET("/products", s.handleProducts)
	}

	return r
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// turn is the wire shape of one conversation turn.
type turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history, err := s.sessions.Load(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to load session history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	reply, newHistory := s.assistant.ProcessMessage(c.Request.Context(), req.Message, history)

	if err := s.sessions.Save(c.Request.Context(), sessionID, newHistory); err != nil {
		// The reply is already generated; losing one history update is
		// preferable to failing the whole request.
		logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to save session history")
	}

	c.JSON(http.StatusOK, chatResponse{SessionID: sessionID, Reply: reply})
}

func (s *Server) handleHistory(c *gin.Context) {
	sessionID := c.Param("id")

	history, err := s.sessions.Load(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to load session history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	turns := make([]turn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, turn{Role: string(msg.Role), Content: msg.Content})
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "history": turns})
}

func (s *Server) handleProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": s.catalog.Products()})
}
