// Package chat provides the HTTP handlers of the query service.
package chat

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pharmagpt/pharmagpt/internal/faults"
	"github.com/pharmagpt/pharmagpt/internal/llm"
	"github.com/pharmagpt/pharmagpt/internal/logger"
	"github.com/pharmagpt/pharmagpt/internal/prompt"
	"github.com/pharmagpt/pharmagpt/internal/vectorstore"
)

// Retriever returns ranked context for a query text.
type Retriever interface {
	Retrieve(ctx context.Context, queryText string, topK int) (vectorstore.QueryResult, error)
}

// Completer generates an answer from an assembled message sequence.
type Completer interface {
	Chat(ctx context.Context, messages []llm.Message) (string, error)
}

// Config holds the chat handler settings.
type Config struct {
	// TopK is how many context documents each answer is grounded on.
	TopK int `yaml:"top_k" env:"CHAT_TOP_K"`
}

// NewConfig reads the chat configuration from environment variables.
func NewConfig() Config {
	topK := 2
	if v := os.Getenv("CHAT_TOP_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topK = n
		}
	}
	return Config{TopK: topK}
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []llm.Message `json:"history"`
}

// ChatResponse is the success payload of POST /chat. Sources mirror the
// retrieved metadatas in ranking order so callers can cite per answer.
type ChatResponse struct {
	Answer  string                 `json:"answer"`
	Sources []vectorstore.Metadata `json:"sources"`
}

// ErrorResponse is the uniform error payload of the query surface.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Handler handles the query service HTTP requests.
type Handler struct {
	cfg       Config
	retriever Retriever
	completer Completer
	log       *logger.Logger
}

// NewHandler creates a new Handler.
func NewHandler(cfg Config, retriever Retriever, completer Completer, log *logger.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		retriever: retriever,
		completer: completer,
		log:       log,
	}
}

// Root answers the liveness/welcome probe.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to PharmaGPT API"})
}

// Chat runs one conversational RAG turn: retrieve context, assemble the
// prompt, call the completion service, and return the answer with its
// sources. Per-request failures are converted to structured error payloads;
// the process stays alive.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx := c.Request.Context()

	retrieved, err := h.retriever.Retrieve(ctx, req.Message, h.cfg.TopK)
	if err != nil {
		h.fail(c, "retrieval failed", err)
		return
	}

	messages := prompt.Assemble(req.Message, retrieved, req.History)

	answer, err := h.completer.Chat(ctx, messages)
	if err != nil {
		h.fail(c, "completion failed", err)
		return
	}

	sources := retrieved.Metadatas
	if sources == nil {
		sources = []vectorstore.Metadata{}
	}

	c.JSON(http.StatusOK, ChatResponse{
		Answer:  answer,
		Sources: sources,
	})
}

// fail maps a classified error onto an HTTP status and the uniform error
// payload.
func (h *Handler) fail(c *gin.Context, msg string, err error) {
	h.log.Error(msg, err, map[string]interface{}{
		"endpoint": c.FullPath(),
		"kind":     faults.KindOf(err).String(),
	})
	c.JSON(statusFor(err), ErrorResponse{Detail: err.Error()})
}

// statusFor picks the response status from the error kind: upstream
// completion failures map to 502, store and embedding unavailability to
// 503, bad input to 400, anything unclassified to 500.
func statusFor(err error) int {
	switch faults.KindOf(err) {
	case faults.KindData:
		return http.StatusBadRequest
	case faults.KindStore, faults.KindEmbedding:
		return http.StatusServiceUnavailable
	case faults.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
