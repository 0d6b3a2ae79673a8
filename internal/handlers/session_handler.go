package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"assessment-service/internal/engine"
	"assessment-service/internal/models"
	"assessment-service/internal/service"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// CreateSession builds a not-started session from a selection config.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	var req struct {
		Title  string               `json:"title"`
		Config models.SessionConfig `json:"config" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	session, err := h.Service.CreateSession(context.Background(), userID, req.Title, req.Config)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	session, err := h.Service.GetSession(context.Background(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	session, err := h.Service.StartSession(context.Background(), userID, c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitAnswer grades the current question and returns the graded answer
// together with the updated session state.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	var req struct {
		Value            string  `json:"value"`
		TimeTakenSeconds float64 `json:"time_taken_seconds"`
		Confidence       int     `json:"confidence"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if req.Confidence < 0 || req.Confidence > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confidence must be between 0 and 5"})
		return
	}

	answer, session, err := h.Service.SubmitAnswer(context.Background(), userID, c.Param("id"), req.Value, req.TimeTakenSeconds, req.Confidence)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"answer":  answer,
		"session": session,
	})
}

func (h *SessionHandler) AbandonSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	session, err := h.Service.AbandonSession(context.Background(), userID, c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) GetHistory(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	history, err := h.Service.GetHistory(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// statusForError maps engine errors onto HTTP semantics: configuration
// problems are the caller's request, transition violations are conflicts
// with the session's current state.
func statusForError(err error) int {
	switch {
	case errors.Is(err, engine.ErrNoSystemsSelected),
		errors.Is(err, engine.ErrInvalidQuestionCount),
		errors.Is(err, engine.ErrInvalidDifficulty),
		errors.Is(err, service.ErrNoCandidateQuestions):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrAlreadyStarted),
		errors.Is(err, engine.ErrNotStarted),
		errors.Is(err, engine.ErrSessionCompleted),
		errors.Is(err, engine.ErrSessionAbandoned),
		errors.Is(err, engine.ErrNotInProgress):
		return http.StatusConflict
	case errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
