package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/service"
)

type ReviewHandler struct {
	Service *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: s}
}

// DueQuestions lists the questions whose spaced-repetition review date has
// arrived.
func (h *ReviewHandler) DueQuestions(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	questions, err := h.Service.DueQuestions(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load due questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GradeReview applies a 0-5 recall grade to one question's schedule.
func (h *ReviewHandler) GradeReview(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	var req struct {
		Quality *int `json:"quality" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	item, err := h.Service.GradeReview(context.Background(), userID, c.Param("questionId"), *req.Quality)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ReviewHandler) WeakAreas(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	recommendations, err := h.Service.WeakAreas(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive weak areas"})
		return
	}
	c.JSON(http.StatusOK, recommendations)
}

func (h *ReviewHandler) TopicPerformance(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	performance, err := h.Service.TopicPerformance(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load topic performance"})
		return
	}
	c.JSON(http.StatusOK, performance)
}

// ResetTopic clears one topic aggregate on explicit learner request.
func (h *ReviewHandler) ResetTopic(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	if err := h.Service.ResetTopic(context.Background(), userID, c.Param("topic")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset topic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
