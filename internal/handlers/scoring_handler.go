package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"learning-service/internal/models"
	"learning-service/internal/service"
	"learning-service/internal/store"
)

type ScoringHandler struct {
	Service *service.ScoringService
}

func NewScoringHandler(s *service.ScoringService) *ScoringHandler {
	return &ScoringHandler{Service: s}
}

func (h *ScoringHandler) GetScoreSummary(c *gin.Context) {
	summary, err := h.Service.ScoreSummary(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ScoringHandler) GetComprehensiveScore(c *gin.Context) {
	report, err := h.Service.ComprehensiveScore(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

type recordTestResultRequest struct {
	TestID      string     `json:"test_id" binding:"required"`
	TestType    string     `json:"test_type" binding:"required"`
	CourseID    string     `json:"course_id" binding:"required"`
	ContentID   string     `json:"content_id"`
	Score       float64    `json:"score"`
	MaxScore    float64    `json:"max_score"`
	TimeTaken   *float64   `json:"time_taken"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (h *ScoringHandler) RecordTestResult(c *gin.Context) {
	var req recordTestResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completedAt := time.Time{}
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}
	result := models.NewTestResult(c.Param("id"), req.TestID, req.TestType, req.CourseID, req.Score, req.MaxScore, completedAt)
	result.ContentID = req.ContentID
	result.TimeTaken = req.TimeTaken

	engagement, err := h.Service.RecordTestResult(context.Background(), result)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"test_result": result, "engagement_id": engagement.ID})
}
