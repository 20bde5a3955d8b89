package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"learning-service/internal/service"
	"learning-service/internal/store"
)

type RecommendationHandler struct {
	Service     *service.RecommendationService
	DefaultTopN int
}

func NewRecommendationHandler(s *service.RecommendationService, defaultTopN int) *RecommendationHandler {
	if defaultTopN <= 0 {
		defaultTopN = 5
	}
	return &RecommendationHandler{Service: s, DefaultTopN: defaultTopN}
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	topN := h.DefaultTopN
	if raw := c.Query("top_n"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			topN = parsed
		}
	}

	recommendations, err := h.Service.Recommendations(context.Background(), c.Param("id"), topN)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"learner_id":      c.Param("id"),
		"recommendations": recommendations,
	})
}

func (h *RecommendationHandler) GetLearningPath(c *gin.Context) {
	path, err := h.Service.LearningPath(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, path)
}
