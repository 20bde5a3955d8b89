package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"learning-service/internal/models"
	"learning-service/internal/service"
	"learning-service/internal/store"
)

type LearnerHandler struct {
	Service *service.LearnerService
}

func NewLearnerHandler(s *service.LearnerService) *LearnerHandler {
	return &LearnerHandler{Service: s}
}

type createLearnerRequest struct {
	Name          string   `json:"name" binding:"required"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	LearningStyle string   `json:"learning_style"`
	Preferences   []string `json:"preferences"`
}

func (h *LearnerHandler) CreateLearner(c *gin.Context) {
	var req createLearnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	learner := models.NewLearner(req.Name, req.Age, req.Gender, req.LearningStyle, req.Preferences)
	if err := h.Service.CreateLearner(context.Background(), learner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, learner)
}

func (h *LearnerHandler) GetLearner(c *gin.Context) {
	learner, err := h.Service.GetLearner(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, learner)
}

func (h *LearnerHandler) ListLearners(c *gin.Context) {
	learners, err := h.Service.ListLearners(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, learners)
}

func (h *LearnerHandler) UpdateLearner(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	learner, err := h.Service.UpdateLearner(context.Background(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, learner)
}

func (h *LearnerHandler) DeleteLearner(c *gin.Context) {
	if err := h.Service.DeleteLearner(context.Background(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type logActivityRequest struct {
	ActivityType string   `json:"activity_type" binding:"required"`
	Duration     float64  `json:"duration"`
	Score        *float64 `json:"score"`
}

func (h *LearnerHandler) LogActivity(c *gin.Context) {
	var req logActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.Service.LogActivity(context.Background(), c.Param("id"), req.ActivityType, req.Duration, req.Score)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"logged": true})
}
