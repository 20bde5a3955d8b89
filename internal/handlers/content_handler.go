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

type ContentHandler struct {
	Service *service.ContentService
}

func NewContentHandler(s *service.ContentService) *ContentHandler {
	return &ContentHandler{Service: s}
}

type createContentRequest struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	ContentType       string   `json:"content_type"`
	CourseID          string   `json:"course_id" binding:"required"`
	DifficultyLevel   string   `json:"difficulty_level"`
	Tags              []string `json:"tags"`
	EstimatedDuration int      `json:"estimated_duration"`
}

func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req createContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content := models.NewContent(req.Title, req.Description, req.ContentType, req.CourseID, req.DifficultyLevel, req.Tags, req.EstimatedDuration)
	if err := h.Service.CreateContent(context.Background(), content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, content)
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	content, err := h.Service.GetContent(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) ListContents(c *gin.Context) {
	contents, err := h.Service.ListContents(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contents)
}

func (h *ContentHandler) UpdateContent(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content, err := h.Service.UpdateContent(context.Background(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) DeleteContent(c *gin.Context) {
	if err := h.Service.DeleteContent(context.Background(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
