package models

import (
	"time"

	"github.com/google/uuid"
)

// Content is one catalog entry. DifficultyLevel is the coarse tier
// (beginner/intermediate/advanced); DifficultyScore is the finer 1-10 scale.
type Content struct {
	ID                string    `bson:"_id" json:"id"`
	Title             string    `bson:"title" json:"title"`
	Description       string    `bson:"description" json:"description"`
	ContentType       string    `bson:"content_type" json:"content_type"`
	CourseID          string    `bson:"course_id" json:"course_id"`
	ModuleID          string    `bson:"module_id,omitempty" json:"module_id,omitempty"`
	DifficultyLevel   string    `bson:"difficulty_level" json:"difficulty_level"`
	DifficultyScore   int       `bson:"difficulty_score,omitempty" json:"difficulty_score,omitempty"`
	Tags              []string  `bson:"tags" json:"tags"`
	EstimatedDuration int       `bson:"estimated_duration" json:"estimated_duration"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

func NewContent(title, description, contentType, courseID, difficultyLevel string, tags []string, estimatedDuration int) *Content {
	now := time.Now().UTC()
	return &Content{
		ID:                uuid.NewString(),
		Title:             title,
		Description:       description,
		ContentType:       contentType,
		CourseID:          courseID,
		DifficultyLevel:   difficultyLevel,
		Tags:              tags,
		EstimatedDuration: estimatedDuration,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
