package models

import (
	"time"

	"github.com/google/uuid"
)

// Engagement is one interaction between a learner and a piece of content.
// Graded attempts are stored in this shape and reconstructed into
// TestResult views on read.
type Engagement struct {
	ID             string                 `bson:"_id" json:"id"`
	LearnerID      string                 `bson:"learner_id" json:"learner_id"`
	ContentID      string                 `bson:"content_id" json:"content_id"`
	CourseID       string                 `bson:"course_id" json:"course_id"`
	EngagementType string                 `bson:"engagement_type" json:"engagement_type"`
	Duration       *float64               `bson:"duration,omitempty" json:"duration,omitempty"`
	Score          *float64               `bson:"score,omitempty" json:"score,omitempty"`
	Feedback       string                 `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Metadata       map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Timestamp      time.Time              `bson:"timestamp" json:"timestamp"`
}

func NewEngagement(learnerID, contentID, courseID, engagementType string) *Engagement {
	return &Engagement{
		ID:             uuid.NewString(),
		LearnerID:      learnerID,
		ContentID:      contentID,
		CourseID:       courseID,
		EngagementType: engagementType,
		Timestamp:      time.Now().UTC(),
	}
}
