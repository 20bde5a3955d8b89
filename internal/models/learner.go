package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one logged learning event. Activities are append-only:
// once recorded they are never rewritten or removed.
type Activity struct {
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	Type       string    `bson:"activity_type" json:"activity_type"`
	Duration   float64   `bson:"duration" json:"duration"`
	Score      *float64  `bson:"score,omitempty" json:"score,omitempty"`
	Difficulty string    `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
}

type Learner struct {
	ID            string                 `bson:"_id" json:"id"`
	Name          string                 `bson:"name" json:"name"`
	Age           int                    `bson:"age" json:"age"`
	Gender        string                 `bson:"gender" json:"gender"`
	LearningStyle string                 `bson:"learning_style" json:"learning_style"`
	Preferences   []string               `bson:"preferences" json:"preferences"`
	Activities    []Activity             `bson:"activities" json:"activities"`
	ActivityCount int                    `bson:"activity_count" json:"activity_count"`
	Meta          map[string]interface{} `bson:"meta,omitempty" json:"meta,omitempty"`
	CreatedAt     time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time              `bson:"updated_at" json:"updated_at"`
}

// NewLearner creates a learner with a generated ID and timestamps set.
func NewLearner(name string, age int, gender, learningStyle string, preferences []string) *Learner {
	now := time.Now().UTC()
	return &Learner{
		ID:            uuid.NewString(),
		Name:          name,
		Age:           age,
		Gender:        gender,
		LearningStyle: learningStyle,
		Preferences:   preferences,
		Activities:    []Activity{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// LogActivity appends an activity and bumps the counter.
func (l *Learner) LogActivity(activityType string, duration float64, score *float64) {
	l.Activities = append(l.Activities, Activity{
		Timestamp: time.Now().UTC(),
		Type:      activityType,
		Duration:  duration,
		Score:     score,
	})
	l.ActivityCount++
	l.UpdatedAt = time.Now().UTC()
}
