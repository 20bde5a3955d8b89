package store

import (
	"context"
	"errors"
	"strings"

	"learning-service/internal/models"
)

// ErrNotFound is returned by Get operations when no record matches.
var ErrNotFound = errors.New("record not found")

type LearnerStore interface {
	Create(ctx context.Context, learner *models.Learner) error
	Get(ctx context.Context, id string) (*models.Learner, error)
	List(ctx context.Context) ([]models.Learner, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Learner, error)
	AppendActivity(ctx context.Context, id string, activity models.Activity) error
	Delete(ctx context.Context, id string) error
}

type ContentStore interface {
	Create(ctx context.Context, content *models.Content) error
	Get(ctx context.Context, id string) (*models.Content, error)
	List(ctx context.Context) ([]models.Content, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Content, error)
	Delete(ctx context.Context, id string) error
}

type EngagementStore interface {
	Create(ctx context.Context, engagement *models.Engagement) error
	Get(ctx context.Context, id string) (*models.Engagement, error)
	List(ctx context.Context) ([]models.Engagement, error)
	ListByLearner(ctx context.Context, learnerID string) ([]models.Engagement, error)
}

// gradedTypes maps engagement type prefixes onto test types recognised
// by the scoring engine.
var gradedTypes = []string{"quiz", "test", "assignment", "exam"}

// TestResultsFromEngagements reconstructs graded attempts from
// engagement records. Engagements without a score, or whose type does
// not map to a graded kind, are skipped.
func TestResultsFromEngagements(engagements []models.Engagement) []models.TestResult {
	results := make([]models.TestResult, 0, len(engagements))
	for _, e := range engagements {
		if e.Score == nil {
			continue
		}
		testType, ok := gradedType(e.EngagementType)
		if !ok {
			continue
		}
		result := models.NewTestResult(e.LearnerID, e.ID, testType, e.CourseID, *e.Score, 100, e.Timestamp)
		result.ContentID = e.ContentID
		result.TimeTaken = e.Duration
		results = append(results, result)
	}
	return results
}

func gradedType(engagementType string) (string, bool) {
	lowered := strings.ToLower(engagementType)
	for _, t := range gradedTypes {
		if strings.HasPrefix(lowered, t) {
			return t, true
		}
	}
	return "", false
}
