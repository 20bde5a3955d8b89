package service

import (
	"context"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/store"
)

type LearnerService struct {
	Learners store.LearnerStore
}

func NewLearnerService(learners store.LearnerStore) *LearnerService {
	return &LearnerService{Learners: learners}
}

func (s *LearnerService) CreateLearner(ctx context.Context, learner *models.Learner) error {
	return s.Learners.Create(ctx, learner)
}

func (s *LearnerService) GetLearner(ctx context.Context, id string) (*models.Learner, error) {
	return s.Learners.Get(ctx, id)
}

func (s *LearnerService) ListLearners(ctx context.Context) ([]models.Learner, error) {
	return s.Learners.List(ctx)
}

func (s *LearnerService) UpdateLearner(ctx context.Context, id string, fields map[string]interface{}) (*models.Learner, error) {
	return s.Learners.Update(ctx, id, fields)
}

func (s *LearnerService) DeleteLearner(ctx context.Context, id string) error {
	return s.Learners.Delete(ctx, id)
}

// LogActivity appends one activity to the learner's append-only log.
func (s *LearnerService) LogActivity(ctx context.Context, learnerID, activityType string, duration float64, score *float64) error {
	activity := models.Activity{
		Timestamp: time.Now().UTC(),
		Type:      activityType,
		Duration:  duration,
		Score:     score,
	}
	return s.Learners.AppendActivity(ctx, learnerID, activity)
}
