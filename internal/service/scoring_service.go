package service

import (
	"context"
	"fmt"

	"learning-service/internal/models"
	"learning-service/internal/scoring"
	"learning-service/internal/store"
)

// ScoringService composes the store reads with the scoring engines.
// Apart from an unknown learner ID, its entry points are total: empty
// or thin histories produce the engines' neutral defaults.
type ScoringService struct {
	Engine        *scoring.Engine
	Comprehensive *scoring.Comprehensive
	Learners      store.LearnerStore
	Engagements   store.EngagementStore
}

func NewScoringService(engine *scoring.Engine, comprehensive *scoring.Comprehensive, learners store.LearnerStore, engagements store.EngagementStore) *ScoringService {
	return &ScoringService{
		Engine:        engine,
		Comprehensive: comprehensive,
		Learners:      learners,
		Engagements:   engagements,
	}
}

// ScoreSummary reconstructs the learner's graded attempts from the
// engagement log and builds the score summary.
func (s *ScoringService) ScoreSummary(ctx context.Context, learnerID string) (models.ScoreSummary, error) {
	if _, err := s.Learners.Get(ctx, learnerID); err != nil {
		return models.ScoreSummary{}, err
	}

	engagements, err := s.Engagements.ListByLearner(ctx, learnerID)
	if err != nil {
		return models.ScoreSummary{}, err
	}

	results := store.TestResultsFromEngagements(engagements)
	return s.Engine.BuildScoreSummary(learnerID, results), nil
}

// ComprehensiveScore runs the activity-based scorer over the learner's
// raw activity log.
func (s *ScoringService) ComprehensiveScore(ctx context.Context, learnerID string) (scoring.ScoreReport, error) {
	learner, err := s.Learners.Get(ctx, learnerID)
	if err != nil {
		return scoring.ScoreReport{}, err
	}
	return s.Comprehensive.CalculateScore(learner), nil
}

// RecordTestResult persists a graded attempt as an engagement-shaped
// record, the storage form from which TestResult views are
// reconstructed on read.
func (s *ScoringService) RecordTestResult(ctx context.Context, result models.TestResult) (*models.Engagement, error) {
	if _, err := s.Learners.Get(ctx, result.LearnerID); err != nil {
		return nil, err
	}

	engagement := models.NewEngagement(result.LearnerID, result.ContentID, result.CourseID, fmt.Sprintf("%s_completed", result.TestType))
	percentage := result.Percentage
	engagement.Score = &percentage
	engagement.Duration = result.TimeTaken
	engagement.Timestamp = result.CompletedAt
	engagement.Metadata = map[string]interface{}{
		"test_id":   result.TestID,
		"max_score": result.MaxScore,
		"attempts":  result.Attempts,
		"passed":    result.Passed,
	}

	if err := s.Engagements.Create(ctx, engagement); err != nil {
		return nil, err
	}
	return engagement, nil
}
