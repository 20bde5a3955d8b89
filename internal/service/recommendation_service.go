package service

import (
	"context"

	"learning-service/internal/recommend"
)

// RecommendationService composes the score summary with the ranker.
type RecommendationService struct {
	Scoring *ScoringService
	Ranker  *recommend.Ranker
}

func NewRecommendationService(scoring *ScoringService, ranker *recommend.Ranker) *RecommendationService {
	return &RecommendationService{Scoring: scoring, Ranker: ranker}
}

// Recommendations returns the learner's top-N ranked courses. An empty
// catalog yields an empty list.
func (s *RecommendationService) Recommendations(ctx context.Context, learnerID string, topN int) ([]recommend.Recommendation, error) {
	summary, err := s.Scoring.ScoreSummary(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	return s.Ranker.PersonalizedRecommendations(ctx, summary, topN)
}

// LearningPath returns the learner's sequenced path; with no suitable
// courses it returns the explicit empty-path structure.
func (s *RecommendationService) LearningPath(ctx context.Context, learnerID string) (recommend.LearningPath, error) {
	summary, err := s.Scoring.ScoreSummary(ctx, learnerID)
	if err != nil {
		return recommend.LearningPath{}, err
	}
	return s.Ranker.LearningPath(ctx, summary, nil)
}
