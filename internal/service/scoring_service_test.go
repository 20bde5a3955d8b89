package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/recommend"
	"learning-service/internal/scoring"
	"learning-service/internal/store"
)

func newTestScoringService() (*ScoringService, *store.MemoryLearnerStore, *store.MemoryEngagementStore) {
	learners := store.NewMemoryLearnerStore()
	engagements := store.NewMemoryEngagementStore()
	svc := NewScoringService(scoring.NewEngine(nil), scoring.NewComprehensive(nil), learners, engagements)
	return svc, learners, engagements
}

func TestScoreSummaryUnknownLearner(t *testing.T) {
	svc, _, _ := newTestScoringService()

	_, err := svc.ScoreSummary(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestScoreSummaryNewLearnerDefaults(t *testing.T) {
	svc, learners, _ := newTestScoringService()
	ctx := context.Background()

	learner := models.NewLearner("Alex", 20, "other", "visual", nil)
	if err := learners.Create(ctx, learner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	summary, err := svc.ScoreSummary(ctx, learner.ID)
	if err != nil {
		t.Fatalf("ScoreSummary failed: %v", err)
	}
	if summary.TotalTests != 0 {
		t.Errorf("Expected 0 tests, got %d", summary.TotalTests)
	}
	if summary.RecommendationLevel != scoring.LevelBeginner {
		t.Errorf("Expected beginner, got %s", summary.RecommendationLevel)
	}
	if summary.ConfidenceScore != 50.0 {
		t.Errorf("Expected confidence 50.0, got %.2f", summary.ConfidenceScore)
	}
}

func TestRecordTestResultRoundTrip(t *testing.T) {
	svc, learners, _ := newTestScoringService()
	ctx := context.Background()

	learner := models.NewLearner("Alex", 20, "other", "visual", nil)
	if err := learners.Create(ctx, learner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	result := models.NewTestResult(learner.ID, "test-1", "quiz", "math-101", 88, 100, time.Now().UTC().Add(-time.Hour))
	engagement, err := svc.RecordTestResult(ctx, result)
	if err != nil {
		t.Fatalf("RecordTestResult failed: %v", err)
	}
	if engagement.EngagementType != "quiz_completed" {
		t.Errorf("Expected quiz_completed, got %s", engagement.EngagementType)
	}
	if engagement.Score == nil || *engagement.Score != 88 {
		t.Errorf("Expected score 88 persisted, got %v", engagement.Score)
	}

	// The recorded attempt must round-trip into the next summary.
	summary, err := svc.ScoreSummary(ctx, learner.ID)
	if err != nil {
		t.Fatalf("ScoreSummary failed: %v", err)
	}
	if summary.TotalTests != 1 {
		t.Fatalf("Expected 1 test after recording, got %d", summary.TotalTests)
	}
	if summary.LatestScore != 88 {
		t.Errorf("Expected latest score 88, got %.2f", summary.LatestScore)
	}
	if summary.RecentPerformance[0].TestType != "quiz" {
		t.Errorf("Expected quiz attempt reconstructed, got %s", summary.RecentPerformance[0].TestType)
	}
}

func TestRecordTestResultUnknownLearner(t *testing.T) {
	svc, _, _ := newTestScoringService()

	result := models.NewTestResult("missing", "test-1", "quiz", "math-101", 88, 100, time.Time{})
	if _, err := svc.RecordTestResult(context.Background(), result); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestComprehensiveScoreThroughService(t *testing.T) {
	svc, learners, _ := newTestScoringService()
	ctx := context.Background()

	learner := models.NewLearner("Alex", 20, "other", "visual", nil)
	if err := learners.Create(ctx, learner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	report, err := svc.ComprehensiveScore(ctx, learner.ID)
	if err != nil {
		t.Fatalf("ComprehensiveScore failed: %v", err)
	}
	if report.PerformanceLevel != scoring.TierNewLearner {
		t.Errorf("Expected new_learner, got %s", report.PerformanceLevel)
	}
	if report.LearnerID != learner.ID {
		t.Errorf("Expected learner id %s, got %s", learner.ID, report.LearnerID)
	}
}

func TestRecommendationsEndToEnd(t *testing.T) {
	svc, learners, engagements := newTestScoringService()
	ctx := context.Background()

	learner := models.NewLearner("Alex", 20, "other", "visual", nil)
	if err := learners.Create(ctx, learner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A strong consistent history lands the learner in advanced
	// territory.
	for i := 0; i < 4; i++ {
		e := models.NewEngagement(learner.ID, "content-1", "math-101", "exam_taken")
		score := 90.0
		e.Score = &score
		e.Timestamp = time.Now().UTC().AddDate(0, 0, -(4 - i))
		if err := engagements.Create(ctx, e); err != nil {
			t.Fatalf("Create engagement failed: %v", err)
		}
	}

	contents := store.NewMemoryContentStore()
	for _, c := range []*models.Content{
		models.NewContent("Advanced Math", "", "course", "math-201", "advanced", []string{"math"}, 120),
		models.NewContent("Beginner Art", "", "course", "art-101", "beginner", []string{"art"}, 60),
	} {
		if err := contents.Create(ctx, c); err != nil {
			t.Fatalf("Create content failed: %v", err)
		}
	}

	ranker := recommend.NewRanker(recommend.NewMatcher(nil), contents)
	recSvc := NewRecommendationService(svc, ranker)

	recommendations, err := recSvc.Recommendations(ctx, learner.ID, 5)
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recommendations) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(recommendations))
	}
	if recommendations[0].Course.CourseID != "math-201" {
		t.Errorf("Expected advanced math first for advanced learner, got %s", recommendations[0].Course.CourseID)
	}

	path, err := recSvc.LearningPath(ctx, learner.ID)
	if err != nil {
		t.Fatalf("LearningPath failed: %v", err)
	}
	if len(path.Items) != 2 {
		t.Errorf("Expected 2 path items, got %d", len(path.Items))
	}
	if path.StartingLevel != scoring.LevelAdvanced {
		t.Errorf("Expected advanced starting level, got %s", path.StartingLevel)
	}
}
