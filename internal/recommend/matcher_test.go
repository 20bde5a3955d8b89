package recommend

import (
	"testing"

	"learning-service/internal/models"
	"learning-service/internal/scoring"
)

func course(courseID, difficulty string) models.Content {
	return models.Content{
		ID:              courseID,
		Title:           "Course " + courseID,
		CourseID:        courseID,
		DifficultyLevel: difficulty,
	}
}

func summaryWith(level string, latestScore float64, trend string) models.ScoreSummary {
	return models.ScoreSummary{
		LearnerID:           "learner-1",
		LatestScore:         latestScore,
		ScoreTrend:          trend,
		StrongestSubject:    scoring.DefaultSubject,
		WeakestSubject:      scoring.DefaultSubject,
		RecommendationLevel: level,
		ConfidenceScore:     100,
	}
}

func TestMatchScoreDifficultyComponent(t *testing.T) {
	matcher := NewMatcher(nil)

	testCases := []struct {
		name       string
		difficulty string
		level      string
		expected   float64
	}{
		{"exact match", "beginner", scoring.LevelBeginner, 45},
		{"suitable alias", "easy", scoring.LevelBeginner, 40},
		{"adjacent tier", "intermediate", scoring.LevelAdvanced, 40},
		{"mismatch floor", "advanced", scoring.LevelBeginner, 10},
		{"unknown level floor", "beginner", "", 10},
		{"empty difficulty defaults intermediate", "", scoring.LevelIntermediate, 45},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := matcher.MatchScore(course("course-1", tc.difficulty), summaryWith(tc.level, 75, scoring.TrendStable))
			if result.Breakdown.DifficultyMatch != tc.expected {
				t.Errorf("Expected difficulty score %.0f, got %.2f", tc.expected, result.Breakdown.DifficultyMatch)
			}
		})
	}
}

func TestMatchScorePerformanceBands(t *testing.T) {
	matcher := NewMatcher(nil)

	testCases := []struct {
		latestScore float64
		expected    float64
	}{
		{95, 30},
		{90, 30},
		{85, 25},
		{75, 20},
		{65, 15},
		{30, 10},
		{0, 10},
	}

	for _, tc := range testCases {
		result := matcher.MatchScore(course("course-1", "beginner"), summaryWith(scoring.LevelBeginner, tc.latestScore, scoring.TrendStable))
		if result.Breakdown.PerformanceAlignment != tc.expected {
			t.Errorf("Latest %.0f: expected %.0f, got %.2f", tc.latestScore, tc.expected, result.Breakdown.PerformanceAlignment)
		}
	}
}

func TestMatchScoreTrendComponent(t *testing.T) {
	matcher := NewMatcher(nil)

	testCases := []struct {
		trend    string
		expected float64
	}{
		{scoring.TrendImproving, 20},
		{scoring.TrendStable, 15},
		{scoring.TrendDeclining, 10},
		{"unknown", 15},
	}

	for _, tc := range testCases {
		result := matcher.MatchScore(course("course-1", "beginner"), summaryWith(scoring.LevelBeginner, 75, tc.trend))
		if result.Breakdown.ProgressionScore != tc.expected {
			t.Errorf("Trend %s: expected %.0f, got %.2f", tc.trend, tc.expected, result.Breakdown.ProgressionScore)
		}
	}
}

func TestMatchScoreSubjectBonus(t *testing.T) {
	matcher := NewMatcher(nil)

	summary := summaryWith(scoring.LevelBeginner, 75, scoring.TrendStable)
	summary.StrongestSubject = "math"

	withBonus := matcher.MatchScore(course("math-101", "beginner"), summary)
	if withBonus.Breakdown.SubjectStrengthBonus != 10 {
		t.Errorf("Expected subject bonus 10, got %.2f", withBonus.Breakdown.SubjectStrengthBonus)
	}

	without := matcher.MatchScore(course("history-101", "beginner"), summary)
	if without.Breakdown.SubjectStrengthBonus != 0 {
		t.Errorf("Expected no subject bonus, got %.2f", without.Breakdown.SubjectStrengthBonus)
	}

	summary.StrongestSubject = ""
	empty := matcher.MatchScore(course("math-101", "beginner"), summary)
	if empty.Breakdown.SubjectStrengthBonus != 0 {
		t.Errorf("Empty subject must never match, got %.2f", empty.Breakdown.SubjectStrengthBonus)
	}
}

func TestMatchScoreFloor(t *testing.T) {
	matcher := NewMatcher(nil)

	// Worst case: difficulty mismatch, lowest band, declining trend, no
	// subject overlap. Every component still contributes its floor.
	result := matcher.MatchScore(course("course-1", "advanced"), summaryWith(scoring.LevelBeginner, 20, scoring.TrendDeclining))

	if result.TotalScore != 30 {
		t.Errorf("Expected floor total 30, got %.2f", result.TotalScore)
	}
	if result.Breakdown.DifficultyMatch != 10 {
		t.Errorf("Expected mismatch floor 10, got %.2f", result.Breakdown.DifficultyMatch)
	}
}

func TestMatchScoreConfidenceScaling(t *testing.T) {
	matcher := NewMatcher(nil)

	summary := summaryWith(scoring.LevelBeginner, 75, scoring.TrendStable)
	summary.ConfidenceScore = 50

	result := matcher.MatchScore(course("course-1", "beginner"), summary)
	expected := result.TotalScore / 2
	if result.Confidence != expected {
		t.Errorf("Expected confidence %.2f, got %.2f", expected, result.Confidence)
	}
}

func TestMatchReasonNeverEmpty(t *testing.T) {
	matcher := NewMatcher(nil)

	// All components at their floors: the generic fallback must appear.
	result := matcher.MatchScore(course("course-1", "advanced"), summaryWith(scoring.LevelBeginner, 20, scoring.TrendDeclining))
	if result.Reason != "General recommendation based on your learning profile" {
		t.Errorf("Expected generic fallback reason, got %q", result.Reason)
	}

	strong := matcher.MatchScore(course("course-1", "beginner"), summaryWith(scoring.LevelBeginner, 95, scoring.TrendImproving))
	if strong.Reason == "" {
		t.Error("Reason must never be empty")
	}
	if strong.Reason == result.Reason {
		t.Error("Strong match should produce component-specific reasons")
	}
}
