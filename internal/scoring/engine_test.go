package scoring

import (
	"math"
	"testing"
	"time"

	"learning-service/internal/models"
)

func result(testType, courseID string, percentage float64, completedAt time.Time) models.TestResult {
	return models.NewTestResult("learner-1", "test-1", testType, courseID, percentage, 100, completedAt)
}

func daysAgo(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -days)
}

func TestWeightedScoreEmptyResults(t *testing.T) {
	engine := NewEngine(nil)
	if got := engine.WeightedScore(nil); got != 0.0 {
		t.Errorf("Expected 0.0 for empty results, got %.2f", got)
	}
}

func TestWeightedScoreBounds(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name    string
		results []models.TestResult
	}{
		{"all perfect", []models.TestResult{
			result("quiz", "math", 100, daysAgo(1)),
			result("exam", "math", 100, daysAgo(40)),
		}},
		{"all zero", []models.TestResult{
			result("test", "math", 0, daysAgo(2)),
			result("assignment", "math", 0, daysAgo(10)),
		}},
		{"mixed ages and types", []models.TestResult{
			result("quiz", "math", 55, daysAgo(0)),
			result("test", "science", 72, daysAgo(15)),
			result("exam", "history", 91, daysAgo(45)),
			result("unknown_type", "art", 33, daysAgo(5)),
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.WeightedScore(tc.results)
			if got < 0 || got > 100 {
				t.Errorf("Weighted score %.2f out of [0,100]", got)
			}
		})
	}
}

func TestWeightedScoreFavorsHeavierTypes(t *testing.T) {
	engine := NewEngine(nil)

	// Same recency: the exam's 0.7 weight should pull the average
	// toward its percentage.
	results := []models.TestResult{
		result("quiz", "math", 60, daysAgo(1)),
		result("exam", "math", 90, daysAgo(1)),
	}
	got := engine.WeightedScore(results)
	unweighted := 75.0
	if got <= unweighted {
		t.Errorf("Expected weighted score above %.1f, got %.2f", unweighted, got)
	}
}

func TestScoreTrendShortHistoryIsStable(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name  string
		count int
	}{
		{"empty", 0},
		{"one result", 1},
		{"two results", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results := make([]models.TestResult, 0, tc.count)
			for i := 0; i < tc.count; i++ {
				results = append(results, result("quiz", "math", float64(50+i*20), daysAgo(tc.count-i)))
			}
			if got := engine.ScoreTrend(results, 5); got != TrendStable {
				t.Errorf("Expected stable for %d results, got %s", tc.count, got)
			}
		})
	}
}

func TestScoreTrendDirections(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name     string
		earlier  float64
		recent   float64
		expected string
	}{
		{"improving", 60, 85, TrendImproving},
		{"declining", 85, 60, TrendDeclining},
		{"stable", 75, 77, TrendStable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var results []models.TestResult
			for i := 0; i < 3; i++ {
				results = append(results, result("quiz", "math", tc.earlier, daysAgo(20-i)))
			}
			for i := 0; i < 5; i++ {
				results = append(results, result("quiz", "math", tc.recent, daysAgo(10-i)))
			}
			if got := engine.ScoreTrend(results, 5); got != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestScoreTrendIgnoresInputOrder(t *testing.T) {
	engine := NewEngine(nil)

	// Same data as the improving case, handed over newest-first.
	var results []models.TestResult
	for i := 0; i < 5; i++ {
		results = append(results, result("quiz", "math", 85, daysAgo(i+1)))
	}
	for i := 0; i < 3; i++ {
		results = append(results, result("quiz", "math", 60, daysAgo(15+i)))
	}
	if got := engine.ScoreTrend(results, 5); got != TrendImproving {
		t.Errorf("Expected improving regardless of input order, got %s", got)
	}
}

func TestConfidenceScoreDefaults(t *testing.T) {
	engine := NewEngine(nil)

	if got := engine.ConfidenceScore(nil); got != 50.0 {
		t.Errorf("Expected 50.0 for empty results, got %.2f", got)
	}
	single := []models.TestResult{result("quiz", "math", 90, daysAgo(1))}
	if got := engine.ConfidenceScore(single); got != 50.0 {
		t.Errorf("Expected 50.0 for single result, got %.2f", got)
	}
}

func TestConfidenceScoreMonotonicity(t *testing.T) {
	engine := NewEngine(nil)

	// Both sets have mean 80; the second has higher variance.
	consistent := []models.TestResult{
		result("quiz", "math", 80, daysAgo(4)),
		result("quiz", "math", 80, daysAgo(3)),
		result("quiz", "math", 80, daysAgo(2)),
		result("quiz", "math", 80, daysAgo(1)),
	}
	volatile := []models.TestResult{
		result("quiz", "math", 60, daysAgo(4)),
		result("quiz", "math", 100, daysAgo(3)),
		result("quiz", "math", 60, daysAgo(2)),
		result("quiz", "math", 100, daysAgo(1)),
	}

	consistentConf := engine.ConfidenceScore(consistent)
	volatileConf := engine.ConfidenceScore(volatile)

	if consistentConf != 100.0 {
		t.Errorf("Expected 100.0 for zero variance, got %.2f", consistentConf)
	}
	if volatileConf >= consistentConf {
		t.Errorf("Higher variance must not increase confidence: %.2f >= %.2f", volatileConf, consistentConf)
	}
}

func TestRecommendationLevelDeterminism(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name       string
		score      float64
		confidence float64
		trend      string
		expected   string
	}{
		{"high score high confidence", 85, 90, TrendStable, LevelAdvanced},
		{"boosted over threshold", 80, 90, TrendStable, LevelAdvanced},
		{"middling", 72, 60, TrendStable, LevelIntermediate},
		{"penalized inconsistent", 60, 40, TrendDeclining, LevelBeginner},
		{"improving boost", 82, 60, TrendImproving, LevelAdvanced},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first := engine.RecommendationLevel(tc.score, tc.confidence, tc.trend)
			second := engine.RecommendationLevel(tc.score, tc.confidence, tc.trend)
			if first != second {
				t.Errorf("Level not deterministic: %s then %s", first, second)
			}
			if first != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, first)
			}
		})
	}
}

func TestStrengthsWeaknesses(t *testing.T) {
	engine := NewEngine(nil)

	results := []models.TestResult{
		result("quiz", "math", 95, daysAgo(3)),
		result("quiz", "math", 90, daysAgo(2)),
		result("quiz", "history", 55, daysAgo(3)),
		result("quiz", "history", 60, daysAgo(1)),
		result("quiz", "science", 75, daysAgo(2)),
	}
	strongest, weakest := engine.StrengthsWeaknesses(results)
	if strongest != "math" {
		t.Errorf("Expected strongest math, got %s", strongest)
	}
	if weakest != "history" {
		t.Errorf("Expected weakest history, got %s", weakest)
	}
}

func TestStrengthsWeaknessesSingleCourse(t *testing.T) {
	engine := NewEngine(nil)

	results := []models.TestResult{
		result("quiz", "math", 95, daysAgo(2)),
		result("quiz", "math", 60, daysAgo(1)),
	}
	strongest, weakest := engine.StrengthsWeaknesses(results)
	if strongest != DefaultSubject || weakest != DefaultSubject {
		t.Errorf("Expected %q for single-course history, got %q/%q", DefaultSubject, strongest, weakest)
	}
}

func TestStrengthsWeaknessesTieBreak(t *testing.T) {
	engine := NewEngine(nil)

	// Identical averages: sorted course ID order decides.
	results := []models.TestResult{
		result("quiz", "zoology", 80, daysAgo(2)),
		result("quiz", "algebra", 80, daysAgo(1)),
	}
	strongest, weakest := engine.StrengthsWeaknesses(results)
	if strongest != "algebra" || weakest != "algebra" {
		t.Errorf("Expected algebra to win ties, got %q/%q", strongest, weakest)
	}
}

func TestBuildScoreSummaryEmptyHistory(t *testing.T) {
	engine := NewEngine(nil)

	summary := engine.BuildScoreSummary("learner-9", nil)

	if summary.LearnerID != "learner-9" {
		t.Errorf("Expected learner id preserved, got %s", summary.LearnerID)
	}
	if summary.TotalTests != 0 {
		t.Errorf("Expected 0 tests, got %d", summary.TotalTests)
	}
	if summary.AverageScore != 0.0 || summary.LatestScore != 0.0 {
		t.Errorf("Expected zero scores, got %.2f/%.2f", summary.AverageScore, summary.LatestScore)
	}
	if summary.ScoreTrend != TrendStable {
		t.Errorf("Expected stable trend, got %s", summary.ScoreTrend)
	}
	if summary.RecommendationLevel != LevelBeginner {
		t.Errorf("Expected beginner level, got %s", summary.RecommendationLevel)
	}
	if summary.ConfidenceScore != 50.0 {
		t.Errorf("Expected confidence 50.0, got %.2f", summary.ConfidenceScore)
	}
	if summary.StrongestSubject != DefaultSubject || summary.WeakestSubject != DefaultSubject {
		t.Errorf("Expected default subjects, got %s/%s", summary.StrongestSubject, summary.WeakestSubject)
	}
	if len(summary.RecentPerformance) != 0 {
		t.Errorf("Expected empty recent performance, got %d entries", len(summary.RecentPerformance))
	}
}

func TestBuildScoreSummaryStrongRecentPerformer(t *testing.T) {
	engine := NewEngine(nil)

	// Strong consistent scores within the last week should land in
	// advanced territory with high confidence.
	results := []models.TestResult{
		result("quiz", "math", 90, daysAgo(6)),
		result("test", "science", 85, daysAgo(3)),
		result("exam", "math", 95, daysAgo(1)),
	}
	summary := engine.BuildScoreSummary("learner-1", results)

	if summary.RecommendationLevel != LevelAdvanced {
		t.Errorf("Expected advanced level, got %s", summary.RecommendationLevel)
	}
	if summary.ConfidenceScore < 80 {
		t.Errorf("Expected high confidence for low variance, got %.2f", summary.ConfidenceScore)
	}
	if summary.TotalTests != 3 {
		t.Errorf("Expected 3 tests, got %d", summary.TotalTests)
	}
	if summary.LatestScore != 95 {
		t.Errorf("Expected latest score 95, got %.2f", summary.LatestScore)
	}
	if math.Abs(summary.AverageScore-90) > 0.01 {
		t.Errorf("Expected average 90, got %.2f", summary.AverageScore)
	}
	if len(summary.RecentPerformance) != 3 {
		t.Errorf("Expected 3 recent results, got %d", len(summary.RecentPerformance))
	}
	if summary.RecentPerformance[0].Percentage != 95 {
		t.Errorf("Expected newest result first, got %.2f", summary.RecentPerformance[0].Percentage)
	}
}

func TestBuildScoreSummaryCapsRecentPerformance(t *testing.T) {
	engine := NewEngine(nil)

	var results []models.TestResult
	for i := 0; i < 8; i++ {
		results = append(results, result("quiz", "math", 70, daysAgo(8-i)))
	}
	summary := engine.BuildScoreSummary("learner-1", results)
	if len(summary.RecentPerformance) != 5 {
		t.Errorf("Expected recent performance capped at 5, got %d", len(summary.RecentPerformance))
	}
}
