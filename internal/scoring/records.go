package scoring

import (
	"time"

	"learning-service/internal/models"
)

// Performance record kinds. Both test-result history and raw activity
// logs normalize into this shape before scoring, so the two scorers
// share one input abstraction.
const (
	KindTest = "test"
	KindQuiz = "quiz"
)

// PerformanceRecord is one normalized graded data point.
type PerformanceRecord struct {
	Kind        string
	Percentage  float64
	CompletedAt time.Time
}

var testActivityTypes = map[string]bool{
	"test_completed":       true,
	"exam_taken":           true,
	"assessment_completed": true,
}

var quizActivityTypes = map[string]bool{
	"quiz_completed":   true,
	"quiz_taken":       true,
	"quick_assessment": true,
}

// RecordsFromActivities normalizes scored activities into performance
// records. Test-kind scores are adjusted by the difficulty multiplier
// and capped at 100; activities that carry no difficulty are treated as
// intermediate. Activities without a score, with a zero timestamp, or of
// a non-graded type are skipped.
func RecordsFromActivities(activities []models.Activity, multipliers map[string]float64) []PerformanceRecord {
	records := make([]PerformanceRecord, 0, len(activities))
	for _, activity := range activities {
		if activity.Score == nil || activity.Timestamp.IsZero() {
			continue
		}
		switch {
		case testActivityTypes[activity.Type]:
			difficulty := activity.Difficulty
			if difficulty == "" {
				difficulty = "intermediate"
			}
			multiplier := 1.0
			if m, ok := multipliers[difficulty]; ok {
				multiplier = m
			}
			adjusted := *activity.Score * multiplier
			if adjusted > 100 {
				adjusted = 100
			}
			records = append(records, PerformanceRecord{
				Kind:        KindTest,
				Percentage:  adjusted,
				CompletedAt: activity.Timestamp,
			})
		case quizActivityTypes[activity.Type]:
			records = append(records, PerformanceRecord{
				Kind:        KindQuiz,
				Percentage:  *activity.Score,
				CompletedAt: activity.Timestamp,
			})
		}
	}
	return records
}

// RecordsFromTestResults normalizes graded attempts into performance
// records. Quizzes keep their own kind; everything else counts as a
// test-kind record.
func RecordsFromTestResults(results []models.TestResult) []PerformanceRecord {
	records := make([]PerformanceRecord, 0, len(results))
	for _, result := range results {
		kind := KindTest
		if result.TestType == "quiz" {
			kind = KindQuiz
		}
		records = append(records, PerformanceRecord{
			Kind:        kind,
			Percentage:  result.Percentage,
			CompletedAt: result.CompletedAt,
		})
	}
	return records
}
