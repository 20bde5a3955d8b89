package models

import (
	"time"

	"github.com/google/uuid"
)

// PassingPercentage is the pass threshold applied to every graded attempt.
const PassingPercentage = 60.0

// TestResult is one graded attempt. Percentage and Passed are always
// derived from Score/MaxScore at construction; results are immutable
// after that.
type TestResult struct {
	ID          string                 `bson:"_id" json:"id"`
	LearnerID   string                 `bson:"learner_id" json:"learner_id"`
	TestID      string                 `bson:"test_id" json:"test_id"`
	TestType    string                 `bson:"test_type" json:"test_type"`
	CourseID    string                 `bson:"course_id" json:"course_id"`
	ContentID   string                 `bson:"content_id,omitempty" json:"content_id,omitempty"`
	Score       float64                `bson:"score" json:"score"`
	MaxScore    float64                `bson:"max_score" json:"max_score"`
	Percentage  float64                `bson:"percentage" json:"percentage"`
	TimeTaken   *float64               `bson:"time_taken,omitempty" json:"time_taken,omitempty"`
	Attempts    int                    `bson:"attempts" json:"attempts"`
	Passed      bool                   `bson:"passed" json:"passed"`
	CompletedAt time.Time              `bson:"completed_at" json:"completed_at"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// NewTestResult builds a graded attempt. A non-positive max score is
// treated as 100 so a bad record cannot produce a division by zero.
func NewTestResult(learnerID, testID, testType, courseID string, score, maxScore float64, completedAt time.Time) TestResult {
	if maxScore <= 0 {
		maxScore = 100
	}
	percentage := (score / maxScore) * 100
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}
	return TestResult{
		ID:          uuid.NewString(),
		LearnerID:   learnerID,
		TestID:      testID,
		TestType:    testType,
		CourseID:    courseID,
		Score:       score,
		MaxScore:    maxScore,
		Percentage:  percentage,
		Attempts:    1,
		Passed:      percentage >= PassingPercentage,
		CompletedAt: completedAt,
	}
}

// ScoreSummary is the derived snapshot of a learner's aggregate
// performance. It is recomputed on demand from test result history and
// never persisted as source of truth.
type ScoreSummary struct {
	LearnerID           string       `bson:"learner_id" json:"learner_id"`
	TotalTests          int          `bson:"total_tests" json:"total_tests"`
	AverageScore        float64      `bson:"average_score" json:"average_score"`
	LatestScore         float64      `bson:"latest_score" json:"latest_score"`
	ScoreTrend          string       `bson:"score_trend" json:"score_trend"`
	StrongestSubject    string       `bson:"strongest_subject" json:"strongest_subject"`
	WeakestSubject      string       `bson:"weakest_subject" json:"weakest_subject"`
	RecommendationLevel string       `bson:"recommendation_level" json:"recommendation_level"`
	ConfidenceScore     float64      `bson:"confidence_score" json:"confidence_score"`
	RecentPerformance   []TestResult `bson:"recent_performance" json:"recent_performance"`
}
