package scoring

import (
	"math"
	"sort"
	"time"

	"learning-service/internal/models"
)

// ComponentScores breaks a comprehensive score into its inputs.
type ComponentScores struct {
	TestAverage     float64 `json:"test_average"`
	QuizAverage     float64 `json:"quiz_average"`
	EngagementScore float64 `json:"engagement_score"`
	EngagementBonus float64 `json:"engagement_bonus"`
}

// ActionRecommendation is the tier-specific next action.
type ActionRecommendation struct {
	Type                string `json:"type"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Priority            string `json:"priority"`
	SuggestedDifficulty string `json:"suggested_difficulty"`
}

// CourseSuggestion is one entry of a tier's fixed course list.
type CourseSuggestion struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
}

// ScoreReport is the comprehensive score output for one learner.
type ScoreReport struct {
	LearnerID             string                 `json:"learner_id"`
	OverallScore          float64                `json:"overall_score"`
	PerformanceLevel      string                 `json:"performance_level"`
	PerformanceBadge      string                 `json:"performance_badge"`
	ComponentScores       ComponentScores        `json:"component_scores"`
	Insights              []string               `json:"insights"`
	Recommendations       []ActionRecommendation `json:"recommendations"`
	CourseRecommendations []CourseSuggestion     `json:"course_recommendations"`
	LearningPath          []string               `json:"learning_path"`
	GeneratedAt           time.Time              `json:"generated_at"`
}

// Comprehensive scores a learner directly from the raw activity log,
// without the TestResult indirection. Stateless: every call is a pure
// function of the learner snapshot passed in.
type Comprehensive struct {
	config *ComprehensiveConfig
}

func NewComprehensive(config *ComprehensiveConfig) *Comprehensive {
	if config == nil {
		config = DefaultComprehensiveConfig()
	}
	return &Comprehensive{config: config}
}

// CalculateScore produces the full score report for a learner. A
// learner with no activities gets the fixed new-learner report.
func (c *Comprehensive) CalculateScore(learner *models.Learner) ScoreReport {
	if learner == nil || len(learner.Activities) == 0 {
		report := c.newLearnerReport()
		if learner != nil {
			report.LearnerID = learner.ID
		}
		return report
	}

	records := RecordsFromActivities(learner.Activities, c.config.DifficultyMultipliers)

	testScore := c.testAverage(records)
	quizScore := c.quizAverage(records)
	engagementScore := c.engagementScore(learner.Activities)

	overall := testScore*c.config.TestWeight + quizScore*c.config.QuizWeight

	bonus := engagementScore / 100 * c.config.EngagementBonusWeight * 100
	if bonus > c.config.MaxEngagementBonus {
		bonus = c.config.MaxEngagementBonus
	}
	overall += bonus

	level := c.performanceLevel(overall)

	return ScoreReport{
		LearnerID:        learner.ID,
		OverallScore:     round2(overall),
		PerformanceLevel: level,
		PerformanceBadge: c.config.Badges[level],
		ComponentScores: ComponentScores{
			TestAverage:     round2(testScore),
			QuizAverage:     round2(quizScore),
			EngagementScore: round2(engagementScore),
			EngagementBonus: round2(bonus),
		},
		Insights:              c.insights(testScore, quizScore, engagementScore, overall),
		Recommendations:       []ActionRecommendation{c.config.TierRecommendations[level]},
		CourseRecommendations: c.config.TierCourses[level],
		LearningPath:          c.config.TierPaths[level],
		GeneratedAt:           time.Now().UTC(),
	}
}

// testAverage computes a recency-weighted mean over test-kind records.
// Weights grow linearly toward the most recent record.
func (c *Comprehensive) testAverage(records []PerformanceRecord) float64 {
	tests := filterRecords(records, KindTest)
	if len(tests) == 0 {
		return c.config.NeutralScore
	}
	if len(tests) == 1 {
		return tests[0].Percentage
	}

	sort.SliceStable(tests, func(i, j int) bool {
		return tests[i].CompletedAt.Before(tests[j].CompletedAt)
	})

	weightedSum := 0.0
	totalWeight := 0.0
	for i, record := range tests {
		weight := 0.3 + float64(i)*0.2
		weightedSum += record.Percentage * weight
		totalWeight += weight
	}
	return weightedSum / totalWeight
}

func (c *Comprehensive) quizAverage(records []PerformanceRecord) float64 {
	quizzes := filterRecords(records, KindQuiz)
	if len(quizzes) == 0 {
		return c.config.NeutralScore
	}
	sum := 0.0
	for _, record := range quizzes {
		sum += record.Percentage
	}
	return sum / float64(len(quizzes))
}

// engagementScore blends recent activity frequency, total study time,
// activity diversity and consistency into one 0-100 value.
func (c *Comprehensive) engagementScore(activities []models.Activity) float64 {
	if len(activities) == 0 {
		return 0.0
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -c.config.RecentWindowDays)
	recentCount := 0
	totalDuration := 0.0
	types := make(map[string]bool)
	for _, activity := range activities {
		if !activity.Timestamp.IsZero() && !activity.Timestamp.Before(cutoff) {
			recentCount++
		}
		totalDuration += activity.Duration
		types[activity.Type] = true
	}

	frequencyScore := capAt(float64(recentCount)*10, 100)
	durationScore := capAt(totalDuration/60*5, 100)
	diversityScore := capAt(float64(len(types))*15, 100)
	consistencyScore := c.consistencyScore(activities)

	engagement := frequencyScore*0.3 + durationScore*0.3 + diversityScore*0.2 + consistencyScore*0.2
	return capAt(engagement, 100)
}

// consistencyScore inverts the coefficient of variation of the day gaps
// between consecutive activities: the steadier the cadence, the higher
// the score.
func (c *Comprehensive) consistencyScore(activities []models.Activity) float64 {
	if len(activities) < 3 {
		return 50.0
	}

	timestamps := make([]time.Time, 0, len(activities))
	for _, activity := range activities {
		if activity.Timestamp.IsZero() {
			continue
		}
		timestamps = append(timestamps, activity.Timestamp)
	}
	if len(timestamps) < 2 {
		return 50.0
	}

	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	gaps := make([]float64, 0, len(timestamps)-1)
	for i := 1; i < len(timestamps); i++ {
		gaps = append(gaps, float64(int(timestamps[i].Sub(timestamps[i-1]).Hours()/24)))
	}

	avgGap := mean(gaps)
	if avgGap == 0 {
		return 100.0
	}

	variance := 0.0
	for _, gap := range gaps {
		diff := gap - avgGap
		variance += diff * diff
	}
	stdDev := math.Sqrt(variance / float64(len(gaps)-1))

	consistencyFactor := 1 / (stdDev/avgGap + 1)
	return capAt(consistencyFactor*100, 100)
}

func (c *Comprehensive) performanceLevel(score float64) string {
	for _, tier := range c.config.Tiers {
		if score >= tier.MinScore {
			return tier.Level
		}
	}
	return TierPoor
}

func (c *Comprehensive) insights(testScore, quizScore, engagementScore, overall float64) []string {
	insights := make([]string, 0, 4)

	switch {
	case testScore >= 85:
		insights = append(insights, "Excellent test performance - strong grasp of concepts")
	case testScore >= 70:
		insights = append(insights, "Good test performance with room for improvement")
	default:
		insights = append(insights, "Test scores suggest need for concept review")
	}

	switch {
	case quizScore >= 80:
		insights = append(insights, "Strong quiz performance - quick recall and understanding")
	case quizScore >= 65:
		insights = append(insights, "Steady quiz performance")
	default:
		insights = append(insights, "Quiz scores indicate need for more practice")
	}

	switch {
	case engagementScore >= 80:
		insights = append(insights, "Highly engaged learner with consistent activity")
	case engagementScore >= 60:
		insights = append(insights, "Good engagement level")
	default:
		insights = append(insights, "Consider increasing learning activity frequency")
	}

	switch {
	case overall >= 85:
		insights = append(insights, "Outstanding overall performance")
	case overall >= 70:
		insights = append(insights, "Solid performance across all areas")
	default:
		insights = append(insights, "Focus on consistent practice and improvement")
	}

	return insights
}

func (c *Comprehensive) newLearnerReport() ScoreReport {
	return ScoreReport{
		OverallScore:     50.0,
		PerformanceLevel: TierNewLearner,
		PerformanceBadge: c.config.Badges[TierNewLearner],
		ComponentScores: ComponentScores{
			TestAverage:     50.0,
			QuizAverage:     50.0,
			EngagementScore: 0.0,
			EngagementBonus: 0.0,
		},
		Insights: []string{
			"Welcome! Start with our beginner-friendly courses",
			"Complete your first activities to get a personalized score",
			"Set up your learning preferences for better recommendations",
		},
		Recommendations:       []ActionRecommendation{c.config.TierRecommendations[TierNewLearner]},
		CourseRecommendations: c.config.TierCourses[TierNewLearner],
		LearningPath:          c.config.TierPaths[TierNewLearner],
		GeneratedAt:           time.Now().UTC(),
	}
}

func filterRecords(records []PerformanceRecord, kind string) []PerformanceRecord {
	filtered := make([]PerformanceRecord, 0, len(records))
	for _, record := range records {
		if record.Kind == kind {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func capAt(value, limit float64) float64 {
	if value > limit {
		return limit
	}
	return value
}
