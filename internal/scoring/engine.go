package scoring

import (
	"math"
	"sort"
	"time"

	"learning-service/internal/models"
)

// Engine computes performance metrics over a learner's graded attempts.
// Every method tolerates empty or single-element input and degrades to a
// neutral default instead of erroring.
type Engine struct {
	config *Config
}

func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{config: config}
}

// WeightedScore calculates the weighted average score across results.
// The per-result weight is the test-type base weight scaled by a recency
// factor that decays linearly over the decay window down to a floor.
func (e *Engine) WeightedScore(results []models.TestResult) float64 {
	if len(results) == 0 {
		return 0.0
	}

	now := time.Now().UTC()
	weightedSum := 0.0
	totalWeight := 0.0

	for _, result := range results {
		weight, ok := e.config.TypeWeights[result.TestType]
		if !ok {
			weight = e.config.DefaultTypeWeight
		}

		daysOld := int(now.Sub(result.CompletedAt.UTC()).Hours() / 24)
		recencyFactor := 1.0 - e.config.MaxRecencyDecay
		if daysOld <= e.config.RecencyDecayDays {
			recencyFactor = 1.0 - (float64(daysOld)/float64(e.config.RecencyDecayDays))*e.config.MaxRecencyDecay
		}

		finalWeight := weight * recencyFactor
		weightedSum += result.Percentage * finalWeight
		totalWeight += finalWeight
	}

	if totalWeight == 0 {
		return 0.0
	}
	return round2(weightedSum / totalWeight)
}

// ScoreTrend compares the mean of the last windowSize results against
// the mean of everything before that window. Fewer than 3 results is
// always stable.
func (e *Engine) ScoreTrend(results []models.TestResult, windowSize int) string {
	if len(results) < 3 {
		return TrendStable
	}
	if windowSize <= 0 {
		windowSize = e.config.TrendWindow
	}

	sorted := sortedByCompletion(results)
	if len(sorted) <= windowSize {
		return TrendStable
	}

	recent := sorted[len(sorted)-windowSize:]
	earlier := sorted[:len(sorted)-windowSize]

	difference := meanPercentage(recent) - meanPercentage(earlier)
	switch {
	case difference > e.config.TrendThreshold:
		return TrendImproving
	case difference < -e.config.TrendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ConfidenceScore derives confidence from consistency: the coefficient
// of variation of percentages, inverted onto a 0-100 scale.
func (e *Engine) ConfidenceScore(results []models.TestResult) float64 {
	if len(results) < 2 {
		return e.config.DefaultConfidence
	}

	mean := meanPercentage(results)
	if mean == 0 {
		return 0.0
	}

	variance := 0.0
	for _, result := range results {
		diff := result.Percentage - mean
		variance += diff * diff
	}
	stdDev := math.Sqrt(variance / float64(len(results)-1))

	confidence := 100 - (stdDev/mean)*100
	if confidence < 0 {
		confidence = 0
	}
	return round2(confidence)
}

// RecommendationLevel maps an adjusted weighted score onto a tier.
// Confidence and trend nudge the score before thresholding.
func (e *Engine) RecommendationLevel(weightedScore, confidence float64, trend string) string {
	adjusted := weightedScore

	if confidence < 50 {
		adjusted *= 0.9
	} else if confidence > 80 {
		adjusted *= 1.1
	}

	switch trend {
	case TrendImproving:
		adjusted *= 1.05
	case TrendDeclining:
		adjusted *= 0.95
	}

	switch {
	case adjusted >= e.config.AdvancedThreshold:
		return LevelAdvanced
	case adjusted >= e.config.IntermediateThreshold:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// StrengthsWeaknesses groups results by course and compares per-course
// mean percentages. Course IDs are walked in sorted order so ties
// resolve deterministically: the first maximum and minimum win.
func (e *Engine) StrengthsWeaknesses(results []models.TestResult) (string, string) {
	if len(results) == 0 {
		return DefaultSubject, DefaultSubject
	}

	courseScores := make(map[string][]float64)
	for _, result := range results {
		courseScores[result.CourseID] = append(courseScores[result.CourseID], result.Percentage)
	}
	if len(courseScores) < 2 {
		return DefaultSubject, DefaultSubject
	}

	courses := make([]string, 0, len(courseScores))
	for course := range courseScores {
		courses = append(courses, course)
	}
	sort.Strings(courses)

	strongest, weakest := courses[0], courses[0]
	strongestAvg, weakestAvg := mean(courseScores[courses[0]]), mean(courseScores[courses[0]])
	for _, course := range courses[1:] {
		avg := mean(courseScores[course])
		if avg > strongestAvg {
			strongest, strongestAvg = course, avg
		}
		if avg < weakestAvg {
			weakest, weakestAvg = course, avg
		}
	}
	return strongest, weakest
}

// BuildScoreSummary composes the engine outputs into one snapshot. An
// empty history yields the fully-defaulted new-learner summary.
func (e *Engine) BuildScoreSummary(learnerID string, results []models.TestResult) models.ScoreSummary {
	if len(results) == 0 {
		return models.ScoreSummary{
			LearnerID:           learnerID,
			TotalTests:          0,
			AverageScore:        0.0,
			LatestScore:         0.0,
			ScoreTrend:          TrendStable,
			StrongestSubject:    DefaultSubject,
			WeakestSubject:      DefaultSubject,
			RecommendationLevel: LevelBeginner,
			ConfidenceScore:     e.config.DefaultConfidence,
			RecentPerformance:   []models.TestResult{},
		}
	}

	sorted := sortedByCompletion(results)

	weightedScore := e.WeightedScore(results)
	trend := e.ScoreTrend(results, e.config.TrendWindow)
	confidence := e.ConfidenceScore(results)
	strongest, weakest := e.StrengthsWeaknesses(results)

	// Newest first, capped at 5.
	recent := make([]models.TestResult, len(sorted))
	copy(recent, sorted)
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return models.ScoreSummary{
		LearnerID:           learnerID,
		TotalTests:          len(results),
		AverageScore:        round2(meanPercentage(results)),
		LatestScore:         sorted[len(sorted)-1].Percentage,
		ScoreTrend:          trend,
		StrongestSubject:    strongest,
		WeakestSubject:      weakest,
		RecommendationLevel: e.RecommendationLevel(weightedScore, confidence, trend),
		ConfidenceScore:     confidence,
		RecentPerformance:   recent,
	}
}

func sortedByCompletion(results []models.TestResult) []models.TestResult {
	sorted := make([]models.TestResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.Before(sorted[j].CompletedAt)
	})
	return sorted
}

func meanPercentage(results []models.TestResult) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0.0
	for _, result := range results {
		sum += result.Percentage
	}
	return sum / float64(len(results))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
