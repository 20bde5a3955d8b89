package recommend

import (
	"fmt"
	"math"
	"strings"

	"learning-service/internal/models"
)

// Matcher scores how well one catalog entry fits one learner summary.
type Matcher struct {
	config *Config
}

func NewMatcher(config *Config) *Matcher {
	if config == nil {
		config = DefaultRecommendConfig()
	}
	return &Matcher{config: config}
}

// MatchScore computes the multi-component match of a course against a
// score summary. There are no error conditions: missing optional fields
// fall back to defaults, and the difficulty mismatch score is a floor,
// never zero.
func (m *Matcher) MatchScore(course models.Content, summary models.ScoreSummary) MatchResult {
	breakdown := MatchBreakdown{}

	courseDifficulty := strings.ToLower(course.DifficultyLevel)
	if courseDifficulty == "" {
		courseDifficulty = m.config.DefaultDifficulty
	}
	level := summary.RecommendationLevel

	breakdown.DifficultyMatch = m.config.MismatchScore
	if suitable, ok := m.config.SuitableDifficulties[level]; ok {
		for _, difficulty := range suitable {
			if courseDifficulty == difficulty {
				breakdown.DifficultyMatch = m.config.SuitableScore
				if courseDifficulty == level {
					breakdown.DifficultyMatch = m.config.ExactMatchScore
				}
				break
			}
		}
	}

	breakdown.PerformanceAlignment = m.config.MinPerformanceScore
	for _, band := range m.config.PerformanceBands {
		if summary.LatestScore >= band.Threshold {
			breakdown.PerformanceAlignment = band.Score
			break
		}
	}

	if score, ok := m.config.TrendScores[summary.ScoreTrend]; ok {
		breakdown.ProgressionScore = score
	} else {
		breakdown.ProgressionScore = m.config.DefaultTrendScore
	}

	if subjectsOverlap(course.CourseID, summary.StrongestSubject) {
		breakdown.SubjectStrengthBonus = m.config.SubjectBonus
	}

	total := breakdown.DifficultyMatch + breakdown.PerformanceAlignment +
		breakdown.ProgressionScore + breakdown.SubjectStrengthBonus

	return MatchResult{
		TotalScore: round2(total),
		Confidence: round2(total * summary.ConfidenceScore / 100),
		Breakdown:  breakdown,
		Reason:     m.reason(breakdown, level),
	}
}

// reason joins a clause for every component that crossed its "good"
// threshold. It never returns an empty string.
func (m *Matcher) reason(breakdown MatchBreakdown, level string) string {
	var reasons []string

	if breakdown.DifficultyMatch >= 40 {
		reasons = append(reasons, fmt.Sprintf("Perfect difficulty match for %s level learners", level))
	} else if breakdown.DifficultyMatch >= 25 {
		reasons = append(reasons, fmt.Sprintf("Good difficulty match for %s level learners", level))
	}

	if breakdown.PerformanceAlignment >= 25 {
		reasons = append(reasons, "Strong performance alignment")
	} else if breakdown.PerformanceAlignment >= 20 {
		reasons = append(reasons, "Good performance match")
	}

	if breakdown.ProgressionScore >= 18 {
		reasons = append(reasons, "Supports current learning momentum")
	} else if breakdown.ProgressionScore >= 15 {
		reasons = append(reasons, "Appropriate progression level")
	}

	if breakdown.SubjectStrengthBonus > 0 {
		reasons = append(reasons, "Builds on your strongest subject area")
	}

	if len(reasons) == 0 {
		return "General recommendation based on your learning profile"
	}
	return strings.Join(reasons, "; ")
}

// subjectsOverlap reports whether the course identifier and the
// strongest subject substring-match in either direction. The subject
// here is the course ID string itself, a known approximation carried
// over from the original catalog design.
func subjectsOverlap(courseID, strongestSubject string) bool {
	if courseID == "" || strongestSubject == "" {
		return false
	}
	return strings.Contains(courseID, strongestSubject) || strings.Contains(strongestSubject, courseID)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
