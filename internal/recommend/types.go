package recommend

import "learning-service/internal/models"

// PerformanceBand maps a latest-score threshold onto an alignment score.
type PerformanceBand struct {
	Threshold float64 `json:"threshold"`
	Score     float64 `json:"score"`
}

// Config holds the component weights and lookup tables for course
// matching.
type Config struct {
	SuitableDifficulties map[string][]string `json:"suitable_difficulties"`
	ExactMatchScore      float64             `json:"exact_match_score"`
	SuitableScore        float64             `json:"suitable_score"`
	MismatchScore        float64             `json:"mismatch_score"`
	PerformanceBands     []PerformanceBand   `json:"performance_bands"`
	MinPerformanceScore  float64             `json:"min_performance_score"`
	TrendScores          map[string]float64  `json:"trend_scores"`
	DefaultTrendScore    float64             `json:"default_trend_score"`
	SubjectBonus         float64             `json:"subject_bonus"`
	DefaultDifficulty    string              `json:"default_difficulty"`
	DefaultDuration      int                 `json:"default_duration"`
	DifficultyRanks      map[string]int      `json:"difficulty_ranks"`
	PathCandidates       int                 `json:"path_candidates"`
}

// DefaultRecommendConfig returns the production matching weights: the
// components sum to at most roughly 105 (45 + 30 + 20 + 10).
func DefaultRecommendConfig() *Config {
	return &Config{
		SuitableDifficulties: map[string][]string{
			"beginner":     {"beginner", "easy"},
			"intermediate": {"beginner", "intermediate", "medium"},
			"advanced":     {"intermediate", "advanced", "difficult"},
		},
		ExactMatchScore: 45,
		SuitableScore:   40,
		MismatchScore:   10,
		PerformanceBands: []PerformanceBand{
			{Threshold: 90, Score: 30},
			{Threshold: 80, Score: 25},
			{Threshold: 70, Score: 20},
			{Threshold: 60, Score: 15},
		},
		MinPerformanceScore: 10,
		TrendScores: map[string]float64{
			"improving": 20,
			"stable":    15,
			"declining": 10,
		},
		DefaultTrendScore: 15,
		SubjectBonus:      10,
		DefaultDifficulty: "intermediate",
		DefaultDuration:   60,
		DifficultyRanks: map[string]int{
			"beginner":     1,
			"intermediate": 2,
			"advanced":     3,
		},
		PathCandidates: 10,
	}
}

// MatchBreakdown itemizes the components of one course match score.
type MatchBreakdown struct {
	DifficultyMatch      float64 `json:"difficulty_match"`
	PerformanceAlignment float64 `json:"performance_alignment"`
	ProgressionScore     float64 `json:"progression_score"`
	SubjectStrengthBonus float64 `json:"subject_strength_bonus"`
}

// MatchResult is the match score of one course against one summary.
type MatchResult struct {
	TotalScore float64        `json:"total_score"`
	Confidence float64        `json:"confidence"`
	Breakdown  MatchBreakdown `json:"score_breakdown"`
	Reason     string         `json:"recommendation_reason"`
}

// Recommendation is one ranked course suggestion. EstimatedMinutes
// carries the raw duration; EstimatedTime is the formatted boundary
// field.
type Recommendation struct {
	Rank             int            `json:"rank"`
	Course           models.Content `json:"course"`
	MatchScore       float64        `json:"match_score"`
	Confidence       float64        `json:"confidence"`
	Breakdown        MatchBreakdown `json:"score_breakdown"`
	Reason           string         `json:"recommendation_reason"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	EstimatedTime    string         `json:"estimated_completion_time"`
	PrerequisitesMet bool           `json:"prerequisites_met"`
	NextSteps        []string       `json:"next_steps"`
}

// PathItem is one step of a learning path.
type PathItem struct {
	Sequence         int      `json:"sequence"`
	CourseID         string   `json:"course_id"`
	Title            string   `json:"title"`
	Difficulty       string   `json:"difficulty"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	FocusSkills      []string `json:"focus_skills"`
	PrerequisitesMet bool     `json:"prerequisites_met"`
	MatchConfidence  float64  `json:"match_confidence"`
}

// LearningPath is an ordered course sequence with aggregate metrics.
type LearningPath struct {
	Items             []PathItem `json:"learning_path"`
	Summary           string     `json:"path_summary"`
	TotalMinutes      int        `json:"total_minutes"`
	EstimatedDuration string     `json:"estimated_duration"`
	SkillCoverage     []string   `json:"skill_coverage"`
	StartingLevel     string     `json:"starting_level"`
	ExpectedOutcome   string     `json:"expected_outcome"`
}
