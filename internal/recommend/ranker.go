package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"learning-service/internal/models"
	"learning-service/internal/scoring"
	"learning-service/internal/store"
)

// Ranker applies the matcher across the full catalog and returns the
// top-N recommendations.
type Ranker struct {
	matcher  *Matcher
	contents store.ContentStore
}

func NewRanker(matcher *Matcher, contents store.ContentStore) *Ranker {
	return &Ranker{matcher: matcher, contents: contents}
}

// PersonalizedRecommendations scores every catalog entry against the
// summary and returns at most topN, ranked 1-based. An empty catalog
// yields an empty slice, not an error. Ties on match score resolve by
// ascending content ID so the ordering is stable across store backends.
func (r *Ranker) PersonalizedRecommendations(ctx context.Context, summary models.ScoreSummary, topN int) ([]Recommendation, error) {
	catalog, err := r.contents.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return []Recommendation{}, nil
	}
	if topN <= 0 {
		topN = 5
	}

	type scoredCourse struct {
		course models.Content
		match  MatchResult
	}
	scored := make([]scoredCourse, 0, len(catalog))
	for _, course := range catalog {
		scored = append(scored, scoredCourse{course: course, match: r.matcher.MatchScore(course, summary)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].match.TotalScore != scored[j].match.TotalScore {
			return scored[i].match.TotalScore > scored[j].match.TotalScore
		}
		return scored[i].course.ID < scored[j].course.ID
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	recommendations := make([]Recommendation, 0, len(scored))
	for i, sc := range scored {
		minutes := r.estimateMinutes(sc.course, summary)
		recommendations = append(recommendations, Recommendation{
			Rank:             i + 1,
			Course:           sc.course,
			MatchScore:       sc.match.TotalScore,
			Confidence:       sc.match.Confidence,
			Breakdown:        sc.match.Breakdown,
			Reason:           sc.match.Reason,
			EstimatedMinutes: minutes,
			EstimatedTime:    fmt.Sprintf("%d minutes", minutes),
			PrerequisitesMet: r.prerequisitesMet(sc.course, summary),
			NextSteps:        r.nextSteps(sc.course, summary),
		})
	}
	return recommendations, nil
}

// estimateMinutes adjusts the course's base duration by the learner's
// confidence and rounds to the nearest 5 minutes. The value stays
// numeric through the pipeline; formatting happens only at the output
// boundary.
func (r *Ranker) estimateMinutes(course models.Content, summary models.ScoreSummary) int {
	base := float64(course.EstimatedDuration)
	if base <= 0 {
		base = float64(r.matcher.config.DefaultDuration)
	}

	switch {
	case summary.ConfidenceScore >= 80:
		base *= 0.8
	case summary.ConfidenceScore <= 50:
		base *= 1.2
	}

	return int(math.Round(base/5) * 5)
}

// prerequisitesMet allows courses up to one difficulty tier above the
// learner's current level.
func (r *Ranker) prerequisitesMet(course models.Content, summary models.ScoreSummary) bool {
	courseRank, ok := r.matcher.config.DifficultyRanks[normalizedDifficulty(course.DifficultyLevel, r.matcher.config)]
	if !ok {
		courseRank = 2
	}
	learnerRank, ok := r.matcher.config.DifficultyRanks[summary.RecommendationLevel]
	if !ok {
		learnerRank = 1
	}
	return courseRank <= learnerRank+1
}

func (r *Ranker) nextSteps(course models.Content, summary models.ScoreSummary) []string {
	difficulty := normalizedDifficulty(course.DifficultyLevel, r.matcher.config)

	var steps []string
	switch difficulty {
	case "beginner":
		if summary.RecommendationLevel == scoring.LevelBeginner {
			steps = append(steps, "Focus on completing practice exercises")
			steps = append(steps, "Take regular quizzes to reinforce learning")
		}
	case "intermediate":
		steps = append(steps, "Apply concepts through hands-on projects")
		if summary.ScoreTrend == scoring.TrendImproving {
			steps = append(steps, "Consider advancing to advanced topics soon")
		}
	case "advanced":
		steps = append(steps, "Engage in complex problem-solving activities")
		steps = append(steps, "Consider teaching or mentoring others")
	}
	return steps
}

func normalizedDifficulty(difficulty string, config *Config) string {
	if difficulty == "" {
		return config.DefaultDifficulty
	}
	return strings.ToLower(difficulty)
}
