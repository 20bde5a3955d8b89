package recommend

import (
	"context"
	"fmt"
	"sort"

	"learning-service/internal/models"
	"learning-service/internal/scoring"
)

// LearningPath sequences the top recommendations into an ordered path
// with aggregate duration and skill coverage. The number of candidate
// courses comes from the config. When no courses qualify it returns an
// explicit empty path rather than an error.
func (r *Ranker) LearningPath(ctx context.Context, summary models.ScoreSummary, targetSkills []string) (LearningPath, error) {
	candidates := r.matcher.config.PathCandidates
	if candidates <= 0 {
		candidates = 10
	}
	recommendations, err := r.PersonalizedRecommendations(ctx, summary, candidates)
	if err != nil {
		return LearningPath{}, err
	}

	if len(recommendations) == 0 {
		return LearningPath{
			Items:             []PathItem{},
			Summary:           "No suitable courses found for your current level",
			TotalMinutes:      0,
			EstimatedDuration: "0 hours",
			SkillCoverage:     []string{},
			StartingLevel:     summary.RecommendationLevel,
		}, nil
	}

	items := make([]PathItem, 0, len(recommendations))
	covered := make(map[string]bool)
	totalMinutes := 0

	for _, rec := range recommendations {
		items = append(items, PathItem{
			Sequence:         len(items) + 1,
			CourseID:         rec.Course.CourseID,
			Title:            rec.Course.Title,
			Difficulty:       rec.Course.DifficultyLevel,
			EstimatedMinutes: rec.EstimatedMinutes,
			FocusSkills:      rec.Course.Tags,
			PrerequisitesMet: rec.PrerequisitesMet,
			MatchConfidence:  rec.Confidence,
		})
		totalMinutes += rec.EstimatedMinutes
		for _, tag := range rec.Course.Tags {
			covered[tag] = true
		}
	}

	coverage := make([]string, 0, len(covered))
	for tag := range covered {
		coverage = append(coverage, tag)
	}
	sort.Strings(coverage)

	return LearningPath{
		Items:             items,
		Summary:           fmt.Sprintf("Personalized learning path with %d courses covering %d skill areas", len(items), len(coverage)),
		TotalMinutes:      totalMinutes,
		EstimatedDuration: fmt.Sprintf("%.1f hours", float64(totalMinutes)/60),
		SkillCoverage:     coverage,
		StartingLevel:     summary.RecommendationLevel,
		ExpectedOutcome:   expectedOutcome(summary.RecommendationLevel),
	}, nil
}

func expectedOutcome(level string) string {
	switch level {
	case scoring.LevelBeginner:
		return "Foundation knowledge and basic competency in core concepts"
	case scoring.LevelIntermediate:
		return "Solid understanding with ability to apply concepts practically"
	default:
		return "Advanced proficiency with expertise in complex problem-solving"
	}
}
